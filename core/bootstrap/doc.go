// Package bootstrap assembles the dashboard server from the core packages and features.
//
// The start command calls New with the loaded configuration, binds a
// listener with server.Listen and hands it to Serve. Static files are served
// from the on-disk assets directory when present, the embedded copy otherwise;
// in debug mode the on-disk templates are reloaded on change.
package bootstrap
