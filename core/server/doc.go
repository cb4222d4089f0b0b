// Package server holds the HTTP server configuration and the Fiber building blocks.
//
// The start command assembles the application, while this package provides
// the pieces it is made of: the Fiber app with its error handler, the HTML
// view engine, the /static file server and the TCP listener.
//
// # Configuration
//
// The Config struct defines the bind host and port (127.0.0.1:5001 by default),
// the debug flag and the optional on-disk assets directory.
//
// # Failure semantics
//
// Listen fails fast when the address is already in use. Unknown routes and
// missing static files yield 404; render failures yield 500, with the error
// text included only in debug mode.
package server
