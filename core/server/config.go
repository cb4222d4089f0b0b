package server

import (
	"fmt"
	"net"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"5001"`
	// Debug enables verbose error pages and template reload on asset changes.
	Debug bool `mapstructure:"debug" default:"true"`
	// AssetsDir is an on-disk directory with templates/ and static/.
	// The embedded assets are used when it does not exist.
	AssetsDir string `mapstructure:"assets_dir" default:"web"`
}

// Address returns the host:port pair to bind.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Validate checks that the port is a usable TCP port. Port 0 asks the
// kernel for an ephemeral port.
func (c Config) Validate() error {
	p, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Port, err)
	}
	if p < 0 || p > 65535 {
		return fmt.Errorf("port %d out of range", p)
	}
	return nil
}
