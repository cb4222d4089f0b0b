package cmd

import (
	"testing"

	"onboarding-dashboard/core/server"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "start"}
	addServerFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestApplyServerFlags(t *testing.T) {
	base := server.Config{Host: "127.0.0.1", Port: "5001", Debug: true, AssetsDir: "web"}

	t.Run("NoFlags", func(t *testing.T) {
		cfg := base
		applyServerFlags(newFlagCommand(t), &cfg)
		assert.Equal(t, base, cfg)
	})

	t.Run("AlternatePort", func(t *testing.T) {
		cfg := base
		applyServerFlags(newFlagCommand(t, "--port", "5002", "--debug"), &cfg)
		assert.Equal(t, "5002", cfg.Port)
		assert.True(t, cfg.Debug)
		assert.Equal(t, "127.0.0.1", cfg.Host)
	})

	t.Run("DisableDebug", func(t *testing.T) {
		cfg := base
		applyServerFlags(newFlagCommand(t, "--debug=false", "--host", "0.0.0.0", "--assets", "/srv/web"), &cfg)
		assert.False(t, cfg.Debug)
		assert.Equal(t, "0.0.0.0", cfg.Host)
		assert.Equal(t, "/srv/web", cfg.AssetsDir)
	})
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["start"])
	assert.True(t, names["integrity"])
	assert.True(t, names["classify"])
}
