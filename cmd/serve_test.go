package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServeCmdFlags(t *testing.T) {
	cmd := newServeCmd()

	debug := cmd.Flags().Lookup("debug")
	require.NotNil(t, debug)
	assert.Equal(t, "false", debug.DefValue)

	metricsEnabled := cmd.Flags().Lookup("metrics-enabled")
	require.NotNil(t, metricsEnabled)
	assert.Equal(t, "false", metricsEnabled.DefValue)

	metricsAddr := cmd.Flags().Lookup("metrics-addr")
	require.NotNil(t, metricsAddr)
	assert.Equal(t, ":9090", metricsAddr.DefValue)
}

func TestRootCmdSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["version"])
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "1.2.3", rootCmd.Version)
}
