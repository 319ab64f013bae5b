package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winget-installer/internal/config"
)

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{
		config.KeyLogLevel,
		config.KeyLogFormat,
		config.KeyDataDir,
		config.KeyPollInterval,
		config.KeyManager,
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestRootCommandRejectsInvalidConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--manager", "apt"})

	err := cmd.Execute()

	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRootCommandRejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}
