// Package cli tests root command and global flags for chlog.
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ariel-frischer/chlog/internal/errors"
)

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "chlog", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotEmpty(t, rootCmd.Example)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flagName string
	}{
		"path flag exists":  {flagName: "path"},
		"debug flag exists": {flagName: "debug"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			flag := rootCmd.PersistentFlags().Lookup(tt.flagName)
			assert.NotNil(t, flag, "Flag %s should exist", tt.flagName)
		})
	}
}

func TestRootCmd_CommandRegistration(t *testing.T) {
	t.Parallel()

	want := map[string]bool{
		"build":             false,
		"init":              false,
		"add":               false,
		"release <version>": false,
		"find-duplicates":   false,
		"version":           false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Use]; ok {
			want[cmd.Use] = true
		}
	}
	for use, found := range want {
		assert.True(t, found, "command %q should be registered", use)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitInvalidArguments, ExitCode(errors.NewArgumentError("bad")))
	assert.Equal(t, ExitInvalidInput, ExitCode(errors.NewInputError("bad")))
	assert.Equal(t, ExitFailure, ExitCode(errors.NewRuntimeError("bad")))
	assert.Equal(t, ExitFailure, ExitCode(assert.AnError))
}
