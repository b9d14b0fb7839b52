package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlsubstr/internal/cli/config"
	"github.com/leapstack-labs/sqlsubstr/internal/cli/testutil"

	// Register built-in dialects via init()
	_ "github.com/leapstack-labs/sqlsubstr/pkg/dialects/all"
)

// useConfig loads yaml as the current CLI configuration for the test.
func useConfig(t *testing.T, yaml string) *config.Config {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cfg, err := config.LoadConfig(testutil.WriteProjectConfig(t, yaml), nil)
	require.NoError(t, err)
	return cfg
}

// execute runs cmd with args and returns stdout, stderr and the error.
func execute(cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(bytes.NewBufferString(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNewTranslateCommand(t *testing.T) {
	cmd := NewTranslateCommand()

	assert.Equal(t, "translate [call...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("file"), "flag %q should exist", "file")
}

func TestNewParseCommand(t *testing.T) {
	cmd := NewParseCommand()

	assert.Equal(t, "parse <call>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewDialectsCommand(t *testing.T) {
	cmd := NewDialectsCommand()

	assert.Equal(t, "dialects", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.Equal(t, "ls", cmd.Aliases[0])
}

func TestNewREPLCommand(t *testing.T) {
	cmd := NewREPLCommand()

	assert.Equal(t, "repl", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}
