package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with the given stdin and arguments.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "cert", cmd.Use)
	assert.Contains(t, cmd.Long, "uncertainty")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"eval", "convert", "stats", "combine", "bench"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	precisionFlag := cmd.PersistentFlags().Lookup("precision")
	require.NotNil(t, precisionFlag)
	assert.Equal(t, "2", precisionFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("locale"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("relative"))
}

func TestEvalCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	evalCmd, _, err := cmd.Find([]string{"eval"})
	require.NoError(t, err)

	sheetFlag := evalCmd.Flags().Lookup("sheet")
	require.NotNil(t, sheetFlag)
	assert.Equal(t, "s", sheetFlag.Shorthand)
	assert.Equal(t, "", sheetFlag.DefValue)
}

func TestStatsCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	statsCmd, _, err := cmd.Find([]string{"stats"})
	require.NoError(t, err)

	semFlag := statsCmd.Flags().Lookup("sem")
	require.NotNil(t, semFlag)
	assert.Equal(t, "false", semFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "", "--format", "xml", "eval", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "xml")
}

func TestEnvironmentConfig(t *testing.T) {
	t.Setenv("CERT_FORMAT", "yaml")
	t.Setenv("CERT_PRECISION", "1")

	out, _, err := execute(t, "", "eval", "10±1", "2", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "kind: absolute")

	// Flags win over the environment
	out, _, err = execute(t, "", "--format", "text", "eval", "10±1", "2", "x")
	require.NoError(t, err)
	assert.Equal(t, "20.0 ± 2.0\n", out)
}

func TestInvalidEnvironment(t *testing.T) {
	t.Setenv("CERT_PRECISION", "many")

	_, _, err := execute(t, "", "eval", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "", "-v", "eval", "10±1", "5±2", "+")
	require.NoError(t, err)

	assert.Equal(t, "15.00 ± 2.24\n", out)
	assert.Contains(t, errOut, "DBG")
	assert.Contains(t, errOut, "push")
	assert.Contains(t, errOut, "apply")
}

func TestQuietByDefault(t *testing.T) {
	_, errOut, err := execute(t, "", "eval", "10±1", "5±2", "+")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}
