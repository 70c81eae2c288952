package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = os.Chdir(originalWD)
	})

	require.NoError(t, os.Chdir(tempDir))
	return tempDir
}

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_RunsShell(t *testing.T) {
	chdirTemp(t)

	stdout, stderr, err := execute(t, "3\n4\n", "--no-pause", "--log-level", "debug")

	require.NoError(t, err)
	assert.Contains(t, stdout, "1 Create Account")
	assert.Contains(t, stdout, "No clients.")
	assert.True(t, strings.HasSuffix(stdout, "Bye\n"))
	assert.NotContains(t, stdout, "\033[H\033[2J")
	assert.NotContains(t, stdout, "Press Enter")

	assert.Contains(t, stderr, `"msg":"Ledger initialized"`)
	assert.Contains(t, stderr, `"uniqueness":"client"`)
	assert.Contains(t, stderr, `"msg":"Shutdown completed"`)
	assert.NotContains(t, stdout, `"msg"`, "logs never reach the menu output")
}

func TestRootCommand_ConfigFileAndFlagPrecedence(t *testing.T) {
	tempDir := chdirTemp(t)
	configsDir := filepath.Join(tempDir, "configs")
	require.NoError(t, os.Mkdir(configsDir, 0755))
	content := "LEDGER_ACCOUNT_ID_UNIQUENESS=client\nLOG_OUTPUT=none\nSHELL_PAUSE=false\nSHELL_CLEAR_SCREEN=false\n"
	require.NoError(t, os.WriteFile(filepath.Join(configsDir, "branch.env"), []byte(content), 0644))

	script := strings.Join([]string{
		"1", "AB123", "Jane", "Doe", "", "MAIN", "1",
		"1", "AB123", "MAIN", "2",
		"3", "4",
	}, "\n") + "\n"

	t.Run("FileSettingsApply", func(t *testing.T) {
		stdout, stderr, err := execute(t, script, "--config", "branch")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Account ID already in use.")
		assert.Contains(t, stdout, "AB123: Jane Doe -  (1 accounts)")
		assert.Empty(t, stderr)
	})

	t.Run("FlagOverridesFile", func(t *testing.T) {
		stdout, _, err := execute(t, script, "--config", "branch", "--uniqueness", "permissive")

		require.NoError(t, err)
		assert.NotContains(t, stdout, "Account ID already in use.")
		assert.Contains(t, stdout, "AB123: Jane Doe -  (2 accounts)")
	})
}

func TestRootCommand_InvalidConfiguration(t *testing.T) {
	chdirTemp(t)

	stdout, _, err := execute(t, "4\n", "--uniqueness", "sometimes")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Contains(t, err.Error(), "LEDGER_ACCOUNT_ID_UNIQUENESS")
	assert.Empty(t, stdout)
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	chdirTemp(t)

	_, _, err := execute(t, "4\n", "extra")
	assert.Error(t, err)
}

func TestRootCommand_EndOfInputIsNormalExit(t *testing.T) {
	chdirTemp(t)

	stdout, _, err := execute(t, "", "--no-pause")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Choice: ")
}
