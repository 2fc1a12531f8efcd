package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// isolate runs the test in an empty directory with the storage settings the
// flags touch registered for restore.
func isolate(t *testing.T) string {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "ledger.db"))
	return dir
}

func TestTokenCommand(t *testing.T) {
	isolate(t)
	t.Setenv("AUTH_SECRET", "cli-secret")

	out, err := execute(t, "token", "--subject", "alice")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(strings.TrimSpace(out), "cli-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "household-ledger", claims.Issuer)
}

func TestTokenCommand_AuthDisabled(t *testing.T) {
	isolate(t)
	t.Setenv("AUTH_SECRET", "")

	_, err := execute(t, "token")
	assert.Error(t, err)
}

func TestImportCommand_SecondRunFindsDuplicates(t *testing.T) {
	dir := isolate(t)
	csvPath := filepath.Join(dir, "statement.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"Date,Description,Amount\n"+
			"2024-03-01,Albert Heijn,-42.10\n"+
			"2024-03-02,Salary,3000.00\n",
	), 0o644))

	out, err := execute(t, "import", csvPath, "--sqlite-path", filepath.Join(dir, "cli.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "2 imported, 0 duplicates")

	out, err = execute(t, "import", csvPath, "--sqlite-path", filepath.Join(dir, "cli.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "0 imported, 2 duplicates")
}

func TestImportCommand_UnknownProfile(t *testing.T) {
	dir := isolate(t)
	csvPath := filepath.Join(dir, "statement.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Date,Description,Amount\n"), 0o644))

	_, err := execute(t, "import", csvPath, "--profile", "no-such-bank")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generic")
}

func TestSeedCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "90000.00")

	_, err = execute(t, "seed")
	assert.Error(t, err)
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t, "postgres://***@db:5432/ledger", redactURL("postgres://user:pw@db:5432/ledger"))
	assert.Equal(t, "ledger.db", redactURL("ledger.db"))
}
