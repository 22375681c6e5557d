package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShellInput(t *testing.T, db, input string) string {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"run", "--db", db})
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestShellShowsSplashAndDispatches(t *testing.T) {
	out := runShellInput(t, testDB(t), "home\nexit\n")
	assert.Contains(t, out, "=== Ruxx Restaurants ===")
	assert.Contains(t, out, "Gourmet Burger")
}

func TestShellRefusesNestedRun(t *testing.T) {
	out := runShellInput(t, testDB(t), "run\nquit\n")
	assert.Contains(t, out, "already in an interactive session")
}

func TestShellKeepsQuotedArguments(t *testing.T) {
	db := testDB(t)
	_, err := execute(t, db, "login", "alex.doe@example.com", "password123")
	require.NoError(t, err)

	out := runShellInput(t, db, `address add "9 Shell Rd, Lagos"`+"\nexit\n")
	assert.Contains(t, out, "9 Shell Rd, Lagos")
}
