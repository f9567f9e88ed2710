package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	httpadapter "workorders/internal/adapters/in/http"
	"workorders/internal/core/domain/model/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func TestTokenCommand_IssuesVerifiableToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	out, err := runRoot(t, "token", "--role", "admin", "--name", "Office")
	require.NoError(t, err)

	auth, err := httpadapter.NewAuthenticator("cli-secret")
	require.NoError(t, err)
	caller, err := auth.Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, identity.Admin, caller.Role())
	assert.Equal(t, "Office", caller.Name())
}

func TestTokenCommand_RejectsUnknownRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	_, err := runRoot(t, "token", "--role", "owner", "--name", "Office")

	require.Error(t, err)
}

func TestTokenCommand_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := runRoot(t, "token", "--name", "Ana")

	require.Error(t, err)
}

func TestBoardCommand_RejectsUnknownFormat(t *testing.T) {
	_, err := runRoot(t, "board", "--output", "xml")

	require.ErrorContains(t, err, "unknown output format")
}
