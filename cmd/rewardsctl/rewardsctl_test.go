package main

import (
	"bytes"
	"testing"
	"time"

	"rewards/internal/domain/service"
	mocks "rewards/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	for _, path := range [][]string{
		{"claims", "expire"},
		{"vouchers", "void"},
		{"missions", "rearm"},
		{"token", "issue"},
		{"migrate"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestRootCommand_RejectsBadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "void without id", args: []string{"vouchers", "void"}},
		{name: "void with bad id", args: []string{"vouchers", "void", "not-a-uuid"}},
		{name: "rearm without user", args: []string{"missions", "rearm", uuid.NewString()}},
		{name: "rearm with bad user", args: []string{"missions", "rearm", uuid.NewString(), "--user", "bob"}},
		{name: "expire takes no args", args: []string{"claims", "expire", "now"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCommand()
			root.SetArgs(tt.args)
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})

			assert.Error(t, root.Execute())
		})
	}
}

func TestIssueToken(t *testing.T) {
	userID := uuid.New()

	t.Run("signs with the requested subject and roles", func(t *testing.T) {
		tokens := mocks.NewMockTokenService(t)
		tokens.EXPECT().
			GenerateAccessToken(userID, []string{"admin", "merchant"}, 30*time.Minute).
			Return("signed", nil)

		token, err := issueToken(tokens, &tokenOptions{
			User:  userID.String(),
			Roles: []string{"admin", "merchant"},
			TTL:   30 * time.Minute,
		})

		require.NoError(t, err)
		assert.Equal(t, "signed", token)
	})

	t.Run("random subject when none is given", func(t *testing.T) {
		tokens := mocks.NewMockTokenService(t)
		tokens.EXPECT().
			GenerateAccessToken(mock.MatchedBy(func(id uuid.UUID) bool { return id != uuid.Nil }), []string{"user"}, time.Hour).
			Return("signed", nil)

		_, err := issueToken(tokens, &tokenOptions{Roles: []string{"user"}, TTL: time.Hour})

		require.NoError(t, err)
	})

	invalid := []*tokenOptions{
		{User: "bob", Roles: []string{"user"}, TTL: time.Hour},
		{Roles: []string{"superuser"}, TTL: time.Hour},
		{Roles: []string{"user"}},
	}
	for _, opts := range invalid {
		var tokens service.TokenService = mocks.NewMockTokenService(t)

		_, err := issueToken(tokens, opts)

		assert.Error(t, err)
	}
}
