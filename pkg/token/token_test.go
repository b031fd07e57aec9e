package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-resume-builder/pkg/token"
)

func TestIssueAndParse(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	signed, issued, err := m.Issue("user-1", "jane@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.NotEmpty(t, issued.SessionID)

	parsed, err := m.Parse(signed)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
	assert.Equal(t, "jane@example.com", parsed.Email)
	assert.Equal(t, issued.SessionID, parsed.SessionID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, _, err := token.NewManager("secret-a", time.Hour).Issue("user-1", "jane@example.com")
	assert.NoError(t, err)

	_, err = token.NewManager("secret-b", time.Hour).Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	m := token.NewManager("test-secret", -time.Minute)

	signed, _, err := m.Issue("user-1", "jane@example.com")
	assert.NoError(t, err)

	_, err = m.Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := token.NewManager("test-secret", time.Hour).Parse("not.a.token")
	assert.Error(t, err)
}

func TestEverySessionIDIsUnique(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	_, first, err := m.Issue("user-1", "jane@example.com")
	assert.NoError(t, err)
	_, second, err := m.Issue("user-1", "jane@example.com")
	assert.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
}
