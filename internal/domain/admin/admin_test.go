package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	a := &Account{Name: "Dana Cole", Email: "dana@brightpath.org"}

	require.NoError(t, a.SetPassword("correct horse battery"))
	assert.True(t, a.CheckPassword("correct horse battery"))
	assert.False(t, a.CheckPassword("wrong password"))
	assert.NotContains(t, a.PasswordHash, "correct horse", "hash must not embed the plaintext")
}

func TestSetPasswordRejectsShort(t *testing.T) {
	a := &Account{}
	assert.Error(t, a.SetPassword("short"))
	assert.Empty(t, a.PasswordHash)
}

func TestInDomain(t *testing.T) {
	a := &Account{Email: "dana@brightpath.org"}
	assert.True(t, a.InDomain("brightpath.org"))
	assert.True(t, a.InDomain("BrightPath.ORG"), "domain comparison is case-insensitive")
	assert.False(t, a.InDomain("example.org"))

	noAt := &Account{Email: "dana"}
	assert.False(t, noAt.InDomain("brightpath.org"))
}

func TestValidate(t *testing.T) {
	a := &Account{Name: "Dana Cole", Email: "dana@brightpath.org"}
	require.NoError(t, a.SetPassword("a long password"))
	assert.NoError(t, a.Validate())

	assert.Error(t, (&Account{Email: "dana@brightpath.org", PasswordHash: "x"}).Validate())
	assert.Error(t, (&Account{Name: "Dana", Email: "no-at", PasswordHash: "x"}).Validate())
	assert.Error(t, (&Account{Name: "Dana", Email: "dana@brightpath.org"}).Validate())
}
