package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvanacker/bestelportaal-api/pkg/password"
)

func TestHash_DeterministicForSameSalt(t *testing.T) {
	h1 := password.Hash("wachtwoord", "salt-a")
	h2 := password.Hash("wachtwoord", "salt-a")
	assert.Equal(t, h1, h2)
}

func TestHash_DiffersPerSalt(t *testing.T) {
	h1 := password.Hash("wachtwoord", "salt-a")
	h2 := password.Hash("wachtwoord", "salt-b")
	assert.NotEqual(t, h1, h2)
}

func TestVerify(t *testing.T) {
	salt, err := password.NewSalt()
	require.NoError(t, err)
	stored := password.Hash("geheim123", salt)

	assert.True(t, password.Verify("geheim123", salt, stored))
	assert.False(t, password.Verify("geheim124", salt, stored))
	assert.False(t, password.Verify("geheim123", "other-salt", stored))
	assert.False(t, password.Verify("", salt, stored))
}

func TestNewSalt_Unique(t *testing.T) {
	a, err := password.NewSalt()
	require.NoError(t, err)
	b, err := password.NewSalt()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
