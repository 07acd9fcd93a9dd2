package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cosmos-wallet/internal/wallet/seed"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestManagerInitialize(t *testing.T) {
	m := seed.NewManager()
	assert.False(t, m.IsInitialized())
	assert.Nil(t, m.GetSeed())

	require.NoError(t, m.Initialize(testMnemonic, ""))
	assert.True(t, m.IsInitialized())
	assert.Len(t, m.GetSeed(), 64)
}

func TestManagerNormalisesWhitespace(t *testing.T) {
	a := seed.NewManager()
	b := seed.NewManager()

	require.NoError(t, a.Initialize(testMnemonic, "pass"))
	require.NoError(t, b.Initialize("  "+testMnemonic+"\n", "pass"))
	assert.Equal(t, a.GetSeed(), b.GetSeed())
}

func TestManagerPassphraseChangesSeed(t *testing.T) {
	a := seed.NewManager()
	b := seed.NewManager()

	require.NoError(t, a.Initialize(testMnemonic, ""))
	require.NoError(t, b.Initialize(testMnemonic, "other"))
	assert.NotEqual(t, a.GetSeed(), b.GetSeed())
}

func TestManagerRejectsEmptyMnemonic(t *testing.T) {
	require.ErrorIs(t, seed.NewManager().Initialize(" ", ""), seed.ErrEmptyMnemonic)
}

func TestManagerClear(t *testing.T) {
	m := seed.NewManager()
	require.NoError(t, m.Initialize(testMnemonic, ""))

	s := m.GetSeed()
	s[0] ^= 0xff
	assert.NotEqual(t, s, m.GetSeed())

	m.Clear()
	assert.False(t, m.IsInitialized())
	assert.Nil(t, m.GetSeed())
}
