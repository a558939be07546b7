package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talonbank/ledger/pkg/utils"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()
	hash, err := utils.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, utils.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, utils.CheckPasswordHash("wrong password", hash))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	t.Parallel()
	assert.False(t, utils.CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}

func TestIsEmail(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(utils.IsEmail("user@example.com"))
	assert.True(utils.IsEmail("first.last+tag@example.co.uk"))
	assert.False(utils.IsEmail("not-an-email"))
	assert.False(utils.IsEmail(""))
}
