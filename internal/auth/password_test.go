package auth_test

import (
	"testing"

	"barshift-backend/internal/auth"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery staple")

	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, auth.CheckPassword(hash, "correct horse battery staple"))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery staple")

	assert.NoError(t, err)
	assert.False(t, auth.CheckPassword(hash, "incorrect horse"))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, auth.CheckPassword("not-a-bcrypt-hash", "anything"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := auth.HashPassword("same password")
	assert.NoError(t, err)
	second, err := auth.HashPassword("same password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
