package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "sunny-day-42"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "sunny-day-42"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("cloudy-day-42", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "not-a-hash"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same")
	require.NoError(t, err)
	second, err := hasher.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasherWithCost_OutOfRange(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
