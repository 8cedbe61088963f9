package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	h, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NoError(t, CheckPassword(h, "rahasia123"))
	assert.Error(t, CheckPassword(h, "salah"))
}

func TestDummyHashIsRealBcrypt(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(dummyHash()))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
	assert.NotPanics(t, func() { BurnPasswordCheck("apa saja") })
}
