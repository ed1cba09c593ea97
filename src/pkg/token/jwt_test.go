package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndVerifyRoundTrip(t *testing.T) {
	branchID := int64(3)
	metadata := Metadata{
		UserID:   42,
		FullName: "Ama Mensah",
		Role:     "manager",
		BranchID: &branchID,
	}

	tokenString, err := Generate("test-secret", metadata, "session-1")
	assert.NoError(t, err)

	claim, err := Verify("test-secret", tokenString)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claim.Metadata.UserID)
	assert.Equal(t, "manager", claim.Metadata.Role)
	assert.Equal(t, "session-1", claim.SessionID)
	assert.Equal(t, int64(3), *claim.Metadata.BranchID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tokenString, err := Generate("secret-a", Metadata{UserID: 1}, "s")
	assert.NoError(t, err)

	_, err = Verify("secret-b", tokenString)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := Verify("secret", "not-a-token")
	assert.Error(t, err)
}
