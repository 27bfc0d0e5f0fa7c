package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/accounting-service/internal/domain"
)

func TestMintAndExtractSubject(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", time.Hour)

	token, err := tm.Mint("john.doe", domain.RoleAccountant)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := tm.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "john.doe", subject)
	assert.True(t, tm.Validate(token))
}

func TestExtractRole(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", time.Hour)

	cases := []struct {
		name string
		role domain.Role
	}{
		{"accountant", domain.RoleAccountant},
		{"client", domain.RoleClient},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := tm.Mint("someone", tc.role)
			require.NoError(t, err)

			role, err := tm.ExtractRole(token)
			require.NoError(t, err)
			assert.Equal(t, tc.role, role)
		})
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", time.Hour)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "definitely-not-a-token"},
		{"too few segments", "abc.def"},
		{"unsigned", "eyJhbGciOiJub25lIn0.eyJzdWIiOiJ4In0."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tm.Validate(tc.token))

			_, err := tm.ExtractSubject(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", time.Hour)

	token, err := tm.Mint("john.doe", domain.RoleAccountant)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Swap the payload for another subject while keeping the original
	// signature: verification must fail.
	other, err := tm.Mint("jane.doe", domain.RoleAccountant)
	require.NoError(t, err)
	otherParts := strings.Split(other, ".")
	tampered := parts[0] + "." + otherParts[1] + "." + parts[2]

	assert.False(t, tm.Validate(tampered))
	_, err = tm.ExtractSubject(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	minter := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := minter.Mint("john.doe", domain.RoleAccountant)
	require.NoError(t, err)

	assert.False(t, verifier.Validate(token))
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", time.Nanosecond)

	token, err := tm.Mint("john.doe", domain.RoleAccountant)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	assert.False(t, tm.Validate(token))
	_, err = tm.ExtractSubject(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMintIssuesFreshTokenPerCall(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", time.Hour)

	first, err := tm.Mint("john.doe", domain.RoleAccountant)
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	second, err := tm.Mint("john.doe", domain.RoleAccountant)
	require.NoError(t, err)

	// Issued-at has second granularity, so tokens minted a second apart
	// differ even for the same subject.
	assert.NotEqual(t, first, second)
	assert.True(t, tm.Validate(first))
	assert.True(t, tm.Validate(second))
}

func TestDefaultTTLApplied(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", 0)

	token, err := tm.Mint("john.doe", domain.RoleClient)
	require.NoError(t, err)

	claims, err := tm.parse(token)
	require.NoError(t, err)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 10*time.Hour, lifetime)
}
