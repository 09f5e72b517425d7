package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestMintAccess_RoundTrip(t *testing.T) {
	keys := testKeypair(t)
	codec := NewCodec(keys, 15*time.Minute, 7*24*time.Hour)
	now := time.Now().Truncate(time.Second)

	signed, err := codec.MintAccess("alice", []string{"MANAGER", "PURCHASING"}, now)
	require.NoError(t, err)
	assert.Len(t, strings.Split(signed, "."), 3)

	verifier := NewVerifier(keys, WithClock(fixedClock(now.Add(time.Minute))))
	claims, err := verifier.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, "alice", claims.Username())
	assert.Equal(t, TypeAccess, claims.Type)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(15*time.Minute).Unix(), claims.ExpiresAt.Unix())

	roles, err := verifier.Roles(claims)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"MANAGER", "PURCHASING"}, roles)
}

func TestMintRefresh_CarriesNoRoles(t *testing.T) {
	keys := testKeypair(t)
	codec := NewCodec(keys, 15*time.Minute, 7*24*time.Hour)
	now := time.Now()

	signed, err := codec.MintRefresh("alice", now)
	require.NoError(t, err)

	verifier := NewVerifier(keys, WithClock(fixedClock(now)))
	claims, err := verifier.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, TypeRefresh, claims.Type)
	assert.Empty(t, claims.Roles)
	assert.Equal(t, now.Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	require.NoError(t, verifier.AssertRefresh(claims))
}

func TestVerify_Expired(t *testing.T) {
	keys := testKeypair(t)
	codec := NewCodec(keys, time.Minute, time.Hour)
	issued := time.Now()

	signed, err := codec.MintAccess("alice", nil, issued)
	require.NoError(t, err)

	// One second before expiry: still valid
	verifier := NewVerifier(keys, WithClock(fixedClock(issued.Add(59*time.Second))))
	_, err = verifier.Verify(signed)
	assert.NoError(t, err)

	// At and past expiry: expired
	verifier = NewVerifier(keys, WithClock(fixedClock(issued.Add(2*time.Minute))))
	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_Malformed(t *testing.T) {
	keys := testKeypair(t)
	verifier := NewVerifier(keys)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := verifier.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", tok)
	}
}

func TestVerify_SignatureFromOtherKey(t *testing.T) {
	signerKeys := testKeypair(t)
	otherKeys := testKeypair(t)

	codec := NewCodec(signerKeys, time.Minute, time.Hour)
	signed, err := codec.MintAccess("alice", []string{"ADMIN"}, time.Now())
	require.NoError(t, err)

	verifier := NewVerifier(otherKeys)
	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestTypeChecks(t *testing.T) {
	keys := testKeypair(t)
	codec := NewCodec(keys, time.Minute, time.Hour)
	verifier := NewVerifier(keys)
	now := time.Now()

	access, err := codec.MintAccess("alice", []string{"SALES"}, now)
	require.NoError(t, err)
	refresh, err := codec.MintRefresh("alice", now)
	require.NoError(t, err)

	accessClaims, err := verifier.Verify(access)
	require.NoError(t, err)
	refreshClaims, err := verifier.Verify(refresh)
	require.NoError(t, err)

	// Roles off a refresh token is always a type violation
	_, err = verifier.Roles(refreshClaims)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	// And an access token never passes the refresh assertion
	assert.ErrorIs(t, verifier.AssertRefresh(accessClaims), ErrWrongTokenType)
}

func TestVerify_AccessWithoutRoles(t *testing.T) {
	keys := testKeypair(t)
	codec := NewCodec(keys, time.Minute, time.Hour)
	verifier := NewVerifier(keys)

	signed, err := codec.MintAccess("bob", nil, time.Now())
	require.NoError(t, err)

	claims, err := verifier.Verify(signed)
	require.NoError(t, err)

	roles, err := verifier.Roles(claims)
	require.NoError(t, err)
	assert.NotNil(t, roles)
	assert.Empty(t, roles)
}
