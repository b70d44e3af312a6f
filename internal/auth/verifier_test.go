package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SceneIt_Go/internal/domain"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func testClaims(sub string, exp time.Time) Claims {
	c := Claims{
		Email: "viewer@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Audience:  jwt.ClaimStrings{"authenticated"},
			Issuer:    "https://proj.supabase.co/auth/v1",
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	c.UserMetadata.Username = "viewer"
	return c
}

func signHS256(t *testing.T, claims jwt.Claims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestVerify_HS256(t *testing.T) {
	v, err := NewVerifier(Config{
		Secret:   testSecret,
		Audience: "authenticated",
		Issuer:   "https://proj.supabase.co/auth/v1",
	})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		token := signHS256(t, testClaims("user-1", time.Now().Add(time.Hour)), testSecret)

		identity, err := v.Verify(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, &domain.Identity{
			Subject:  "user-1",
			Email:    "viewer@example.com",
			Username: "viewer",
			Role:     "authenticated",
		}, identity)
	})

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"empty token", func(t *testing.T) string { return "" }},
		{"garbage", func(t *testing.T) string { return "not.a.jwt" }},
		{"wrong secret", func(t *testing.T) string {
			return signHS256(t, testClaims("user-1", time.Now().Add(time.Hour)), "another-secret-another-secret-another")
		}},
		{"expired", func(t *testing.T) string {
			return signHS256(t, testClaims("user-1", time.Now().Add(-time.Hour)), testSecret)
		}},
		{"missing expiry", func(t *testing.T) string {
			c := testClaims("user-1", time.Now())
			c.ExpiresAt = nil
			return signHS256(t, c, testSecret)
		}},
		{"wrong audience", func(t *testing.T) string {
			c := testClaims("user-1", time.Now().Add(time.Hour))
			c.Audience = jwt.ClaimStrings{"anon"}
			return signHS256(t, c, testSecret)
		}},
		{"wrong issuer", func(t *testing.T) string {
			c := testClaims("user-1", time.Now().Add(time.Hour))
			c.Issuer = "https://evil.example.com"
			return signHS256(t, c, testSecret)
		}},
		{"missing subject", func(t *testing.T) string {
			return signHS256(t, testClaims("", time.Now().Add(time.Hour)), testSecret)
		}},
		{"alg none", func(t *testing.T) string {
			token, err := jwt.NewWithClaims(jwt.SigningMethodNone, testClaims("user-1", time.Now().Add(time.Hour))).
				SignedString(jwt.UnsafeAllowNoneSignatureType)
			require.NoError(t, err)
			return token
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := v.Verify(ctx, tt.token(t))

			assert.Nil(t, identity)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestVerify_PreferredUsernameFallback(t *testing.T) {
	v, err := NewVerifier(Config{Secret: testSecret})
	require.NoError(t, err)

	c := testClaims("user-1", time.Now().Add(time.Hour))
	c.UserMetadata = userMetadata{PreferredUsername: "fallback"}

	identity, err := v.Verify(context.Background(), signHS256(t, c, testSecret))

	require.NoError(t, err)
	assert.Equal(t, "fallback", identity.Username)
}

func TestNewVerifier_RequiresKeySource(t *testing.T) {
	_, err := NewVerifier(Config{})
	assert.Error(t, err)
}

// jwksServer serves the given keys and counts requests
func jwksServer(t *testing.T, keys ...jsonWebKey) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"keys": keys})
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func rsaJWK(kid string, pub *rsa.PublicKey) jsonWebKey {
	return jsonWebKey{
		Kty: "RSA",
		Kid: kid,
		Use: "sig",
		Alg: "RS256",
		N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
	}
}

func TestVerify_RS256FromJWKS(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv, hits := jwksServer(t, rsaJWK("kid-1", &key.PublicKey))

	v, err := NewVerifier(Config{JWKSURL: srv.URL, Audience: "authenticated"})
	require.NoError(t, err)

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, testClaims("user-rsa", time.Now().Add(time.Hour)))
	tok.Header["kid"] = "kid-1"
	signed, err := tok.SignedString(key)
	require.NoError(t, err)

	identity, err := v.Verify(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, "user-rsa", identity.Subject)

	// Second verification is served from the cache
	_, err = v.Verify(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	t.Run("HS256 rejected without secret", func(t *testing.T) {
		_, err := v.Verify(context.Background(), signHS256(t, testClaims("user-1", time.Now().Add(time.Hour)), testSecret))
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("missing kid", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodRS256, testClaims("user-rsa", time.Now().Add(time.Hour)))
		signed, err := tok.SignedString(key)
		require.NoError(t, err)

		_, err = v.Verify(context.Background(), signed)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestVerify_ES256FromJWKS(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	srv, _ := jwksServer(t, jsonWebKey{
		Kty: "EC",
		Kid: "ec-1",
		Crv: "P-256",
		X:   base64.RawURLEncoding.EncodeToString(key.PublicKey.X.Bytes()),
		Y:   base64.RawURLEncoding.EncodeToString(key.PublicKey.Y.Bytes()),
	})

	v, err := NewVerifier(Config{JWKSURL: srv.URL})
	require.NoError(t, err)

	tok := jwt.NewWithClaims(jwt.SigningMethodES256, testClaims("user-ec", time.Now().Add(time.Hour)))
	tok.Header["kid"] = "ec-1"
	signed, err := tok.SignedString(key)
	require.NoError(t, err)

	identity, err := v.Verify(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, "user-ec", identity.Subject)
}

func TestKeySet_UnknownKidThrottled(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv, hits := jwksServer(t, rsaJWK("kid-1", &key.PublicKey))

	ks := NewKeySet(KeySetConfig{URL: srv.URL, MinRefreshInterval: time.Minute})
	clock := time.Now()
	ks.now = func() time.Time { return clock }
	ctx := context.Background()

	_, err = ks.Key(ctx, "kid-1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	_, err = ks.Key(ctx, "kid-2")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Equal(t, int32(1), hits.Load(), "unknown kid inside the refresh interval must not refetch")

	clock = clock.Add(2 * time.Minute)
	_, err = ks.Key(ctx, "kid-2")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Equal(t, int32(2), hits.Load())
}

func TestKeySet_BreakerOpensOnFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ks := NewKeySet(KeySetConfig{URL: srv.URL, MinRefreshInterval: time.Nanosecond})
	clock := time.Now()
	ks.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}

	var err error
	for i := 0; i < BreakerConsecutiveFailures+2; i++ {
		_, err = ks.Key(context.Background(), "kid-1")
		require.Error(t, err)
	}

	assert.Equal(t, int32(BreakerConsecutiveFailures), hits.Load())
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, gobreaker.StateOpen, ks.State())
}
