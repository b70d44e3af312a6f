package auth

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/osse101/SceneIt_Go/internal/logger"
)

// ErrUnknownKey is returned when no key in the set matches a token's kid
var ErrUnknownKey = errors.New(ErrMsgUnknownKey)

// KeySetConfig configures a JWKS-backed key set
type KeySetConfig struct {
	URL                string
	CacheTTL           time.Duration
	MinRefreshInterval time.Duration
	HTTPClient         *http.Client
}

// KeySet caches public keys from a JWKS endpoint. Keys are refetched when the
// cache expires or a token names an unknown kid, no more often than the
// minimum refresh interval. Fetches run through a circuit breaker.
type KeySet struct {
	url        string
	client     *http.Client
	ttl        time.Duration
	minRefresh time.Duration
	breaker    *gobreaker.CircuitBreaker[map[string]crypto.PublicKey]
	now        func() time.Time

	mu          sync.RWMutex
	keys        map[string]crypto.PublicKey
	fetched     time.Time
	lastAttempt time.Time
}

// NewKeySet creates a key set for the given endpoint
func NewKeySet(cfg KeySetConfig) *KeySet {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultJWKSCacheTTL
	}
	if cfg.MinRefreshInterval <= 0 {
		cfg.MinRefreshInterval = DefaultMinRefreshInterval
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultJWKSFetchTimeout}
	}

	breaker := gobreaker.NewCircuitBreaker[map[string]crypto.PublicKey](gobreaker.Settings{
		Name:    BreakerName,
		Timeout: BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= BreakerConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Default().Warn(LogMsgBreakerStateChange,
				"breaker", name,
				"from", from.String(),
				"to", to.String())
		},
	})

	return &KeySet{
		url:        cfg.URL,
		client:     cfg.HTTPClient,
		ttl:        cfg.CacheTTL,
		minRefresh: cfg.MinRefreshInterval,
		breaker:    breaker,
		now:        time.Now,
		keys:       make(map[string]crypto.PublicKey),
	}
}

// Key returns the public key for kid
func (k *KeySet) Key(ctx context.Context, kid string) (crypto.PublicKey, error) {
	k.mu.RLock()
	key, ok := k.keys[kid]
	expired := k.now().Sub(k.fetched) > k.ttl
	throttled := k.now().Sub(k.lastAttempt) < k.minRefresh
	k.mu.RUnlock()

	if ok && !expired {
		return key, nil
	}
	// An unknown kid on a fresh cache only triggers a refetch once per interval
	if !ok && !expired && throttled {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, kid)
	}

	keys, err := k.refresh(ctx)
	if err != nil {
		if ok {
			logger.FromContext(ctx).Warn(LogMsgJWKSRefreshFailed, "kid", kid, "error", err)
			return key, nil
		}
		return nil, err
	}

	key, ok = keys[kid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, kid)
	}
	return key, nil
}

// State reports the circuit breaker state
func (k *KeySet) State() gobreaker.State {
	return k.breaker.State()
}

func (k *KeySet) refresh(ctx context.Context) (map[string]crypto.PublicKey, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	// Another caller may have refreshed while we waited for the lock
	if !k.fetched.IsZero() && k.now().Sub(k.lastAttempt) < k.minRefresh && k.now().Sub(k.fetched) <= k.ttl {
		return k.keys, nil
	}
	k.lastAttempt = k.now()

	keys, err := k.breaker.Execute(func() (map[string]crypto.PublicKey, error) {
		return k.fetch(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS: %w", err)
	}

	k.keys = keys
	k.fetched = k.now()
	logger.FromContext(ctx).Debug(LogMsgJWKSRefreshed, "keys", len(keys))
	return keys, nil
}

type jsonWebKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y"`
}

func (k *KeySet) fetch(ctx context.Context) (map[string]crypto.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.url, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := k.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var doc struct {
		Keys []jsonWebKey `json:"keys"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxJWKSResponseBytes)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode JWKS: %w", err)
	}

	keys := make(map[string]crypto.PublicKey, len(doc.Keys))
	for _, jwk := range doc.Keys {
		if jwk.Use != "" && jwk.Use != "sig" {
			continue
		}
		pub, err := jwk.publicKey()
		if err != nil {
			// One malformed key must not hide the others
			continue
		}
		keys[jwk.Kid] = pub
	}
	return keys, nil
}

func (j jsonWebKey) publicKey() (crypto.PublicKey, error) {
	switch j.Kty {
	case "RSA":
		n, err := decodeSegment(j.N)
		if err != nil {
			return nil, err
		}
		e, err := decodeSegment(j.E)
		if err != nil {
			return nil, err
		}
		return &rsa.PublicKey{
			N: new(big.Int).SetBytes(n),
			E: int(new(big.Int).SetBytes(e).Int64()),
		}, nil
	case "EC":
		var curve elliptic.Curve
		switch j.Crv {
		case "P-256":
			curve = elliptic.P256()
		case "P-384":
			curve = elliptic.P384()
		case "P-521":
			curve = elliptic.P521()
		default:
			return nil, fmt.Errorf("unsupported curve %q", j.Crv)
		}
		x, err := decodeSegment(j.X)
		if err != nil {
			return nil, err
		}
		y, err := decodeSegment(j.Y)
		if err != nil {
			return nil, err
		}
		return &ecdsa.PublicKey{
			Curve: curve,
			X:     new(big.Int).SetBytes(x),
			Y:     new(big.Int).SetBytes(y),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported key type %q", j.Kty)
	}
}

func decodeSegment(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
