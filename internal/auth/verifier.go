package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/SceneIt_Go/internal/domain"
)

var (
	ErrMissingToken   = errors.New(ErrMsgMissingToken)
	errMissingKid     = errors.New(ErrMsgMissingKid)
	errNoSecret       = errors.New(ErrMsgNoSecret)
	errNoJWKS         = errors.New(ErrMsgNoJWKS)
	errMissingSubject = errors.New(ErrMsgMissingSubject)
)

// Verifier turns a bearer token into a verified identity
type Verifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}

// Config configures token verification. At least one of Secret and JWKSURL
// must be set.
type Config struct {
	Secret       string
	JWKSURL      string
	Audience     string
	Issuer       string
	JWKSCacheTTL time.Duration
	Leeway       time.Duration
	HTTPClient   *http.Client
}

// Claims are the Supabase access token claims the service reads
type Claims struct {
	Email        string       `json:"email"`
	Role         string       `json:"role"`
	UserMetadata userMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

type userMetadata struct {
	Username          string `json:"username"`
	PreferredUsername string `json:"preferred_username"`
}

// JWTVerifier verifies HS256 tokens with a shared secret and RS256/ES256
// tokens against a JWKS endpoint
type JWTVerifier struct {
	secret   []byte
	keys     *KeySet
	audience string
	issuer   string
	methods  []string
	leeway   time.Duration
}

// NewVerifier builds a verifier from configuration
func NewVerifier(cfg Config) (*JWTVerifier, error) {
	if cfg.Secret == "" && cfg.JWKSURL == "" {
		return nil, errors.New(ErrMsgNoVerificationKey)
	}
	if cfg.Leeway == 0 {
		cfg.Leeway = DefaultLeeway
	}

	v := &JWTVerifier{
		audience: cfg.Audience,
		issuer:   cfg.Issuer,
		leeway:   cfg.Leeway,
	}
	if cfg.Secret != "" {
		v.secret = []byte(cfg.Secret)
		v.methods = append(v.methods, jwt.SigningMethodHS256.Alg())
	}
	if cfg.JWKSURL != "" {
		v.keys = NewKeySet(KeySetConfig{
			URL:        cfg.JWKSURL,
			CacheTTL:   cfg.JWKSCacheTTL,
			HTTPClient: cfg.HTTPClient,
		})
		v.methods = append(v.methods, jwt.SigningMethodRS256.Alg(), jwt.SigningMethodES256.Alg())
	}
	return v, nil
}

// Verify parses and validates a token. Every failure wraps domain.ErrUnauthorized.
func (v *JWTVerifier) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, ErrMissingToken)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods(v.methods),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.keyFor(ctx, t)
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, errMissingSubject)
	}

	username := claims.UserMetadata.Username
	if username == "" {
		username = claims.UserMetadata.PreferredUsername
	}

	return &domain.Identity{
		Subject:  claims.Subject,
		Email:    claims.Email,
		Username: username,
		Role:     claims.Role,
	}, nil
}

func (v *JWTVerifier) keyFor(ctx context.Context, t *jwt.Token) (interface{}, error) {
	switch t.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if v.secret == nil {
			return nil, errNoSecret
		}
		return v.secret, nil
	case *jwt.SigningMethodRSA, *jwt.SigningMethodECDSA:
		if v.keys == nil {
			return nil, errNoJWKS
		}
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errMissingKid
		}
		return v.keys.Key(ctx, kid)
	default:
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
}
