package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/DukeRupert/jobboard/internal/domain"
)

// Claims is the token payload issued by the identity provider.
type Claims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name,omitempty"`
	Picture       string `json:"picture,omitempty"`
}

// VerifierConfig configures token verification.
type VerifierConfig struct {
	Secret   string
	Issuer   string // optional; checked when set
	Audience string // optional; checked when set
	Leeway   time.Duration
}

// Verifier checks HS256 identity tokens signed with a shared secret.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
	issuer string
	aud    string
}

// NewVerifier builds a Verifier. An empty secret is rejected.
func NewVerifier(cfg VerifierConfig) (*Verifier, error) {
	if cfg.Secret == "" {
		return nil, errors.New("identity token secret is required")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &Verifier{
		secret: []byte(cfg.Secret),
		parser: jwt.NewParser(opts...),
		issuer: cfg.Issuer,
		aud:    cfg.Audience,
	}, nil
}

// Verify parses a raw token and returns the identity it asserts.
func (v *Verifier) Verify(raw string) (domain.Identity, error) {
	const op = "auth.verify"

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.Identity{}, domain.Unauthorized(op, "Missing identity token")
	}

	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.Unauthorized(op, "Identity token has expired")
		}
		return domain.Identity{}, domain.Unauthorized(op, "Invalid identity token")
	}
	if claims.Subject == "" {
		return domain.Identity{}, domain.Unauthorized(op, "Identity token has no subject")
	}

	return domain.Identity{
		Subject:     claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
		PhotoURL:    claims.Picture,
		Verified:    claims.EmailVerified,
	}, nil
}

// Issue signs a token for id. The server never issues tokens itself; this
// exists for the operator CLI and tests.
func (v *Verifier) Issue(id domain.Identity, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:         id.Email,
		EmailVerified: id.Verified,
		Name:          id.DisplayName,
		Picture:       id.PhotoURL,
	}
	if v.aud != "" {
		claims.Audience = jwt.ClaimStrings{v.aud}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign identity token: %w", err)
	}
	return signed, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
