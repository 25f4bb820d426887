// Package tokens mints and verifies the signed bearer tokens the API hands out
package tokens

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"timeclock/internal/platform/config"
	perr "timeclock/internal/platform/errors"
)

// Claims is the payload carried inside a signed token
type Claims struct {
	UID  string `json:"uid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies bearer tokens with a shared HMAC secret
type Codec struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// New builds a Codec from config (reads SECRET, TTL, ISSUER)
func New(cfg config.Conf) *Codec {
	return &Codec{
		secret: []byte(cfg.MustString("SECRET")),
		ttl:    cfg.MayDuration("TTL", 12*time.Hour),
		issuer: cfg.MayString("ISSUER", "timeclock"),
	}
}

// NewStatic builds a Codec from explicit values, handy in tests
func NewStatic(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl, issuer: "timeclock"}
}

// TTL reports how long minted tokens stay valid
func (c *Codec) TTL() time.Duration { return c.ttl }

// Mint signs a token for the given user and role
func (c *Codec) Mint(uid, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UID:  uid,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", perr.Internalf("sign token: %v", err)
	}
	return signed, nil
}

// Verify parses raw and returns its claims when the signature and expiry hold
// failures come back as unauthorized so the HTTP layer maps them to 401
func (c *Codec) Verify(raw string) (Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, perr.Unauthorizedf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, perr.Unauthorizedf("invalid token")
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || strings.TrimSpace(claims.UID) == "" {
		return Claims{}, perr.Unauthorizedf("invalid token claims")
	}
	return *claims, nil
}
