package security

import (
	"crypto"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is malformed, expired, or not meant for this service.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the bearer token claims issued by the auth collaborator.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Principal is the verified caller described by a token.
type Principal struct {
	Subject string
	Email   string
	Name    string
}

// Verifier validates bearer tokens (signature, exp, iss, aud) against one public key.
type Verifier struct {
	publicKey crypto.PublicKey
	parser    *jwt.Parser
}

// NewVerifier returns a Verifier for tokens signed with the private half of publicKey.
func NewVerifier(publicKey crypto.PublicKey, issuer, audience string) (*Verifier, error) {
	method := signingMethod(publicKey)
	if method == nil {
		return nil, ErrInvalidKey
	}
	return &Verifier{
		publicKey: publicKey,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{method.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Verify parses tokenString and returns its principal. Tokens without an email claim are rejected.
func (v *Verifier) Verify(tokenString string) (*Principal, error) {
	var claims Claims
	token, err := v.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return v.publicKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return nil, ErrInvalidToken
	}
	return &Principal{Subject: claims.Subject, Email: email, Name: claims.Name}, nil
}

// TokenProvider signs tokens in the auth collaborator's format. The server never issues tokens;
// cmd/seed and tests do.
type TokenProvider struct {
	*Verifier
	privateKey crypto.Signer
	issuer     string
	audience   string
	ttl        time.Duration
	now        func() time.Time
}

// NewTokenProvider returns a TokenProvider that signs with privateKey (RS256 or ES256) and verifies
// with its public half.
func NewTokenProvider(privateKey crypto.Signer, issuer, audience string, ttl time.Duration) (*TokenProvider, error) {
	v, err := NewVerifier(privateKey.Public(), issuer, audience)
	if err != nil {
		return nil, err
	}
	return &TokenProvider{
		Verifier:   v,
		privateKey: privateKey,
		issuer:     issuer,
		audience:   audience,
		ttl:        ttl,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

// Issue signs a token for the given subject, email and display name.
func (p *TokenProvider) Issue(subject, email, name string) (string, time.Time, error) {
	now := p.now()
	expiresAt := now.Add(p.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    p.issuer,
			Audience:  jwt.ClaimStrings{p.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
		Name:  name,
	}
	token, err := jwt.NewWithClaims(signingMethod(p.privateKey.Public()), claims).SignedString(p.privateKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
