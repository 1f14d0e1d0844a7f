package security

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/rsa"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is malformed, expired, or signed for another issuer or audience.
var ErrInvalidToken = errors.New("invalid token")

// AccessClaims are the claims of a session token. Subject is the decimal user id.
type AccessClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}

// Identity is what a valid token proves.
type Identity struct {
	UserID    int64
	Name      string
	TokenID   string
	ExpiresAt time.Time
}

// TokenProvider issues and validates session JWTs signed with RS256 or ES256.
type TokenProvider struct {
	privateKey crypto.Signer
	publicKey  crypto.PublicKey
	method     jwt.SigningMethod
	issuer     string
	audience   string
	ttl        time.Duration
}

// NewTokenProvider returns a TokenProvider for the key pair. The signing method follows the key type.
func NewTokenProvider(privateKey crypto.Signer, publicKey crypto.PublicKey, issuer, audience string, ttl time.Duration) (*TokenProvider, error) {
	if privateKey == nil || publicKey == nil {
		return nil, ErrInvalidKey
	}
	var method jwt.SigningMethod
	switch privateKey.Public().(type) {
	case *rsa.PublicKey:
		method = jwt.SigningMethodRS256
	case *ecdsa.PublicKey:
		method = jwt.SigningMethodES256
	default:
		return nil, ErrInvalidKey
	}
	return &TokenProvider{
		privateKey: privateKey,
		publicKey:  publicKey,
		method:     method,
		issuer:     issuer,
		audience:   audience,
		ttl:        ttl,
	}, nil
}

// TTL is the lifetime of issued tokens.
func (p *TokenProvider) TTL() time.Duration { return p.ttl }

// Issue signs a token for userID.
func (p *TokenProvider) Issue(userID int64, name string) (token string, id Identity, err error) {
	jti, err := generateJTI()
	if err != nil {
		return "", Identity{}, err
	}
	now := time.Now().UTC()
	exp := now.Add(p.ttl)
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    p.issuer,
			Audience:  jwt.ClaimStrings{p.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Name: name,
	}
	token, err = jwt.NewWithClaims(p.method, claims).SignedString(p.privateKey)
	if err != nil {
		return "", Identity{}, err
	}
	return token, Identity{UserID: userID, Name: name, TokenID: jti, ExpiresAt: exp}, nil
}

// Validate checks signature, expiry, issuer and audience and returns the identity the token carries.
func (p *TokenProvider) Validate(tokenString string) (Identity, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return p.publicKey, nil
	},
		jwt.WithValidMethods([]string{p.method.Alg()}),
		jwt.WithIssuer(p.issuer),
		jwt.WithAudience(p.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return Identity{}, ErrInvalidToken
	}
	id := Identity{UserID: userID, Name: claims.Name, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, nil
}

func generateJTI() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
