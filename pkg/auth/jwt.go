package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/appointmentsonthego/booking-api/pkg/errors"
)

// Kind discriminates the two principal types carried in a token.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindBusiness Kind = "business"
)

const DefaultTokenExpiry = 15 * time.Minute

// Claims is the payload of an access token: subject email plus principal kind.
type Claims struct {
	Kind Kind `json:"kind"`
	jwt.RegisteredClaims
}

type JWTService interface {
	Issue(email string, kind Kind) (string, error)
	IssueWithExpiry(email string, kind Kind, expiry time.Duration) (string, error)
	Verify(token string) (*Claims, error)
}

type jwtService struct {
	secret        []byte
	defaultExpiry time.Duration
}

type Config struct {
	Secret        string
	DefaultExpiry time.Duration
}

func NewJWTService(cfg Config) JWTService {
	expiry := cfg.DefaultExpiry
	if expiry == 0 {
		expiry = DefaultTokenExpiry
	}
	return &jwtService{
		secret:        []byte(cfg.Secret),
		defaultExpiry: expiry,
	}
}

func (s *jwtService) Issue(email string, kind Kind) (string, error) {
	return s.IssueWithExpiry(email, kind, s.defaultExpiry)
}

func (s *jwtService) IssueWithExpiry(email string, kind Kind, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify fails closed: every parse, signature, expiry or claim problem is
// reported as the same unauthorized error.
func (s *jwtService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, errors.NewUnauthorized(err)
	}

	if claims.Subject == "" {
		return nil, errors.NewUnauthorized(fmt.Errorf("missing subject"))
	}
	if claims.Kind != KindCustomer && claims.Kind != KindBusiness {
		return nil, errors.NewUnauthorized(fmt.Errorf("unknown principal kind %q", claims.Kind))
	}
	return claims, nil
}
