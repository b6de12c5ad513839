package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Claims are the identity fields embedded in a session token. They are the
// sole source of identity for all downstream authorization checks.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

type Service interface {
	GenerateToken(userID string, email string, role string) (token string, expiresAt int64, err error)
	VerifyToken(tokenString string) (Claims, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey      string
	expirationTime string
	issuer         string
	tokenAuth      *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expirationTime string, issuer string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		issuer:         issuer,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil,
			jwt.WithAcceptableSkew(30*time.Second),
			jwt.WithIssuer(issuer),
		),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(userID string, email string, role string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	now := time.Now()
	expiresAt = now.Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"iss":     j.issuer,
		"iat":     now.Unix(),
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

// VerifyToken checks signature, issuer and expiry, and returns the embedded
// identity claims. It has no side effects; there is no revocation list, so
// expiry is the only bound on a token's lifetime.
func (j *JWTService) VerifyToken(tokenString string) (Claims, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return Claims{}, fmt.Errorf("verify token: %w", err)
	}

	claimsMap, err := token.AsMap(context.Background())
	if err != nil {
		return Claims{}, fmt.Errorf("read token claims: %w", err)
	}

	userID, ok := claimsMap["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, fmt.Errorf("token is missing user_id claim")
	}
	email, _ := claimsMap["email"].(string)
	role, _ := claimsMap["role"].(string)

	return Claims{UserID: userID, Email: email, Role: role}, nil
}
