package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/plannr/todo-api/internal/core/domain"
)

// BearerPrefix precedes every issued credential.
const BearerPrefix = "Bearer "

var ErrInvalidToken = domain.Unauthorized("invalid token")

type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies HS256 credentials binding {id, email, role}.
type JWTService struct {
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewJWTService(secret string, tokenTTL time.Duration) *JWTService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &JWTService{secret: []byte(secret), tokenTTL: tokenTTL, now: time.Now}
}

func (s *JWTService) Issue(user *domain.User) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return BearerPrefix + signed, nil
}

func (s *JWTService) Parse(token string) (domain.Identity, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid {
		return domain.Identity{}, ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.Identity{}, ErrInvalidToken
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Identity{}, ErrInvalidToken
	}

	return domain.Identity{UserID: id, Email: claims.Email, Role: role}, nil
}
