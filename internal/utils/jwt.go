// internal/utils/jwt.go
package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Access and refresh tokens share a signing key, so each carries a
// token_type claim and validation rejects the other kind.
const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type JWTClaims struct {
	UserID     uint   `json:"user_id"`
	Username   string `json:"username"`
	IsStaff    bool   `json:"is_staff"`
	IsMerchant bool   `json:"is_merchant"`
	TokenType  string `json:"token_type"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

var jwtSecret = []byte("your-secret-key-change-in-production")

func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

func GenerateAccessToken(userID uint, username string, isStaff, isMerchant bool, ttlHours int) (string, error) {
	claims := JWTClaims{
		UserID:     userID,
		Username:   username,
		IsStaff:    isStaff,
		IsMerchant: isMerchant,
		TokenType:  tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(ttlHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "curios-shop",
			Subject:   strconv.FormatUint(uint64(userID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		if claims.TokenType != tokenTypeAccess || claims.UserID == 0 {
			return nil, errors.New("token has wrong type")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

func GenerateRefreshToken(userID uint, ttlHours int) (string, error) {
	claims := refreshClaims{
		TokenType: tokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(ttlHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "curios-shop",
			Subject:   strconv.FormatUint(uint64(userID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateRefreshToken(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &refreshClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil {
		return 0, err
	}

	if claims, ok := token.Claims.(*refreshClaims); ok && token.Valid {
		if claims.TokenType != tokenTypeRefresh {
			return 0, errors.New("token has wrong type")
		}
		userID, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil {
			return 0, errors.New("invalid subject in refresh token")
		}
		return uint(userID), nil
	}

	return 0, errors.New("invalid refresh token")
}
