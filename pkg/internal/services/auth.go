package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const tokenLifetime = 30 * 24 * time.Hour

// IssueToken signs a session token for an account. Sessions are stateless;
// revocation happens by rotating security.jwt_secret.
func IssueToken(accountID uint) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(int(accountID)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(viper.GetString("security.jwt_secret")))
}

func ValidateToken(raw string) (uint, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil {
		return 0, err
	} else if !token.Valid {
		return 0, fmt.Errorf("token is no longer valid")
	}

	claims := token.Claims.(*jwt.RegisteredClaims)
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, fmt.Errorf("malformed token subject: %v", err)
	}

	return uint(id), nil
}
