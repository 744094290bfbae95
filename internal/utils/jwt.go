package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrEmptyToken = errors.New("empty API token")

// TokenExpiry reads the exp claim of an API token without verifying its
// signature; the client never holds the signing key. ok is false when the
// token carries no expiry.
//
//	exp, ok, err := utils.TokenExpiry(cfg.App.APIToken)
func TokenExpiry(tokenString string) (exp time.Time, ok bool, err error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tokenString), "Bearer "))
	if tokenString == "" {
		return time.Time{}, false, ErrEmptyToken
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("error occurred parsing API token: %w", err)
	}

	numeric, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("error occurred reading token expiry: %w", err)
	}
	if numeric == nil {
		return time.Time{}, false, nil
	}

	return numeric.Time, true, nil
}

// TokenExpired reports whether the token's exp claim is before now. Tokens
// without an expiry never expire.
func TokenExpired(tokenString string, now time.Time) (bool, error) {
	exp, ok, err := TokenExpiry(tokenString)
	if err != nil || !ok {
		return false, err
	}
	return exp.Before(now), nil
}
