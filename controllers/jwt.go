package controllers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const accessTokenTTL = 24 * time.Hour

// Reset tokens live exactly as long as the PIN validity window.
const resetTokenTTL = 10 * time.Minute

const resetTokenPurpose = "pin_reset"

var errInvalidToken = errors.New("invalid token")

func getJWTSecret() string {
	return getenv("JWT_SECRET", "CHANGE_ME")
}

func signAccessToken(userID int64, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(getJWTSecret()))
}

// signResetToken carries the password-reset subject between verify-pin and
// set-new-password (the stateless stand-in for a server session). The jti
// claim pins the token to the PinReset row it was issued for; spending that
// row makes the token one-shot.
func signResetToken(userID, pinID int64, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":     userID,
		"jti":     pinID,
		"purpose": resetTokenPurpose,
		"iat":     now.Unix(),
		"exp":     now.Add(resetTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(getJWTSecret()))
}

func parseToken(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(getJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidToken
	}
	return claims, nil
}

func claimUserID(claims jwt.MapClaims) (int64, bool) {
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, false
	}
	return int64(sub), true
}

func claimPinID(claims jwt.MapClaims) (int64, bool) {
	jti, ok := claims["jti"].(float64)
	if !ok || jti <= 0 {
		return 0, false
	}
	return int64(jti), true
}
