package auth

import (
	"fmt"
	"tablica-wiadomosci/internal/models"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jaevor/go-nanoid"
)

// SessionClaims is the member snapshot installed in the session cookie at
// sign-in. It is a copy of the member row from that moment, not a live
// reference; it stays stale until the next sign-in.
type SessionClaims struct {
	MemberID      int64     `json:"member_id"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	FollowerCount int64     `json:"follower_count"`
	MemberSince   time.Time `json:"member_since"`
	jwt.RegisteredClaims
}

func GenerateSessionToken(member *models.Member, secret string, maxAge time.Duration) (string, error) {
	generateID, err := nanoid.Standard(21)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}

	claims := &SessionClaims{
		MemberID:      member.ID,
		Username:      member.Username,
		Name:          member.Name,
		FollowerCount: member.FollowerCount,
		MemberSince:   member.Time,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        generateID(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(maxAge)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "tablica-wiadomosci",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func VerifySessionToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrInvalidKey
}
