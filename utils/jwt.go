package utils

import (
	"time"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID uint        `json:"userId"`
	Role   entity.Role `json:"role"`
	Email  string      `json:"email"`
	jwt.RegisteredClaims
}

func GenerateToken(user *entity.User, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
