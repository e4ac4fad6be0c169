package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

const TokenContextKey = "user"

func CreateJWTToken(customerID int64, email string, externalID string, jwtSecretKey string, jwtKid string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["customerID"] = customerID
	claims["email"] = email
	claims["externalID"] = externalID
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = jwtKid

	return token.SignedString([]byte(jwtSecretKey))
}

// ParseJWTToken verifies the HS256 signature and expiry of tokenString.
func ParseJWTToken(tokenString string, jwtSecretKey string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return token, nil
}

func ExtractTokenCustomer(c echo.Context) (customerID int64, email string, externalID string) {
	user, ok := c.Get(TokenContextKey).(*jwt.Token)
	if !ok || !user.Valid {
		return 0, "", ""
	}

	claims, ok := user.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ""
	}

	if id, ok := claims["customerID"].(float64); ok {
		customerID = int64(id)
	}
	email, _ = claims["email"].(string)
	externalID, _ = claims["externalID"].(string)

	return customerID, email, externalID
}
