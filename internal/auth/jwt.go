package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
)

var (
	// ErrInvalidToken - токен не прошел проверку подписи или срока действия
	ErrInvalidToken = errors.New("invalid token")
)

// Claims - полезная нагрузка JWT токена
type Claims struct {
	UserID   int64             `json:"user_id"`
	Username string            `json:"username"`
	Roles    []models.RoleName `json:"roles"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет JWT токены с подписью HS256
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создает новый TokenManager
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken выпускает подписанный токен для пользователя
func (m *TokenManager) GenerateToken(userID int64, username string, roles []models.RoleName) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken проверяет подпись и срок действия токена и возвращает его claims
func (m *TokenManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
