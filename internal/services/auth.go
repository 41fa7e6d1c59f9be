package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"momentum-backend/internal/middleware"
	"momentum-backend/internal/models"
)

// AuthService delegates identity to Google: it verifies Google ID tokens and
// issues the backend's own short-lived session tokens. No credentials are
// stored anywhere.
type AuthService struct {
	redis          *redis.Client
	jwt            *middleware.JWTAuth
	googleClientID string
}

func NewAuthService(redisClient *redis.Client, jwt *middleware.JWTAuth, googleClientID string) *AuthService {
	return &AuthService{
		redis:          redisClient,
		jwt:            jwt,
		googleClientID: googleClientID,
	}
}

// GoogleLogin verifies a Google ID token and issues session tokens.
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*models.AuthTokens, error) {
	if s.googleClientID == "" {
		return nil, &ConfigError{Message: "Google sign-in is not configured"}
	}

	// Verify the ID token using Google's tokeninfo endpoint
	resp, err := http.Get("https://oauth2.googleapis.com/tokeninfo?id_token=" + idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify Google token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UnauthorizedError{Message: "Invalid Google token"}
	}

	var tokenInfo struct {
		Sub   string `json:"sub"`
		Email string `json:"email"`
		Aud   string `json:"aud"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenInfo); err != nil {
		return nil, fmt.Errorf("failed to decode Google token info: %w", err)
	}

	// Verify audience matches our client ID
	if tokenInfo.Aud != s.googleClientID {
		return nil, &UnauthorizedError{Message: "Google token audience mismatch"}
	}

	if tokenInfo.Sub == "" || tokenInfo.Email == "" {
		return nil, &UnauthorizedError{Message: "Google account missing subject or email"}
	}

	return s.issueTokens(ctx, models.SessionUser{UID: tokenInfo.Sub, Email: tokenInfo.Email})
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*models.AuthTokens, error) {
	raw, err := s.redis.Get(ctx, "refresh:"+refreshToken).Result()
	if err != nil {
		return nil, &UnauthorizedError{Message: "Invalid or expired refresh token. Please log in again."}
	}

	var user models.SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("invalid session payload: %w", err)
	}

	// Delete old token (rotation)
	s.redis.Del(ctx, "refresh:"+refreshToken)

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.redis.Del(ctx, "refresh:"+refreshToken).Err()
}

func (s *AuthService) issueTokens(ctx context.Context, user models.SessionUser) (*models.AuthTokens, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.UID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := generateToken(64)
	if err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(user)

	// Store refresh token in Redis (7 days)
	err = s.redis.Set(ctx, "refresh:"+refreshToken, payload, 7*24*time.Hour).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &models.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    900,
	}, nil
}

func generateToken(bytes int) (string, error) {
	b := make([]byte, bytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
