package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"butik/internal/models"
	"butik/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for authentication and authorization.
// Both the cookie-session web flow and the JSON API go through this one
// service, so passwords are bcrypt-hashed everywhere.
type AuthService struct {
	userRepo   repositories.UserRepository
	publisher  EventPublisher
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService. publisher may be nil when no
// message broker is wired.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, publisher EventPublisher) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		publisher:  publisher,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// Register creates a new user with a bcrypt-hashed password. The lookup by
// email is only a fast path; the unique index on users.email is the real
// uniqueness guarantee, so a constraint violation on insert also surfaces as
// repositories.ErrDuplicateEmail.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("user with email %s: %w", email, repositories.ErrDuplicateEmail)
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// The event is advisory; a broker failure must not fail the request.
	if s.publisher != nil {
		event := map[string]interface{}{
			"user_id":  user.ID,
			"username": user.Username,
			"email":    user.Email,
		}
		if err := s.publisher.PublishUserRegistered(event); err != nil {
			log.Printf("Failed to publish user registered event for %s: %v", user.ID, err)
		}
	}

	return user, nil
}

// Authenticate verifies the credentials for email and returns the matching
// user. Any failure returns ErrInvalidCredentials; the caller cannot tell an
// unknown email from a wrong password.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID retrieves the account behind a validated token.
func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GenerateToken issues a signed JWT for the JSON API.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":      time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
