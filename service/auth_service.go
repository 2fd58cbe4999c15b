package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"schedulebuilder-backend/models"
	"schedulebuilder-backend/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the email is unknown or the
// password does not match. The two cases are not distinguished.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// ErrInvalidToken is returned for a missing, malformed or expired token.
var ErrInvalidToken = errors.New("could not validate credentials")

// UserStore is the persistence surface the auth service needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthService issues and validates bearer tokens and manages accounts
type AuthService struct {
	users  UserStore
	secret []byte
	expiry time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:  users,
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Register creates a new account with a bcrypt-hashed password
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns a signed access token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.GenerateToken(user.ID)
}

// GenerateToken issues an HS256 JWT with the user id as subject
func (s *AuthService) GenerateToken(userID int64) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates a token string and returns the user id it carries
func (s *AuthService) ParseToken(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

// CurrentUser loads the account behind an authenticated user id
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}
