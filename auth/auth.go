package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"salone/db"
	"salone/models"
)

var (
	ErrUserNotFound = errors.New("no account with that email")
	ErrEmailTaken   = errors.New("email is already registered")
)

const MinPasswordLen = 6

func ValidatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("password too short (minimum %d characters)", MinPasswordLen)
	}
	return nil
}

// CreateUser registers a new account with the identity service and returns the
// record carrying the issued uid. The email is the unique handle; a taken
// email is ErrEmailTaken, never a silent overwrite.
func CreateUser(ctx context.Context, users db.Collection, email, password, displayName string) (*models.AuthUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("email is required")
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	err := users.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil, ErrEmailTaken
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("lookup %s: %w", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.AuthUser{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := users.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("create account for %s: %w", email, err)
	}
	return user, nil
}

// GetUserByEmail resolves an existing account. ErrUserNotFound means the
// operator should create the user first.
func GetUserByEmail(ctx context.Context, users db.Collection, email string) (*models.AuthUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.AuthUser
	err := users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", email, err)
	}
	return &user, nil
}
