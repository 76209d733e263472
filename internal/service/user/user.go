package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"fastfeet/internal/entities"
)

// AccountCreate is the admin signup payload.
type AccountCreate struct {
	Name     string
	Email    string
	Password string
}

// AccountUpdate changes profile fields; switching the password requires the
// current one.
type AccountUpdate struct {
	Name        *string
	Email       *string
	OldPassword *string
	Password    *string
}

type User struct {
	repository Repository
	txManager  TxManager
	jwtSecret  []byte
	tokenTTL   time.Duration
}

func New(repository Repository, txManager TxManager, jwtSecret string, tokenTTL time.Duration) *User {
	return &User{
		repository: repository,
		txManager:  txManager,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
	}
}

func (s *User) CreateUser(ctx context.Context, account AccountCreate) (*entities.User, error) {
	if !isValidName(account.Name) || account.Email == "" || account.Password == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(account.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPassword(account.Password) {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	passwordHash := string(hash)

	var created *entities.User
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.checkEmailFree(ctx, account.Email); err != nil {
			return err
		}

		var err error
		created, err = s.repository.Create(ctx, entities.UserModify{
			Name:         &account.Name,
			Email:        &account.Email,
			PasswordHash: &passwordHash,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *User) UpdateUser(ctx context.Context, id int64, account AccountUpdate) (*entities.User, error) {
	if account.Email != nil && !isValidEmail(*account.Email) {
		return nil, ErrInvalidEmail
	}
	if account.Password != nil {
		if account.OldPassword == nil {
			return nil, ErrMissingRequiredFields
		}
		if !isValidPassword(*account.Password) {
			return nil, ErrPasswordTooShort
		}
	}

	var updated *entities.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}

		if account.Email != nil && *account.Email != current.Email {
			if err := s.checkEmailFree(ctx, *account.Email); err != nil {
				return err
			}
		}

		userModify := entities.UserModify{
			ID:    &id,
			Name:  account.Name,
			Email: account.Email,
		}

		if account.Password != nil {
			if err := bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(*account.OldPassword)); err != nil {
				return ErrPasswordMismatch
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(*account.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			passwordHash := string(hash)
			userModify.PasswordHash = &passwordHash
		}

		updated, err = s.repository.Update(ctx, userModify)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Authenticate verifies the credentials and issues a signed session token.
func (s *User) Authenticate(ctx context.Context, email, password string) (*entities.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingRequiredFields
	}

	current, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrPasswordMismatch
	}

	token, err := s.issueToken(current.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return current, token, nil
}

func (s *User) issueToken(id int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(id, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *User) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.repository.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrEmailTaken
	case errors.Is(err, ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("check email: %w", err)
	}
}
