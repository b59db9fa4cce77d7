package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pronet/internal/apperror"
	"pronet/internal/common"
	"pronet/internal/dbmysql"
)

type UserService interface {
	Signup(ctx context.Context, username, email, password string) (*dbmysql.User, string, error)
	Login(ctx context.Context, identifier, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error)
}

type userService struct {
	userRepo UserRepository
	tokens   *common.TokenService
}

func NewUserService(userRepo UserRepository, tokens *common.TokenService) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

// dummyHash is a bcrypt hash of a throwaway value. Login runs a compare
// against it when the identifier matches nothing, so a miss costs the same
// as a wrong password and the two failures stay indistinguishable.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (s *userService) Signup(ctx context.Context, username, email, password string) (*dbmysql.User, string, error) {
	if username == "" || email == "" || password == "" {
		return nil, "", apperror.Validation("Username, email and password required")
	}

	if !common.IsComplex(password) {
		return nil, "", apperror.New(apperror.ErrWeakPassword, "Password must be at least 8 chars, with upper, lower, digit.")
	}

	// email check runs first, so it wins when both collide
	if _, err := s.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, "", apperror.New(apperror.ErrDuplicateEmail, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperror.Storage(err)
	}

	if _, err := s.userRepo.GetUserByUsername(ctx, username); err == nil {
		return nil, "", apperror.New(apperror.ErrDuplicateUsername, "Username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperror.Storage(err)
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", apperror.Storage(err)
	}

	user := &dbmysql.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}

	// the unique constraint closes the race the pre-checks leave open; the
	// repo surfaces a concurrent duplicate as the matching duplicate error
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrDuplicateEmail) || errors.Is(err, apperror.ErrDuplicateUsername) {
			return nil, "", err
		}
		return nil, "", apperror.Storage(err)
	}

	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return nil, "", apperror.Storage(err)
	}

	return user, token, nil
}

func (s *userService) Login(ctx context.Context, identifier, password string) (*dbmysql.User, string, error) {
	if identifier == "" || password == "" {
		return nil, "", apperror.Validation("Username/Email and password required")
	}

	user, err := s.userRepo.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// burn a compare so unknown identifier and wrong password
			// take the same time and return the same error
			_ = common.CheckPassword(password, dummyHash)
			return nil, "", apperror.New(apperror.ErrInvalidCredentials, "Invalid credentials")
		}
		return nil, "", apperror.Storage(err)
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", apperror.New(apperror.ErrInvalidCredentials, "Invalid credentials")
	}

	// tokens are never reused, every login gets a fresh one
	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return nil, "", apperror.Storage(err)
	}

	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user")
		}
		return nil, apperror.Storage(err)
	}
	return user, nil
}
