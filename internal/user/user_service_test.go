package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pronet/internal/apperror"
	"pronet/internal/common"
	"pronet/internal/dbmysql"
)

func newTestService(repo UserRepository) UserService {
	return NewUserService(repo, common.NewTokenService("test-secret", time.Hour))
}

func TestUserService_Signup(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		setup    func(repo *MockUserRepository)
		wantErr  error
	}{
		{
			name:     "success",
			username: "alice",
			email:    "alice@x.com",
			password: "Passw0rd",
			setup: func(repo *MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "alice@x.com").Return(nil, gorm.ErrRecordNotFound)
				repo.EXPECT().GetUserByUsername(ctx, "alice").Return(nil, gorm.ErrRecordNotFound)
				repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u *dbmysql.User) error {
						u.UserID = 1
						return nil
					})
			},
		},
		{
			name:     "missing fields",
			username: "",
			email:    "a@x.com",
			password: "Passw0rd",
			setup:    func(repo *MockUserRepository) {},
			wantErr:  apperror.ErrValidation,
		},
		{
			name:     "weak password",
			username: "bob",
			email:    "bob@x.com",
			password: "password",
			setup:    func(repo *MockUserRepository) {},
			wantErr:  apperror.ErrWeakPassword,
		},
		{
			name:     "duplicate email",
			username: "carol",
			email:    "taken@x.com",
			password: "Passw0rd",
			setup: func(repo *MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "taken@x.com").Return(&dbmysql.User{UserID: 9}, nil)
			},
			wantErr: apperror.ErrDuplicateEmail,
		},
		{
			name:     "duplicate username",
			username: "taken",
			email:    "new@x.com",
			password: "Passw0rd",
			setup: func(repo *MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "new@x.com").Return(nil, gorm.ErrRecordNotFound)
				repo.EXPECT().GetUserByUsername(ctx, "taken").Return(&dbmysql.User{UserID: 9}, nil)
			},
			wantErr: apperror.ErrDuplicateUsername,
		},
		{
			name:     "email check wins when both collide",
			username: "taken",
			email:    "taken@x.com",
			password: "Passw0rd",
			setup: func(repo *MockUserRepository) {
				// username lookup never runs
				repo.EXPECT().GetUserByEmail(ctx, "taken@x.com").Return(&dbmysql.User{UserID: 9}, nil)
			},
			wantErr: apperror.ErrDuplicateEmail,
		},
		{
			name:     "racing duplicate caught by constraint",
			username: "dave",
			email:    "dave@x.com",
			password: "Passw0rd",
			setup: func(repo *MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "dave@x.com").Return(nil, gorm.ErrRecordNotFound)
				repo.EXPECT().GetUserByUsername(ctx, "dave").Return(nil, gorm.ErrRecordNotFound)
				repo.EXPECT().CreateUser(ctx, gomock.Any()).
					Return(apperror.New(apperror.ErrDuplicateEmail, "Email already registered"))
			},
			wantErr: apperror.ErrDuplicateEmail,
		},
		{
			name:     "storage failure surfaces as storage error",
			username: "erin",
			email:    "erin@x.com",
			password: "Passw0rd",
			setup: func(repo *MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "erin@x.com").Return(nil, errors.New("db is down"))
			},
			wantErr: apperror.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockUserRepository(ctrl)
			tt.setup(repo)
			svc := newTestService(repo)

			user, token, err := svc.Signup(ctx, tt.username, tt.email, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.NotEmpty(t, token)
			assert.Equal(t, tt.username, user.Username)
			// bcrypt hash, never the plaintext
			assert.NotEqual(t, tt.password, user.PasswordHash)
			assert.NotEmpty(t, user.PasswordHash)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := common.HashPassword("Passw0rd")
	require.NoError(t, err)
	stored := &dbmysql.User{UserID: 1, Username: "alice", Email: "alice@x.com", PasswordHash: hash}

	t.Run("success by username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().GetUserByIdentifier(ctx, "alice").Return(stored, nil)
		svc := newTestService(repo)

		user, token, err := svc.Login(ctx, "alice", "Passw0rd")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.UserID)
		assert.NotEmpty(t, token)
	})

	t.Run("success by email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().GetUserByIdentifier(ctx, "alice@x.com").Return(stored, nil)
		svc := newTestService(repo)

		_, token, err := svc.Login(ctx, "alice@x.com", "Passw0rd")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password and unknown identifier are indistinguishable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().GetUserByIdentifier(ctx, "alice").Return(stored, nil)
		repo.EXPECT().GetUserByIdentifier(ctx, "nobody").Return(nil, gorm.ErrRecordNotFound)
		svc := newTestService(repo)

		_, _, errWrongPass := svc.Login(ctx, "alice", "wrong")
		_, _, errUnknown := svc.Login(ctx, "nobody", "wrong")

		require.Error(t, errWrongPass)
		require.Error(t, errUnknown)
		assert.True(t, errors.Is(errWrongPass, apperror.ErrInvalidCredentials))
		assert.True(t, errors.Is(errUnknown, apperror.ErrInvalidCredentials))
		assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := newTestService(NewMockUserRepository(ctrl))

		_, _, err := svc.Login(ctx, "", "")
		assert.True(t, errors.Is(err, apperror.ErrValidation))
	})

	t.Run("fresh token per login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().GetUserByIdentifier(ctx, "alice").Return(stored, nil).Times(2)
		svc := newTestService(repo)

		_, t1, err := svc.Login(ctx, "alice", "Passw0rd")
		require.NoError(t, err)
		time.Sleep(1100 * time.Millisecond)
		_, t2, err := svc.Login(ctx, "alice", "Passw0rd")
		require.NoError(t, err)
		assert.NotEqual(t, t1, t2)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().GetUserByID(ctx, uint64(1)).Return(&dbmysql.User{UserID: 1, Username: "alice"}, nil)
		svc := newTestService(repo)

		user, err := svc.GetProfile(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("subject no longer resolves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().GetUserByID(ctx, uint64(99)).Return(nil, gorm.ErrRecordNotFound)
		svc := newTestService(repo)

		_, err := svc.GetProfile(ctx, 99)
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})
}
