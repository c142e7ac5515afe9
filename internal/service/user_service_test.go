package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"team-member-service/internal/auth"
	"team-member-service/internal/model"
	"team-member-service/internal/repository"
	"team-member-service/internal/service"
	"team-member-service/internal/service/mocks"
)

func TestUserService_Register(t *testing.T) {
	expires := time.Now().Add(time.Hour)

	tests := []struct {
		name       string
		username   string
		password   string
		setupMocks func(ur *mocks.UserRepository, ti *mocks.TokenIssuer)
		wantStatus int
	}{
		{
			name:     "Success",
			username: "alice",
			password: "correct-horse",
			setupMocks: func(ur *mocks.UserRepository, ti *mocks.TokenIssuer) {
				ur.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
					return u.Username == "alice" && auth.ComparePassword(u.PasswordHash, "correct-horse") == nil
				})).Return(model.User{UserID: "user_1", Username: "alice"}, nil)
				ti.On("Issue", "user_1").Return("tok", expires, nil)
			},
		},
		{
			name:       "Fail: Bad username",
			username:   "a",
			password:   "correct-horse",
			setupMocks: func(ur *mocks.UserRepository, ti *mocks.TokenIssuer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Fail: Short password",
			username:   "alice",
			password:   "short",
			setupMocks: func(ur *mocks.UserRepository, ti *mocks.TokenIssuer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Fail: Password over 72 bytes",
			username:   "alice",
			password:   strings.Repeat("ж", 40),
			setupMocks: func(ur *mocks.UserRepository, ti *mocks.TokenIssuer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:     "Success: Multibyte password within 72 bytes",
			username: "alice",
			password: strings.Repeat("ж", 36),
			setupMocks: func(ur *mocks.UserRepository, ti *mocks.TokenIssuer) {
				ur.On("Create", mock.Anything, mock.Anything).Return(model.User{UserID: "user_1", Username: "alice"}, nil)
				ti.On("Issue", "user_1").Return("tok", expires, nil)
			},
		},
		{
			name:     "Fail: Username taken",
			username: "alice",
			password: "correct-horse",
			setupMocks: func(ur *mocks.UserRepository, ti *mocks.TokenIssuer) {
				ur.On("Create", mock.Anything, mock.Anything).Return(model.User{}, repository.ErrUserExists)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UserRepository)
			ti := new(mocks.TokenIssuer)
			tt.setupMocks(ur, ti)

			svc := service.NewUserService(ur, ti)
			sess, err := svc.Register(context.Background(), tt.username, tt.password)

			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, "tok", sess.Token)
				assert.Equal(t, "user_1", sess.User.UserID)
			}
			ur.AssertExpectations(t)
			ti.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	alice := model.User{UserID: "u1", Username: "alice", PasswordHash: hash}

	t.Run("Success", func(t *testing.T) {
		ur := new(mocks.UserRepository)
		ti := new(mocks.TokenIssuer)
		ur.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
		ti.On("Issue", "u1").Return("tok", time.Now(), nil)

		sess, err := service.NewUserService(ur, ti).Login(context.Background(), "alice", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "tok", sess.Token)
	})

	t.Run("Fail: Wrong password", func(t *testing.T) {
		ur := new(mocks.UserRepository)
		ur.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)

		_, err := service.NewUserService(ur, new(mocks.TokenIssuer)).Login(context.Background(), "alice", "nope-nope")
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("Fail: Unknown user", func(t *testing.T) {
		ur := new(mocks.UserRepository)
		ur.On("GetByUsername", mock.Anything, "bob").Return(model.User{}, repository.ErrUserNotFound)

		_, err := service.NewUserService(ur, new(mocks.TokenIssuer)).Login(context.Background(), "bob", "whatever1")
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ti := new(mocks.TokenIssuer)
	ti.On("Parse", "good").Return("u1", nil)
	ti.On("Parse", "bad").Return("", errors.New("expired"))
	svc := service.NewUserService(new(mocks.UserRepository), ti)

	userID, err := svc.Authenticate(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	_, err = svc.Authenticate(context.Background(), "bad")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err = svc.Authenticate(context.Background(), "")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}
