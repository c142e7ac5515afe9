package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"team-member-service/internal/auth"
	"team-member-service/internal/model"
	"team-member-service/internal/repository"
)

var reUsername = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

// UserService отвечает за регистрацию, вход и аутентификацию пользователей.
type UserService struct {
	repo   UserRepository
	tokens TokenIssuer
}

// NewUserService создаёт новый сервис для операций над пользователями.
func NewUserService(repo UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Register создаёт пользователя и сразу выдаёт ему сессию.
func (s *UserService) Register(ctx context.Context, username, password string) (model.Session, error) {
	if !reUsername.MatchString(username) {
		return model.Session{}, ErrBadRequest("username must be 3-32 characters of letters, digits, '_', '.', '-'")
	}
	if !auth.PasswordLengthOK(password) {
		return model.Session{}, ErrBadRequest(fmt.Sprintf("password must be %d-%d bytes long", auth.MinPasswordBytes, auth.MaxPasswordBytes))
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return model.Session{}, ErrInternal("failed to hash password", err)
	}

	user, err := s.repo.Create(ctx, model.User{
		UserID:       model.NewID(model.IDUser),
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return model.Session{}, ErrDomain("USER_EXISTS", "username is taken")
		}
		return model.Session{}, ErrInternal("failed to create user", err)
	}

	return s.issue(user)
}

// Login проверяет пароль и выдаёт сессию. Неизвестный пользователь и неверный пароль неразличимы.
func (s *UserService) Login(ctx context.Context, username, password string) (model.Session, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.Session{}, ErrUnauthorized("invalid credentials")
		}
		return model.Session{}, ErrInternal("failed to get user", err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return model.Session{}, ErrUnauthorized("invalid credentials")
	}
	return s.issue(user)
}

// Authenticate возвращает user_id владельца токена.
func (s *UserService) Authenticate(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized("authentication required")
	}
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return "", &AppError{
			Code:    "UNAUTHORIZED",
			Message: "invalid or expired token",
			Status:  401,
			Err:     err,
		}
	}
	return userID, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (model.User, error) {
	user, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrNotFound("user not found")
		}
		return model.User{}, ErrInternal("failed to get user", err)
	}
	return user, nil
}

func (s *UserService) issue(user model.User) (model.Session, error) {
	token, expires, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return model.Session{}, ErrInternal("failed to issue token", err)
	}
	return model.Session{Token: token, ExpiresAt: expires, User: user}, nil
}
