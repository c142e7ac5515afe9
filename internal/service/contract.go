// Package service содержит бизнес-логику команд, участников, приглашений и пользователей.
package service

import (
	"context"
	"time"

	"team-member-service/internal/model"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TeamRepository описывает контракт репозитория команд для бизнес-слоя.
type TeamRepository interface {
	Create(ctx context.Context, team model.Team) (model.Team, error)
	GetByID(ctx context.Context, teamID string) (model.Team, error)
	ListByUser(ctx context.Context, userID string) ([]model.Team, error)
	Rename(ctx context.Context, teamID, name string) (model.Team, error)
	Delete(ctx context.Context, teamID string) error
	IsOwner(ctx context.Context, teamID, userID string) (bool, error)
	IsMember(ctx context.Context, teamID, userID string) (bool, error)
	Members(ctx context.Context, teamID string) ([]model.User, error)
	AddMember(ctx context.Context, teamID, userID string) error
}

// UserRepository описывает контракт репозитория пользователей для бизнес-слоя.
type UserRepository interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	GetByUserID(ctx context.Context, userID string) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

type InviteRepository interface {
	Create(ctx context.Context, invite model.TeamInvite) (model.TeamInvite, error)
	GetByID(ctx context.Context, inviteID string) (model.TeamInvite, error)
	ListByTeam(ctx context.Context, teamID string) ([]model.TeamInvite, error)
	Delete(ctx context.Context, teamID, inviteID string) error
}

// TokenIssuer выпускает и проверяет сессионные токены.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
	Parse(token string) (string, error)
}
