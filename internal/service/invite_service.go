package service

import (
	"context"
	"errors"
	"log/slog"

	"team-member-service/internal/model"
	"team-member-service/internal/repository"
)

// TeamAccess — проверки доступа к команде, которые нужны сервису приглашений.
type TeamAccess interface {
	RequireMember(ctx context.Context, teamID, userID string) error
	RequireOwner(ctx context.Context, teamID, userID string) error
	IsMember(ctx context.Context, teamID, userID string) (bool, error)
	RememberMember(ctx context.Context, teamID, userID string)
}

// InviteService управляет приглашениями в команду.
type InviteService struct {
	invites   InviteRepository
	teams     TeamRepository
	access    TeamAccess
	txManager TransactionManager
	log       *slog.Logger
}

func NewInviteService(invites InviteRepository, teams TeamRepository, access TeamAccess, txManager TransactionManager, log *slog.Logger) *InviteService {
	if log == nil {
		log = slog.Default()
	}
	return &InviteService{
		invites:   invites,
		teams:     teams,
		access:    access,
		txManager: txManager,
		log:       log,
	}
}

func (s *InviteService) ListInvites(ctx context.Context, userID, teamID string) ([]model.TeamInvite, error) {
	if err := s.access.RequireMember(ctx, teamID, userID); err != nil {
		return nil, err
	}
	invites, err := s.invites.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, ErrInternal("failed to list invites", err)
	}
	return invites, nil
}

// CreateInvite создаёт анонимное приглашение: принять его может любой пользователь со ссылкой.
func (s *InviteService) CreateInvite(ctx context.Context, userID, teamID string) (model.TeamInvite, error) {
	if err := s.access.RequireMember(ctx, teamID, userID); err != nil {
		return model.TeamInvite{}, err
	}
	if err := s.access.RequireOwner(ctx, teamID, userID); err != nil {
		return model.TeamInvite{}, err
	}

	invite, err := s.invites.Create(ctx, model.TeamInvite{
		InviteID: model.NewID(model.IDInvite),
		TeamID:   teamID,
		SenderID: userID,
	})
	if err != nil {
		return model.TeamInvite{}, ErrInternal("failed to create invite", err)
	}
	s.log.Info("invite created", slog.String("team_id", teamID), slog.String("invite_id", invite.InviteID))
	return invite, nil
}

func (s *InviteService) DeleteInvite(ctx context.Context, userID, teamID, inviteID string) error {
	if err := s.access.RequireMember(ctx, teamID, userID); err != nil {
		return err
	}
	if err := s.access.RequireOwner(ctx, teamID, userID); err != nil {
		return err
	}
	if err := s.invites.Delete(ctx, teamID, inviteID); err != nil {
		if errors.Is(err, repository.ErrInviteNotFound) {
			return ErrNotFound("invite not found")
		}
		return ErrInternal("failed to delete invite", err)
	}
	return nil
}

// AcceptInvite добавляет пользователя в команду и удаляет приглашение в одной транзакции.
func (s *InviteService) AcceptInvite(ctx context.Context, userID, inviteID string) (model.Team, error) {
	invite, err := s.invites.GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, repository.ErrInviteNotFound) {
			return model.Team{}, ErrNotFound("invite not found")
		}
		return model.Team{}, ErrInternal("failed to get invite", err)
	}
	if invite.UserID != nil && *invite.UserID != userID {
		return model.Team{}, ErrForbidden("invite is addressed to another user")
	}

	isMember, err := s.access.IsMember(ctx, invite.TeamID, userID)
	if err != nil {
		return model.Team{}, err
	}
	if isMember {
		return model.Team{}, ErrDomain("ALREADY_MEMBER", "user is already a team member")
	}

	var team model.Team
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.teams.AddMember(ctx, invite.TeamID, userID); err != nil {
			return err
		}
		if err := s.invites.Delete(ctx, invite.TeamID, invite.InviteID); err != nil {
			return err
		}
		var err error
		team, err = s.teams.GetByID(ctx, invite.TeamID)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyMember):
			return model.Team{}, ErrDomain("ALREADY_MEMBER", "user is already a team member")
		case errors.Is(err, repository.ErrInviteNotFound):
			return model.Team{}, ErrNotFound("invite not found")
		case errors.Is(err, repository.ErrTeamNotFound):
			return model.Team{}, ErrNotFound("team not found")
		}
		return model.Team{}, ErrInternal("failed to accept invite", err)
	}

	s.access.RememberMember(ctx, invite.TeamID, userID)
	s.log.Info("invite accepted",
		slog.String("team_id", invite.TeamID),
		slog.String("invite_id", invite.InviteID),
		slog.String("user_id", userID),
	)
	return team, nil
}
