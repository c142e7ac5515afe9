package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"team-member-service/internal/cache"
	"team-member-service/internal/model"
	"team-member-service/internal/repository"
)

const maxTeamNameLen = 255

// TeamService содержит бизнес-логику команд и проверки доступа к ним.
type TeamService struct {
	repo  TeamRepository
	cache cache.Membership
	log   *slog.Logger
}

// NewTeamService создаёт сервис команд. Если membership == nil, кэш отключён.
func NewTeamService(repo TeamRepository, membership cache.Membership, log *slog.Logger) *TeamService {
	if membership == nil {
		membership = cache.Nop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &TeamService{repo: repo, cache: membership, log: log}
}

// CreateTeam создаёт команду, владельцем которой становится ownerID.
func (s *TeamService) CreateTeam(ctx context.Context, ownerID, name string) (model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Team{}, ErrBadRequest("name is required")
	}
	if len(name) > maxTeamNameLen {
		return model.Team{}, ErrBadRequest("name is too long")
	}

	team, err := s.repo.Create(ctx, model.Team{
		TeamID:  model.NewID(model.IDTeam),
		OwnerID: ownerID,
		Name:    name,
	})
	if err != nil {
		return model.Team{}, ErrInternal("failed to create team", err)
	}
	s.log.Info("team created", slog.String("team_id", team.TeamID), slog.String("owner_id", ownerID))
	return team, nil
}

// ListTeams возвращает команды, доступные пользователю.
func (s *TeamService) ListTeams(ctx context.Context, userID string) ([]model.Team, error) {
	teams, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal("failed to list teams", err)
	}
	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, userID, teamID string) (model.Team, error) {
	if err := s.RequireMember(ctx, teamID, userID); err != nil {
		return model.Team{}, err
	}
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return model.Team{}, mapTeamErr(err, "failed to get team")
	}
	return team, nil
}

func (s *TeamService) RenameTeam(ctx context.Context, userID, teamID, name string) (model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Team{}, ErrBadRequest("name is required")
	}
	if len(name) > maxTeamNameLen {
		return model.Team{}, ErrBadRequest("name is too long")
	}
	if err := s.RequireOwner(ctx, teamID, userID); err != nil {
		return model.Team{}, err
	}
	team, err := s.repo.Rename(ctx, teamID, name)
	if err != nil {
		return model.Team{}, mapTeamErr(err, "failed to rename team")
	}
	return team, nil
}

// DeleteTeam удаляет команду вместе с членством и приглашениями. Только для владельца.
func (s *TeamService) DeleteTeam(ctx context.Context, userID, teamID string) error {
	if err := s.RequireOwner(ctx, teamID, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, teamID); err != nil {
		return mapTeamErr(err, "failed to delete team")
	}
	s.cache.InvalidateTeam(ctx, teamID)
	s.log.Info("team deleted", slog.String("team_id", teamID), slog.String("user_id", userID))
	return nil
}

// Members возвращает упорядоченный список участников для участника команды.
func (s *TeamService) Members(ctx context.Context, userID, teamID string) ([]model.User, error) {
	if err := s.RequireMember(ctx, teamID, userID); err != nil {
		return nil, err
	}
	return s.TeamMembers(ctx, teamID)
}

// TeamMembers читает участников без проверки доступа. Используется как источник
// данных для представления после того, как доступ уже проверен.
func (s *TeamService) TeamMembers(ctx context.Context, teamID string) ([]model.User, error) {
	members, err := s.repo.Members(ctx, teamID)
	if err != nil {
		return nil, mapTeamErr(err, "failed to list members")
	}
	return members, nil
}

// IsMember сначала смотрит в кэш, затем в БД. Кэшируется только положительный ответ.
func (s *TeamService) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	if s.cache.Has(ctx, teamID, userID) {
		return true, nil
	}
	ok, err := s.repo.IsMember(ctx, teamID, userID)
	if err != nil {
		return false, ErrInternal("failed to check membership", err)
	}
	if ok {
		s.cache.Remember(ctx, teamID, userID)
	}
	return ok, nil
}

func (s *TeamService) RequireMember(ctx context.Context, teamID, userID string) error {
	if teamID == "" {
		return ErrBadRequest("team_id is required")
	}
	ok, err := s.IsMember(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden("not a member of the team")
	}
	return nil
}

func (s *TeamService) RequireOwner(ctx context.Context, teamID, userID string) error {
	if teamID == "" {
		return ErrBadRequest("team_id is required")
	}
	ok, err := s.repo.IsOwner(ctx, teamID, userID)
	if err != nil {
		return ErrInternal("failed to check ownership", err)
	}
	if !ok {
		return ErrForbidden("only the team owner can do this")
	}
	return nil
}

// RememberMember записывает в кэш только что подтверждённое членство.
func (s *TeamService) RememberMember(ctx context.Context, teamID, userID string) {
	s.cache.Remember(ctx, teamID, userID)
}

func mapTeamErr(err error, msg string) error {
	if errors.Is(err, repository.ErrTeamNotFound) {
		return ErrNotFound("team not found")
	}
	return ErrInternal(msg, err)
}
