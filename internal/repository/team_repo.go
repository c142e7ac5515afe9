package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"team-member-service/internal/model"
)

// TeamRepo реализует репозиторий команд и членства на базе PostgreSQL.
type TeamRepo struct {
	db *Postgres
}

func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db}
}

func (r *TeamRepo) Create(ctx context.Context, t model.Team) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
INSERT INTO teams (team_id, owner_id, name)
VALUES ($1, $2, $3)
RETURNING team_id, owner_id, name, created_at
`, t.TeamID, t.OwnerID, t.Name)

	var created model.Team
	if err := row.Scan(&created.TeamID, &created.OwnerID, &created.Name, &created.CreatedAt); err != nil {
		return model.Team{}, fmt.Errorf("insert team: %w", err)
	}
	return created, nil
}

func (r *TeamRepo) GetByID(ctx context.Context, teamID string) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
SELECT team_id, owner_id, name, created_at
FROM teams
WHERE team_id = $1
`, teamID)

	var t model.Team
	if err := row.Scan(&t.TeamID, &t.OwnerID, &t.Name, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, fmt.Errorf("get team: %w", err)
	}
	return t, nil
}

// ListByUser возвращает команды, которыми пользователь владеет или в которых состоит.
func (r *TeamRepo) ListByUser(ctx context.Context, userID string) ([]model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT team_id, owner_id, name, created_at
FROM teams
WHERE owner_id = $1
   OR team_id IN (SELECT team_id FROM user_teams WHERE user_id = $1)
ORDER BY created_at, team_id
`, userID)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	teams := make([]model.Team, 0)
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.TeamID, &t.OwnerID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return teams, nil
}

func (r *TeamRepo) Rename(ctx context.Context, teamID, name string) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
UPDATE teams
SET name = $2
WHERE team_id = $1
RETURNING team_id, owner_id, name, created_at
`, teamID, name)

	var t model.Team
	if err := row.Scan(&t.TeamID, &t.OwnerID, &t.Name, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, fmt.Errorf("rename team: %w", err)
	}
	return t, nil
}

func (r *TeamRepo) Delete(ctx context.Context, teamID string) error {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `DELETE FROM teams WHERE team_id = $1`, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepo) IsOwner(ctx context.Context, teamID, userID string) (bool, error) {
	q := r.db.GetQueryExecutor(ctx)
	var ok bool
	err := q.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM teams WHERE team_id = $1 AND owner_id = $2)
`, teamID, userID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check owner: %w", err)
	}
	return ok, nil
}

// IsMember истинно и для владельца команды.
func (r *TeamRepo) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	q := r.db.GetQueryExecutor(ctx)
	var ok bool
	err := q.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM user_teams WHERE team_id = $1 AND user_id = $2)
    OR EXISTS (SELECT 1 FROM teams WHERE team_id = $1 AND owner_id = $2)
`, teamID, userID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check member: %w", err)
	}
	return ok, nil
}

// Members возвращает участников команды: сначала владелец, затем остальные
// в порядке вступления. Пустой результат означает, что команды нет.
func (r *TeamRepo) Members(ctx context.Context, teamID string) ([]model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT u.user_id, u.username, u.created_at
FROM (
    SELECT t.owner_id AS user_id, t.created_at AS joined_at, 0 AS rank
    FROM teams t
    WHERE t.team_id = $1
    UNION ALL
    SELECT ut.user_id, ut.joined_at, 1
    FROM user_teams ut
    JOIN teams t ON t.team_id = ut.team_id
    WHERE ut.team_id = $1 AND ut.user_id <> t.owner_id
) m
JOIN users u ON u.user_id = m.user_id
ORDER BY m.rank, m.joined_at, u.user_id
`, teamID)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	members := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.Username, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	if len(members) == 0 {
		return nil, ErrTeamNotFound
	}
	return members, nil
}

func (r *TeamRepo) AddMember(ctx context.Context, teamID, userID string) error {
	q := r.db.GetQueryExecutor(ctx)
	_, err := q.Exec(ctx, `INSERT INTO user_teams (team_id, user_id) VALUES ($1, $2)`, teamID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrAlreadyMember
		}
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}
