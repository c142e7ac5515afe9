package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"team-member-service/internal/model"
)

type InviteRepo struct {
	db *Postgres
}

func NewInviteRepo(db *Postgres) *InviteRepo {
	return &InviteRepo{db: db}
}

func (r *InviteRepo) Create(ctx context.Context, inv model.TeamInvite) (model.TeamInvite, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
INSERT INTO user_team_invites (invite_id, team_id, user_id, sender_id)
VALUES ($1, $2, $3, $4)
RETURNING invite_id, team_id, user_id, sender_id, created_at
`, inv.InviteID, inv.TeamID, inv.UserID, inv.SenderID)

	created, err := scanInvite(row)
	if err != nil {
		return model.TeamInvite{}, fmt.Errorf("insert invite: %w", err)
	}
	return created, nil
}

func (r *InviteRepo) GetByID(ctx context.Context, inviteID string) (model.TeamInvite, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
SELECT invite_id, team_id, user_id, sender_id, created_at
FROM user_team_invites
WHERE invite_id = $1
`, inviteID)

	inv, err := scanInvite(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TeamInvite{}, ErrInviteNotFound
		}
		return model.TeamInvite{}, fmt.Errorf("get invite: %w", err)
	}
	return inv, nil
}

func (r *InviteRepo) ListByTeam(ctx context.Context, teamID string) ([]model.TeamInvite, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT invite_id, team_id, user_id, sender_id, created_at
FROM user_team_invites
WHERE team_id = $1
ORDER BY created_at, invite_id
`, teamID)
	if err != nil {
		return nil, fmt.Errorf("query invites: %w", err)
	}
	defer rows.Close()

	invites := make([]model.TeamInvite, 0)
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invite: %w", err)
		}
		invites = append(invites, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return invites, nil
}

// Delete удаляет приглашение только внутри указанной команды.
func (r *InviteRepo) Delete(ctx context.Context, teamID, inviteID string) error {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `DELETE FROM user_team_invites WHERE invite_id = $1 AND team_id = $2`, inviteID, teamID)
	if err != nil {
		return fmt.Errorf("delete invite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInviteNotFound
	}
	return nil
}

func scanInvite(row pgx.Row) (model.TeamInvite, error) {
	var inv model.TeamInvite
	err := row.Scan(&inv.InviteID, &inv.TeamID, &inv.UserID, &inv.SenderID, &inv.CreatedAt)
	return inv, err
}
