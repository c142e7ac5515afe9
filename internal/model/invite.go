package model

import "time"

// TeamInvite описывает приглашение в команду.
// UserID пуст для анонимного приглашения, которое может принять любой пользователь.
type TeamInvite struct {
	InviteID  string    `json:"invite_id"`
	TeamID    string    `json:"team_id"`
	UserID    *string   `json:"user_id,omitempty"`
	SenderID  string    `json:"sender_id"`
	CreatedAt time.Time `json:"created_at"`
}
