package model

import "time"

// User описывает пользователя. В списке участников команды это запись участника,
// user_id которой используется как ключ при отрисовке.
type User struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
