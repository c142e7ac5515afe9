package repository

import "errors"

var (
	// ErrUserNotFound возвращается, если пользователь не найден в БД.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists возвращается при конфликте username.
	ErrUserExists = errors.New("user already exists")

	// ErrTeamNotFound возвращается, если команда не найдена.
	ErrTeamNotFound = errors.New("team not found")

	// ErrAlreadyMember возвращается при повторном добавлении участника в команду.
	ErrAlreadyMember = errors.New("user is already a team member")

	// ErrInviteNotFound возвращается, если приглашение не найдено.
	ErrInviteNotFound = errors.New("invite not found")
)

const uniqueViolation = "23505"
