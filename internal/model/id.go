package model

import (
	"strings"

	"github.com/google/uuid"
)

// IDKind задаёт префикс генерируемого идентификатора.
type IDKind string

const (
	IDTeam   IDKind = "team"
	IDUser   IDKind = "user"
	IDInvite IDKind = "invite"
)

// NewID генерирует идентификатор вида <kind>_<uuid без дефисов>.
func NewID(kind IDKind) string {
	return string(kind) + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
