// Package model содержит доменные структуры для команд, участников и приглашений.
package model

import "time"

// Team описывает команду и её владельца.
type Team struct {
	TeamID    string    `json:"team_id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
