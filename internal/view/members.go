// Package view отрисовывает список участников команды на сервере.
//
// MemberList — чистая функция от (team_id, снимок запроса участников):
// заголовок и кнопка приглашения выводятся всегда, список — только когда
// коллекция участников получена. Перерисовку при смене снимка выполняет
// внешний цикл (HTTP-обработчик страницы или live-поток).
package view

import (
	"slices"

	"team-member-service/internal/model"
)

// Members — необязательная коллекция участников. Нулевое значение означает,
// что данные ещё не получены.
type Members struct {
	Items   []model.User
	Present bool
}

// Absent возвращает отсутствующую коллекцию.
func Absent() Members {
	return Members{}
}

// Loaded оборачивает полученных участников. Пустой срез — это полученная пустая коллекция.
func Loaded(items []model.User) Members {
	if items == nil {
		items = []model.User{}
	}
	return Members{Items: items, Present: true}
}

// Status — состояние запроса участников.
type Status string

const (
	StatusPending Status = "pending"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Snapshot — текущее значение запроса. Members присутствует только в StatusReady.
type Snapshot struct {
	Status  Status
	Members Members
	Err     error
}

// Settled истинно, когда запрос завершился успехом или ошибкой.
func (s Snapshot) Settled() bool {
	return s.Status == StatusReady || s.Status == StatusFailed
}

func pending() Snapshot {
	return Snapshot{Status: StatusPending, Members: Absent()}
}

func ready(items []model.User) Snapshot {
	return Snapshot{Status: StatusReady, Members: Loaded(slices.Clone(items))}
}

func failed(err error) Snapshot {
	return Snapshot{Status: StatusFailed, Members: Absent(), Err: err}
}
