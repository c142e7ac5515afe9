package view

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"team-member-service/internal/model"
)

// MemberSource — источник участников команды.
type MemberSource interface {
	TeamMembers(ctx context.Context, teamID string) ([]model.User, error)
}

// DefaultFetchTimeout ограничивает один вызов источника.
const DefaultFetchTimeout = 10 * time.Second

// Fetcher запускает асинхронные запросы участников. Одновременные запросы
// одной команды объединяются в один вызов источника.
type Fetcher struct {
	source  MemberSource
	group   singleflight.Group
	timeout time.Duration
	log     *slog.Logger
}

func NewFetcher(source MemberSource, log *slog.Logger) *Fetcher {
	if log == nil {
		log = slog.Default()
	}
	return &Fetcher{source: source, timeout: DefaultFetchTimeout, log: log}
}

// Query начинает загрузку участников и сразу возвращает запрос в состоянии pending.
// Отмена ctx прекращает ожидание этого запроса, и он завершается со статусом failed.
// Общий вызов источника от отмены вызывающего не зависит: к нему могли
// присоединиться другие запросы.
func (f *Fetcher) Query(ctx context.Context, teamID string) *MemberQuery {
	q := newMemberQuery(teamID)
	go f.run(ctx, q)
	return q
}

func (f *Fetcher) run(ctx context.Context, q *MemberQuery) {
	ch := f.group.DoChan(q.teamID, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
		defer cancel()
		return f.source.TeamMembers(fetchCtx, q.teamID)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			f.log.Warn("member fetch failed", slog.String("team_id", q.teamID), slog.Any("err", res.Err))
			q.transition(failed(res.Err))
			return
		}
		members, _ := res.Val.([]model.User)
		q.transition(ready(members))
	case <-ctx.Done():
		q.transition(failed(ctx.Err()))
	}
}

// MemberQuery хранит текущий снимок загрузки участников одной команды.
type MemberQuery struct {
	teamID string

	mu      sync.Mutex
	snap    Snapshot
	changed chan struct{}
	done    chan struct{}
}

func newMemberQuery(teamID string) *MemberQuery {
	return &MemberQuery{
		teamID:  teamID,
		snap:    pending(),
		changed: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Snapshot возвращает текущее значение запроса без ожидания.
func (q *MemberQuery) Snapshot() Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snap
}

// Changed возвращает канал, который закроется при следующей смене состояния.
func (q *MemberQuery) Changed() <-chan struct{} {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.changed
}

// Done закрывается, когда запрос завершён.
func (q *MemberQuery) Done() <-chan struct{} {
	return q.done
}

// Wait ждёт завершения запроса или отмены ctx и возвращает снимок на этот момент.
func (q *MemberQuery) Wait(ctx context.Context) Snapshot {
	select {
	case <-q.done:
	case <-ctx.Done():
	}
	return q.Snapshot()
}

func (q *MemberQuery) transition(s Snapshot) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.snap.Settled() {
		return
	}
	q.snap = s
	close(q.changed)
	q.changed = make(chan struct{})
	if s.Settled() {
		close(q.done)
	}
}
