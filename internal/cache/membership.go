// Package cache кэширует результаты проверки членства в команде.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Membership помнит только подтверждённое членство; отрицательные ответы не кэшируются.
type Membership interface {
	// Has истинно, если членство подтверждено и ещё не истекло. false означает «неизвестно».
	Has(ctx context.Context, teamID, userID string) bool
	Remember(ctx context.Context, teamID, userID string)
	InvalidateTeam(ctx context.Context, teamID string)
}

// RedisMembership — кэш членства в Redis с фиксированным TTL.
// Ошибки Redis не прерывают запрос: они логируются, а вызывающий идёт в БД.
type RedisMembership struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

func NewRedisMembership(ctx context.Context, addr, password string, db int, ttl time.Duration, log *slog.Logger) (*RedisMembership, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisMembership{client: client, ttl: ttl, log: log}, nil
}

func (c *RedisMembership) Has(ctx context.Context, teamID, userID string) bool {
	val, err := c.client.Get(ctx, MemberKey(teamID, userID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logError("get", err)
		}
		return false
	}
	return val == "1"
}

func (c *RedisMembership) Remember(ctx context.Context, teamID, userID string) {
	if err := c.client.Set(ctx, MemberKey(teamID, userID), "1", c.ttl).Err(); err != nil {
		c.logError("set", err)
	}
}

func (c *RedisMembership) InvalidateTeam(ctx context.Context, teamID string) {
	iter := c.client.Scan(ctx, 0, teamPattern(teamID), 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logError("scan", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logError("del", err)
	}
}

func (c *RedisMembership) Close() error {
	return c.client.Close()
}

func (c *RedisMembership) logError(op string, err error) {
	if c.log == nil {
		return
	}
	c.log.Error("membership cache error", slog.String("op", op), slog.Any("err", err))
}

// MemberKey — ключ записи членства.
func MemberKey(teamID, userID string) string {
	return "team:" + teamID + ":member:" + userID
}

func teamPattern(teamID string) string {
	return "team:" + teamID + ":member:*"
}

// Nop используется, когда Redis не настроен.
type Nop struct{}

func (Nop) Has(context.Context, string, string) bool { return false }
func (Nop) Remember(context.Context, string, string) {}
func (Nop) InvalidateTeam(context.Context, string) {}
