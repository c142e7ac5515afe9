package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// TransactionManager: в Return можно передать функцию с сигнатурой RunInTransaction,
// тогда она будет вызвана вместо возврата готовой ошибки.
type TransactionManager struct {
	mock.Mock
}

func (m *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ret := m.Called(ctx, fn)
	if f, ok := ret.Get(0).(func(context.Context, func(context.Context) error) error); ok {
		return f(ctx, fn)
	}
	return ret.Error(0)
}

type TokenIssuer struct {
	mock.Mock
}

func (m *TokenIssuer) Issue(userID string) (string, time.Time, error) {
	ret := m.Called(userID)
	return ret.String(0), ret.Get(1).(time.Time), ret.Error(2)
}

func (m *TokenIssuer) Parse(token string) (string, error) {
	ret := m.Called(token)
	return ret.String(0), ret.Error(1)
}

type TeamAccess struct {
	mock.Mock
}

func (m *TeamAccess) RequireMember(ctx context.Context, teamID, userID string) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

func (m *TeamAccess) RequireOwner(ctx context.Context, teamID, userID string) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

func (m *TeamAccess) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	ret := m.Called(ctx, teamID, userID)
	return ret.Bool(0), ret.Error(1)
}

func (m *TeamAccess) RememberMember(ctx context.Context, teamID, userID string) {
	m.Called(ctx, teamID, userID)
}

// Membership — мок кэша членства.
type Membership struct {
	mock.Mock
}

func (m *Membership) Has(ctx context.Context, teamID, userID string) bool {
	return m.Called(ctx, teamID, userID).Bool(0)
}

func (m *Membership) Remember(ctx context.Context, teamID, userID string) {
	m.Called(ctx, teamID, userID)
}

func (m *Membership) InvalidateTeam(ctx context.Context, teamID string) {
	m.Called(ctx, teamID)
}
