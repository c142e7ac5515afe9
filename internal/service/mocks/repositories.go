// Package mocks содержит testify-моки зависимостей сервисного слоя.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"team-member-service/internal/model"
)

type TeamRepository struct {
	mock.Mock
}

func (m *TeamRepository) Create(ctx context.Context, team model.Team) (model.Team, error) {
	ret := m.Called(ctx, team)
	return ret.Get(0).(model.Team), ret.Error(1)
}

func (m *TeamRepository) GetByID(ctx context.Context, teamID string) (model.Team, error) {
	ret := m.Called(ctx, teamID)
	return ret.Get(0).(model.Team), ret.Error(1)
}

func (m *TeamRepository) ListByUser(ctx context.Context, userID string) ([]model.Team, error) {
	ret := m.Called(ctx, userID)
	teams, _ := ret.Get(0).([]model.Team)
	return teams, ret.Error(1)
}

func (m *TeamRepository) Rename(ctx context.Context, teamID, name string) (model.Team, error) {
	ret := m.Called(ctx, teamID, name)
	return ret.Get(0).(model.Team), ret.Error(1)
}

func (m *TeamRepository) Delete(ctx context.Context, teamID string) error {
	return m.Called(ctx, teamID).Error(0)
}

func (m *TeamRepository) IsOwner(ctx context.Context, teamID, userID string) (bool, error) {
	ret := m.Called(ctx, teamID, userID)
	return ret.Bool(0), ret.Error(1)
}

func (m *TeamRepository) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	ret := m.Called(ctx, teamID, userID)
	return ret.Bool(0), ret.Error(1)
}

func (m *TeamRepository) Members(ctx context.Context, teamID string) ([]model.User, error) {
	ret := m.Called(ctx, teamID)
	members, _ := ret.Get(0).([]model.User)
	return members, ret.Error(1)
}

func (m *TeamRepository) AddMember(ctx context.Context, teamID, userID string) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	ret := m.Called(ctx, user)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserRepository) GetByUserID(ctx context.Context, userID string) (model.User, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	ret := m.Called(ctx, username)
	return ret.Get(0).(model.User), ret.Error(1)
}

type InviteRepository struct {
	mock.Mock
}

func (m *InviteRepository) Create(ctx context.Context, invite model.TeamInvite) (model.TeamInvite, error) {
	ret := m.Called(ctx, invite)
	return ret.Get(0).(model.TeamInvite), ret.Error(1)
}

func (m *InviteRepository) GetByID(ctx context.Context, inviteID string) (model.TeamInvite, error) {
	ret := m.Called(ctx, inviteID)
	return ret.Get(0).(model.TeamInvite), ret.Error(1)
}

func (m *InviteRepository) ListByTeam(ctx context.Context, teamID string) ([]model.TeamInvite, error) {
	ret := m.Called(ctx, teamID)
	invites, _ := ret.Get(0).([]model.TeamInvite)
	return invites, ret.Error(1)
}

func (m *InviteRepository) Delete(ctx context.Context, teamID, inviteID string) error {
	return m.Called(ctx, teamID, inviteID).Error(0)
}
