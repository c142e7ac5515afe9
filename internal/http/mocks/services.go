// Package mocks содержит testify-моки сервисов для тестов HTTP-слоя.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"team-member-service/internal/model"
)

type TeamService struct {
	mock.Mock
}

func (m *TeamService) CreateTeam(ctx context.Context, ownerID, name string) (model.Team, error) {
	ret := m.Called(ctx, ownerID, name)
	return ret.Get(0).(model.Team), ret.Error(1)
}

func (m *TeamService) ListTeams(ctx context.Context, userID string) ([]model.Team, error) {
	ret := m.Called(ctx, userID)
	teams, _ := ret.Get(0).([]model.Team)
	return teams, ret.Error(1)
}

func (m *TeamService) GetTeam(ctx context.Context, userID, teamID string) (model.Team, error) {
	ret := m.Called(ctx, userID, teamID)
	return ret.Get(0).(model.Team), ret.Error(1)
}

func (m *TeamService) RenameTeam(ctx context.Context, userID, teamID, name string) (model.Team, error) {
	ret := m.Called(ctx, userID, teamID, name)
	return ret.Get(0).(model.Team), ret.Error(1)
}

func (m *TeamService) DeleteTeam(ctx context.Context, userID, teamID string) error {
	return m.Called(ctx, userID, teamID).Error(0)
}

func (m *TeamService) Members(ctx context.Context, userID, teamID string) ([]model.User, error) {
	ret := m.Called(ctx, userID, teamID)
	members, _ := ret.Get(0).([]model.User)
	return members, ret.Error(1)
}

func (m *TeamService) RequireMember(ctx context.Context, teamID, userID string) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

func (m *TeamService) TeamMembers(ctx context.Context, teamID string) ([]model.User, error) {
	ret := m.Called(ctx, teamID)
	members, _ := ret.Get(0).([]model.User)
	return members, ret.Error(1)
}

type InviteService struct {
	mock.Mock
}

func (m *InviteService) ListInvites(ctx context.Context, userID, teamID string) ([]model.TeamInvite, error) {
	ret := m.Called(ctx, userID, teamID)
	invites, _ := ret.Get(0).([]model.TeamInvite)
	return invites, ret.Error(1)
}

func (m *InviteService) CreateInvite(ctx context.Context, userID, teamID string) (model.TeamInvite, error) {
	ret := m.Called(ctx, userID, teamID)
	return ret.Get(0).(model.TeamInvite), ret.Error(1)
}

func (m *InviteService) DeleteInvite(ctx context.Context, userID, teamID, inviteID string) error {
	return m.Called(ctx, userID, teamID, inviteID).Error(0)
}

func (m *InviteService) AcceptInvite(ctx context.Context, userID, inviteID string) (model.Team, error) {
	ret := m.Called(ctx, userID, inviteID)
	return ret.Get(0).(model.Team), ret.Error(1)
}

type UserService struct {
	mock.Mock
}

func (m *UserService) Register(ctx context.Context, username, password string) (model.Session, error) {
	ret := m.Called(ctx, username, password)
	return ret.Get(0).(model.Session), ret.Error(1)
}

func (m *UserService) Login(ctx context.Context, username, password string) (model.Session, error) {
	ret := m.Called(ctx, username, password)
	return ret.Get(0).(model.Session), ret.Error(1)
}

func (m *UserService) Authenticate(ctx context.Context, token string) (string, error) {
	ret := m.Called(ctx, token)
	return ret.String(0), ret.Error(1)
}

func (m *UserService) GetUser(ctx context.Context, userID string) (model.User, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(model.User), ret.Error(1)
}
