package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"team-member-service/internal/model"
	"team-member-service/internal/repository"
	"team-member-service/internal/service"
	"team-member-service/internal/service/mocks"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var appErr *service.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Status
}

func TestTeamService_CreateTeam(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		setupMocks func(tr *mocks.TeamRepository)
		wantStatus int
	}{
		{
			name:  "Success",
			input: "  core  ",
			setupMocks: func(tr *mocks.TeamRepository) {
				tr.On("Create", mock.Anything, mock.MatchedBy(func(team model.Team) bool {
					return strings.HasPrefix(team.TeamID, "team_") && team.Name == "core" && team.OwnerID == "u1"
				})).Return(model.Team{TeamID: "team_1", OwnerID: "u1", Name: "core"}, nil)
			},
		},
		{
			name:       "Fail: Empty name",
			input:      "   ",
			setupMocks: func(tr *mocks.TeamRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "Fail: Repo error",
			input: "core",
			setupMocks: func(tr *mocks.TeamRepository) {
				tr.On("Create", mock.Anything, mock.Anything).Return(model.Team{}, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := new(mocks.TeamRepository)
			tt.setupMocks(tr)

			svc := service.NewTeamService(tr, nil, nil)
			team, err := svc.CreateTeam(context.Background(), "u1", tt.input)

			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, "team_1", team.TeamID)
			}
			tr.AssertExpectations(t)
		})
	}
}

func TestTeamService_IsMember(t *testing.T) {
	t.Run("Cache hit", func(t *testing.T) {
		tr := new(mocks.TeamRepository)
		mc := new(mocks.Membership)
		mc.On("Has", mock.Anything, "t1", "u1").Return(true)

		svc := service.NewTeamService(tr, mc, nil)
		ok, err := svc.IsMember(context.Background(), "t1", "u1")

		require.NoError(t, err)
		assert.True(t, ok)
		tr.AssertNotCalled(t, "IsMember", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cache miss stores positive answer", func(t *testing.T) {
		tr := new(mocks.TeamRepository)
		mc := new(mocks.Membership)
		mc.On("Has", mock.Anything, "t1", "u2").Return(false)
		tr.On("IsMember", mock.Anything, "t1", "u2").Return(true, nil)
		mc.On("Remember", mock.Anything, "t1", "u2").Return()

		svc := service.NewTeamService(tr, mc, nil)
		ok, err := svc.IsMember(context.Background(), "t1", "u2")

		require.NoError(t, err)
		assert.True(t, ok)
		tr.AssertExpectations(t)
		mc.AssertExpectations(t)
	})

	t.Run("Negative answer is not cached", func(t *testing.T) {
		tr := new(mocks.TeamRepository)
		mc := new(mocks.Membership)
		mc.On("Has", mock.Anything, "t1", "u2").Return(false)
		tr.On("IsMember", mock.Anything, "t1", "u2").Return(false, nil).Once()
		tr.On("IsMember", mock.Anything, "t1", "u2").Return(true, nil).Once()
		mc.On("Remember", mock.Anything, "t1", "u2").Return()

		svc := service.NewTeamService(tr, mc, nil)

		ok, err := svc.IsMember(context.Background(), "t1", "u2")
		require.NoError(t, err)
		assert.False(t, ok)
		mc.AssertNotCalled(t, "Remember", mock.Anything, "t1", "u2")

		// участник вступил между проверками: отказ не залипает в кэше
		ok, err = svc.IsMember(context.Background(), "t1", "u2")
		require.NoError(t, err)
		assert.True(t, ok)
		tr.AssertExpectations(t)
		mc.AssertExpectations(t)
	})
}

func TestTeamService_Members(t *testing.T) {
	members := []model.User{{UserID: "u1", Username: "alice"}, {UserID: "u2", Username: "bob"}}

	tests := []struct {
		name       string
		setupMocks func(tr *mocks.TeamRepository)
		want       []model.User
		wantStatus int
	}{
		{
			name: "Success",
			setupMocks: func(tr *mocks.TeamRepository) {
				tr.On("IsMember", mock.Anything, "t1", "u1").Return(true, nil)
				tr.On("Members", mock.Anything, "t1").Return(members, nil)
			},
			want: members,
		},
		{
			name: "Fail: Not a member",
			setupMocks: func(tr *mocks.TeamRepository) {
				tr.On("IsMember", mock.Anything, "t1", "u1").Return(false, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "Fail: Team gone",
			setupMocks: func(tr *mocks.TeamRepository) {
				tr.On("IsMember", mock.Anything, "t1", "u1").Return(true, nil)
				tr.On("Members", mock.Anything, "t1").Return(nil, repository.ErrTeamNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := new(mocks.TeamRepository)
			tt.setupMocks(tr)

			svc := service.NewTeamService(tr, nil, nil)
			got, err := svc.Members(context.Background(), "u1", "t1")

			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			tr.AssertExpectations(t)
		})
	}
}

func TestTeamService_DeleteTeam(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		tr := new(mocks.TeamRepository)
		mc := new(mocks.Membership)
		tr.On("IsOwner", mock.Anything, "t1", "u1").Return(true, nil)
		tr.On("Delete", mock.Anything, "t1").Return(nil)
		mc.On("InvalidateTeam", mock.Anything, "t1").Return()

		svc := service.NewTeamService(tr, mc, nil)
		require.NoError(t, svc.DeleteTeam(context.Background(), "u1", "t1"))

		tr.AssertExpectations(t)
		mc.AssertExpectations(t)
	})

	t.Run("Fail: Not owner", func(t *testing.T) {
		tr := new(mocks.TeamRepository)
		tr.On("IsOwner", mock.Anything, "t1", "u2").Return(false, nil)

		svc := service.NewTeamService(tr, nil, nil)
		err := svc.DeleteTeam(context.Background(), "u2", "t1")

		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
		tr.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestTeamService_RenameTeam(t *testing.T) {
	tr := new(mocks.TeamRepository)
	tr.On("IsOwner", mock.Anything, "t1", "u1").Return(true, nil)
	tr.On("Rename", mock.Anything, "t1", "platform").
		Return(model.Team{TeamID: "t1", Name: "platform"}, nil)

	svc := service.NewTeamService(tr, nil, nil)
	team, err := svc.RenameTeam(context.Background(), "u1", "t1", "platform")

	require.NoError(t, err)
	assert.Equal(t, "platform", team.Name)

	_, err = svc.RenameTeam(context.Background(), "u1", "t1", "")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	tr.AssertExpectations(t)
}
