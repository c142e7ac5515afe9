package http

import "team-member-service/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,password"`
}

type teamRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type sessionResponse struct {
	Token     string     `json:"token"`
	ExpiresAt int64      `json:"expires_at"`
	User      model.User `json:"user"`
}

type userResponse struct {
	User model.User `json:"user"`
}

type teamResponse struct {
	Team model.Team `json:"team"`
}

type teamListResponse struct {
	Teams []model.Team `json:"teams"`
}

type membersResponse struct {
	TeamID  string       `json:"team_id"`
	Members []model.User `json:"members"`
}

type inviteResponse struct {
	Invite model.TeamInvite `json:"invite"`
}

type inviteListResponse struct {
	Invites []model.TeamInvite `json:"invites"`
}

func newSessionResponse(s model.Session) sessionResponse {
	return sessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.Unix(),
		User:      s.User,
	}
}
