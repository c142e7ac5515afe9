package http

import (
	"net/http"
)

func (h *Handler) handleTeamList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_list"

	userID, _ := UserIDFromContext(r.Context())
	teams, err := h.Teams.ListTeams(r.Context(), userID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, teamListResponse{Teams: teams})
}

func (h *Handler) handleTeamCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_create"

	var req teamRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	team, err := h.Teams.CreateTeam(r.Context(), userID, req.Name)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusCreated, teamResponse{Team: team})
}

func (h *Handler) handleTeamGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_get"

	teamID, err := pathID(r, "team_id")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	team, err := h.Teams.GetTeam(r.Context(), userID, teamID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponse{Team: team})
}

func (h *Handler) handleTeamUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_update"

	teamID, err := pathID(r, "team_id")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	var req teamRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	team, err := h.Teams.RenameTeam(r.Context(), userID, teamID, req.Name)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponse{Team: team})
}

func (h *Handler) handleTeamDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_delete"

	teamID, err := pathID(r, "team_id")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	if err := h.Teams.DeleteTeam(r.Context(), userID, teamID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleTeamMembers(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_members"

	teamID, err := pathID(r, "team_id")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	members, err := h.Teams.Members(r.Context(), userID, teamID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, membersResponse{TeamID: teamID, Members: members})
}
