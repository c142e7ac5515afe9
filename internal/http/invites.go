package http

import (
	"net/http"
	"net/url"
	"strings"
)

func (h *Handler) handleInviteList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "invite_list"

	teamID, err := pathID(r, "team_id")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	invites, err := h.Invites.ListInvites(r.Context(), userID, teamID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, inviteListResponse{Invites: invites})
}

// handleInviteCreate обслуживает и JSON-клиентов, и форму приглашения из MemberList.
func (h *Handler) handleInviteCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "invite_create"

	teamID, err := pathID(r, "team_id")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	invite, err := h.Invites.CreateInvite(r.Context(), userID, teamID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	if isFormPost(r) {
		http.Redirect(w, r, "/team/"+url.PathEscape(teamID)+"/members/view", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusCreated, inviteResponse{Invite: invite})
}

func (h *Handler) handleInviteDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "invite_delete"

	teamID, err := pathID(r, "team_id")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	inviteID, err := pathID(r, "invite_id")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	if err := h.Invites.DeleteInvite(r.Context(), userID, teamID, inviteID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleInviteAccept(w http.ResponseWriter, r *http.Request) {
	const handlerName = "invite_accept"

	inviteID, err := pathID(r, "invite_id")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	team, err := h.Invites.AcceptInvite(r.Context(), userID, inviteID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponse{Team: team})
}

func isFormPost(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}
