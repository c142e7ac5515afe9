package http

import (
	"net/http"

	"team-member-service/internal/model"
)

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "auth_register"

	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	session, err := h.Users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	setSessionCookie(w, session)
	writeJSON(w, http.StatusCreated, newSessionResponse(session))
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	const handlerName = "auth_login"

	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	session, err := h.Users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	setSessionCookie(w, session)
	writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_me"

	userID, _ := UserIDFromContext(r.Context())
	user, err := h.Users.GetUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: user})
}

func setSessionCookie(w http.ResponseWriter, session model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
