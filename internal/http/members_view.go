package http

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"team-member-service/internal/view"
)

const liveWriteWait = 5 * time.Second

// handleMembersView отдаёт HTML-страницу с MemberList. Страница ждёт участников
// не дольше FetchWait; если данные не пришли, список дорисует live-поток.
func (h *Handler) handleMembersView(w http.ResponseWriter, r *http.Request) {
	const handlerName = "members_view"

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

	q := h.fetcher.Query(r.Context(), teamID)
	waitCtx, cancel := context.WithTimeout(r.Context(), h.opts.FetchWait)
	snap := q.Wait(waitCtx)
	cancel()

	data := view.PageData{
		TeamID:   teamID,
		TeamName: team.Name,
		Snapshot: snap,
	}
	if !snap.Settled() {
		data.LiveURL = liveURL(teamID)
	}

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, data); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleMembersLive шлёт фрагмент MemberList сразу и после каждого перехода
// состояния запроса, затем закрывает соединение.
func (h *Handler) handleMembersLive(w http.ResponseWriter, r *http.Request) {
	const handlerName = "members_live"

	teamID, err := pathID(r, "team_id")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	if err := h.Teams.RequireMember(r.Context(), teamID, userID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warn("websocket upgrade failed", slog.String("team_id", teamID), slog.Any("err", err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.LiveTimeout)
	defer cancel()

	q := h.fetcher.Query(ctx, teamID)
	for {
		// канал берётся до снимка, чтобы не пропустить переход
		changed := q.Changed()
		snap := q.Snapshot()

		fragment, err := h.renderer.MemberListString(teamID, snap)
		if err != nil {
			h.Log.Error("render member list", slog.String("team_id", teamID), slog.Any("err", err))
			return
		}

		_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(fragment)); err != nil {
			h.Log.Warn("websocket write failed", slog.String("team_id", teamID), slog.Any("err", err))
			return
		}

		if snap.Settled() {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, string(snap.Status)),
				time.Now().Add(liveWriteWait))
			return
		}

		select {
		case <-changed:
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "timeout"),
				time.Now().Add(liveWriteWait))
			return
		}
	}
}

func liveURL(teamID string) string {
	return "/team/" + url.PathEscape(teamID) + "/members/live"
}
