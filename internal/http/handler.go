// Package http реализует HTTP-обработчики, страницу участников и live-поток поверх доменных сервисов.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"team-member-service/internal/model"
	"team-member-service/internal/service"
	"team-member-service/internal/view"
)

// TeamService — операции над командами, нужные обработчикам.
type TeamService interface {
	CreateTeam(ctx context.Context, ownerID, name string) (model.Team, error)
	ListTeams(ctx context.Context, userID string) ([]model.Team, error)
	GetTeam(ctx context.Context, userID, teamID string) (model.Team, error)
	RenameTeam(ctx context.Context, userID, teamID, name string) (model.Team, error)
	DeleteTeam(ctx context.Context, userID, teamID string) error
	Members(ctx context.Context, userID, teamID string) ([]model.User, error)
	RequireMember(ctx context.Context, teamID, userID string) error
	TeamMembers(ctx context.Context, teamID string) ([]model.User, error)
}

type InviteService interface {
	ListInvites(ctx context.Context, userID, teamID string) ([]model.TeamInvite, error)
	CreateInvite(ctx context.Context, userID, teamID string) (model.TeamInvite, error)
	DeleteInvite(ctx context.Context, userID, teamID, inviteID string) error
	AcceptInvite(ctx context.Context, userID, inviteID string) (model.Team, error)
}

type UserService interface {
	Register(ctx context.Context, username, password string) (model.Session, error)
	Login(ctx context.Context, username, password string) (model.Session, error)
	Authenticate(ctx context.Context, token string) (string, error)
	GetUser(ctx context.Context, userID string) (model.User, error)
}

// Options — настройки транспорта.
type Options struct {
	RequestTimeout time.Duration
	CORSOrigins    []string
	// FetchWait — сколько страница ждёт участников перед отрисовкой.
	FetchWait time.Duration
	// LiveTimeout ограничивает время жизни live-потока.
	LiveTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 5 * time.Second
	}
	if len(o.CORSOrigins) == 0 {
		o.CORSOrigins = []string{"*"}
	}
	if o.FetchWait <= 0 {
		o.FetchWait = 150 * time.Millisecond
	}
	if o.LiveTimeout <= 0 {
		o.LiveTimeout = 30 * time.Second
	}
	return o
}

type Handler struct {
	Teams   TeamService
	Invites InviteService
	Users   UserService
	Log     *slog.Logger

	renderer *view.Renderer
	fetcher  *view.Fetcher
	upgrader websocket.Upgrader
	metrics  *metrics
	opts     Options
}

func NewHandler(teams TeamService, invites InviteService, users UserService, log *slog.Logger, opts Options) (*Handler, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Handler{
		Teams:    teams,
		Invites:  invites,
		Users:    users,
		Log:      log,
		renderer: renderer,
		fetcher:  view.NewFetcher(teams, log),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		metrics: newMetrics(),
		opts:    opts.withDefaults(),
	}, nil
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(h.observe)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.Timeout(h.opts.RequestTimeout))
		r.Post("/auth/register", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		// live-поток живёт дольше обычного запроса
		r.Get("/team/{team_id}/members/live", h.handleMembersLive)

		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(h.opts.RequestTimeout))

			r.Get("/user/me", h.handleMe)

			r.Get("/team", h.handleTeamList)
			r.Post("/team", h.handleTeamCreate)
			r.Get("/team/{team_id}", h.handleTeamGet)
			r.Put("/team/{team_id}", h.handleTeamUpdate)
			r.Delete("/team/{team_id}", h.handleTeamDelete)
			r.Get("/team/{team_id}/members", h.handleTeamMembers)
			r.Get("/team/{team_id}/members/view", h.handleMembersView)

			r.Get("/team/{team_id}/invites", h.handleInviteList)
			r.Post("/team/{team_id}/invites", h.handleInviteCreate)
			r.Delete("/team/{team_id}/invite/{invite_id}", h.handleInviteDelete)
			r.Post("/invite/{invite_id}/accept", h.handleInviteAccept)
		})
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr := service.AsAppError(err)

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.Log(context.Background(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	writeJSON(w, appErr.Status, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// metrics — счётчики запросов в собственном реестре Handler.
type metrics struct {
	registry       *prometheus.Registry
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "team_members",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "team_members",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(m.requestTotal, m.requestLatency)
	return m
}
