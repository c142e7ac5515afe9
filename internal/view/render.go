package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	HeaderLabel = "Members"
	InviteLabel = "Invite Member"
)

// Renderer отрисовывает MemberList и страницу с ним.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.New("view").Funcs(template.FuncMap{
		"initial":     initial,
		"headerLabel": func() string { return HeaderLabel },
		"inviteLabel": func() string { return InviteLabel },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

type memberListData struct {
	TeamID  string
	State   Status
	Members Members
}

// PageData — данные полной HTML-страницы участников.
type PageData struct {
	TeamID   string
	TeamName string
	Snapshot Snapshot
	// LiveURL — путь WebSocket-потока обновлений; пустой отключает live-обновление.
	LiveURL string
}

type pageData struct {
	Title   string
	List    memberListData
	LiveURL string
}

// MemberList пишет фрагмент списка участников. Одинаковые входные данные дают
// побайтно одинаковый результат.
func (r *Renderer) MemberList(w io.Writer, teamID string, snap Snapshot) error {
	return r.templates.ExecuteTemplate(w, "member_list", listData(teamID, snap))
}

// MemberListString — MemberList в строку, для отправки фрагмента по сети.
func (r *Renderer) MemberListString(teamID string, snap Snapshot) (string, error) {
	var b strings.Builder
	if err := r.MemberList(&b, teamID, snap); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *Renderer) Page(w io.Writer, data PageData) error {
	title := HeaderLabel
	if data.TeamName != "" {
		title = data.TeamName + " · " + HeaderLabel
	}
	return r.templates.ExecuteTemplate(w, "page", pageData{
		Title:   title,
		List:    listData(data.TeamID, data.Snapshot),
		LiveURL: data.LiveURL,
	})
}

func listData(teamID string, snap Snapshot) memberListData {
	state := snap.Status
	if state == "" {
		state = StatusPending
	}
	members := snap.Members
	if state != StatusReady {
		members = Absent()
	}
	return memberListData{TeamID: teamID, State: state, Members: members}
}

// initial — первая буква имени для аватара.
func initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
