package tui

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel drives the login flow. It owns the pages, switches between
// them on [NavigateTo], and ends the program once a [LoginResult] carries a
// session. ctrl+c quits from every page; "v" on the menu shows build info.
type RootModel struct {
	ctx     context.Context
	appInfo service.ClientAppInfoService

	pages   map[string]tea.Model
	current tea.Model

	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool

	session    models.Session
	quitByUser bool
}

func NewRootModel(ctx context.Context, appInfo service.ClientAppInfoService, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		appInfo:   appInfo,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return r.handleKey(msg)
	case serverVersionMsg:
		r.serverVersion = msg.version
		return r, nil
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			r.session = msg.Session
			return r, tea.Quit
		}
	}

	return r.delegate(msg)
}

func (r RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		r.quitByUser = true
		return r, tea.Quit
	}

	if r.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.version) {
			r.showBuildInfo = false
		}
		return r, nil
	}

	// "v" is plain text on the form pages
	if _, onMenu := r.current.(*MenuModel); onMenu && key.Matches(msg, keys.version) {
		r.showBuildInfo = true
		return r, cmdServerVersion(r.ctx, r.appInfo)
	}

	return r.delegate(msg)
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.current = next
	r.showBuildInfo = false
	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, next.Init()
}

func (r RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if r.current == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	case r.current == nil:
		return renderPage("TodoKeeper", "", "")
	default:
		return r.current.View()
	}
}

func cmdServerVersion(ctx context.Context, appInfo service.ClientAppInfoService) tea.Cmd {
	if appInfo == nil {
		return nil
	}
	return func() tea.Msg {
		version, err := appInfo.GetServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
