package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) sends every page that needs the key to the unlock page on auto-lock
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page := r.page()
	if page == nil {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.current == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	// Cross-page navigation.
	case NavigateTo:
		return r.navigate(msg)

	case vaultLockedMsg:
		if r.needsKey() {
			return r.navigate(NavigateTo{Page: pageUnlock, Payload: noticeMsg{text: "vault locked after inactivity"}})
		}
		return r, nil
	}

	page := r.page()
	if page == nil {
		return r, nil
	}

	next, cmd := page.Update(msg)
	r.pages[r.current] = next
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = nav.Page

	if nav.Payload != nil {
		return r, func() tea.Msg { return nav.Payload }
	}
	return r, next.Init()
}

// needsKey reports whether the active page shows or edits decrypted data.
func (r RootModel) needsKey() bool {
	switch r.current {
	case pageList, pageForm, pageGenerator:
		return true
	}
	return false
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page := r.page()
	if page == nil {
		return renderPage("go-pass-vault", "", "")
	}
	return page.View()
}
