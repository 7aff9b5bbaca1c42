package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestRoot(start string) (RootModel, map[string]*stubPage) {
	stubs := map[string]*stubPage{}
	pages := map[string]tea.Model{}
	for _, name := range []string{pageMenu, pageLogin, pageUnlock, pageList, pageForm} {
		stubs[name] = &stubPage{}
		pages[name] = stubs[name]
	}
	return NewRootModel(pages, start, models.AppBuildInfo{}), stubs
}

func TestRootModel_Navigate(t *testing.T) {
	root, stubs := newTestRoot(pageMenu)

	next, cmd := root.Update(NavigateTo{Page: pageLogin})
	r := next.(RootModel)
	assert.Equal(t, pageLogin, r.current)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, stubs[pageLogin].inits)

	next, cmd = r.Update(NavigateTo{Page: pageList, Payload: noticeMsg{text: "hi"}})
	r = next.(RootModel)
	assert.Equal(t, pageList, r.current)
	assert.Equal(t, noticeMsg{text: "hi"}, exec(cmd))
	assert.Equal(t, 0, stubs[pageList].inits)

	next, _ = r.Update(NavigateTo{Page: "missing"})
	assert.Equal(t, pageList, next.(RootModel).current)
}

func TestRootModel_DelegatesToActivePage(t *testing.T) {
	root, stubs := newTestRoot(pageList)

	_, _ = root.Update(clearStatusMsg{})

	require.Len(t, stubs[pageList].msgs, 1)
	assert.Empty(t, stubs[pageMenu].msgs)
}

func TestRootModel_VaultLocked(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		wantPage string
		wantCmd  bool
	}{
		{name: "list goes to unlock", start: pageList, wantPage: pageUnlock, wantCmd: true},
		{name: "form goes to unlock", start: pageForm, wantPage: pageUnlock, wantCmd: true},
		{name: "menu stays", start: pageMenu, wantPage: pageMenu},
		{name: "login stays", start: pageLogin, wantPage: pageLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, _ := newTestRoot(tt.start)

			next, cmd := root.Update(vaultLockedMsg{})

			assert.Equal(t, tt.wantPage, next.(RootModel).current)
			if tt.wantCmd {
				assert.IsType(t, noticeMsg{}, exec(cmd))
			} else {
				assert.Nil(t, cmd)
			}
		})
	}
}

func TestRootModel_GlobalKeys(t *testing.T) {
	root, stubs := newTestRoot(pageMenu)

	next, _ := root.Update(keyRunes("v"))
	r := next.(RootModel)
	assert.True(t, r.showBuildInfo)

	next, _ = r.Update(keyType(tea.KeyEsc))
	r = next.(RootModel)
	assert.False(t, r.showBuildInfo)
	assert.Empty(t, stubs[pageMenu].msgs)

	next, cmd := r.Update(keyType(tea.KeyCtrlC))
	assert.True(t, next.(RootModel).quitByUser)
	assert.Equal(t, tea.QuitMsg{}, exec(cmd))
}
