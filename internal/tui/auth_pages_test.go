package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestLoginModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	m := NewLoginModel(context.Background(), auth)

	_, cmd := m.Update(keyType(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, "email and password are required", m.errMsg)

	m.inputs[0].SetValue(" user@example.com ")
	m.inputs[1].SetValue("account-pass")

	auth.EXPECT().
		Login(gomock.Any(), models.Credentials{Email: "user@example.com", Password: "account-pass"}).
		Return(models.Account{Email: "user@example.com"}, nil)

	_, cmd = m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	msg := exec(cmd)
	require.IsType(t, authResultMsg{}, msg)

	_, cmd = m.Update(msg)
	assert.Equal(t, NavigateTo{Page: pageUnlock}, exec(cmd))
	assert.False(t, m.submitting)
	assert.Empty(t, m.inputs[0].Value())
	assert.Empty(t, m.inputs[1].Value())
}

func TestLoginModel_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockClientAuthService(ctrl))
	m.submitting = true

	_, cmd := m.Update(authResultMsg{err: service.ErrInvalidCredentials})

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, app.MsgInvalidCredentials, m.errMsg)
}

func TestLoginModel_Notice(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockClientAuthService(ctrl))

	_, _ = m.Update(noticeMsg{text: app.MsgSessionExpired})

	assert.Contains(t, m.View(), app.MsgSessionExpired)
}

func TestRegisterModel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		pass    string
		repeat  string
		wantErr string
	}{
		{name: "empty", wantErr: "email and password are required"},
		{name: "bad email", email: "user", pass: "long-enough", repeat: "long-enough", wantErr: "email is not valid"},
		{name: "short password", email: "u@e.com", pass: "short", repeat: "short", wantErr: "password must be at least 8 characters"},
		{name: "mismatch", email: "u@e.com", pass: "long-enough", repeat: "long-enougH", wantErr: "passwords do not match"},
		{name: "ok", email: "u@e.com", pass: "long-enough", repeat: "long-enough"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewRegisterModel(context.Background(), mock.NewMockClientAuthService(ctrl))
			m.inputs[0].SetValue(tt.email)
			m.inputs[1].SetValue(tt.pass)
			m.inputs[2].SetValue(tt.repeat)

			creds, errMsg := m.validate()

			assert.Equal(t, tt.wantErr, errMsg)
			if tt.wantErr == "" {
				assert.Equal(t, tt.email, creds.Email)
				assert.Equal(t, tt.pass, creds.Password.Reveal())
			}
		})
	}
}

func TestRegisterModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	m := NewRegisterModel(context.Background(), auth)
	m.inputs[0].SetValue("u@e.com")
	m.inputs[1].SetValue("long-enough")
	m.inputs[2].SetValue("long-enough")

	auth.EXPECT().
		Register(gomock.Any(), models.Credentials{Email: "u@e.com", Password: "long-enough"}).
		Return(models.Account{}, service.ErrEmailTaken)

	_, cmd := m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)

	_, cmd = m.Update(exec(cmd))
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgEmailTaken, m.errMsg)
}

func TestUnlockModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	m := NewUnlockModel(context.Background(), auth)

	_, cmd := m.Update(keyType(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, "master password is required", m.errMsg)

	m.input.SetValue("wrong")
	auth.EXPECT().Unlock(gomock.Any(), models.Secret("wrong")).Return(service.ErrWrongMasterPassword)

	_, cmd = m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	_, cmd = m.Update(exec(cmd))
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgWrongMasterPassword, m.errMsg)
	assert.Empty(t, m.input.Value())

	m.input.SetValue("right")
	auth.EXPECT().Unlock(gomock.Any(), models.Secret("right")).Return(nil)

	_, cmd = m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	_, cmd = m.Update(exec(cmd))
	assert.Equal(t, NavigateTo{Page: pageList}, exec(cmd))
	assert.Empty(t, m.errMsg)
}

func TestUnlockModel_SessionExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewUnlockModel(context.Background(), mock.NewMockClientAuthService(ctrl))

	_, cmd := m.Update(unlockResultMsg{err: service.ErrSessionExpired})

	assert.Equal(t, NavigateTo{Page: pageLogin, Payload: noticeMsg{text: app.MsgSessionExpired}}, exec(cmd))
}

func TestUnlockModel_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	m := NewUnlockModel(context.Background(), auth)

	auth.EXPECT().Logout()

	_, cmd := m.Update(keyType(tea.KeyEsc))

	assert.Equal(t, NavigateTo{Page: pageMenu, Payload: noticeMsg{text: "logged out"}}, exec(cmd))
}
