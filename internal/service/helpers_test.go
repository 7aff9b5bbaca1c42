package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	testEmail      = "alice@example.com"
	testSalt       = "AAAAAAAAAAAAAAAAAAAAAA" // 16 zero bytes, url-safe
	testIterations = 100
	testMaster     = "correct-horse"
)

var testAccount = models.Account{Email: testEmail, EncryptionSalt: testSalt, KDFIterations: testIterations}

func newTestSession() *session.Session {
	return session.New(logger.Nop(),
		session.WithIterations(testIterations),
		session.WithDeriver(crypto.NewKeyDeriver(crypto.WithMinIterations(testIterations))),
	)
}

// unlockedSession returns a session holding the key of master for testAccount.
func unlockedSession(t *testing.T, master string) *session.Session {
	t.Helper()
	s := newTestSession()
	require.NoError(t, s.UnlockWithParams(master, testAccount.KDFParams()))
	return s
}

// sealedEntry encrypts secret with the key of master.
func sealedEntry(t *testing.T, master string, id int64, title, secret string) models.VaultEntry {
	t.Helper()
	entry, err := NewFieldPolicy(nil).Seal(unlockedSession(t, master), models.PlainEntry{
		ID:       id,
		Title:    title,
		Username: "alice",
		Secret:   models.Secret(secret),
	})
	require.NoError(t, err)
	return entry
}

type testDeps struct {
	adapter  *mock.MockServerAdapter
	accounts *mock.MockAccountRepository
	entries  *mock.MockEntryRepository
	session  *session.Session
	current  *accountState
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &testDeps{
		adapter:  mock.NewMockServerAdapter(ctrl),
		accounts: mock.NewMockAccountRepository(ctrl),
		entries:  mock.NewMockEntryRepository(ctrl),
		session:  newTestSession(),
		current:  &accountState{},
	}
}

func (d *testDeps) auth(defaultIterations int) *clientAuthService {
	return newClientAuthService(d.adapter, d.accounts, d.entries, d.session, d.current, defaultIterations, logger.Nop()).(*clientAuthService)
}

func (d *testDeps) vault(policy FieldPolicy) *clientVaultService {
	return newClientVaultService(d.adapter, d.entries, d.session, policy, d.current, logger.Nop()).(*clientVaultService)
}
