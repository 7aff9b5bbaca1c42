package service

import (
	"sync"

	"github.com/MKhiriev/go-pass-vault/models"
)

// accountState is the logged-in account shared by the auth and vault
// services.
type accountState struct {
	mu       sync.RWMutex
	account  models.Account
	loggedIn bool
}

func (s *accountState) set(account models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = account
	s.loggedIn = true
}

func (s *accountState) get() (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account, s.loggedIn
}

func (s *accountState) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = models.Account{}
	s.loggedIn = false
}
