package shared

import "sync"

// AccountState holds the current session: local user name and the optional linked marketplace account.
type AccountState struct {
	mu          sync.RWMutex
	userName    string
	marketplace *MarketplaceAccount
}

func NewAccountState() *AccountState {
	return &AccountState{}
}

func (s *AccountState) SignIn(userName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userName = userName
}

func (s *AccountState) Link(account MarketplaceAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marketplace = &account
	if account.Nickname != "" {
		s.userName = account.Nickname
	}
}

func (s *AccountState) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userName = ""
	s.marketplace = nil
}

func (s *AccountState) UserName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userName
}

// Marketplace returns the linked account, if any.
func (s *AccountState) Marketplace() (MarketplaceAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.marketplace == nil {
		return MarketplaceAccount{}, false
	}
	return *s.marketplace, true
}
