package bookingflow

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"busline/internal/domain/models"
)

// AuthSession is the persisted login state: the bearer token plus the user
// it belongs to. It stands in for what the browser kept in local storage.
type AuthSession struct {
	Token string         `json:"token"`
	User  models.Account `json:"user"`
}

// Authenticated reports whether the session carries a usable account.
func (s AuthSession) Authenticated() bool {
	return strings.TrimSpace(s.Token) != "" && s.User.AccountID > 0
}

// SessionStore loads and saves the auth session with an explicit lifecycle
// so the booking client never reads ambient state behind the caller's back.
type SessionStore struct {
	Path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{Path: path}
}

// Load returns the stored session. A missing or unreadable file yields an
// empty session, the same way a cleared browser storage would.
func (st *SessionStore) Load() AuthSession {
	var out AuthSession
	if st == nil || st.Path == "" {
		return out
	}
	raw, err := os.ReadFile(st.Path)
	if err != nil {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return AuthSession{}
	}
	return out
}

// Save persists the session, creating parent directories as needed.
func (st *SessionStore) Save(s AuthSession) error {
	if st == nil || st.Path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(st.Path), 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(st.Path, raw, 0o600)
}

// Clear removes the stored session; clearing an already-empty store is fine.
func (st *SessionStore) Clear() error {
	if st == nil || st.Path == "" {
		return nil
	}
	err := os.Remove(st.Path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
