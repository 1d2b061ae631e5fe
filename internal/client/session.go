package client

import "encoding/json"

// Storage keys for session state.  The cart uses its own key so logout can
// clear the session without touching it.
const (
	keyToken = "token"
	keyUser  = "user"
	keyRole  = "userType"
)

// User is the client's view of the logged-in account, as returned by the
// register/login endpoints.  Admin sessions fill Username/Role instead of
// the contact fields.
type User struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Zipcode  string `json:"zipcode,omitempty"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Session holds the current token, user and role, restored from Storage at
// startup and persisted on every change.  Not safe for concurrent mutation;
// the client owns it from a single goroutine.
type Session struct {
	store Storage

	Token string
	User  *User
	Role  string // "customer" or "admin"
}

// NewSession binds a session to its storage and restores any persisted
// state.  A partially persisted state (token without user, etc.) is treated
// as logged out, matching the all-three-keys check the web client does.
func NewSession(store Storage) (*Session, error) {
	s := &Session{store: store}
	tok, okT, err := store.Get(keyToken)
	if err != nil {
		return nil, err
	}
	userRaw, okU, err := store.Get(keyUser)
	if err != nil {
		return nil, err
	}
	roleRaw, okR, err := store.Get(keyRole)
	if err != nil {
		return nil, err
	}
	if !okT || !okU || !okR {
		return s, nil
	}
	var tokStr, roleStr string
	if err := json.Unmarshal(tok, &tokStr); err != nil {
		return s, nil
	}
	if err := json.Unmarshal(roleRaw, &roleStr); err != nil {
		return s, nil
	}
	var u User
	if err := json.Unmarshal(userRaw, &u); err != nil {
		return s, nil
	}
	s.Token, s.Role, s.User = tokStr, roleStr, &u
	return s, nil
}

// Authenticated reports whether a session is active.
func (s *Session) Authenticated() bool { return s.Token != "" && s.User != nil }

// Login records a fresh session and persists it.
func (s *Session) Login(u User, token, role string) error {
	s.Token, s.Role = token, role
	s.User = &u
	if err := s.setJSON(keyToken, token); err != nil {
		return err
	}
	if err := s.setJSON(keyUser, u); err != nil {
		return err
	}
	return s.setJSON(keyRole, role)
}

// Logout clears the session from memory and storage.  The cart is kept: an
// anonymous visitor may still be assembling an order.
func (s *Session) Logout() error {
	s.Token, s.Role, s.User = "", "", nil
	for _, k := range []string{keyToken, keyUser, keyRole} {
		if err := s.store.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

// UpdateUser replaces the persisted user object, e.g. after a profile
// update.
func (s *Session) UpdateUser(u User) error {
	s.User = &u
	return s.setJSON(keyUser, u)
}

func (s *Session) setJSON(key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Set(key, b)
}
