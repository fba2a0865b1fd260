package auth

import "github.com/dmitrymomot/storefront/model"

// TokenKey is the persisted key holding the bearer token.
const TokenKey = "jwtToken"

// State is a snapshot of the session.
type State struct {
	Token   string
	User    *model.User
	Loading bool
}

// IsAuthenticated reports whether a user is signed in.
func (s State) IsAuthenticated() bool {
	return s.User != nil
}

// UserID returns the signed-in user's id, or 0.
func (s State) UserID() int64 {
	if s.User == nil {
		return 0
	}
	return s.User.ID
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// StateChanged is published after every session transition.
type StateChanged struct {
	State State
}
