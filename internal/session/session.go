package session

import (
	"strings"

	"github.com/google/uuid"
)

// Session is the logged-in user context handed to stores and coordinators
type Session struct {
	Login     string
	UserID    int64
	VisitorID string
}

// New creates a session with a fresh visitor id
func New(login string, userID int64) Session {
	return Session{
		Login:     strings.TrimSpace(login),
		UserID:    userID,
		VisitorID: uuid.NewString(),
	}
}

// Anonymous reports whether no user is logged in
func (s Session) Anonymous() bool {
	return s.Login == ""
}

// HistoryOwner is the key under which the user's search history is stored
func (s Session) HistoryOwner() string {
	if s.Anonymous() {
		return "anonymous"
	}
	return strings.ToLower(s.Login)
}
