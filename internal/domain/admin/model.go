package admin

import "time"

// Principal is the authenticated league administrator behind a session.
type Principal struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
