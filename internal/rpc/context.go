package rpc

import "gorm.io/gorm"

// Context carries the dependencies shared by every procedure call. The
// transport builds one per call from the process-wide values.
type Context struct {
	DB         *gorm.DB
	BcryptCost int
	Version    string

	// SessionID identifies the caller's session when sessions are enabled.
	// Procedures do not enforce it.
	SessionID string
	RequestID string
}

// WithCall returns a copy of c scoped to one call.
func (c Context) WithCall(sessionID, requestID string) *Context {
	c.SessionID = sessionID
	c.RequestID = requestID
	return &c
}
