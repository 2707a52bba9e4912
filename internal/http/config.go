package http

import (
	"time"

	"github.com/mrlokans/bookmarks/internal/auth"
	"github.com/mrlokans/bookmarks/internal/rpc"
	"github.com/mrlokans/bookmarks/internal/tasks"
)

// RouterConfig holds all dependencies needed to create the HTTP router.
type RouterConfig struct {
	// Procedures is the registry served under /rpc. NewProcedures() when nil.
	Procedures *rpc.Router
	// Context is the base call context: database handle, bcrypt cost, version.
	Context rpc.Context
	// CallTimeout bounds each procedure call; zero disables the bound.
	CallTimeout time.Duration

	// Health
	Database    Pinger
	Version     string
	Maintenance MaintenanceReporter

	// Optional middleware
	SessionManager *auth.SessionManager
	RateLimiter    *auth.RateLimiter
	CSRFSecret     []byte
	SecureCookies  bool

	// Optional endpoints
	Metrics    *Metrics
	TaskClient *tasks.Client
}
