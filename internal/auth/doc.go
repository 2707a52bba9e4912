// Package auth holds the request-level security plumbing of the procedure
// transport: password hashing for user records, cookie sessions that give
// every caller a stable session id, CSRF protection for mutations, a
// token-bucket call limiter and security headers.
//
// Authentication itself is not enforced. The session id is attached to each
// procedure call and is available to handlers, nothing more.
//
// # Configuration
//
//	SESSION_LIFETIME=24h        # Session duration
//	SECURE_COOKIES=false        # HTTPS-only cookies
//	CSRF_SECRET=<32 bytes>      # Enables CSRF protection on mutations
//	PASSWORD_BCRYPT_COST=12     # bcrypt cost factor
//	RPC_RATE_LIMIT=0            # Calls per second per client, 0 disables
//	RPC_RATE_BURST=20
//
// # Usage
//
//	sm, err := auth.NewSessionManager(sqlDB, true, cfg.Session)
//	router.Use(sm.SessionLoadSave(), sm.EnsureSessionID())
//	sessionID := auth.GetSessionID(c)
package auth
