package auth

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mrlokans/bookmarks/internal/config"
)

// Session data keys
const (
	SessionKeyID        = "session_id"
	SessionKeyStartedAt = "started_at"
)

// ContextKeySessionID is the Gin context key holding the caller's session id.
const ContextKeySessionID = "session_id"

// SessionManager wraps scs.SessionManager with application-specific methods.
type SessionManager struct {
	*scs.SessionManager
}

// NewSessionManager creates a configured session manager. SQLite databases
// keep sessions in a sessions table next to the application data; any other
// driver falls back to an in-memory store.
func NewSessionManager(sqlDB *sql.DB, sqlite bool, cfg config.Session) (*SessionManager, error) {
	sm := scs.New()

	if sqlite {
		// Create sessions table if it doesn't exist
		_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
		if err != nil {
			return nil, err
		}
		sm.Store = sqlite3store.New(sqlDB)
	} else {
		sm.Store = memstore.New()
	}

	lifetime := cfg.Lifetime
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}
	sm.Lifetime = lifetime
	sm.IdleTimeout = lifetime / 2

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteStrictMode
	sm.Cookie.Path = "/"

	return &SessionManager{SessionManager: sm}, nil
}

// SessionID returns the id stored in the session, issuing one on first use.
func (sm *SessionManager) SessionID(r *http.Request) string {
	ctx := r.Context()
	id := sm.GetString(ctx, SessionKeyID)
	if id == "" {
		id = uuid.NewString()
		sm.Put(ctx, SessionKeyID, id)
		sm.Put(ctx, SessionKeyStartedAt, time.Now().UTC().Format(time.RFC3339))
	}
	return id
}

// EnsureSessionID exposes the session id to downstream handlers. It must run
// after SessionLoadSave.
func (sm *SessionManager) EnsureSessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeySessionID, sm.SessionID(c.Request))
		c.Next()
	}
}

// GetSessionID returns the caller's session id, or "" when sessions are off.
func GetSessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}

// SessionLoadSave loads the caller's session into the request context and
// commits it when the response is written. It must run before any session
// operation.
func (sm *SessionManager) SessionLoadSave() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if cookie, err := c.Request.Cookie(sm.Cookie.Name); err == nil {
			token = cookie.Value
		}

		ctx, err := sm.Load(c.Request.Context(), token)
		if err != nil {
			log.Printf("[SESSION] load failed: %v", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Request = c.Request.WithContext(ctx)

		w := &cookieWriter{ResponseWriter: c.Writer, sm: sm, ctx: ctx}
		c.Writer = w
		c.Next()

		// Handlers that only set a status never touch the writer.
		w.flushCookie()
	}
}

// cookieWriter commits the session and sets its cookie right before the
// response headers go out.
type cookieWriter struct {
	gin.ResponseWriter
	sm      *SessionManager
	ctx     context.Context
	flushed bool
}

func (w *cookieWriter) WriteHeader(code int) {
	w.flushCookie()
	w.ResponseWriter.WriteHeader(code)
}

func (w *cookieWriter) WriteHeaderNow() {
	w.flushCookie()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *cookieWriter) Write(b []byte) (int, error) {
	w.flushCookie()
	return w.ResponseWriter.Write(b)
}

func (w *cookieWriter) WriteString(s string) (int, error) {
	w.flushCookie()
	return w.ResponseWriter.WriteString(s)
}

func (w *cookieWriter) flushCookie() {
	if w.flushed || w.ResponseWriter.Written() {
		return
	}
	w.flushed = true

	switch w.sm.Status(w.ctx) {
	case scs.Modified:
		token, expiry, err := w.sm.Commit(w.ctx)
		if err != nil {
			log.Printf("[SESSION] commit failed: %v", err)
			return
		}
		w.sm.WriteSessionCookie(w.ctx, w.ResponseWriter, token, expiry)
	case scs.Destroyed:
		w.sm.WriteSessionCookie(w.ctx, w.ResponseWriter, "", time.Time{})
	}
}
