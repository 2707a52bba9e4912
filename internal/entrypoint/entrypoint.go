package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookmarks/internal/auth"
	"github.com/mrlokans/bookmarks/internal/bindings"
	"github.com/mrlokans/bookmarks/internal/config"
	"github.com/mrlokans/bookmarks/internal/database"
	http_controllers "github.com/mrlokans/bookmarks/internal/http"
	"github.com/mrlokans/bookmarks/internal/rpc"
	"github.com/mrlokans/bookmarks/internal/scheduler"
	"github.com/mrlokans/bookmarks/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// calls for up to SHUTDOWN_TIMEOUT_IN_SECONDS.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Listening on http://%s", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
		return
	case <-ctx.Done():
	}

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	log.Printf("Shutting down, waiting up to %v for in-flight calls", timeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Background workers stop first so they cannot start new database work.
	if onShutdown != nil {
		onShutdown(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookmarks v%s", version)

	// Initialize database; migrations run here and any failure aborts startup
	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	procedures := http_controllers.NewProcedures()

	if cfg.Bindings.Path != "" {
		if err := bindings.Export(procedures, cfg.Bindings.Path); err != nil {
			log.Printf("WARNING: Failed to export TypeScript bindings: %v", err)
		} else {
			log.Printf("TypeScript bindings exported to %s", cfg.Bindings.Path)
		}
	}

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(taskDBBase(db), tasks.FromAppConfig(cfg.Tasks))
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(tasks.NewOptimizeDatabaseQueue(db))

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Maintenance enqueues through the task queue when it is available,
	// otherwise it optimizes inline on the cron goroutine.
	job := scheduler.Job(db.Optimize)
	if taskClient != nil {
		job = func(ctx context.Context) error {
			_, err := taskClient.Enqueue(ctx, tasks.OptimizeDatabaseTask{Reason: "scheduled"})
			return err
		}
	}
	maintenance := scheduler.NewMaintenanceScheduler(cfg.Maintenance.Schedule, job)
	if err := maintenance.Start(context.Background()); err != nil {
		log.Printf("WARNING: Maintenance scheduler not started: %v", err)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessionManager, err := auth.NewSessionManager(sqlDB, db.Driver == database.DriverSQLite, cfg.Session)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	var csrfSecret []byte
	if cfg.Security.CSRFSecret != "" {
		csrfSecret = []byte(cfg.Security.CSRFSecret)
		log.Printf("CSRF protection enabled for mutations")
	}

	var rateLimiter *auth.RateLimiter
	if cfg.RPC.RateLimit > 0 {
		rateLimiter = auth.NewRateLimiter(cfg.RPC.RateLimit, cfg.RPC.RateBurst)
		defer rateLimiter.Stop()
	}

	var metrics *http_controllers.Metrics
	if cfg.Metrics.Enabled {
		metrics = http_controllers.NewMetrics()
	}

	routerCfg := http_controllers.RouterConfig{
		Procedures: procedures,
		Context: rpc.Context{
			DB:         db.DB,
			BcryptCost: cfg.Security.BcryptCost,
			Version:    version,
		},
		CallTimeout:    cfg.RPC.CallTimeout,
		Database:       db,
		Version:        version,
		Maintenance:    maintenance,
		SessionManager: sessionManager,
		RateLimiter:    rateLimiter,
		CSRFSecret:     csrfSecret,
		SecureCookies:  cfg.Session.SecureCookies,
		Metrics:        metrics,
		TaskClient:     taskClient,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		maintenance.Stop(ctx)
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}

// taskDBBase picks the file the task database is stored next to. Postgres
// deployments keep it in the working directory.
func taskDBBase(db *database.Database) string {
	if db.Path != "" && db.Path != ":memory:" {
		return db.Path
	}
	return "bookmarks.db"
}
