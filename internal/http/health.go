package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger checks connectivity of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MaintenanceReporter exposes the state of the maintenance schedule.
type MaintenanceReporter interface {
	IsRunning() bool
	NextRunTime() *time.Time
}

const healthCheckTimeout = 2 * time.Second

type HealthResponse struct {
	Status      string            `json:"status"`
	Time        string            `json:"time"`
	Version     string            `json:"version,omitempty"`
	Checks      map[string]string `json:"checks"`
	Maintenance *MaintenanceInfo  `json:"maintenance,omitempty"`
}

// MaintenanceInfo is informational; a stopped schedule does not make the
// service unhealthy.
type MaintenanceInfo struct {
	Scheduled bool       `json:"scheduled"`
	NextRun   *time.Time `json:"next_run,omitempty"`
}

// HealthController reports the state of every registered store. The
// database check is always listed, as "not configured" when absent.
type HealthController struct {
	version     string
	checks      map[string]Pinger
	maintenance MaintenanceReporter
}

// NewHealthController builds the /health handler; maintenance may be nil.
func NewHealthController(version string, checks map[string]Pinger, maintenance MaintenanceReporter) *HealthController {
	return &HealthController{version: version, checks: checks, maintenance: maintenance}
}

// Status handles GET /health
func (h *HealthController) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	response := HealthResponse{
		Status:  "healthy",
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  map[string]string{"database": "not configured"},
	}
	for _, name := range names {
		if err := h.checks[name].Ping(ctx); err != nil {
			response.Checks[name] = "error: " + err.Error()
			response.Status = "unhealthy"
			continue
		}
		response.Checks[name] = "ok"
	}

	if h.maintenance != nil {
		response.Maintenance = &MaintenanceInfo{
			Scheduled: h.maintenance.IsRunning(),
			NextRun:   h.maintenance.NextRunTime(),
		}
	}

	code := http.StatusOK
	if response.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	c.IndentedJSON(code, response)
}
