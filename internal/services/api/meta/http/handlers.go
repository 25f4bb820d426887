// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"timeclock/internal/core/version"
	"timeclock/internal/modkit/httpkit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes at the router root, outside auth
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/healthz", h.health)
	httpkit.Get(r, "/readyz", h.ready)
	httpkit.Get(r, "/version", h.version)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the liveness payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"timeclock-api"`
	Started string `json:"started" example:"2024-01-15T08:00:00Z"`
	Now     string `json:"now"     example:"2024-01-15T08:05:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2024-01-15T08:05:00Z"`
}

// swagger:route GET /healthz Meta metaHealth
// @Summary Liveness check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse "alive"
// @Router /healthz [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	now := time.Now().UTC()
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     now.Format(time.RFC3339),
		Uptime:  int64(now.Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

// swagger:route GET /readyz Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Failure 503 type ReadyResponse "dependency down"
// @Router /readyz [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 2*time.Second)
	defer cancel()

	pg := ReadyCheck{Name: "pg", Status: "skipped"}
	if h.deps.PG != nil {
		pg.Status = "unknown"
		if p, ok := h.deps.PG.(Pinger); ok {
			pg.Status = "ok"
			if err := p.Ping(ctx); err != nil {
				pg = ReadyCheck{Name: "pg", Status: "fail", Error: err.Error()}
			}
		}
	}

	out := ReadyResponse{
		Status: "ok",
		Checks: []ReadyCheck{pg},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}
	if pg.Status == "fail" {
		out.Status = "fail"
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

// swagger:route GET /version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}
