// Package healthcheck provides health and readiness check functionality
// following the Health Check API pattern for cloud-native applications.
package healthcheck

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status represents the health status
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
)

// Check represents a single health check result
type Check struct {
	Name        string        `json:"name"`
	Status      Status        `json:"status"`
	Message     string        `json:"message,omitempty"`
	LastChecked time.Time     `json:"last_checked"`
	Duration    time.Duration `json:"duration_ms"`
}

// Response represents the aggregate health check response
type Response struct {
	Status        Status        `json:"status"`
	Version       string        `json:"version"`
	Timestamp     time.Time     `json:"timestamp"`
	Checks        []Check       `json:"checks"`
	TotalDuration time.Duration `json:"total_duration_ms"`
}

// Checker defines the interface for health checks
type Checker interface {
	Check(ctx context.Context) Check
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) Check

// Check runs the function
func (f CheckerFunc) Check(ctx context.Context) Check {
	return f(ctx)
}

// HealthCheck manages registered checkers and caches results briefly
// so probes cannot hammer the dependencies.
type HealthCheck struct {
	version  string
	checkers map[string]Checker
	logger   *zap.Logger
	mu       sync.RWMutex
	cache    *Response
	cachedAt time.Time
	cacheTTL time.Duration
}

// New creates a new health check instance
func New(version string, logger *zap.Logger) *HealthCheck {
	return &HealthCheck{
		version:  version,
		checkers: make(map[string]Checker),
		logger:   logger,
		cacheTTL: 5 * time.Second,
	}
}

// Register registers a health checker
func (h *HealthCheck) Register(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// Check runs all registered checkers and aggregates the result.
func (h *HealthCheck) Check(ctx context.Context) Response {
	h.mu.RLock()
	if h.cache != nil && time.Since(h.cachedAt) < h.cacheTTL {
		cached := *h.cache
		h.mu.RUnlock()
		return cached
	}
	checkers := make(map[string]Checker, len(h.checkers))
	for name, c := range h.checkers {
		checkers[name] = c
	}
	h.mu.RUnlock()

	start := time.Now()
	checks := make([]Check, 0, len(checkers))
	status := StatusHealthy

	for name, checker := range checkers {
		check := checker.Check(ctx)
		if check.Name == "" {
			check.Name = name
		}
		checks = append(checks, check)

		switch check.Status {
		case StatusUnhealthy:
			status = StatusUnhealthy
		case StatusDegraded:
			if status == StatusHealthy {
				status = StatusDegraded
			}
		}
	}

	response := Response{
		Status:        status,
		Version:       h.version,
		Timestamp:     time.Now().UTC(),
		Checks:        checks,
		TotalDuration: time.Since(start) / time.Millisecond,
	}

	h.mu.Lock()
	h.cache = &response
	h.cachedAt = time.Now()
	h.mu.Unlock()

	return response
}

// Handler returns the HTTP handler for the health endpoint. Unhealthy
// aggregates map to 503 so load balancers stop routing traffic.
func (h *HealthCheck) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := h.Check(r.Context())

		statusCode := http.StatusOK
		if response.Status == StatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode health response", zap.Error(err))
		}
	}
}

// LivenessHandler returns a minimal handler that only proves the
// process is serving requests.
func (h *HealthCheck) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "alive"})
	}
}
