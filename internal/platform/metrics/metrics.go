// Package metrics provides observability for the studio server.
package metrics

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Collector gathers performance metrics.
type Collector struct {
	// Availability metrics
	AvailabilityChecks int64
	AvailabilityDenied int64

	// Match metrics
	MatchRuns       int64
	MatchLatencySum int64 // nanoseconds
	MatchLatencyMax int64
	LastMatchTime   time.Time

	// Session metrics
	SessionsCreated int64
	SessionsActive  int64
	TraitRepairs    int64

	// Event metrics
	EventsWritten    int64
	EventWriteLatSum int64
	EventWriteLatMax int64
	EventWriteErrors int64

	// WebSocket metrics
	WSConnectionsActive int64
	WSMessagesIn        int64
	WSMessagesOut       int64
	WSErrors            int64

	// System
	StartTime time.Time
	mu        sync.RWMutex
}

// Global collector instance
var collector = &Collector{
	StartTime: time.Now(),
}

// Get returns the global collector.
func Get() *Collector {
	return collector
}

// RecordAvailabilityCheck records one trait availability evaluation.
func (c *Collector) RecordAvailabilityCheck(denied bool) {
	atomic.AddInt64(&c.AvailabilityChecks, 1)
	if denied {
		atomic.AddInt64(&c.AvailabilityDenied, 1)
	}
}

// RecordMatch records a full quiz scoring run over the population.
func (c *Collector) RecordMatch(latency time.Duration) {
	atomic.AddInt64(&c.MatchRuns, 1)
	atomic.AddInt64(&c.MatchLatencySum, int64(latency))

	// Update max (non-atomic but acceptable for metrics)
	if int64(latency) > atomic.LoadInt64(&c.MatchLatencyMax) {
		atomic.StoreInt64(&c.MatchLatencyMax, int64(latency))
	}

	c.mu.Lock()
	c.LastMatchTime = time.Now()
	c.mu.Unlock()
}

// RecordSession records session lifecycle changes.
func (c *Collector) RecordSession(delta int64) {
	if delta > 0 {
		atomic.AddInt64(&c.SessionsCreated, delta)
	}
	atomic.AddInt64(&c.SessionsActive, delta)
}

// RecordTraitRepair records an automatic build repair.
func (c *Collector) RecordTraitRepair() {
	atomic.AddInt64(&c.TraitRepairs, 1)
}

// RecordEventWrite records an event write to the database.
func (c *Collector) RecordEventWrite(latency time.Duration, err error) {
	atomic.AddInt64(&c.EventsWritten, 1)
	atomic.AddInt64(&c.EventWriteLatSum, int64(latency))

	if int64(latency) > atomic.LoadInt64(&c.EventWriteLatMax) {
		atomic.StoreInt64(&c.EventWriteLatMax, int64(latency))
	}

	if err != nil {
		atomic.AddInt64(&c.EventWriteErrors, 1)
	}
}

// RecordWSConnection records WebSocket connection changes.
func (c *Collector) RecordWSConnection(delta int64) {
	atomic.AddInt64(&c.WSConnectionsActive, delta)
}

// RecordWSMessage records WebSocket messages.
func (c *Collector) RecordWSMessage(incoming bool) {
	if incoming {
		atomic.AddInt64(&c.WSMessagesIn, 1)
	} else {
		atomic.AddInt64(&c.WSMessagesOut, 1)
	}
}

// RecordWSError records a WebSocket error.
func (c *Collector) RecordWSError() {
	atomic.AddInt64(&c.WSErrors, 1)
}

// Snapshot returns current metrics as a map.
func (c *Collector) Snapshot() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	matchRuns := atomic.LoadInt64(&c.MatchRuns)
	eventsWritten := atomic.LoadInt64(&c.EventsWritten)

	// Calculate averages
	var matchAvg, eventAvg float64
	if matchRuns > 0 {
		matchAvg = float64(atomic.LoadInt64(&c.MatchLatencySum)) / float64(matchRuns) / 1e6 // ms
	}
	if eventsWritten > 0 {
		eventAvg = float64(atomic.LoadInt64(&c.EventWriteLatSum)) / float64(eventsWritten) / 1e6
	}

	return map[string]interface{}{
		"uptime_seconds": time.Since(c.StartTime).Seconds(),

		"availability": map[string]interface{}{
			"checks": atomic.LoadInt64(&c.AvailabilityChecks),
			"denied": atomic.LoadInt64(&c.AvailabilityDenied),
		},

		"match": map[string]interface{}{
			"runs":           matchRuns,
			"avg_latency_ms": matchAvg,
			"max_latency_ms": float64(atomic.LoadInt64(&c.MatchLatencyMax)) / 1e6,
			"last_run":       c.LastMatchTime.Format(time.RFC3339),
		},

		"sessions": map[string]interface{}{
			"created": atomic.LoadInt64(&c.SessionsCreated),
			"active":  atomic.LoadInt64(&c.SessionsActive),
			"repairs": atomic.LoadInt64(&c.TraitRepairs),
		},

		"events": map[string]interface{}{
			"written":          eventsWritten,
			"avg_write_lat_ms": eventAvg,
			"max_write_lat_ms": float64(atomic.LoadInt64(&c.EventWriteLatMax)) / 1e6,
			"errors":           atomic.LoadInt64(&c.EventWriteErrors),
		},

		"websocket": map[string]interface{}{
			"active_connections": atomic.LoadInt64(&c.WSConnectionsActive),
			"messages_in":        atomic.LoadInt64(&c.WSMessagesIn),
			"messages_out":       atomic.LoadInt64(&c.WSMessagesOut),
			"errors":             atomic.LoadInt64(&c.WSErrors),
		},
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-cache")

		snapshot := collector.Snapshot()
		json.NewEncoder(w).Encode(snapshot)
	}
}

// PrometheusHandler returns metrics in Prometheus format.
func PrometheusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		c := collector

		// Availability metrics
		fmt.Fprintf(w, "# HELP studio_availability_checks Total availability evaluations\n")
		fmt.Fprintf(w, "# TYPE studio_availability_checks counter\n")
		fmt.Fprintf(w, "studio_availability_checks %d\n\n", atomic.LoadInt64(&c.AvailabilityChecks))

		fmt.Fprintf(w, "# HELP studio_availability_denied Availability evaluations that denied a trait\n")
		fmt.Fprintf(w, "# TYPE studio_availability_denied counter\n")
		fmt.Fprintf(w, "studio_availability_denied %d\n\n", atomic.LoadInt64(&c.AvailabilityDenied))

		// Match metrics
		fmt.Fprintf(w, "# HELP studio_match_runs Total population scoring runs\n")
		fmt.Fprintf(w, "# TYPE studio_match_runs counter\n")
		fmt.Fprintf(w, "studio_match_runs %d\n\n", atomic.LoadInt64(&c.MatchRuns))

		fmt.Fprintf(w, "# HELP studio_match_latency_max_ms Maximum scoring run latency\n")
		fmt.Fprintf(w, "# TYPE studio_match_latency_max_ms gauge\n")
		fmt.Fprintf(w, "studio_match_latency_max_ms %.2f\n\n", float64(atomic.LoadInt64(&c.MatchLatencyMax))/1e6)

		// Session metrics
		fmt.Fprintf(w, "# HELP studio_sessions_active Active builder sessions\n")
		fmt.Fprintf(w, "# TYPE studio_sessions_active gauge\n")
		fmt.Fprintf(w, "studio_sessions_active %d\n\n", atomic.LoadInt64(&c.SessionsActive))

		fmt.Fprintf(w, "# HELP studio_trait_repairs Total automatic build repairs\n")
		fmt.Fprintf(w, "# TYPE studio_trait_repairs counter\n")
		fmt.Fprintf(w, "studio_trait_repairs %d\n\n", atomic.LoadInt64(&c.TraitRepairs))

		// Event metrics
		fmt.Fprintf(w, "# HELP studio_events_written Total events written\n")
		fmt.Fprintf(w, "# TYPE studio_events_written counter\n")
		fmt.Fprintf(w, "studio_events_written %d\n\n", atomic.LoadInt64(&c.EventsWritten))

		fmt.Fprintf(w, "# HELP studio_event_write_errors Total event write errors\n")
		fmt.Fprintf(w, "# TYPE studio_event_write_errors counter\n")
		fmt.Fprintf(w, "studio_event_write_errors %d\n\n", atomic.LoadInt64(&c.EventWriteErrors))

		// WebSocket metrics
		fmt.Fprintf(w, "# HELP studio_ws_connections Active WebSocket connections\n")
		fmt.Fprintf(w, "# TYPE studio_ws_connections gauge\n")
		fmt.Fprintf(w, "studio_ws_connections %d\n\n", atomic.LoadInt64(&c.WSConnectionsActive))

		fmt.Fprintf(w, "# HELP studio_ws_messages_total Total WebSocket messages\n")
		fmt.Fprintf(w, "# TYPE studio_ws_messages_total counter\n")
		fmt.Fprintf(w, "studio_ws_messages_total{direction=\"in\"} %d\n", atomic.LoadInt64(&c.WSMessagesIn))
		fmt.Fprintf(w, "studio_ws_messages_total{direction=\"out\"} %d\n", atomic.LoadInt64(&c.WSMessagesOut))
	}
}
