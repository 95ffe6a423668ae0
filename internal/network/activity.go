// Package network - activity.go
// JSON export of the studio activity log. Lets spectators and moderators
// browse the immutable history of session events over plain HTTP.
package network

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/MeebitForge/MeebitStudio/server/internal/events"
	"github.com/MeebitForge/MeebitStudio/server/internal/platform/logger"
)

// ActivityHandler provides the activity feed API.
type ActivityHandler struct {
	eventLog *events.EventLog
	logger   *logger.Logger
}

// NewActivityHandler creates a new activity feed handler.
func NewActivityHandler(el *events.EventLog, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		eventLog: el,
		logger:   log,
	}
}

// FeedEvent is a sanitized event for public viewing.
type FeedEvent struct {
	ID        string      `json:"id"`
	Timestamp string      `json:"timestamp"`
	Type      string      `json:"type"`
	SessionID string      `json:"session_id"`
	Details   interface{} `json:"details,omitempty"`
}

// FeedResponse is the API response for the activity feed.
type FeedResponse struct {
	TotalEvents int         `json:"total_events"`
	FilteredBy  string      `json:"filtered_by,omitempty"`
	GeneratedAt string      `json:"generated_at"`
	Events      []FeedEvent `json:"events"`
}

// HandleFeed returns the activity feed, newest last.
// GET /api/activity?session_id=XXX&type=TRAIT_SELECTED&limit=N
func (ah *ActivityHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		ah.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	eventType := r.URL.Query().Get("type")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	allEvents := ah.eventLog.Replay()

	var feed []FeedEvent
	filterDesc := ""

	for _, e := range allEvents {
		if sessionID != "" {
			if e.SessionID != sessionID {
				continue
			}
			filterDesc = "Session " + sessionID
		}
		if eventType != "" && string(e.Type) != eventType {
			continue
		}
		feed = append(feed, ah.convertToFeedEvent(e))
	}

	if limit > 0 && len(feed) > limit {
		feed = feed[len(feed)-limit:]
	}

	response := FeedResponse{
		TotalEvents: len(feed),
		FilteredBy:  filterDesc,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Events:      feed,
	}

	ah.logger.Event("ACTIVITY_FEED", sessionID, "Events:"+strconv.Itoa(len(feed)))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleEventDetail returns details of a specific event.
// GET /api/activity/event?event_id=XXX
func (ah *ActivityHandler) HandleEventDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		ah.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	eventID := r.URL.Query().Get("event_id")
	if eventID == "" {
		ah.jsonError(w, "Missing event_id", http.StatusBadRequest)
		return
	}

	allEvents := ah.eventLog.Replay()
	for _, e := range allEvents {
		if e.ID == eventID {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(ah.convertToFeedEvent(e))
			return
		}
	}

	ah.jsonError(w, "Event not found", http.StatusNotFound)
}

// HandleStats returns aggregate statistics for the activity log.
// GET /api/activity/stats
func (ah *ActivityHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		ah.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	allEvents := ah.eventLog.Replay()

	stats := map[string]int{
		"total_events":     len(allEvents),
		"sessions_started": 0,
		"trait_selections": 0,
		"trait_repairs":    0,
		"quiz_matches":     0,
	}

	for _, e := range allEvents {
		switch e.Type {
		case events.EventTypeSessionStarted:
			stats["sessions_started"]++
		case events.EventTypeTraitSelected:
			stats["trait_selections"]++
		case events.EventTypeTraitRepaired:
			stats["trait_repairs"]++
		case events.EventTypeMatchCompleted:
			stats["quiz_matches"]++
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"stats":        stats,
	})
}

// RegisterRoutes sets up the activity API routes.
func (ah *ActivityHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/activity", ah.HandleFeed)
	mux.HandleFunc("/api/activity/event", ah.HandleEventDetail)
	mux.HandleFunc("/api/activity/stats", ah.HandleStats)
}

// convertToFeedEvent transforms an internal event to public format.
func (ah *ActivityHandler) convertToFeedEvent(e events.StudioEvent) FeedEvent {
	return FeedEvent{
		ID:        e.ID,
		Timestamp: e.Timestamp.Format(time.RFC3339),
		Type:      string(e.Type),
		SessionID: e.SessionID,
		Details:   e.Payload,
	}
}

// jsonError sends an error response.
func (ah *ActivityHandler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
