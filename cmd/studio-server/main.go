// Package main is the entry point for the Meebit Studio server.
// It only handles dependency injection and server initialization.
// NO business logic belongs here.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"

	"github.com/MeebitForge/MeebitStudio/server/internal/builder"
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/quiz"
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/rules"
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
	"github.com/MeebitForge/MeebitStudio/server/internal/events"
	"github.com/MeebitForge/MeebitStudio/server/internal/infra/catalog"
	"github.com/MeebitForge/MeebitStudio/server/internal/infra/storage"
	"github.com/MeebitForge/MeebitStudio/server/internal/matcher"
	"github.com/MeebitForge/MeebitStudio/server/internal/network"
	"github.com/MeebitForge/MeebitStudio/server/internal/platform/logger"
	"github.com/MeebitForge/MeebitStudio/server/internal/platform/metrics"
	"github.com/MeebitForge/MeebitStudio/server/internal/platform/tuning"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadRules prefers a rules file on disk and falls back to the latest
// document imported into SQLite.
func loadRules(ctx context.Context, rulesPath string, repo storage.RulesRepository, appLogger *logger.Logger) (*rules.Index, error) {
	if rulesPath != "" {
		doc, err := catalog.LoadRulesDocument(rulesPath)
		if err != nil {
			return nil, err
		}
		raw, _ := os.ReadFile(rulesPath)
		if _, err := repo.Save(ctx, rulesPath, string(raw)); err != nil {
			appLogger.Warn("Failed to archive rules document: " + err.Error())
		}
		appLogger.Info("Loaded rules document from " + rulesPath)
		return rules.NewIndex(doc), nil
	}

	record, err := repo.LoadLatest(ctx)
	if err != nil {
		return nil, err
	}
	if record == nil {
		appLogger.Warn("No rules document available. Starting with an empty index.")
		return rules.NewIndex(nil), nil
	}
	doc, err := catalog.ParseRulesDocument([]byte(record.Document))
	if err != nil {
		return nil, err
	}
	appLogger.Info("Loaded rules document from database (source: " + record.Source + ")")
	return rules.NewIndex(doc), nil
}

// loadPopulation prefers a population file on disk and falls back to the
// candidates imported into SQLite.
func loadPopulation(ctx context.Context, populationPath string, repo storage.CandidateRepository, appLogger *logger.Logger) ([]*trait.Candidate, error) {
	if populationPath != "" {
		candidates, err := catalog.LoadPopulation(populationPath)
		if err != nil {
			return nil, err
		}
		if err := repo.ReplaceAll(ctx, catalog.ToRecords(candidates)); err != nil {
			appLogger.Warn("Failed to import population into database: " + err.Error())
		}
		appLogger.Info("Loaded population from " + populationPath)
		return candidates, nil
	}

	records, err := repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.FromRecords(records), nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[STUDIO-SERVER] No .env file found, using environment variables")
	}

	log.Println("[STUDIO-SERVER] Initializing Meebit Studio Server...")

	appLogger := logger.NewLogger()
	tune := tuning.DefaultConfig()

	dbPath := envOr("STUDIO_DB", "studio.db")
	appLogger.Info("Initializing SQLite database '" + dbPath + "'...")
	db, err := storage.InitSQLite(dbPath)
	if err != nil {
		appLogger.Error("Failed to initialize SQLite: " + err.Error())
		os.Exit(1)
	}
	db.SetMaxOpenConns(tune.DBMaxOpenConns)
	db.SetMaxIdleConns(tune.DBMaxIdleConns)

	eventRepo := storage.NewSQLiteEventRepository(db)
	candidateRepo := storage.NewSQLiteCandidateRepository(db)
	rulesRepo := storage.NewSQLiteRulesRepository(db)
	matchRepo := storage.NewSQLiteMatchRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appLogger.Info("Loading rules document...")
	index, err := loadRules(ctx, os.Getenv("STUDIO_RULES_PATH"), rulesRepo, appLogger)
	if err != nil {
		appLogger.Error("Failed to load rules: " + err.Error())
		os.Exit(1)
	}

	appLogger.Info("Loading candidate population...")
	population, err := loadPopulation(ctx, os.Getenv("STUDIO_POPULATION_PATH"), candidateRepo, appLogger)
	if err != nil {
		appLogger.Error("Failed to load population: " + err.Error())
		os.Exit(1)
	}
	if len(population) == 0 {
		appLogger.Warn("Candidate population is empty. Quiz matching will be unavailable.")
	}

	appLogger.Info("Bootstrapping EventLog...")
	eventLog := events.NewEventLog(storage.NewEventWriter(eventRepo))

	appLogger.Info("Bootstrapping session manager...")
	manager := builder.NewManager(index, eventLog, appLogger)

	quizMatcher := matcher.NewMatcher(population, tune.ScoreWorkers, eventLog, matchRepo, appLogger)

	// Idle session reaper.
	go func() {
		reapTicker := time.NewTicker(time.Minute)
		defer reapTicker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-reapTicker.C:
				if n := manager.ReapIdle(30 * time.Minute); n > 0 {
					metrics.Get().RecordSession(int64(-n))
				}
			}
		}
	}()

	appLogger.Info("Bootstrapping WebSocket Hub...")
	hub := network.NewHub(eventLog, appLogger)
	go hub.Run(ctx)
	hub.StartEventForwarder(ctx, tune.EventChannelBuffer)

	// Setup API Routes
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r, appLogger)
	})

	http.HandleFunc("/api/session", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		type requestParams struct {
			Type   string `json:"type"`
			Gender string `json:"gender"`
		}
		var req requestParams
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		if manager.Count() >= tune.MaxSessions {
			http.Error(w, "Too many active sessions", http.StatusServiceUnavailable)
			return
		}

		session := manager.Create()
		metrics.Get().RecordSession(1)

		if req.Type != "" {
			if err := session.SetType(trait.Type(req.Type)); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		if req.Gender != "" {
			session.SetGender(trait.Gender(req.Gender))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(session.Snapshot())
	})

	http.HandleFunc("/api/session/select", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		type requestParams struct {
			SessionID string `json:"session_id"`
			Category  string `json:"category"`
			Value     string `json:"value"`
			Clear     bool   `json:"clear"`
		}
		var req requestParams
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		session, err := manager.Get(req.SessionID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		// Repairs emitted by this mutation are everything appended for the
		// session after this point.
		mark := eventLog.Len()

		cat := trait.Category(req.Category)
		if req.Clear {
			session.ClearTrait(cat)
		} else if err := session.SelectTrait(cat, req.Value); err != nil {
			metrics.Get().RecordAvailabilityCheck(true)
			http.Error(w, err.Error(), http.StatusConflict)
			return
		} else {
			metrics.Get().RecordAvailabilityCheck(false)
		}

		var repairs []events.TraitPayload
		for _, e := range eventLog.Replay()[mark:] {
			if e.SessionID != session.ID || e.Type != events.EventTypeTraitRepaired {
				continue
			}
			if p, ok := e.Payload.(events.TraitPayload); ok {
				repairs = append(repairs, p)
				metrics.Get().RecordTraitRepair()
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"session": session.Snapshot(),
			"repairs": repairs,
		})
	})

	http.HandleFunc("/api/session/availability", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		session, err := manager.Get(r.URL.Query().Get("session_id"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		snap := session.Snapshot()
		idx := manager.Index()

		type valueStatus struct {
			Value        string             `json:"value"`
			Count        int                `json:"count"`
			Rarity       trait.Rarity       `json:"rarity"`
			Availability rules.Availability `json:"availability"`
		}
		type categoryStatus struct {
			Category trait.Category    `json:"category"`
			Label    string            `json:"label"`
			Status   rules.Disablement `json:"status"`
			Values   []valueStatus     `json:"values,omitempty"`
		}

		onlyCat := trait.Category(r.URL.Query().Get("category"))
		total := idx.TotalSupply()

		var out []categoryStatus
		for _, cat := range trait.CategoryOrder {
			if onlyCat != "" && cat != onlyCat {
				continue
			}
			cs := categoryStatus{
				Category: cat,
				Label:    trait.CategoryLabels[cat],
				Status:   session.CategoryDisabled(cat),
			}
			if !cs.Status.Disabled {
				for _, vc := range idx.ValuesForCategory(snap.Type, cat) {
					avail := session.CheckAvailability(cat, vc.Value)
					metrics.Get().RecordAvailabilityCheck(!avail.Available)
					cs.Values = append(cs.Values, valueStatus{
						Value:        vc.Value,
						Count:        vc.Count,
						Rarity:       trait.RarityOf(vc.Count, total),
						Availability: avail,
					})
				}
			}
			out = append(out, cs)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"session":    snap,
			"categories": out,
		})
	})

	reconstructor := storage.NewReconstructor(eventRepo)
	http.HandleFunc("/api/session/history", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		sessionID := r.URL.Query().Get("session_id")
		if sessionID == "" {
			http.Error(w, "session_id is required", http.StatusBadRequest)
			return
		}

		state, err := reconstructor.RebuildSession(r.Context(), sessionID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		recap, err := reconstructor.GenerateRecap(r.Context(), sessionID, time.Time{})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"state":  state,
			"events": recap,
		})
	})

	http.HandleFunc("/api/quiz/match", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		type requestParams struct {
			SessionID string             `json:"session_id"`
			Answers   []quiz.AnswerIndex `json:"answers"`
		}
		var req requestParams
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		outcome, err := quizMatcher.Match(r.Context(), req.SessionID, req.Answers)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(outcome)
	})

	http.HandleFunc("/api/traits", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		t := trait.Type(r.URL.Query().Get("type"))
		if t == "" {
			t = trait.TypeHuman
		}

		idx := manager.Index()
		total := idx.TotalSupply()

		type valueEntry struct {
			Value  string       `json:"value"`
			Count  int          `json:"count"`
			Rarity trait.Rarity `json:"rarity"`
		}
		catalogOut := make(map[string][]valueEntry)
		for _, cat := range idx.AvailableCategories(t) {
			for _, vc := range idx.ValuesForCategory(t, cat) {
				catalogOut[string(cat)] = append(catalogOut[string(cat)], valueEntry{
					Value:  vc.Value,
					Count:  vc.Count,
					Rarity: trait.RarityOf(vc.Count, total),
				})
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"type":       t,
			"types":      idx.Types(),
			"categories": catalogOut,
		})
	})

	activity := network.NewActivityHandler(eventLog, appLogger)
	activity.RegisterRoutes(http.DefaultServeMux)

	http.HandleFunc("/metrics", metrics.Handler())
	http.HandleFunc("/metrics/prometheus", metrics.PrometheusHandler())

	port := envOr("PORT", "8080")
	go func() {
		log.Println("[STUDIO-SERVER] HTTP API & WS Server listening on :" + port)
		if err := http.ListenAndServe(":"+port, nil); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	log.Println("[STUDIO-SERVER] Server running. Press Ctrl+C to exit.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[STUDIO-SERVER] Shutting down...")
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow cross-origin requests for the frontend dev server
	},
}

// serveWs handles websocket requests from the peer.
func serveWs(hub *network.Hub, w http.ResponseWriter, r *http.Request, log *logger.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("Failed to upgrade websocket connection")
		return
	}

	client := network.NewClient(hub, conn)
	client.Register()

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.WritePump()
	go client.ReadPump()
}
