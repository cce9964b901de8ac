// Package devserver is an in-memory stand-in for the authoritative remote
// store. It implements the sync HTTP contract just faithfully enough for
// integration tests and local development; it is not a real backend and
// forgets everything on restart.
package devserver

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/splittab/splittab/pkg/api"
)

// Server holds the in-memory receipt set and the fault-injection knobs the
// engine tests twist.
type Server struct {
	logger *slog.Logger

	mu       sync.Mutex
	token    string
	receipts map[string]*api.Receipt

	// fault injection
	rejectNext   int  // reject this many trailing receipts on the next push
	gateAllowed  bool
	gateReason   string
	useSyncedIDs bool // include explicit syncedIds in push responses

	now func() time.Time
}

// New creates a devserver accepting the given bearer token.
func New(token string, logger *slog.Logger) *Server {
	return &Server{
		logger:      logger,
		token:       token,
		receipts:    make(map[string]*api.Receipt),
		gateAllowed: true,
		now:         time.Now,
	}
}

// Handler returns the HTTP handler for the sync contract.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /sync/push", s.requireAuth(s.handlePush))
	mux.HandleFunc("GET /sync/pull", s.requireAuth(s.handlePull))
	mux.HandleFunc("GET /sync/status", s.requireAuth(s.handleStatus))
	return mux
}

// RejectNext makes the next push reject its n trailing receipts.
func (s *Server) RejectNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectNext = n
}

// SetGate toggles the sync entitlement gate.
func (s *Server) SetGate(allowed bool, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gateAllowed = allowed
	s.gateReason = reason
}

// UseSyncedIDs makes push responses carry the explicit id list instead of
// relying on the positional count.
func (s *Server) UseSyncedIDs(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.useSyncedIDs = on
}

// ReceiptCount returns the number of stored receipts.
func (s *Server) ReceiptCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.receipts)
}

// Seed stores a receipt directly, as if another device had pushed it.
func (s *Server) Seed(r api.Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := r
	if stored.ServerID == "" {
		stored.ServerID = uuid.NewString()
	}
	if stored.SyncedAt == nil {
		t := s.now().UTC()
		stored.SyncedAt = &t
	}
	s.receipts[stored.ID] = &stored
}

func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" || token != s.token {
			s.writeError(w, http.StatusUnauthorized, "invalid or missing bearer token")
			return
		}
		next(w, r)
	}
}

func (s *Server) handlePush(w http.ResponseWriter, r *http.Request) {
	var req api.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid push body: %v", err))
		return
	}

	s.mu.Lock()
	reject := s.rejectNext
	s.rejectNext = 0
	if reject > len(req.Receipts) {
		reject = len(req.Receipts)
	}
	accepted := req.Receipts[:len(req.Receipts)-reject]

	resp := api.PushResponse{
		Success: true,
		Synced:  len(accepted),
		Errors:  reject,
	}

	syncedAt := s.now().UTC()
	for _, incoming := range accepted {
		stored := incoming
		if existing, ok := s.receipts[incoming.ID]; ok {
			stored.ServerID = existing.ServerID
		} else {
			stored.ServerID = uuid.NewString()
		}
		t := syncedAt
		stored.SyncedAt = &t
		s.receipts[stored.ID] = &stored
		if s.useSyncedIDs {
			resp.SyncedIDs = append(resp.SyncedIDs, stored.ID)
		}
	}
	s.mu.Unlock()

	s.logger.Info("push handled", "accepted", len(accepted), "rejected", reject)
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePull(w http.ResponseWriter, r *http.Request) {
	var since *time.Time
	if raw := r.URL.Query().Get("lastSyncAt"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid lastSyncAt: %v", err))
			return
		}
		since = &t
	}

	s.mu.Lock()
	resp := api.PullResponse{Success: true, Receipts: []api.Receipt{}}
	maxSyncedAt := time.Time{}
	if since != nil {
		maxSyncedAt = *since
	}
	for _, stored := range s.receipts {
		if stored.SyncedAt == nil {
			continue
		}
		if stored.SyncedAt.After(maxSyncedAt) {
			maxSyncedAt = *stored.SyncedAt
		}
		// Strictly-after filter: records at the watermark were already pulled.
		if since != nil && !stored.SyncedAt.After(*since) {
			continue
		}
		resp.Receipts = append(resp.Receipts, *stored)
	}
	s.mu.Unlock()

	if !maxSyncedAt.IsZero() {
		resp.LastSyncAt = &maxSyncedAt
	}

	s.logger.Info("pull handled", "returned", len(resp.Receipts))
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := api.SyncGateResponse{Allowed: s.gateAllowed, Reason: s.gateReason}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: http.StatusText(status), Message: message})
}
