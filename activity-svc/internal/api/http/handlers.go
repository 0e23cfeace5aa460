package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rik-restaurant/activity-svc/internal/service"
	"rik-restaurant/auth"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type Handler struct {
	Activity service.ActivityServiceInterface
	Hub      *service.Hub
	Upgrader websocket.Upgrader
}

func NewHandler(activity service.ActivityServiceInterface, hub *service.Hub) *Handler {
	return &Handler{
		Activity: activity,
		Hub:      hub,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	r.Handle("/ws/activity", auth.RequireUser(http.HandlerFunc(h.stream))).Methods(http.MethodGet)

	api := r.PathPrefix("/api/activity").Subrouter()
	api.Handle("/users/{identity}", auth.RequireUser(http.HandlerFunc(h.forIdentity))).Methods(http.MethodGet)
	api.Handle("/counts", auth.RequireAdmin(http.HandlerFunc(h.counts))).Methods(http.MethodGet)
	api.Handle("", auth.RequireAdmin(http.HandlerFunc(h.recent))).Methods(http.MethodGet)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func limitParam(r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) recent(w http.ResponseWriter, r *http.Request) {
	limit, ok := limitParam(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	events, err := h.Activity.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to read recent activity")
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// forIdentity lets admins read any feed; everyone else only their own.
func (h *Handler) forIdentity(w http.ResponseWriter, r *http.Request) {
	identity := mux.Vars(r)["identity"]
	p := auth.PrincipalFrom(r.Context())
	if !p.IsAdmin() && !strings.EqualFold(p.Email, identity) {
		writeJSONError(w, http.StatusForbidden, "not allowed to read this feed")
		return
	}
	limit, ok := limitParam(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	events, err := h.Activity.ForIdentity(r.Context(), identity, limit)
	if err != nil {
		log.Error().Err(err).Str("identity", identity).Msg("failed to read activity")
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *Handler) counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Activity.Counts(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to read activity counts")
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// stream upgrades to a websocket. Admins receive every event, users only
// their own.
func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	p := auth.PrincipalFrom(r.Context())
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	identity := p.Email
	if p.IsAdmin() {
		identity = service.FirehoseIdentity
	}
	client := &service.Client{Identity: identity, Conn: conn}
	h.Hub.Register(client)
	defer h.Hub.Unregister(client)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := client.Ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
