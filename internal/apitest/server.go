// Package apitest provides an in-memory status-check API for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// StatusCheck is the record the API stores
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// API is a fake of the status-check service
type API struct {
	mu     sync.Mutex
	checks []StatusCheck

	// Overrides: a non-zero status replaces the normal answer of that route
	RootStatus   int
	CreateStatus int
	ListStatus   int
	// OmitID drops the id field from created records
	OmitID bool
	// Requests counts requests per "METHOD path"
	Requests map[string]int
	// ContentTypes records the Content-Type header per "METHOD path"
	ContentTypes map[string]string
}

// New creates an empty API
func New() *API {
	return &API{Requests: make(map[string]int), ContentTypes: make(map[string]string)}
}

// Router returns the chi router serving the API
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(a.track)
	r.Route("/api", func(r chi.Router) {
		r.Get("/", a.root)
		r.Post("/status", a.createStatusCheck)
		r.Get("/status", a.listStatusChecks)
	})
	return r
}

// Start serves the API on a local httptest server
func (a *API) Start() *httptest.Server {
	return httptest.NewServer(a.Router())
}

// Checks returns the stored records
func (a *API) Checks() []StatusCheck {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]StatusCheck, len(a.checks))
	copy(out, a.checks)
	return out
}

func (a *API) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		a.mu.Lock()
		a.Requests[key]++
		a.ContentTypes[key] = r.Header.Get("Content-Type")
		a.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (a *API) root(w http.ResponseWriter, r *http.Request) {
	if a.RootStatus != 0 {
		http.Error(w, http.StatusText(a.RootStatus), a.RootStatus)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

func (a *API) createStatusCheck(w http.ResponseWriter, r *http.Request) {
	if a.CreateStatus != 0 {
		http.Error(w, http.StatusText(a.CreateStatus), a.CreateStatus)
		return
	}

	var in struct {
		ClientName string `json:"client_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.ClientName == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "client_name is required"})
		return
	}

	check := StatusCheck{ID: uuid.NewString(), ClientName: in.ClientName, Timestamp: time.Now().UTC()}
	a.mu.Lock()
	a.checks = append(a.checks, check)
	a.mu.Unlock()

	if a.OmitID {
		writeJSON(w, http.StatusOK, map[string]any{"client_name": check.ClientName, "timestamp": check.Timestamp})
		return
	}
	writeJSON(w, http.StatusOK, check)
}

func (a *API) listStatusChecks(w http.ResponseWriter, r *http.Request) {
	if a.ListStatus != 0 {
		http.Error(w, http.StatusText(a.ListStatus), a.ListStatus)
		return
	}
	writeJSON(w, http.StatusOK, a.Checks())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
