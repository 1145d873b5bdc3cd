// Package web serves the dictionary diagnostics API over HTTP.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/code972/hebmorph/internal/dict"
	"github.com/code972/hebmorph/internal/ports"
)

// Server exposes dictionary-backed word checks and a health endpoint. It
// only ever reads the shared dictionary.
type Server struct {
	dict     *dict.Dictionary
	analyzer ports.Analyzer
	listener net.Listener
	httpSrv  *http.Server
	started  time.Time
	stopOnce sync.Once
}

// CheckWordResult is the JSON response for /api/check-word.
type CheckWordResult struct {
	Word   string   `json:"word"`
	Found  bool     `json:"found"`
	Lemmas []string `json:"lemmas,omitempty"`
}

// HealthResult is the JSON response for /api/health.
type HealthResult struct {
	Status     string `json:"status"`
	Dictionary string `json:"dictionary"`
	Entries    int    `json:"entries"`
	Uptime     string `json:"uptime"`
}

// NewServer creates the diagnostics server. The analyzer backs tolerant
// word checks (prefix-stripping lookups).
func NewServer(d *dict.Dictionary, analyzer ports.Analyzer) *Server {
	return &Server{dict: d, analyzer: analyzer}
}

// Start begins listening on addr and serves in the background.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.started = time.Now()

	s.httpSrv = &http.Server{Handler: s.mux()}
	go s.httpSrv.Serve(ln)
	return nil
}

func (s *Server) mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", get(s.handleHealth))
	mux.HandleFunc("/api/check-word", get(s.handleCheckWord))
	return mux
}

// get restricts a handler to GET/HEAD requests, matching what the
// go1.22+ ServeMux "GET /path" patterns do on older toolchains.
func get(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

// Stop gracefully shuts down the server. Idempotent.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		if s.httpSrv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.httpSrv.Shutdown(ctx)
		}
	})
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Port returns the bound port number.
func (s *Server) Port() int {
	if s.listener == nil {
		return 0
	}
	return s.listener.Addr().(*net.TCPAddr).Port
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	result := HealthResult{
		Status:     "ok",
		Dictionary: s.dict.Name(),
		Entries:    s.dict.Len(),
		Uptime:     time.Since(s.started).Round(time.Second).String(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (s *Server) handleCheckWord(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		http.Error(w, `{"error":"missing word parameter"}`, http.StatusBadRequest)
		return
	}
	tolerant := r.URL.Query().Get("tolerant") == "true"

	result := CheckWordResult{Word: word}
	if lemmas, ok := s.dict.Lookup(word); ok {
		result.Found = true
		for _, lm := range lemmas {
			result.Lemmas = append(result.Lemmas, lm.Text)
		}
	} else if tolerant && s.analyzer != nil {
		// Tolerant mode runs the full analyzer so prefix-stripped lookups count.
		for _, tok := range s.analyzer.Analyze(word) {
			if tok.Lemma {
				result.Found = true
				result.Lemmas = append(result.Lemmas, tok.Text)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
