// cmd/mathserver — HTTP tool server for the mathkit numeric core.
//
// Exposes the calculators as a JSON endpoint for teaching frontends and
// agent frameworks.
//
// Usage:
//   go run ./cmd/mathserver -port 8080
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/mathcodelab/mathkit"
)

const maxBodyBytes = 1 << 20 // 1 MiB

var jsonx = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	flag.Parse()

	mux := http.NewServeMux()

	// POST /tool dispatches one calculator call.
	mux.HandleFunc("/tool", func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic in /tool: %v\n%s", rec, string(debug.Stack()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		defer r.Body.Close()

		dec := jsonx.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req mathkit.ToolRequest
		if err := dec.Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = jsonx.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		// One JSON document per request; reject anything after it.
		if dec.More() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = jsonx.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON: trailing data"})
			return
		}

		resp := mathkit.HandleToolCall(req)
		w.Header().Set("Content-Type", "application/json")
		_ = jsonx.NewEncoder(w).Encode(resp)
	})

	// GET /schema serves the calculator definitions for agent registration.
	mux.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, mathkit.ToolSpec())
	})

	// GET /health reports liveness.
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = jsonx.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("mathkit tool server listening on %s", addr)
	log.Printf("  POST /tool   — run a calculator")
	log.Printf("  GET  /schema — calculator definitions")
	log.Printf("  GET  /health — liveness")

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
