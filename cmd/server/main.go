// Command server exposes the morphemize strategies as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/morphemizers
//	GET  /api/segment?morphemizer=<name>&expression=<text>
//	POST /api/segment   body: {"morphemizer":"...","expression":"..."}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/rs/cors"

	morphemize "github.com/lexitools/morphemize"
)

// ---- JSON response types ------------------------------------------------

type morphemizerJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type morphemizersResponse struct {
	Morphemizers []morphemizerJSON `json:"morphemizers"`
}

type segmentRequest struct {
	Morphemizer string `json:"morphemizer"`
	Expression  string `json:"expression"`
}

type segmentResponse struct {
	Morphemizer string                `json:"morphemizer"`
	Expression  string                `json:"expression"`
	Morphemes   []morphemize.Morpheme `json:"morphemes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleMorphemizers(reg *morphemize.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		all := reg.All()
		out := make([]morphemizerJSON, 0, len(all))
		for _, m := range all {
			out = append(out, morphemizerJSON{
				Name:        m.Name(),
				Description: m.Description(),
			})
		}
		writeJSON(w, http.StatusOK, morphemizersResponse{Morphemizers: out})
	}
}

func handleSegment(reg *morphemize.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req segmentRequest
		switch r.Method {
		case http.MethodGet:
			req.Morphemizer = r.URL.Query().Get("morphemizer")
			req.Expression = r.URL.Query().Get("expression")
		case http.MethodPost:
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "body must be JSON with 'morphemizer' and 'expression' fields")
				return
			}
		default:
			writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
			return
		}
		if req.Morphemizer == "" {
			writeError(w, http.StatusBadRequest, "missing 'morphemizer'")
			return
		}

		m, ok := reg.ByName(req.Morphemizer)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("morphemizer %q not found", req.Morphemizer))
			return
		}

		morphs, err := m.Morphemes(req.Expression)
		if err != nil {
			slog.Error("segment", "morphemizer", req.Morphemizer, "error", err)
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		if morphs == nil {
			morphs = []morphemize.Morpheme{}
		}
		writeJSON(w, http.StatusOK, segmentResponse{
			Morphemizer: req.Morphemizer,
			Expression:  req.Expression,
			Morphemes:   morphs,
		})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	frequency := flag.String("frequency", "", "path to the Vietnamese frequency/vocabulary file")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	prefs := morphemize.NewPreferences()
	if *frequency != "" {
		prefs.Set(morphemize.KeyFrequencyListPath, *frequency)
	}
	reg := morphemize.NewRegistry(morphemize.WithPreferences(prefs))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/morphemizers", handleMorphemizers(reg))
	mux.HandleFunc("/api/segment", handleSegment(reg))
	handler := cors.Default().Handler(mux)

	slog.Info("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
