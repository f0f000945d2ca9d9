package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/nicolagi/guestbook/storage"
)

type Deps struct {
	Store     *storage.Failover
	Hostname  string
	StaticDir string
}

// New wires the guestbook routes over the store facade. The storage tier
// never errors outward, so every route here answers 200; the only non-200s
// come from the router itself, for paths that match nothing.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(crossOrigin)
	r.Use(secureHeaders)

	r.Get("/lrange/{key}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, deps.Store.Range(r.Context(), urlParam(r, "key")))
	})
	r.Get("/rpush/{key}/{value}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, deps.Store.Append(r.Context(), urlParam(r, "key"), urlParam(r, "value")))
	})
	r.Get("/info", func(w http.ResponseWriter, r *http.Request) {
		writeText(w, deps.Store.Info(r.Context()))
	})
	r.Get("/hello", func(w http.ResponseWriter, _ *http.Request) {
		writeText(w, fmt.Sprintf("Hello from guestbook. Your app is up! (host: %s)\n", deps.Hostname))
	})
	r.Get("/env", func(w http.ResponseWriter, _ *http.Request) {
		env := make(map[string]string)
		for _, kv := range os.Environ() {
			name, value, _ := strings.Cut(kv, "=")
			env[name] = value
		}
		writeJSON(w, env)
	})
	r.Handle("/*", http.FileServer(http.Dir(deps.StaticDir)))

	return r
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithField("err", err).Error("Failed writing response")
	}
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(body)); err != nil {
		log.WithField("err", err).Error("Failed writing response")
	}
}

// urlParam returns the named route parameter, unescaped. Chi hands back the
// raw segment when the request URL carried percent-escapes.
func urlParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if value, err := url.PathUnescape(raw); err == nil {
		return value
	}
	return raw
}

// The guestbook page may be served from a different origin than the API, as
// in the split-frontend deployments this app is used to demonstrate.
func crossOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}
