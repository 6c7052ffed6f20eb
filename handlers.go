package main

import (
	"log"
	"net/http"
	"time"
)

func newMux(f *Fetcher) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handleIndex(videoExtList()))
	mux.HandleFunc("GET /generate", handlePlaylist(f, false))
	mux.HandleFunc("GET /download", handlePlaylist(f, true))
	return logRequests(mux)
}

func handleIndex(exts []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := struct{ Exts []string }{Exts: exts}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, data); err != nil {
			log.Printf("[error] render index: %v", err)
		}
	}
}

// handlePlaylist serves /generate (inline text) and /download (attachment).
func handlePlaylist(f *Fetcher, attachment bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folderURL := r.URL.Query().Get("url")
		if folderURL == "" {
			writeText(w, http.StatusBadRequest, msgMissingURL)
			return
		}
		entries, err := FetchFolderLinks(r.Context(), f, folderURL)
		if err != nil {
			log.Printf("[error] %s: %v", folderURL, err)
			writeText(w, http.StatusInternalServerError, "Error: "+err.Error())
			return
		}
		if len(entries) == 0 {
			writeText(w, http.StatusNotFound, msgNoVideos)
			return
		}

		body := BuildM3U(entries)
		if attachment {
			w.Header().Set("Content-Disposition", `attachment; filename="`+playlistFilename+`"`)
			w.Header().Set("Content-Type", "audio/x-mpegurl; charset=utf-8")
		} else {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		}
		_, _ = w.Write([]byte(body))
	}
}

// writeText is http.Error without the trailing newline.
func writeText(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("[http] %s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
