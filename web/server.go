package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/forgent-ai/changelog/report"
)

// Server serves a generated changelog artifact for local inspection
type Server struct {
	Router       *chi.Mux
	artifactPath string
}

// NewServer creates a preview server for the artifact at the given path
func NewServer(artifactPath string) *Server {
	s := &Server{artifactPath: artifactPath}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.healthCheck)
	r.Get("/api/changelog", s.getChangelog)
	r.Get("/", s.index)

	s.Router = r
}

// Start runs the server until it fails
func (s *Server) Start(port string) error {
	log.Printf("Serving changelog preview from %s on http://localhost:%s", s.artifactPath, port)
	return http.ListenAndServe(":"+port, s.Router)
}

func (s *Server) loadDocument() (report.ArtifactDocument, error) {
	raw, err := os.ReadFile(s.artifactPath)
	if err != nil {
		return report.ArtifactDocument{}, fmt.Errorf("read artifact: %w", err)
	}
	var doc report.ArtifactDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return report.ArtifactDocument{}, fmt.Errorf("parse artifact: %w", err)
	}
	return doc, nil
}

// healthCheck returns server health status
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "changelog-preview",
	})
}

// getChangelog returns the raw artifact document
func (s *Server) getChangelog(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadDocument()
	if err != nil {
		log.Printf("Error loading artifact: %v", err)
		http.Error(w, "Error loading changelog artifact", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(doc)
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Changelog {{.Metadata.ReleaseDate}}</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; }
section { border: 1px solid #ddd; border-radius: 6px; padding: 1rem; margin-bottom: 1rem; }
pre { white-space: pre-wrap; background: #f6f8fa; padding: 0.75rem; }
</style>
</head>
<body>
<h1>Changelog — {{.Metadata.ReleaseDate}}</h1>
<p>{{.Metadata.TotalPRs}} pull requests across {{len .Groups}} groups, generated {{.Metadata.GeneratedAt}}</p>
{{range .Groups}}
<section>
<h2>{{.Name}} ({{len .PullRequests}} PRs)</h2>
<pre>{{.Summary.Markdown}}</pre>
</section>
{{end}}
</body>
</html>`))

// index renders the grouped summaries as a simple HTML page
func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadDocument()
	if err != nil {
		log.Printf("Error loading artifact: %v", err)
		http.Error(w, "Error loading changelog artifact", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, doc); err != nil {
		log.Printf("Error rendering page: %v", err)
	}
}
