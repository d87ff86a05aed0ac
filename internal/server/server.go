// Package server exposes the subdivision engine over a small local
// HTTP API for interactive preview tooling.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/zok213/RealEstate-sub001/pkg/spec"
	"github.com/zok213/RealEstate-sub001/pkg/subdiv"
	"github.com/zok213/RealEstate-sub001/pkg/validation"
)

// Server is the local development server for one project directory.
type Server struct {
	projectPath string
	port        int

	mu   sync.Mutex
	plan *subdiv.PlanResult
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/plan", s.handlePlan)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("POST /api/solve", s.handleSolve)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("landplan server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	project, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, validation.ValidateProject(project))
}

func (s *Server) handleSolve(w http.ResponseWriter, _ *http.Request) {
	project, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	report := validation.ValidateProject(project)
	if !report.Valid {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(report)
		return
	}

	plan, err := subdiv.BuildPlan(
		project.SitePolygon(),
		project.ExclusionPolygon(),
		project.Params.GridConfig(),
		project.Params.SubdivConfig(),
	)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.mu.Lock()
	s.plan = plan
	s.mu.Unlock()

	writeJSON(w, plan)
}

func (s *Server) handlePlan(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	plan := s.plan
	s.mu.Unlock()

	if plan == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("no plan computed yet; POST /api/solve first"))
		return
	}
	writeJSON(w, plan)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
