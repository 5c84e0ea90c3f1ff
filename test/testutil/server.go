// Package testutil provides an in-process fake of the package server for
// integration tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/artteam09/asmp/pkg/config"
	"github.com/artteam09/asmp/pkg/model"
	"github.com/artteam09/asmp/pkg/registry"
)

// RegistryServer is a fake package server speaking the client wire
// protocol. Tests seed it with package records and point the client at
// its URL.
type RegistryServer struct {
	Packages []*model.PackageRecord
	Info     model.ServerInfo

	// InstallScript, when set, is attached to every download response.
	InstallScript string

	// A non-empty error string switches the matching endpoint to a
	// success=false response carrying that message.
	SearchError   string
	InfoError     string
	DownloadError string
	StatusError   string

	// Requests counts handled calls per endpoint path.
	Requests map[string]int

	srv *httptest.Server
}

// NewRegistryServer starts a registry server seeded with the given
// packages. The caller must Close it.
func NewRegistryServer(packages ...*model.PackageRecord) *RegistryServer {
	s := &RegistryServer{
		Packages: packages,
		Info: model.ServerInfo{
			Name:          "ArtStudia Test Registry",
			APIVersion:    registry.APIVersion,
			PackagesCount: len(packages),
			Uptime:        "3 days, 4:05:06",
		},
		Requests: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(registry.EndpointSearch, s.handleSearch)
	mux.HandleFunc(registry.EndpointInfo, s.handleInfo)
	mux.HandleFunc(registry.EndpointDownload, s.handleDownload)
	mux.HandleFunc(registry.EndpointStatus, s.handleStatus)
	s.srv = httptest.NewServer(mux)
	return s
}

// URL returns the base URL of the running server.
func (s *RegistryServer) URL() string {
	return s.srv.URL
}

// Close shuts the server down. A closed server simulates an unreachable
// registry.
func (s *RegistryServer) Close() {
	s.srv.Close()
}

func (s *RegistryServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.Requests[registry.EndpointSearch]++

	var req registry.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.SearchError != "" {
		writeJSON(w, registry.SearchResponse{Result: failure(s.SearchError)})
		return
	}

	matches := make([]*model.PackageRecord, 0)
	for _, pkg := range s.Packages {
		if pkg.MatchesQuery(req.Query) {
			matches = append(matches, pkg)
		}
	}
	writeJSON(w, registry.SearchResponse{Result: success(), Packages: matches})
}

func (s *RegistryServer) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.Requests[registry.EndpointInfo]++

	var req registry.InfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.InfoError != "" {
		writeJSON(w, registry.InfoResponse{Result: failure(s.InfoError)})
		return
	}

	pkg := s.find(req.PackageName)
	if pkg == nil {
		writeJSON(w, registry.InfoResponse{Result: failure("Package not found: " + req.PackageName)})
		return
	}
	writeJSON(w, registry.InfoResponse{Result: success(), Package: pkg})
}

func (s *RegistryServer) handleDownload(w http.ResponseWriter, r *http.Request) {
	s.Requests[registry.EndpointDownload]++

	var req registry.DownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.DownloadError != "" {
		writeJSON(w, registry.DownloadResponse{Result: failure(s.DownloadError)})
		return
	}

	if s.find(req.PackageName) == nil {
		writeJSON(w, registry.DownloadResponse{Result: failure("Package not found: " + req.PackageName)})
		return
	}
	writeJSON(w, registry.DownloadResponse{
		Result:        success(),
		DownloadURL:   s.srv.URL + "/files/" + req.PackageName + "-" + req.Version + ".tar.gz",
		InstallScript: s.InstallScript,
	})
}

func (s *RegistryServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.Requests[registry.EndpointStatus]++

	var req registry.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.StatusError != "" {
		writeJSON(w, registry.StatusResponse{Result: failure(s.StatusError)})
		return
	}

	info := s.Info
	writeJSON(w, registry.StatusResponse{Result: success(), Server: &info})
}

func (s *RegistryServer) find(name string) *model.PackageRecord {
	for _, pkg := range s.Packages {
		if pkg.Name == name {
			return pkg
		}
	}
	return nil
}

func success() registry.Result {
	return registry.Result{Success: true}
}

func failure(msg string) registry.Result {
	return registry.Result{Success: false, Error: msg}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// SeedClientConfig writes a client config inside dir pointing at
// serverURL, turning dir into a ready-to-use state directory.
func SeedClientConfig(t *testing.T, dir, serverURL string) {
	t.Helper()
	store := config.New(filepath.Join(dir, config.FileName), "0.1.0")
	if _, err := store.SetServerURL(serverURL); err != nil {
		t.Fatalf("Failed to seed client config: %v", err)
	}
}
