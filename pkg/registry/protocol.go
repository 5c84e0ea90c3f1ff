// Package registry implements the client side of the ArtStudia package
// registry protocol: typed JSON requests and responses, the HTTP
// transport, and the client orchestration with local-cache fallback.
package registry

import (
	"time"

	"github.com/artteam09/asmp/pkg/model"
)

// Protocol constants for the ArtStudia registry API.
const (
	// AppName identifies the client suite in every request envelope.
	AppName = "ADK - ArtStudia Developer Kit"

	// APIVersion is the registry protocol version this client speaks.
	APIVersion = "0.1.0"
)

// Registry endpoints, relative to the configured server URL.
const (
	EndpointSearch   = "/api/packages/search"
	EndpointInfo     = "/api/packages/info"
	EndpointDownload = "/api/packages/download"
	EndpointStatus   = "/api/status"
)

// Request type discriminators carried in the type_request field.
const (
	requestTypeSearch   = "search"
	requestTypeInfo     = "package_info"
	requestTypeDownload = "download"
	requestTypePing     = "ping"
)

// Envelope carries the fields present in every request body. Embedding it
// in a request struct flattens the fields into the request's JSON object.
type Envelope struct {
	AppName       string `json:"app_name"`
	APIVersion    string `json:"api_version"`
	ClientVersion string `json:"client_version"`
	Timestamp     int64  `json:"timestamp"`
}

func newEnvelope(clientVersion string) Envelope {
	return Envelope{
		AppName:       AppName,
		APIVersion:    APIVersion,
		ClientVersion: clientVersion,
		Timestamp:     time.Now().Unix(),
	}
}

// SearchFilters narrow a search server-side.
type SearchFilters struct {
	Type   []string `json:"type"`
	Status []string `json:"status"`
}

func defaultSearchFilters() SearchFilters {
	return SearchFilters{
		Type:   []string{string(model.PackageTypeLibrary), string(model.PackageTypeTool)},
		Status: []string{"stable", "beta"},
	}
}

// SearchRequest asks the server for packages matching a query.
type SearchRequest struct {
	Envelope
	TypeRequest string        `json:"type_request"`
	Query       string        `json:"query"`
	Filters     SearchFilters `json:"filters"`
}

// InfoRequest asks for the full record of a single package. Version is
// optional; when empty the server answers with its latest record.
type InfoRequest struct {
	Envelope
	TypeRequest string `json:"type_request"`
	PackageName string `json:"package_name"`
	Version     string `json:"version,omitempty"`
}

// DownloadRequest asks for the download location of a package version.
type DownloadRequest struct {
	Envelope
	TypeRequest string `json:"type_request"`
	PackageName string `json:"package_name"`
	Version     string `json:"version"`
}

// StatusRequest asks for server health information.
type StatusRequest struct {
	Envelope
	TypeRequest string `json:"type_request"`
}

// Result carries the success flag and error message every response
// starts with.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ErrorMessage returns the server-reported error, or a placeholder when
// the server sent none.
func (r *Result) ErrorMessage() string {
	if r.Error == "" {
		return "unknown error"
	}
	return r.Error
}

// SearchResponse is the server's answer to a SearchRequest.
type SearchResponse struct {
	Result
	Packages []*model.PackageRecord `json:"packages"`
}

// InfoResponse is the server's answer to an InfoRequest.
type InfoResponse struct {
	Result
	Package *model.PackageRecord `json:"package"`
}

// DownloadResponse is the server's answer to a DownloadRequest.
type DownloadResponse struct {
	Result
	DownloadURL   string `json:"download_url"`
	InstallScript string `json:"install_script,omitempty"`
}

// StatusResponse is the server's answer to a StatusRequest.
type StatusResponse struct {
	Result
	Server *model.ServerInfo `json:"server"`
}
