package registry

import (
	"context"
	"encoding/json"

	"github.com/artteam09/asmp/internal/logger"
	"github.com/artteam09/asmp/pkg/cache"
	"github.com/artteam09/asmp/pkg/errors"
	"github.com/artteam09/asmp/pkg/ledger"
	"github.com/artteam09/asmp/pkg/model"
	"github.com/hashicorp/go-version"
)

// Client coordinates registry operations across the transport, the local
// package cache, and the installed-package ledger.
type Client struct {
	Transport     Transport
	Cache         cache.Manager
	Ledger        ledger.Manager
	ClientVersion string
	Hooks         Hooks // Hooks for progress and event notifications
}

// call posts payload to endpoint and decodes the JSON response into out.
func (c *Client) call(ctx context.Context, endpoint string, payload, out any) error {
	body, err := c.Transport.Post(ctx, endpoint, payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(ErrMalformedResponse, err.Error())
	}
	return nil
}

// Search queries the server for packages matching query. On success the
// results are merged into the local cache and returned. On any failure
// the search falls back to the local cache, which stays unmodified.
func (c *Client) Search(ctx context.Context, query string) []*model.PackageRecord {
	req := SearchRequest{
		Envelope:    newEnvelope(c.ClientVersion),
		TypeRequest: requestTypeSearch,
		Query:       query,
		Filters:     defaultSearchFilters(),
	}

	var resp SearchResponse
	if err := c.call(ctx, EndpointSearch, &req, &resp); err != nil {
		logger.Warnf("Falling back to the local package cache: %v", err)
		return c.Cache.SearchLocal(query)
	}
	if !resp.Success {
		logger.Warnf("Falling back to the local package cache: %s", resp.ErrorMessage())
		return c.Cache.SearchLocal(query)
	}

	if err := c.Cache.MergeRemote(resp.Packages); err != nil {
		logger.Warnf("Cannot update the local package cache: %v", err)
	}
	return resp.Packages
}

// Info fetches the record of a single package from the server. Version
// may be empty to request the latest. Returns nil when the call fails or
// the server reports no such package.
func (c *Client) Info(ctx context.Context, name, pkgVersion string) *model.PackageRecord {
	req := InfoRequest{
		Envelope:    newEnvelope(c.ClientVersion),
		TypeRequest: requestTypeInfo,
		PackageName: name,
		Version:     pkgVersion,
	}

	var resp InfoResponse
	if err := c.call(ctx, EndpointInfo, &req, &resp); err != nil {
		logger.Debugf("Package info request failed: %v", err)
		return nil
	}
	if !resp.Success {
		logger.Debugf("Server reported no info for %s: %s", name, resp.ErrorMessage())
		return nil
	}
	return resp.Package
}

// Install resolves the package on the server, requests its download
// location and records the installation in the ledger. The ledger is
// written last, so a failure at any earlier stage leaves it unchanged.
func (c *Client) Install(ctx context.Context, name, requested string) error {
	emit(c.Hooks, Event{Phase: "resolving", Msg: name})

	info := c.Info(ctx, name, requested)
	if info == nil {
		return errors.Wrap(errors.ErrPackageNotFound, name)
	}
	warnVersionMismatch(name, requested, info)

	resolved := requested
	if resolved == "" {
		resolved = info.Version
	}
	emit(c.Hooks, Event{Phase: "resolving", ID: name, Msg: name + "@" + resolved})

	req := DownloadRequest{
		Envelope:    newEnvelope(c.ClientVersion),
		TypeRequest: requestTypeDownload,
		PackageName: name,
		Version:     resolved,
	}
	var resp DownloadResponse
	if err := c.call(ctx, EndpointDownload, &req, &resp); err != nil {
		return errors.Wrap(err, "download request failed")
	}
	if !resp.Success {
		return errors.Wrap(ErrServerReported, resp.ErrorMessage())
	}

	emit(c.Hooks, Event{Phase: "downloading", ID: name, Msg: resp.DownloadURL})
	for _, dep := range info.Dependencies {
		emit(c.Hooks, Event{Phase: "dependencies", ID: name, Msg: dep})
	}
	if resp.InstallScript != "" {
		emit(c.Hooks, Event{Phase: "script", ID: name, Msg: resp.InstallScript})
	}

	emit(c.Hooks, Event{Phase: "recording", ID: name})
	if err := c.Ledger.RecordInstall(info); err != nil {
		return err
	}

	emit(c.Hooks, Event{Phase: "done", ID: name, Msg: info.Name + "@" + info.Version})
	return nil
}

// Ping checks whether the configured server is reachable. Returns nil on
// any failure.
func (c *Client) Ping(ctx context.Context) *model.ServerInfo {
	req := StatusRequest{
		Envelope:    newEnvelope(c.ClientVersion),
		TypeRequest: requestTypePing,
	}

	var resp StatusResponse
	if err := c.call(ctx, EndpointStatus, &req, &resp); err != nil {
		logger.Debugf("Status request failed: %v", err)
		return nil
	}
	if !resp.Success || resp.Server == nil {
		return nil
	}
	return resp.Server
}

// warnVersionMismatch logs when an explicitly requested version differs
// from the one the server offers. The install proceeds with the
// requested version.
func warnVersionMismatch(name, requested string, info *model.PackageRecord) {
	if requested == "" || requested == info.Version {
		return
	}
	offered := info.GetVersion()
	if offered == nil {
		return
	}
	if rv, err := version.NewVersion(requested); err == nil && !rv.Equal(offered) {
		logger.Warnf("Server offers %s %s, installing requested version %s", name, info.Version, requested)
	}
}

// New creates a new Client with the provided dependencies. Hook
// callbacks may be left nil if no progress rendering is needed.
func New(transport Transport, cacheMgr cache.Manager, ledgerMgr ledger.Manager, clientVersion string, hooks Hooks) *Client {
	return &Client{
		Transport:     transport,
		Cache:         cacheMgr,
		Ledger:        ledgerMgr,
		ClientVersion: clientVersion,
		Hooks:         hooks,
	}
}
