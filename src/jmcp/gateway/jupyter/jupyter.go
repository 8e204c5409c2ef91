// Package jupyter is the outbound gateway to a Jupyter Server instance. It
// owns authentication (shared-secret token plus lazily discovered XSRF
// token), kernel lifecycle over the REST API, the liveness probe, and dialing
// of the per-kernel channels websocket.
package jupyter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	jmcperrors "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/errors"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey = "jupyter"

	_configKeyURL   = "jupyter.url"
	_configKeyToken = "jupyter.token"

	_apiPath     = "/api"
	_kernelsPath = "/api/kernels"

	_httpTimeout = 30 * time.Second
)

// Endpoints probed in order when discovering the XSRF token. Even error
// responses can carry the cookie.
var _xsrfProbePaths = []string{"/", "/tree", "/api/kernels", "/api/sessions", "/lab", "/api/me"}

var _xsrfCookiePattern = regexp.MustCompile(`_xsrf=([^;]+)`)

// Gateway issues requests to the Jupyter server on behalf of the daemon.
type Gateway interface {
	// EnsureReachable probes the server's API root. Every tool operation
	// calls this first and short-circuits on false.
	EnsureReachable(ctx context.Context) bool

	// EnsureXSRFToken returns the cached XSRF token, discovering it on first
	// use. An empty return is a degraded-but-usable state, not a failure.
	EnsureXSRFToken(ctx context.Context) string

	ListKernels(ctx context.Context) ([]model.KernelInfo, error)
	CreateKernel(ctx context.Context, kernelName string) (model.KernelInfo, error)
	GetKernel(ctx context.Context, kernelID string) (model.KernelInfo, error)
	ShutdownKernel(ctx context.Context, kernelID string) error

	// DialChannels opens the streaming channel for one kernel. The caller
	// owns the returned channel and must close it.
	DialChannels(ctx context.Context, kernelID string) (KernelChannel, error)

	// BaseURL returns the configured server address.
	BaseURL() string
}

// Params define values to be used by the gateway.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.SugaredLogger
}

type gateway struct {
	baseURL string
	token   string
	client  *http.Client
	dialer  channelDialer
	logger  *zap.SugaredLogger

	xsrfMu    sync.Mutex
	xsrfToken string
	xsrfDone  bool
}

// New creates a Gateway from configuration.
func New(p Params) (Gateway, error) {
	var baseURL string
	if err := p.Config.Get(_configKeyURL).Populate(&baseURL); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyURL, err)
	}
	if baseURL == "" {
		return nil, fmt.Errorf("missing field %q in config", _configKeyURL)
	}

	var token string
	if err := p.Config.Get(_configKeyToken).Populate(&token); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyToken, err)
	}

	return &gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: _httpTimeout},
		dialer:  websocketDialer{},
		logger:  p.Logger.With("plugin", _nameKey),
	}, nil
}

func (g *gateway) BaseURL() string {
	return g.baseURL
}

// EnsureReachable probes the API root. Any transport error or non-success
// status yields false.
func (g *gateway) EnsureReachable(ctx context.Context) bool {
	resp, err := g.do(ctx, http.MethodGet, _apiPath, nil, nil)
	if err != nil {
		g.logger.Warnw("Jupyter server unreachable", "url", g.baseURL, "error", err)
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Warnw("Jupyter liveness probe returned non-success", "status", resp.StatusCode)
		return false
	}
	return true
}

// EnsureXSRFToken performs a bounded probe across the known endpoint paths,
// recovering the token first from parsed cookies, then from the raw
// Set-Cookie header. Probe failures are swallowed and the next candidate is
// tried; only full exhaustion degrades to the empty token.
func (g *gateway) EnsureXSRFToken(ctx context.Context) string {
	g.xsrfMu.Lock()
	defer g.xsrfMu.Unlock()

	if g.xsrfDone {
		return g.xsrfToken
	}

	for _, path := range _xsrfProbePaths {
		resp, err := g.do(ctx, http.MethodGet, path, nil, nil)
		if err != nil {
			g.logger.Debugw("XSRF probe failed", "path", path, "error", err)
			continue
		}

		token := extractXSRF(resp)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if token != "" {
			g.logger.Infow("discovered XSRF token", "path", path)
			g.xsrfToken = token
			g.xsrfDone = true
			return token
		}
	}

	g.logger.Warnw("could not obtain XSRF token, proceeding without XSRF protection")
	g.xsrfDone = true
	return ""
}

func extractXSRF(resp *http.Response) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "_xsrf" {
			return cookie.Value
		}
	}
	if match := _xsrfCookiePattern.FindStringSubmatch(resp.Header.Get("Set-Cookie")); match != nil {
		return match[1]
	}
	return ""
}

// ListKernels returns the kernels currently running on the server.
func (g *gateway) ListKernels(ctx context.Context) ([]model.KernelInfo, error) {
	resp, err := g.do(ctx, http.MethodGet, _kernelsPath, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("listing kernels: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("listing kernels: server returned %d: %s", resp.StatusCode, body)
	}

	var kernels []model.KernelInfo
	if err := json.NewDecoder(resp.Body).Decode(&kernels); err != nil {
		return nil, fmt.Errorf("decoding kernel list: %w", err)
	}
	return kernels, nil
}

// CreateKernel starts a new kernel. The XSRF token is sent both as a header
// and as a body field to accommodate servers expecting either placement.
func (g *gateway) CreateKernel(ctx context.Context, kernelName string) (model.KernelInfo, error) {
	payload := map[string]string{"name": kernelName}
	headers := http.Header{"Content-Type": []string{"application/json"}}

	if xsrf := g.EnsureXSRFToken(ctx); xsrf != "" {
		headers.Set("X-XSRFToken", xsrf)
		headers.Set("X-Requested-With", "XMLHttpRequest")
		payload["_xsrf"] = xsrf
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return model.KernelInfo{}, fmt.Errorf("encoding kernel request: %w", err)
	}

	resp, err := g.do(ctx, http.MethodPost, _kernelsPath, headers, bytes.NewReader(body))
	if err != nil {
		return model.KernelInfo{}, &jmcperrors.KernelCreationError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return model.KernelInfo{}, &jmcperrors.KernelCreationError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var info model.KernelInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return model.KernelInfo{}, &jmcperrors.KernelCreationError{Err: fmt.Errorf("decoding kernel info: %w", err)}
	}

	g.logger.Infow("created kernel", "kernelId", info.ID, "name", info.Name)
	return info, nil
}

// GetKernel fetches the current state of one kernel.
func (g *gateway) GetKernel(ctx context.Context, kernelID string) (model.KernelInfo, error) {
	resp, err := g.do(ctx, http.MethodGet, _kernelsPath+"/"+kernelID, nil, nil)
	if err != nil {
		return model.KernelInfo{}, fmt.Errorf("getting kernel %s: %w", kernelID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return model.KernelInfo{}, fmt.Errorf("getting kernel %s: server returned %d: %s", kernelID, resp.StatusCode, body)
	}

	var info model.KernelInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return model.KernelInfo{}, fmt.Errorf("decoding kernel info: %w", err)
	}
	return info, nil
}

// ShutdownKernel deletes a kernel on the server.
func (g *gateway) ShutdownKernel(ctx context.Context, kernelID string) error {
	resp, err := g.do(ctx, http.MethodDelete, _kernelsPath+"/"+kernelID, nil, nil)
	if err != nil {
		return fmt.Errorf("shutting down kernel %s: %w", kernelID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("shutting down kernel %s: server returned %d: %s", kernelID, resp.StatusCode, body)
	}

	g.logger.Infow("shut down kernel", "kernelId", kernelID)
	return nil
}

// DialChannels opens the channels websocket for the given kernel, carrying
// the shared-secret token as a connection parameter.
func (g *gateway) DialChannels(ctx context.Context, kernelID string) (KernelChannel, error) {
	wsURL := strings.Replace(g.baseURL, "http://", "ws://", 1)
	wsURL = strings.Replace(wsURL, "https://", "wss://", 1)
	wsURL += _kernelsPath + "/" + kernelID + "/channels"
	if g.token != "" {
		wsURL += "?token=" + url.QueryEscape(g.token)
	}

	return g.dialer.Dial(ctx, wsURL)
}

// do issues one request with the auth token attached as a query parameter.
func (g *gateway) do(ctx context.Context, method, path string, headers http.Header, body io.Reader) (*http.Response, error) {
	u := g.baseURL + path
	if g.token != "" {
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		u += sep + "token=" + url.QueryEscape(g.token)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return g.client.Do(req)
}
