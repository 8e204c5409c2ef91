package jupyter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
	"go.uber.org/zap"
)

type sampleConfig map[string]interface{}

func newGateway(t *testing.T, serverURL, token string) Gateway {
	t.Helper()
	cfg, err := config.NewStaticProvider(sampleConfig{
		"jupyter": map[string]string{
			"url":   serverURL,
			"token": token,
		},
	})
	require.NoError(t, err)

	g, err := New(Params{Config: cfg, Logger: zap.NewNop().Sugar()})
	require.NoError(t, err)
	return g
}

func TestNew(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		cfg, err := config.NewStaticProvider(sampleConfig{})
		require.NoError(t, err)
		_, err = New(Params{Config: cfg, Logger: zap.NewNop().Sugar()})
		assert.Error(t, err)
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		g := newGateway(t, "http://localhost:8888/", "")
		assert.Equal(t, "http://localhost:8888", g.BaseURL())
	})
}

func TestEnsureReachable(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy server", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api", r.URL.Path)
			assert.Equal(t, "secret", r.URL.Query().Get("token"))
			w.Write([]byte(`{"version": "2.14.0"}`))
		}))
		defer srv.Close()

		assert.True(t, newGateway(t, srv.URL, "secret").EnsureReachable(ctx))
	})

	t.Run("error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		assert.False(t, newGateway(t, srv.URL, "").EnsureReachable(ctx))
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		assert.False(t, newGateway(t, srv.URL, "").EnsureReachable(ctx))
	})
}

func TestEnsureXSRFToken(t *testing.T) {
	ctx := context.Background()

	t.Run("cookie on first probe", func(t *testing.T) {
		var paths []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			http.SetCookie(w, &http.Cookie{Name: "_xsrf", Value: "abc123"})
		}))
		defer srv.Close()

		g := newGateway(t, srv.URL, "")
		assert.Equal(t, "abc123", g.EnsureXSRFToken(ctx))
		assert.Equal(t, []string{"/"}, paths)

		// Second call is served from cache without another probe.
		assert.Equal(t, "abc123", g.EnsureXSRFToken(ctx))
		assert.Len(t, paths, 1)
	})

	t.Run("later probe succeeds after failures", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/sessions" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			http.SetCookie(w, &http.Cookie{Name: "_xsrf", Value: "late"})
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		// Error statuses still carry the cookie.
		assert.Equal(t, "late", newGateway(t, srv.URL, "").EnsureXSRFToken(ctx))
	})

	t.Run("exhaustion degrades to empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		assert.Equal(t, "", newGateway(t, srv.URL, "").EnsureXSRFToken(ctx))
	})
}

func TestKernelLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("create carries xsrf in header and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				http.SetCookie(w, &http.Cookie{Name: "_xsrf", Value: "tok"})
				return
			}

			assert.Equal(t, "/api/kernels", r.URL.Path)
			assert.Equal(t, "tok", r.Header.Get("X-XSRFToken"))
			assert.Equal(t, "XMLHttpRequest", r.Header.Get("X-Requested-With"))

			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "python3", payload["name"])
			assert.Equal(t, "tok", payload["_xsrf"])

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(model.KernelInfo{ID: "k1", Name: "python3", ExecutionState: "starting"})
		}))
		defer srv.Close()

		info, err := newGateway(t, srv.URL, "").CreateKernel(ctx, "python3")
		require.NoError(t, err)
		assert.Equal(t, "k1", info.ID)
		assert.Equal(t, "starting", info.ExecutionState)
	})

	t.Run("create failure status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("forbidden"))
		}))
		defer srv.Close()

		_, err := newGateway(t, srv.URL, "").CreateKernel(ctx, "python3")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("get kernel", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/kernels/k1", r.URL.Path)
			json.NewEncoder(w).Encode(model.KernelInfo{ID: "k1", Name: "python3", ExecutionState: "idle"})
		}))
		defer srv.Close()

		info, err := newGateway(t, srv.URL, "").GetKernel(ctx, "k1")
		require.NoError(t, err)
		assert.Equal(t, "idle", info.ExecutionState)
	})

	t.Run("list kernels", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]model.KernelInfo{{ID: "a"}, {ID: "b"}})
		}))
		defer srv.Close()

		kernels, err := newGateway(t, srv.URL, "").ListKernels(ctx)
		require.NoError(t, err)
		assert.Len(t, kernels, 2)
	})

	t.Run("shutdown kernel", func(t *testing.T) {
		var method, path string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method, path = r.Method, r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		require.NoError(t, newGateway(t, srv.URL, "").ShutdownKernel(ctx, "k1"))
		assert.Equal(t, http.MethodDelete, method)
		assert.Equal(t, "/api/kernels/k1", path)
	})
}
