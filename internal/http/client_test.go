package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ptero-io/ptero/pkg/ptero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string, opts ...Option) *Client {
	return NewClient(serverURL+"/api/application/", "test-key", opts...)
}

func TestClient_Do_BuildsAuthenticatedRequest(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/api/application/servers", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, defaultUserAgent, r.Header.Get("User-Agent"))

		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Get(context.Background(), "servers", nil)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestClient_Do_QueryAndCustomHeaders(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "variables,config", r.URL.Query().Get("include"))
		assert.Equal(t, "custom-value", r.Header.Get("X-Custom"))

		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Do(context.Background(), &Request{
		Method:  nethttp.MethodGet,
		Path:    "nests/1/eggs",
		Query:   url.Values{"include": []string{"variables,config"}},
		Headers: map[string]string{"X-Custom": "custom-value"},
	})
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestClient_Do_WithUserAgent(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "custom-agent/1.0", r.Header.Get("User-Agent"))

		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL, WithUserAgent("custom-agent/1.0"))

	_, err := client.Get(context.Background(), "servers", nil)
	require.NoError(t, err)
}

func TestClient_Do_JSONBody(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var body map[string]string
		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "test-server", body["name"])

		w.WriteHeader(nethttp.StatusCreated)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Post(context.Background(), "servers", map[string]string{"name": "test-server"})
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)
}

type rawEncoder struct {
	data []byte
	err  error
}

func (e rawEncoder) EncodeBody() ([]byte, error) {
	return e.data, e.err
}

func TestClient_Do_EncoderBody(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var body map[string]string
		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "custom", body["codec"])

		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Post(context.Background(), "servers", rawEncoder{data: []byte(`{"codec":"custom"}`)})
	require.NoError(t, err)
}

func TestClient_Do_EncodingFailureAbortsBeforeDispatch(t *testing.T) {
	dispatched := false
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		dispatched = true
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	encodeErr := errors.New("boom")

	resp, err := client.Post(context.Background(), "servers", rawEncoder{err: encodeErr})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.False(t, dispatched)

	var encodingErr *ptero.EncodingError
	require.ErrorAs(t, err, &encodingErr)
	assert.ErrorIs(t, err, encodeErr)
}

func TestClient_Do_NetworkError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Get(context.Background(), "servers", nil)
	require.Error(t, err)
	assert.Nil(t, resp)

	var networkErr *ptero.NetworkError
	assert.ErrorAs(t, err, &networkErr)
}

func TestClient_Do_StatusTranslation(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{
			name:   "forbidden",
			status: nethttp.StatusForbidden,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ptero.ErrPermission)
			},
		},
		{
			name:   "not found",
			status: nethttp.StatusNotFound,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ptero.ErrNotFound)
			},
		},
		{
			name:   "rate limited",
			status: nethttp.StatusTooManyRequests,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ptero.ErrRateLimited)
			},
		},
		{
			name:   "server error",
			status: nethttp.StatusInternalServerError,
			check: func(t *testing.T, err error) {
				var httpErr *ptero.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, nethttp.StatusInternalServerError, httpErr.StatusCode)
			},
		},
		{
			name:   "unprocessable entity",
			status: nethttp.StatusUnprocessableEntity,
			check: func(t *testing.T, err error) {
				var httpErr *ptero.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, nethttp.StatusUnprocessableEntity, httpErr.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			resp, err := client.Get(context.Background(), "servers", nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.status, resp.StatusCode)
			tt.check(t, err)
		})
	}
}

func TestClient_Do_ClassifierRecognizesEnvelope(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":[{"code":"ValidationException","status":"422","detail":"The name field is required."}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Do(context.Background(), &Request{
		Method:     nethttp.MethodPost,
		Path:       "servers",
		Body:       map[string]string{},
		Classifier: APIErrorClassifier{},
	})
	require.Error(t, err)
	require.NotNil(t, resp)

	var respErr *ptero.ResponseError
	require.ErrorAs(t, err, &respErr)
	require.Len(t, respErr.Errors, 1)
	assert.Equal(t, "ValidationException", respErr.Errors[0].Code)
	assert.Equal(t, "The name field is required.", respErr.FirstError().Detail)
}

func TestClient_Do_ClassifierDeclinesToTranslation(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNotFound)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Do(context.Background(), &Request{
		Method:     nethttp.MethodGet,
		Path:       "servers/42",
		Classifier: APIErrorClassifier{},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ptero.ErrNotFound)
}

func TestClient_Do_ClassifierDeclinesEmptyEnvelope(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Do(context.Background(), &Request{
		Method:     nethttp.MethodGet,
		Path:       "servers",
		Classifier: APIErrorClassifier{},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ptero.ErrPermission)
}

func TestClient_RateLimits_RecordedOnSuccess(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("X-RateLimit-Limit", "240")
		w.Header().Set("X-RateLimit-Remaining", "237")
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	assert.Nil(t, client.RateLimits())

	_, err := client.Get(context.Background(), "servers", nil)
	require.NoError(t, err)

	limits := client.RateLimits()
	require.NotNil(t, limits)
	assert.Equal(t, 240, limits.Limit)
	assert.Equal(t, 237, limits.Remaining)
}

func TestClient_RateLimits_NotRecordedOnFailure(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("X-RateLimit-Limit", "240")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(nethttp.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Get(context.Background(), "servers", nil)
	require.Error(t, err)
	assert.Nil(t, client.RateLimits())
}

func TestClient_RateLimits_SkipsPartialHeaders(t *testing.T) {
	tests := []struct {
		name      string
		limit     string
		remaining string
	}{
		{name: "missing remaining", limit: "240", remaining: ""},
		{name: "missing limit", limit: "", remaining: "10"},
		{name: "non-numeric limit", limit: "abc", remaining: "10"},
		{name: "negative remaining", limit: "240", remaining: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				if tt.limit != "" {
					w.Header().Set("X-RateLimit-Limit", tt.limit)
				}
				if tt.remaining != "" {
					w.Header().Set("X-RateLimit-Remaining", tt.remaining)
				}
				w.WriteHeader(nethttp.StatusOK)
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			_, err := client.Get(context.Background(), "servers", nil)
			require.NoError(t, err)
			assert.Nil(t, client.RateLimits())
		})
	}
}

func TestClient_RateLimits_LastResponseWins(t *testing.T) {
	remaining := "239"
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("X-RateLimit-Limit", "240")
		w.Header().Set("X-RateLimit-Remaining", remaining)
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Get(context.Background(), "servers", nil)
	require.NoError(t, err)

	remaining = "238"
	_, err = client.Get(context.Background(), "servers", nil)
	require.NoError(t, err)

	limits := client.RateLimits()
	require.NotNil(t, limits)
	assert.Equal(t, 238, limits.Remaining)
}

func TestClient_RateLimits_ReadReturnsCopy(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("X-RateLimit-Limit", "240")
		w.Header().Set("X-RateLimit-Remaining", "100")
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Get(context.Background(), "servers", nil)
	require.NoError(t, err)

	first := client.RateLimits()
	require.NotNil(t, first)
	first.Remaining = 0

	second := client.RateLimits()
	require.NotNil(t, second)
	assert.Equal(t, 100, second.Remaining)
}

func TestClient_Do_EmptySuccessBody(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(nethttp.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Delete(context.Background(), "servers/1")
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestClient_Do_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := client.Get(ctx, "servers", nil)
	require.Error(t, err)
	assert.Nil(t, resp)

	var networkErr *ptero.NetworkError
	assert.ErrorAs(t, err, &networkErr)
}
