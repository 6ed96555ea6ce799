package pteroclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ptero-io/ptero/pkg/ptero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresConfig(t *testing.T) {
	t.Parallel()

	client, err := New(nil)
	require.ErrorIs(t, err, ptero.ErrConfigRequired)
	assert.Nil(t, client)
}

func TestNew_RequiresPanelURL(t *testing.T) {
	t.Parallel()

	client, err := New(&ptero.Config{APIKey: "abc"})
	require.ErrorIs(t, err, ptero.ErrPanelURLRequired)
	assert.Nil(t, client)
}

func TestNew_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	client, err := New(&ptero.Config{PanelURL: "https://panel.example"})
	require.ErrorIs(t, err, ptero.ErrAPIKeyRequired)
	assert.Nil(t, client)
}

func TestNormalizePanelURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare host gets scheme and path",
			input: "panel.example",
			want:  "https://panel.example/api/application/",
		},
		{
			name:  "https URL without trailing slash",
			input: "https://panel.example",
			want:  "https://panel.example/api/application/",
		},
		{
			name:  "https URL with trailing slash",
			input: "https://panel.example/",
			want:  "https://panel.example/api/application/",
		},
		{
			name:  "http scheme is kept",
			input: "http://panel.example",
			want:  "http://panel.example/api/application/",
		},
		{
			name:  "already normalized",
			input: "https://panel.example/api/application/",
			want:  "https://panel.example/api/application/",
		},
		{
			name:  "surrounding whitespace",
			input: "  https://panel.example  ",
			want:  "https://panel.example/api/application/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePanelURL(tt.input))
		})
	}
}

func TestNew_RequestsHitApplicationAPI(t *testing.T) {
	t.Parallel()

	var gotPath, gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[]}`))
	}))
	defer server.Close()

	client, err := New(&ptero.Config{
		PanelURL: server.URL + "/",
		APIKey:   "abc",
	})
	require.NoError(t, err)

	_, err = client.Servers().List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/application/servers", gotPath)
	assert.Equal(t, "Bearer abc", gotAuth)
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/application/nests", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[]}`))
	}))
	defer server.Close()

	client, err := NewWithAPIKey(server.URL, "abc")
	require.NoError(t, err)

	nests, err := client.Nests().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, nests)
}
