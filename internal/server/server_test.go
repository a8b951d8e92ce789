package server

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/quantmind-br/themebundle/internal/domain"
	"github.com/quantmind-br/themebundle/internal/mocks"
	"github.com/quantmind-br/themebundle/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testFingerprint = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

var testLastModified = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testArtifact() *domain.CombinedArtifact {
	return &domain.CombinedArtifact{
		Content:      "body{color:red}\n",
		Fingerprint:  testFingerprint,
		LastModified: testLastModified.Unix(),
		ContentType:  domain.ContentTypeCSS,
	}
}

func newTestServer(t *testing.T, opts Options) (*mocks.MockCombiner, http.Handler, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	combiner := mocks.NewMockCombiner(ctrl)

	var logs bytes.Buffer
	if opts.Prefix == "" {
		opts.Prefix = "/_/theme"
	}
	opts.Logger = utils.NewLogger(utils.LoggerOptions{Level: "debug", Format: "json", Output: &logs})

	return combiner, New(combiner, opts).Handler(), &logs
}

func doRequest(h http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_ServeCombined(t *testing.T) {
	combiner, h, logs := newTestServer(t, Options{})
	combiner.EXPECT().GetCombinedFile(gomock.Any(), "frontend.css").Return(testArtifact(), nil)

	rec := doRequest(h, "/_/theme/frontend.css", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{color:red}\n", rec.Body.String())
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/css"))
	assert.Equal(t, `"`+testFingerprint+`"`, rec.Header().Get("ETag"))
	assert.Equal(t, "Fri, 01 Mar 2024 12:00:00 GMT", rec.Header().Get("Last-Modified"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "public")
	assert.Contains(t, rec.Header().Get("Cache-Control"), "must-revalidate")

	assert.Contains(t, logs.String(), `"path":"/_/theme/frontend.css"`)
	assert.Contains(t, logs.String(), `"status":200`)
}

func TestServer_ConditionalRequests(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected int
	}{
		{"matching etag", map[string]string{"If-None-Match": `"` + testFingerprint + `"`}, http.StatusNotModified},
		{"other etag", map[string]string{"If-None-Match": `"invalid-etag"`}, http.StatusOK},
		{"future since", map[string]string{"If-Modified-Since": testLastModified.Add(time.Hour).Format(http.TimeFormat)}, http.StatusNotModified},
		{"stale since", map[string]string{"If-Modified-Since": "Mon, 01 Jan 2020 00:00:00 GMT"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combiner, h, _ := newTestServer(t, Options{})
			combiner.EXPECT().GetCombinedFile(gomock.Any(), "frontend.css").Return(testArtifact(), nil)

			rec := doRequest(h, "/_/theme/frontend.css", tt.headers)

			assert.Equal(t, tt.expected, rec.Code)
			if tt.expected == http.StatusNotModified {
				assert.Empty(t, rec.Body.String())
			} else {
				assert.NotEmpty(t, rec.Body.String())
			}
		})
	}
}

func TestServer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"unknown output", domain.NewUnknownOutputError("missing.css"), http.StatusNotFound},
		{"unknown namespace", fmt.Errorf("resolve %q: %w", "@x/a.css", domain.NewUnknownNamespaceError("x")), http.StatusInternalServerError},
		{"unsupported extension", domain.NewUnsupportedExtensionError("txt"), http.StatusInternalServerError},
		{"missing source", domain.NewSourceUnavailableError("/a.css", "stat", errors.New("no such file")), http.StatusInternalServerError},
		{"empty source set", domain.NewEmptySourceSetError("missing.css"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combiner, h, _ := newTestServer(t, Options{})
			combiner.EXPECT().GetCombinedFile(gomock.Any(), "missing.css").Return(nil, tt.err)

			rec := doRequest(h, "/_/theme/missing.css", nil)
			assert.Equal(t, tt.expected, rec.Code)
			assert.Equal(t, tt.expected, StatusForError(tt.err))
		})
	}
}

func TestServer_SourceMap(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		combiner, h, _ := newTestServer(t, Options{})
		combiner.EXPECT().GetSourceMap(gomock.Any(), testFingerprint).Return(`{"version":3}`, true, nil)

		rec := doRequest(h, "/_/theme/"+testFingerprint+".css.map", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `{"version":3}`, rec.Body.String())
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"))
	})

	t.Run("missing", func(t *testing.T) {
		combiner, h, _ := newTestServer(t, Options{})
		combiner.EXPECT().GetSourceMap(gomock.Any(), "dead").Return("", false, nil)

		rec := doRequest(h, "/_/theme/dead.js.map", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		combiner, h, _ := newTestServer(t, Options{})
		combiner.EXPECT().GetSourceMap(gomock.Any(), "dead").Return("", false, errors.New("disk"))

		rec := doRequest(h, "/_/theme/dead.css.map", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("non hex name is an output", func(t *testing.T) {
		combiner, h, _ := newTestServer(t, Options{})
		combiner.EXPECT().GetCombinedFile(gomock.Any(), "Main.css.map").Return(nil, domain.NewUnknownOutputError("Main.css.map"))

		rec := doRequest(h, "/_/theme/Main.css.map", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Routing(t *testing.T) {
	t.Run("nested output name", func(t *testing.T) {
		combiner, h, _ := newTestServer(t, Options{})
		combiner.EXPECT().GetCombinedFile(gomock.Any(), "admin/app.css").Return(testArtifact(), nil)

		rec := doRequest(h, "/_/theme/admin/app.css", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("custom prefix", func(t *testing.T) {
		combiner, h, _ := newTestServer(t, Options{Prefix: "/assets/"})
		combiner.EXPECT().GetCombinedFile(gomock.Any(), "frontend.css").Return(testArtifact(), nil)

		rec := doRequest(h, "/assets/frontend.css", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(h, "/_/theme/frontend.css", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		_, h, _ := newTestServer(t, Options{})

		req := httptest.NewRequest(http.MethodPost, "/_/theme/frontend.css", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("health", func(t *testing.T) {
		_, h, _ := newTestServer(t, Options{})

		rec := doRequest(h, "/healthz", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ok":true`)
	})
}

func TestServer_Compression(t *testing.T) {
	combiner, h, _ := newTestServer(t, Options{Compress: true})
	artifact := testArtifact()
	artifact.Content = strings.Repeat("body{color:red}\n", 512)
	combiner.EXPECT().GetCombinedFile(gomock.Any(), "frontend.css").Return(artifact, nil)

	rec := doRequest(h, "/_/theme/frontend.css", map[string]string{"Accept-Encoding": "gzip"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, artifact.Content, string(body))
}

func TestServer_Serve(t *testing.T) {
	ctrl := gomock.NewController(t)
	combiner := mocks.NewMockCombiner(ctrl)
	combiner.EXPECT().GetCombinedFile(gomock.Any(), "frontend.css").Return(testArtifact(), nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	srv := New(combiner, Options{Prefix: "/_/theme"})
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/_/theme/frontend.css")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "body{color:red}\n", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
