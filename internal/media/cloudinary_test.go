package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeURL(t *testing.T) {
	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/f_auto,q_auto,w_800/v123/abc.jpg",
		OptimizeURL("https://res.cloudinary.com/demo/image/upload/v123/abc.jpg"))

	// Only the first /upload/ segment is rewritten.
	assert.Equal(t,
		"https://x/upload/f_auto,q_auto,w_800/upload/y.jpg",
		OptimizeURL("https://x/upload/upload/y.jpg"))
}

func newTestUploader(endpoint string) *CloudinaryUploader {
	u := NewCloudinaryUploader("demo", "catalogo_unsigned", "catalogo", zerolog.Nop())
	u.endpoint = endpoint
	return u
}

func TestCloudinaryUploader_Upload(t *testing.T) {
	t.Run("Success returns optimised URL", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "catalogo_unsigned", r.FormValue("upload_preset"))
			assert.Equal(t, "catalogo", r.FormValue("folder"))

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "mug.jpg", header.Filename)

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"secure_url": "https://res.cloudinary.com/demo/image/upload/v1/catalogo/mug.jpg"}`))
		}))
		defer server.Close()

		u := newTestUploader(server.URL)
		url, err := u.Upload(context.Background(), "mug.jpg", strings.NewReader("image-bytes"), 11, nil)
		require.NoError(t, err)
		assert.Equal(t,
			"https://res.cloudinary.com/demo/image/upload/f_auto,q_auto,w_800/v1/catalogo/mug.jpg",
			url)
	})

	t.Run("Progress reaches 100 when length is known", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"secure_url": "https://x/upload/v1/a.jpg"}`))
		}))
		defer server.Close()

		var reported []int
		u := newTestUploader(server.URL)
		_, err := u.Upload(context.Background(), "a.jpg", strings.NewReader("image-bytes"), 11, func(p int) {
			reported = append(reported, p)
		})
		require.NoError(t, err)

		require.NotEmpty(t, reported)
		assert.Equal(t, 100, reported[len(reported)-1])
		for i := 1; i < len(reported); i++ {
			assert.Greater(t, reported[i], reported[i-1])
		}
	})

	t.Run("No progress when length is unknown", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"secure_url": "https://x/upload/v1/a.jpg"}`))
		}))
		defer server.Close()

		called := false
		u := newTestUploader(server.URL)
		_, err := u.Upload(context.Background(), "a.jpg", strings.NewReader("image-bytes"), -1, func(int) {
			called = true
		})
		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("Non-200 response yields HTTPError with status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "Invalid upload preset"}}`))
		}))
		defer server.Close()

		u := newTestUploader(server.URL)
		_, err := u.Upload(context.Background(), "a.jpg", strings.NewReader("x"), 1, nil)

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Contains(t, httpErr.Body, "Invalid upload preset")
	})

	t.Run("Network failure yields TransportError without status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // refuse connections

		u := newTestUploader(server.URL)
		_, err := u.Upload(context.Background(), "a.jpg", strings.NewReader("x"), 1, nil)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
	})
}
