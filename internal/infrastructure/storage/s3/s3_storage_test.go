package s3_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	s3storage "github.com/jhoicas/isp-cobros/internal/infrastructure/storage/s3"
	"github.com/jhoicas/isp-cobros/pkg/config"
)

func testConfig(endpoint string) config.S3Config {
	return config.S3Config{
		Bucket:    "recibos",
		Region:    "us-east-1",
		Endpoint:  endpoint,
		AccessKey: "test",
		SecretKey: "test",
	}
}

func TestNewStorage_BucketRequerido(t *testing.T) {
	_, err := s3storage.NewStorage(context.Background(), config.S3Config{Region: "us-east-1"})
	assert.Error(t, err)
}

func TestPresignGet(t *testing.T) {
	st, err := s3storage.NewStorage(context.Background(), testConfig("http://localhost:9000"))
	require.NoError(t, err)

	url, err := st.PresignGet(context.Background(), "recibos/isp-1/recibo_1.pdf", 15*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "http://localhost:9000/recibos/recibos/isp-1/recibo_1.pdf")
	assert.Contains(t, url, "X-Amz-Expires=900")
}

func TestUpload_EnviaPutObject(t *testing.T) {
	var (
		mu     sync.Mutex
		method string
		path   string
		ctype  string
		body   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		method, path, ctype = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	st, err := s3storage.NewStorage(context.Background(), testConfig(srv.URL))
	require.NoError(t, err)

	err = st.Upload(context.Background(), "recibos/isp-1/recibo_1.pdf", []byte("%PDF-1.3"), "application/pdf")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/recibos/recibos/isp-1/recibo_1.pdf", path)
	assert.Equal(t, "application/pdf", ctype)
	assert.Contains(t, string(body), "%PDF-1.3")
}
