package service_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"movie-info-gateway/internal/config"
	"movie-info-gateway/internal/service"
	"movie-info-gateway/internal/upstream"
)

// fakeAPI serves canned bodies per path and counts hits.
type fakeAPI struct {
	mux  *http.ServeMux
	hits atomic.Int64
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{mux: http.NewServeMux()}
}

func (f *fakeAPI) handle(pattern string, status int, body string) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// handleFlaky answers 503 for the first failures calls to pattern, then body.
func (f *fakeAPI) handleFlaky(pattern string, failures int64, body string) {
	var calls atomic.Int64
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) <= failures {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"message":"temporarily unavailable"}`))
			return
		}
		_, _ = w.Write([]byte(body))
	})
}

func (f *fakeAPI) client(t *testing.T) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return upstream.NewClient(config.UpstreamConfig{BaseURL: srv.URL, TimeoutSeconds: 5})
}

func newCache(t *testing.T) (*service.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return service.NewCache(rdb, time.Minute), mr
}
