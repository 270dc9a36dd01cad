package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdempotencyStore struct {
	values map[string]string
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{values: map[string]string{}}
}

func (s *fakeIdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (s *fakeIdempotencyStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	if _, ok := s.values[key]; ok {
		return false, nil
	}
	s.values[key] = fmt.Sprint(value)
	return true, nil
}

func (s *fakeIdempotencyStore) IdempotencyKey(scope, id string) string {
	return "sml:idempotency:" + scope + ":" + id
}

func (s *fakeIdempotencyStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

func newIdempotencyTestRouter(store *fakeIdempotencyStore, hits *int) http.Handler {
	r := chi.NewRouter()
	r.Use(Idempotency(store, nil))
	r.Post("/api/v1/orders", func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"data":{"id":%d}}`, *hits)
	})
	r.Get("/api/v1/orders", func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/api/v1/orders/{orderId}/recall", func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.WriteHeader(http.StatusCreated)
	})
	return r
}

func TestIdempotencyRequiresKeyHeader(t *testing.T) {
	var hits int
	router := newIdempotencyTestRouter(newFakeIdempotencyStore(), &hits)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, hits)
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	var hits int
	store := newFakeIdempotencyStore()
	router := newIdempotencyTestRouter(store, &hits)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"client_name":"한진물류"}`))
	req.Header.Set("Idempotency-Key", "abc-123")
	router.ServeHTTP(first, req)

	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, 1, hits)

	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"client_name":"한진물류"}`))
	req.Header.Set("Idempotency-Key", "abc-123")
	router.ServeHTTP(second, req)

	// handler not invoked again, byte-identical replay
	assert.Equal(t, 1, hits)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "application/json", second.Header().Get("Content-Type"))
}

func TestIdempotencyRejectsKeyReuseWithDifferentBody(t *testing.T) {
	var hits int
	router := newIdempotencyTestRouter(newFakeIdempotencyStore(), &hits)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"a":1}`))
	req.Header.Set("Idempotency-Key", "abc-123")
	router.ServeHTTP(first, req)
	require.Equal(t, 1, hits)

	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"a":2}`))
	req.Header.Set("Idempotency-Key", "abc-123")
	router.ServeHTTP(second, req)

	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, 1, hits)
}

func TestIdempotencySkipsUnprotectedRoutes(t *testing.T) {
	var hits int
	router := newIdempotencyTestRouter(newFakeIdempotencyStore(), &hits)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, hits)
}

func TestIdempotencyCoversRecall(t *testing.T) {
	var hits int
	router := newIdempotencyTestRouter(newFakeIdempotencyStore(), &hits)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/orders/12/recall", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, hits)
}

func TestRouteTTL(t *testing.T) {
	ttl, ok := routeTTL(http.MethodPost, "/api/v1/orders")
	require.True(t, ok)
	assert.Equal(t, defaultIdempotencyTTL, ttl)

	ttl, ok = routeTTL(http.MethodPost, "/api/v1/orders/{orderId}/recall")
	require.True(t, ok)
	assert.Equal(t, criticalIdempotencyTTL, ttl)

	_, ok = routeTTL(http.MethodGet, "/api/v1/orders")
	assert.False(t, ok)

	_, ok = routeTTL(http.MethodPost, "/api/v1/settlement")
	assert.False(t, ok)
}
