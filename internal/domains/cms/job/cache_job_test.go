package job

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawfirm-cms/pkg/cache"
	"lawfirm-cms/pkg/cmsclient"
)

type fakeRefresher struct {
	mu      sync.Mutex
	calls   []string
	failing map[string]bool
	swept   int
}

func (f *fakeRefresher) Refresh(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, path)
	if f.failing[path] {
		return errors.New("upstream down")
	}
	return nil
}

func (f *fakeRefresher) Sweep(context.Context) int { return f.swept }

func warmTask(t *testing.T, paths ...string) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(WarmCachePayload{Paths: paths})
	require.NoError(t, err)
	return asynq.NewTask("cms:warm_cache", payload)
}

func TestWarmCacheUsesDefaultPaths(t *testing.T) {
	f := &fakeRefresher{}
	h := NewWarmCacheHandler(f, []string{"articles", "news"})

	require.NoError(t, h.ProcessTask(context.Background(), asynq.NewTask("cms:warm_cache", nil)))
	assert.Equal(t, []string{"articles", "news"}, f.calls)
}

func TestWarmCachePayloadOverridesDefaults(t *testing.T) {
	f := &fakeRefresher{}
	h := NewWarmCacheHandler(f, []string{"articles", "news"})

	require.NoError(t, h.ProcessTask(context.Background(), warmTask(t, "founders")))
	assert.Equal(t, []string{"founders"}, f.calls)
}

func TestWarmCachePartialFailureSucceeds(t *testing.T) {
	f := &fakeRefresher{failing: map[string]bool{"news": true}}
	h := NewWarmCacheHandler(f, []string{"articles", "news", "profiles"})

	require.NoError(t, h.ProcessTask(context.Background(), asynq.NewTask("cms:warm_cache", nil)))
	assert.Len(t, f.calls, 3)
}

func TestWarmCacheTotalFailureIsRetried(t *testing.T) {
	f := &fakeRefresher{failing: map[string]bool{"articles": true, "news": true}}
	h := NewWarmCacheHandler(f, []string{"articles", "news"})

	err := h.ProcessTask(context.Background(), asynq.NewTask("cms:warm_cache", nil))
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestWarmCacheBadPayloadSkipsRetry(t *testing.T) {
	h := NewWarmCacheHandler(&fakeRefresher{}, []string{"articles"})

	err := h.ProcessTask(context.Background(), asynq.NewTask("cms:warm_cache", []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestWarmCacheStopsOnCancel(t *testing.T) {
	f := &fakeRefresher{}
	h := NewWarmCacheHandler(f, []string{"articles", "news"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, h.ProcessTask(ctx, asynq.NewTask("cms:warm_cache", nil)), context.Canceled)
	assert.Empty(t, f.calls)
}

func TestSweepCache(t *testing.T) {
	h := NewSweepCacheHandler(&fakeRefresher{swept: 3})
	assert.NoError(t, h.ProcessTask(context.Background(), asynq.NewTask("cms:sweep_cache", nil)))
}

func TestWarmCacheThroughClient(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"docs":[],"totalDocs":0}`))
	}))
	defer srv.Close()

	rc := cache.NewResponseCache(cache.NewMemoryStorage(0))
	client := cmsclient.New(srv.URL, rc)
	h := NewWarmCacheHandler(client, []string{"founders", "hero-slides"})

	require.NoError(t, h.ProcessTask(context.Background(), asynq.NewTask("cms:warm_cache", nil)))
	assert.Equal(t, int32(2), hits.Load())

	// Warmed entries are served without another round trip.
	_, err := client.Founders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}
