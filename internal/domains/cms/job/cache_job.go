package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"lawfirm-cms/pkg/logger"
)

// Refresher is the part of cmsclient.Client the cache jobs drive.
type Refresher interface {
	Refresh(ctx context.Context, path string) error
	Sweep(ctx context.Context) int
}

// WarmCachePayload lists the endpoints to refetch. Empty means the
// configured defaults.
type WarmCachePayload struct {
	Paths []string `json:"paths,omitempty"`
}

// ========================================
// WARM CACHE
// ========================================

type WarmCacheHandler struct {
	client       Refresher
	defaultPaths []string
	log          zerolog.Logger
}

func NewWarmCacheHandler(client Refresher, defaultPaths []string) *WarmCacheHandler {
	return &WarmCacheHandler{
		client:       client,
		defaultPaths: defaultPaths,
		log:          logger.Component("cache-warm"),
	}
}

// ProcessTask refetches every path into the shared cache. One failing
// endpoint does not stop the others; the task fails only when all of them do,
// so asynq retries a full outage but not a single bad sheet.
func (h *WarmCacheHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload WarmCachePayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal warm cache payload: %v: %w", err, asynq.SkipRetry)
		}
	}

	paths := payload.Paths
	if len(paths) == 0 {
		paths = h.defaultPaths
	}
	if len(paths) == 0 {
		return nil
	}

	start := time.Now()
	var errs []error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := h.client.Refresh(ctx, path); err != nil {
			h.log.Warn().Err(err).Str("path", path).Msg("Refresh failed")
			errs = append(errs, err)
		}
	}

	h.log.Info().
		Int("paths", len(paths)).
		Int("failed", len(errs)).
		Dur("took", time.Since(start)).
		Msg("Cache warmed")

	if len(errs) == len(paths) {
		return fmt.Errorf("warm cache: every refresh failed: %w", errors.Join(errs...))
	}
	return nil
}

// ========================================
// SWEEP CACHE
// ========================================

type SweepCacheHandler struct {
	client Refresher
	log    zerolog.Logger
}

func NewSweepCacheHandler(client Refresher) *SweepCacheHandler {
	return &SweepCacheHandler{client: client, log: logger.Component("cache-sweep")}
}

func (h *SweepCacheHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	removed := h.client.Sweep(ctx)
	h.log.Info().Int("removed", removed).Msg("Expired cache entries swept")
	return nil
}
