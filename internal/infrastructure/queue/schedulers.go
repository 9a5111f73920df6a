package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"lawfirm-cms/internal/config"
	"lawfirm-cms/internal/domains/cms/job"
	"lawfirm-cms/internal/shared"
	"lawfirm-cms/pkg/logger"
)

// Registrar is the subset of asynq.Scheduler used to register periodic tasks.
type Registrar interface {
	Register(cronspec string, task *asynq.Task, opts ...asynq.Option) (string, error)
}

type Scheduler struct {
	scheduler *asynq.Scheduler
	registrar Registrar
	cfg       config.WorkerConfig
}

func NewScheduler(redisOpt asynq.RedisClientOpt, cfg config.WorkerConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		registrar: scheduler,
		cfg:       cfg,
	}
}

func (s *Scheduler) RegisterCacheJobs() error {
	if err := s.registerWarmCacheJob(); err != nil {
		return err
	}

	if err := s.registerSweepCacheJob(); err != nil {
		return err
	}

	return nil
}

// ================================================
// JOB 1: Warm Cache
// ================================================
// Runs a little faster than the response cache TTL so readers of the shared
// cache rarely see a miss.
func (s *Scheduler) registerWarmCacheJob() error {
	payload, err := json.Marshal(job.WarmCachePayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeWarmCache, payload)

	_, err = s.registrar.Register(
		s.cfg.WarmCron,
		task,
		asynq.Queue(shared.QueueCache),
		asynq.MaxRetry(1),
		asynq.Timeout(2*time.Minute),
		// A slow run must not pile up behind the next tick.
		asynq.Unique(time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register WarmCache job", err)
		return err
	}

	logger.Info("✓ Registered WarmCache", map[string]interface{}{"cron": s.cfg.WarmCron})
	return nil
}

// ================================================
// JOB 2: Sweep Expired Entries
// ================================================
func (s *Scheduler) registerSweepCacheJob() error {
	task := asynq.NewTask(shared.TypeSweepCache, nil)

	_, err := s.registrar.Register(
		s.cfg.SweepCron,
		task,
		asynq.Queue(shared.QueueCache),
		asynq.MaxRetry(0),
		asynq.Timeout(time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register SweepCache job", err)
		return err
	}

	logger.Info("✓ Registered SweepCache", map[string]interface{}{"cron": s.cfg.SweepCron})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
