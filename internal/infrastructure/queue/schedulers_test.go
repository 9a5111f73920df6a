package queue

import (
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawfirm-cms/internal/config"
	"lawfirm-cms/internal/shared"
)

type registration struct {
	spec     string
	taskType string
}

type fakeRegistrar struct {
	registered []registration
	err        error
}

func (f *fakeRegistrar) Register(spec string, task *asynq.Task, _ ...asynq.Option) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.registered = append(f.registered, registration{spec: spec, taskType: task.Type()})
	return "entry", nil
}

func TestRegisterCacheJobs(t *testing.T) {
	reg := &fakeRegistrar{}
	s := &Scheduler{
		registrar: reg,
		cfg:       config.WorkerConfig{WarmCron: "*/4 * * * *", SweepCron: "0 * * * *"},
	}

	require.NoError(t, s.RegisterCacheJobs())
	assert.Equal(t, []registration{
		{spec: "*/4 * * * *", taskType: shared.TypeWarmCache},
		{spec: "0 * * * *", taskType: shared.TypeSweepCache},
	}, reg.registered)
}

func TestRegisterCacheJobsStopsOnError(t *testing.T) {
	s := &Scheduler{
		registrar: &fakeRegistrar{err: errors.New("bad spec")},
		cfg:       config.WorkerConfig{WarmCron: "nope", SweepCron: "0 * * * *"},
	}

	assert.Error(t, s.RegisterCacheJobs())
}
