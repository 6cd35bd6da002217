package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/divscreen/pkg/config"
	"github.com/wonny/divscreen/pkg/logger"
)

type stubJob struct {
	name     string
	schedule string
	runs     int
	err      error
}

func (j *stubJob) Name() string                  { return j.name }
func (j *stubJob) Schedule() string              { return j.schedule }
func (j *stubJob) Run(ctx context.Context) error { j.runs++; return j.err }

func testScheduler() *Scheduler {
	return New(logger.New(&config.Config{LogLevel: "error", LogFormat: "json"}))
}

func TestAddJob(t *testing.T) {
	s := testScheduler()

	job := &stubJob{name: "refresh", schedule: "0 */10 * * * *"}
	require.NoError(t, s.AddJob(job))
	assert.Equal(t, []string{"refresh"}, s.GetAllJobs())
}

func TestAddJobRejectsDuplicate(t *testing.T) {
	s := testScheduler()

	require.NoError(t, s.AddJob(&stubJob{name: "refresh", schedule: "0 */10 * * * *"}))
	err := s.AddJob(&stubJob{name: "refresh", schedule: "0 */5 * * * *"})
	assert.Error(t, err)
}

func TestAddJobRejectsBadSchedule(t *testing.T) {
	s := testScheduler()

	err := s.AddJob(&stubJob{name: "broken", schedule: "not a cron expression"})
	assert.Error(t, err)
}

func TestRunJobUnknown(t *testing.T) {
	s := testScheduler()

	assert.Error(t, s.RunJob("missing"))
}

func TestGetJobHistory(t *testing.T) {
	s := testScheduler()

	require.NoError(t, s.AddJob(&stubJob{name: "refresh", schedule: "0 */10 * * * *"}))

	history, err := s.GetJobHistory("refresh")
	require.NoError(t, err)
	assert.Empty(t, history.Results)

	_, err = s.GetJobHistory("missing")
	assert.Error(t, err)
}

func TestJobHistoryKeepsLast100(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < 150; i++ {
		h.AddResult(JobResult{JobName: "refresh", Success: true})
	}

	assert.Len(t, h.Results, 100)
	assert.Len(t, h.GetLatestResults(10), 10)
	assert.Empty(t, (&JobHistory{}).GetLatestResults(10))
}
