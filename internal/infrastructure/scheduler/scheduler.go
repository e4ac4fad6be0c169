package scheduler

import (
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartDurationJob runs task every interval until the returned scheduler is shut down.
func StartDurationJob(interval time.Duration, task func()) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		s.Shutdown()
		return nil, err
	}

	s.Start()

	return s, nil
}
