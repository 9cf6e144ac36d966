package quote

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

type StatsSource interface {
	Stats() SessionStats
}

// Scheduler periodically reports session store statistics.
type Scheduler struct {
	stats          StatsSource
	reportInterval time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job := func() {
		ReportSessionStats(s.stats)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.reportInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
	scheduler.Start()

	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	sched := s.sched
	s.sched = nil
	s.mu.Unlock()

	if sched == nil {
		return nil
	}
	return sched.Shutdown()
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

// ReportSessionStats logs a single line with the current session store counters.
func ReportSessionStats(src StatsSource) {
	st := src.Stats()
	logrus.WithFields(logrus.Fields{
		"added":     st.Added,
		"evicted":   st.Evicted,
		"hits":      st.Hits,
		"misses":    st.Misses,
		"hit_ratio": st.HitRatio,
	}).Info("Session store stats")
}

func NewScheduler(stats StatsSource, reportInterval time.Duration) *Scheduler {
	if reportInterval <= 0 {
		reportInterval = 60 * time.Second
	}
	return &Scheduler{stats: stats, reportInterval: reportInterval}
}
