package scheduler

import (
	"log"

	"github.com/SongJongbeen/ai-media/internal/service"
	"github.com/robfig/cron/v3"
)

// Scheduler triggers a collection run on a cron spec. The collector's own
// same-day guard makes extra ticks within a day no-ops.
type Scheduler struct {
	cron      *cron.Cron
	collector *service.Collector
}

func New(spec string, c *service.Collector) (*Scheduler, error) {
	cr := cron.New()

	s := &Scheduler{cron: cr, collector: c}
	if _, err := cr.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins the cron loop and kicks off an immediate first run, so a
// daemon started after the scheduled hour still collects today's news.
func (s *Scheduler) Start() {
	s.cron.Start()
	go s.runOnce()
}

// Stop halts the cron loop.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce is the manual trigger used by the one-shot CLI path.
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	res := s.collector.CollectAll(false)
	log.Printf("collection run finished: status=%s date=%s articles=%d", res.Status, res.Date, res.TotalArticles)
}
