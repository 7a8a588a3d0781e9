package scheduler

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"RiskFrontier/internal/analysis"
	"RiskFrontier/internal/collector"
	"RiskFrontier/internal/model"
	"RiskFrontier/internal/notifier"
	"RiskFrontier/internal/recorder"
	"RiskFrontier/internal/report"

	"github.com/robfig/cron/v3"
)

// Options describes one analysis run.
type Options struct {
	Pairs      []analysis.Pair
	GridPoints int
	Lookback   time.Duration
}

// Scheduler runs the analysis task once or on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Notifier  notifier.Notifier // nil disables delivery
	Output    io.Writer
	Options   Options
	Ctx       context.Context

	mu  sync.Mutex // one run at a time
	now func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, rec recorder.Recorder, n notifier.Notifier, out io.Writer, opts Options) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Recorder:  rec,
		Notifier:  n,
		Output:    out,
		Options:   opts,
		Ctx:       ctx,
		now:       time.Now,
	}
}

// Register schedules the analysis task on spec (six fields, seconds first).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.analysisTask); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one analysis immediately and returns its result.
// Concurrent calls run one after another.
func (s *Scheduler) RunNow() (*model.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	end := s.now()
	start := end.Add(-s.Options.Lookback)
	log.Printf("[INFO] running analysis %s to %s", start.Format(time.DateOnly), end.Format(time.DateOnly))

	table, err := s.Collector.Collect(s.Ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("collect prices: %w", err)
	}
	a, err := analysis.Run(table, s.Options.Pairs, s.Options.GridPoints)
	if err != nil {
		return nil, err
	}

	if _, err := io.WriteString(s.Output, report.FormatAnalysis(a)); err != nil {
		log.Printf("[ERROR] write report: %v", err)
	}
	if err := s.Recorder.RecordAnalysis(a); err != nil {
		log.Printf("[ERROR] record analysis: %v", err)
	}
	if s.Notifier != nil {
		if err := s.Notifier.SendWithRetry(s.Ctx, report.FormatSummary(a), 3); err != nil {
			log.Printf("[ERROR] send notification: %v", err)
		}
	}
	return a, nil
}

func (s *Scheduler) analysisTask() {
	if _, err := s.RunNow(); err != nil {
		log.Printf("[ERROR] analysis: %v", err)
	}
}
