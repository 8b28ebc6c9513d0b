package background

import (
	"context"
	"log"
	"sync"
	"time"

	"medstock/internal/jobs"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler manages background jobs
type JobScheduler struct {
	scheduler    gocron.Scheduler
	stockMonitor *jobs.StockMonitor
	jobs         map[string]gocron.Job
	mu           sync.RWMutex
}

func NewJobScheduler(stockMonitor *jobs.StockMonitor, monitorInterval time.Duration) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:    scheduler,
		stockMonitor: stockMonitor,
		jobs:         make(map[string]gocron.Job),
	}

	js.registerJobs(monitorInterval)

	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs(monitorInterval time.Duration) {
	if monitorInterval <= 0 {
		monitorInterval = 30 * time.Minute
	}

	monitorJob, err := js.scheduler.NewJob(
		gocron.DurationJob(monitorInterval),
		gocron.NewTask(js.stockMonitor.RunOnce, context.Background()),
		gocron.WithName("stock-monitor"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create stock monitor job: %v", err)
	} else {
		js.jobs["stock-monitor"] = monitorJob
	}

	log.Printf("Registered %d background jobs", len(js.jobs))
}

// AddJob adds a custom job to the scheduler
func (js *JobScheduler) AddJob(name string, interval time.Duration, taskFn interface{}, params ...interface{}) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	job, err := js.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(taskFn, params...),
		gocron.WithName(name),
	)
	if err != nil {
		return err
	}

	js.jobs[name] = job
	log.Printf("Added custom job: %s", name)
	return nil
}

// RemoveJob removes a job from the scheduler
func (js *JobScheduler) RemoveJob(name string) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if job, exists := js.jobs[name]; exists {
		err := js.scheduler.RemoveJob(job.ID())
		delete(js.jobs, name)
		return err
	}

	return nil
}

// GetJobStatus returns information about scheduled jobs
func (js *JobScheduler) GetJobStatus() map[string]interface{} {
	js.mu.RLock()
	defer js.mu.RUnlock()

	status := make(map[string]interface{})
	status["total_jobs"] = len(js.jobs)

	names := make([]string, 0, len(js.jobs))
	for name := range js.jobs {
		names = append(names, name)
	}
	status["jobs"] = names

	return status
}
