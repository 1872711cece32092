package bootstrap

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/robfig/cron/v3"

	httpapi "github.com/nexus-blend/showcase-api/internal/api/http"
	apimw "github.com/nexus-blend/showcase-api/internal/api/http/middleware"
)

// Job is a named background task on a cron schedule (seconds field
// included, descriptors such as "@every 5m" accepted).
type Job struct {
	Name string
	Spec string
	Run  func()
}

type Scheduler struct {
	cron *cron.Cron
	jobs []string
}

func NewScheduler(jobs ...Job) (*Scheduler, error) {
	c := cron.New(cron.WithSeconds())
	s := &Scheduler{cron: c}

	for _, j := range jobs {
		if _, err := c.AddFunc(j.Spec, j.Run); err != nil {
			return nil, fmt.Errorf("schedule %s (%q): %w", j.Name, j.Spec, err)
		}
		s.jobs = append(s.jobs, j.Name)
	}
	return s, nil
}

// Start runs the jobs in the background until Stop.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("[info] scheduler started jobs=%s", strings.Join(s.jobs, ","))
}

// Stop halts scheduling; the returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// MaintenanceJobs returns the housekeeping jobs of the API process.
func MaintenanceJobs(limiter *apimw.IPRateLimiter, records httpapi.RecordCounter) []Job {
	return []Job{
		{
			Name: "limiter_sweep",
			Spec: "@every 5m",
			Run: func() {
				if n := limiter.Sweep(); n > 0 {
					log.Printf("[info] limiter_sweep dropped=%d tracked=%d", n, limiter.Tracked())
				}
			},
		},
		{
			Name: "content_stats",
			Spec: "0 0 * * * *",
			Run: func() {
				log.Printf("[info] content_stats %s", formatCounts(records))
			},
		},
	}
}

func formatCounts(records httpapi.RecordCounter) string {
	counts := records.Counts()
	parts := make([]string, 0, len(counts))
	for kind, n := range counts {
		parts = append(parts, fmt.Sprintf("%s=%d", kind, n))
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
