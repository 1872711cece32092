package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apimw "github.com/nexus-blend/showcase-api/internal/api/http/middleware"
	"github.com/nexus-blend/showcase-api/internal/content/domain"
)

type fixedCounts map[domain.Kind]int

func (f fixedCounts) Counts() map[domain.Kind]int { return f }

func TestNewScheduler_RejectsBadSpec(t *testing.T) {
	_, err := NewScheduler(Job{Name: "broken", Spec: "every now and then", Run: func() {}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestScheduler_RunsJobs(t *testing.T) {
	ran := make(chan struct{}, 1)
	s, err := NewScheduler(Job{Name: "tick", Spec: "@every 1s", Run: func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	}})
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestMaintenanceJobs(t *testing.T) {
	limiter := apimw.NewIPRateLimiter(1, 1)
	jobs := MaintenanceJobs(limiter, fixedCounts{domain.KindProjects: 9})
	require.Len(t, jobs, 2)

	_, err := NewScheduler(jobs...)
	require.NoError(t, err)

	for _, j := range jobs {
		assert.NotPanics(t, j.Run, j.Name)
	}
}

func TestFormatCounts_Sorted(t *testing.T) {
	got := formatCounts(fixedCounts{domain.KindTeam: 8, domain.KindProjects: 9})
	assert.Equal(t, "projects=9 team=8", got)
}
