package plans

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/utils"
)

// Refresher warms the plan cache on a cron schedule.
// Failures are logged by the source and retried on the next tick.
type Refresher struct {
	cron     *cron.Cron
	source   *Source
	schedule string
}

// NewRefresher accepts standard cron expressions with an optional seconds field
// and descriptors such as "@every 45s".
func NewRefresher(source *Source, schedule string) (*Refresher, error) {
	r := &Refresher{
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor))),
		source:   source,
		schedule: schedule,
	}

	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		return nil, fmt.Errorf("invalid plan refresh schedule %q: %w", schedule, err)
	}
	return r, nil
}

func (r *Refresher) Start() {
	utils.LogInfo("⏰ Starting plan cache refresher", map[string]interface{}{"schedule": r.schedule})
	r.cron.Start()
}

// Stop waits for a running refresh to finish
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	utils.LogInfo("⏰ Plan cache refresher stopped", nil)
}

func (r *Refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.source.timeout+time.Second)
	defer cancel()

	plans, err := r.source.Refresh(ctx)
	if err != nil {
		return
	}
	utils.LogInfo("🔄 Plan cache refreshed", map[string]interface{}{"plans": len(plans)})
}
