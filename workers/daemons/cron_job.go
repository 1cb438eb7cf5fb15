package daemons

import (
	"github.com/jasonlvhit/gocron"

	"github.com/divisapp/divisa/jobs"
	"github.com/divisapp/divisa/jobs/cron"
)

type Worker interface {
	Start()
	Stop()
}

// CronJob runs the periodic jobs on a shared scheduler.
type CronJob struct {
	Jobs      []jobs.Job
	scheduler *gocron.Scheduler
}

func NewCronJob() *CronJob {
	jobs := []jobs.Job{&cron.SessionSweeperJob{}}

	return &CronJob{Jobs: jobs, scheduler: gocron.NewScheduler()}
}

func (c *CronJob) Start() {
	for _, job := range c.Jobs {
		c.scheduler.Every(5).Minutes().Do(job.Process)
	}

	<-c.scheduler.Start()
}

func (c *CronJob) Stop() {
	c.scheduler.Clear()
}
