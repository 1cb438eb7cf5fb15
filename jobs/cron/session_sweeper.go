package cron

import (
	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/controllers"
)

// SessionSweeperJob purges conversion sessions idle past their TTL so
// abandoned screens do not pile up in memory.
type SessionSweeperJob struct {
}

func (j *SessionSweeperJob) Process() {
	if controllers.Sessions == nil {
		return
	}

	purged := controllers.Sessions.SweepIdle()

	if purged > 0 {
		config.Logger.Infof("Purged %d idle conversion sessions, %d remain", purged, controllers.Sessions.Size())
	}
}
