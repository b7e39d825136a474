package services

import (
	"Packlist/internal/config"
	"Packlist/internal/repository"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type Janitor struct {
	draftRepository repository.DraftRepository
	configuration   *config.Configuration
	logService      LogService
	cleaning        bool
	mutex           sync.Mutex
	cron            *cron.Cron
	now             func() time.Time
}

func NewJanitorService(
	draftRepository repository.DraftRepository,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		draftRepository: draftRepository,
		logService:      logService,
		configuration:   configuration,
		cron:            cron.New(),
		now:             time.Now,
	}
}

// ForceStartCleanCycle runs one purge in the background.
func (j *Janitor) ForceStartCleanCycle() error {
	if !j.acquire() {
		return ErrCleaningRunning
	}
	go func() {
		defer j.release()
		j.startClean(true)
	}()
	return nil
}

// RunOnce purges synchronously and returns the number of drafts removed.
func (j *Janitor) RunOnce() (int, error) {
	if !j.acquire() {
		return 0, ErrCleaningRunning
	}
	defer j.release()
	return j.startClean(true)
}

func (j *Janitor) StartCleanCycle() {
	j.logService.Log.Debug("starting cleaning job")
	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		if !j.acquire() {
			return
		}
		defer j.release()
		_, _ = j.startClean(false)
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
		return
	}
	j.cron.Start()
}

func (j *Janitor) StopClean() {
	<-j.cron.Stop().Done()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) acquire() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cleaning {
		return false
	}
	j.cleaning = true
	return true
}

func (j *Janitor) release() {
	j.mutex.Lock()
	j.cleaning = false
	j.mutex.Unlock()
}

func (j *Janitor) startClean(forced bool) (int, error) {
	cutoff := j.now().Add(-j.configuration.Server.CleanConfig.DraftTTL)
	drafts, err := j.draftRepository.FindStale(cutoff)
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to find stale drafts")
		return 0, err
	}
	if len(drafts) == 0 {
		j.logService.Log.Debug("no stale drafts")
		return 0, nil
	}

	logFields := logrus.Fields{"job": "clean", "status": "start", "cron": j.configuration.Server.CleanConfig.Schedule}
	if forced {
		logFields = logrus.Fields{"job": "clean", "status": "forced"}
	}
	j.logService.Log.WithFields(logFields).Info(fmt.Sprintf("Found %d drafts to delete", len(drafts)))

	var deletedCount int
	for i := range drafts {
		if err := j.draftRepository.HardDelete(&drafts[i]); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":    "clean",
				"status": "error",
				"error":  err.Error(),
				"token":  drafts[i].Token,
			}).Error("Failed to delete draft")
			continue
		}
		deletedCount++
	}
	fields := logrus.Fields{
		"job":    "clean",
		"status": "success",
		"count":  deletedCount,
	}
	if remaining, err := j.draftRepository.Count(); err == nil {
		fields["remaining"] = remaining
	}
	j.logService.Log.WithFields(fields).Info("cleaning job finished")
	return deletedCount, nil
}

// Cleaner is the part of the janitor exposed to HTTP and CLI callers.
type Cleaner interface {
	ForceStartCleanCycle() error
	RunOnce() (int, error)
	IsCleaning() bool
}

var _ Cleaner = (*Janitor)(nil)
