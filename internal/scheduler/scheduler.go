package scheduler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mkamara9/herdsman/internal/config"
	"github.com/mkamara9/herdsman/internal/service/reporting"
	"github.com/mkamara9/herdsman/internal/session"
)

// Scheduler runs the daily breeding report: pregnancy reminders plus the
// analytics snapshot. It operates with a service session seeded from
// configuration rather than an interactive user.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	sess         session.Session
	cfg          config.ReportingConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, reportingSvc *reporting.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to local", zap.String("timezone", cfg.Reporting.Timezone))
		location = time.Local
	}

	sess, err := serviceSession(cfg.Session)
	if err != nil {
		logger.Error("failed to resolve service session", zap.Error(err))
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(location)),
		reportingSvc: reportingSvc,
		sess:         sess,
		cfg:          cfg.Reporting,
		logger:       logger,
	}
}

// Start registers the daily job and starts the cron loop. Without a service
// token there is no session to report with, so the scheduler stays idle.
func (s *Scheduler) Start() {
	if !s.sess.HasToken() {
		s.logger.Warn("no service token configured, daily reporting disabled")
		return
	}

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runDailyReport); err != nil {
		s.logger.Error("failed to schedule daily report", zap.Error(err))
		return
	}

	s.logger.Info("scheduler started", zap.String("schedule", s.cfg.CronSchedule))
	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

// serviceSession seeds an in-memory store from configuration and resolves
// the scheduler's session through it, the same path an interactive client's
// persisted store goes through.
func serviceSession(cfg config.SessionConfig) (session.Session, error) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	if cfg.ServiceToken != "" {
		if err := store.Set(ctx, session.KeyToken, cfg.ServiceToken); err != nil {
			return session.Session{}, err
		}
	}
	if cfg.FarmID != "" {
		farm, err := json.Marshal(session.Farm{ID: cfg.FarmID, Name: cfg.FarmName})
		if err != nil {
			return session.Session{}, err
		}
		if err := store.Set(ctx, session.KeyActiveFarm, string(farm)); err != nil {
			return session.Session{}, err
		}
	}

	return session.Resolve(ctx, store)
}

func (s *Scheduler) runDailyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now()

	reminders, err := s.reportingSvc.DueReminders(ctx, s.sess, now)
	if err != nil {
		s.logger.Error("failed to compute pregnancy reminders", zap.Error(err))
	}
	for _, reminder := range reminders {
		s.logger.Info("pregnancy reminder",
			zap.String("breeding_id", reminder.Record.ID),
			zap.String("dam_id", reminder.Record.DamID),
			zap.String("state", string(reminder.Status.State)),
			zap.Int("days_remaining", reminder.Status.DaysRemaining),
			zap.Int("days_overdue", reminder.Status.DaysOverdue))
	}

	if _, err := s.reportingSvc.RunDaily(ctx, s.sess, now); err != nil {
		s.logger.Error("failed to store daily snapshot", zap.Error(err))
	}
}
