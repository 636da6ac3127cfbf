package jobs

import (
	"context"
	"time"

	"retreivo-backend/internal/config"
	"retreivo-backend/internal/logger"
	"retreivo-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rewardSvc service.RewardService
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(rewardSvc service.RewardService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		rewardSvc: rewardSvc,
		config:    cfg,
	}
}

// Config returns the loaded configuration (used by the scheduler for cron expressions)
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// ReconcileRewardsBalances audits every user's cached rewards_balance
// against the sum of their ledger entries. It is read-only: divergence is
// logged for operator follow-up, never auto-corrected.
func (jr *JobRunner) ReconcileRewardsBalances() {
	jr.runWithRecovery("ReconcileRewardsBalances", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		mismatches, err := jr.rewardSvc.ReconcileBalances(ctx)
		if err != nil {
			logger.Error("Reconciliation failed", "error", err)
			return
		}
		if len(mismatches) == 0 {
			logger.Info("Rewards balances reconciled, no divergence")
			return
		}
		logger.Warn("Rewards balance divergence detected", "mismatch_count", len(mismatches))
	})
}
