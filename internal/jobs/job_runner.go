package jobs

import (
	"context"
	"time"

	"github.com/Amarie1212/ppmnurulhakim/internal/config"
	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/logger"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
	"github.com/Amarie1212/ppmnurulhakim/internal/service"
	"github.com/Amarie1212/ppmnurulhakim/internal/storage"
)

const jobTimeout = 5 * time.Minute

// JobRunner coordinates the scheduled maintenance jobs.
type JobRunner struct {
	staffRepo repository.StaffRepository
	adminRepo repository.AdminRepository
	store     storage.Interface
	emailSvc  service.EmailService
	config    *config.Config
}

func NewJobRunner(staffRepo repository.StaffRepository, adminRepo repository.AdminRepository,
	store storage.Interface, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		staffRepo: staffRepo,
		adminRepo: adminRepo,
		store:     store,
		emailSvc:  emailSvc,
		config:    cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	logger.Info("Starting job", "job", jobName)
	jobFunc(ctx)
	logger.Info("Job completed", "job", jobName)
}

// SendPendingReviewReminders mails the committee and treasury a digest of
// submissions still waiting for a decision. Nothing pending, no mail.
func (jr *JobRunner) SendPendingReviewReminders() {
	jr.runWithRecovery("SendPendingReviewReminders", func(ctx context.Context) {
		stats, err := jr.adminRepo.Stats(ctx)
		if err != nil {
			logger.Error("failed to load pending stats", "error", err)
			return
		}
		if stats.PendingAccounts == 0 && stats.PendingBiodata == 0 && stats.PendingPayments == 0 {
			return
		}

		reviewers, err := jr.staffRepo.ListByRoles(ctx, domain.StaffRoleCommittee, domain.StaffRoleTreasury)
		if err != nil {
			logger.Error("failed to list reviewers", "error", err)
			return
		}
		for _, st := range reviewers {
			if err := jr.emailSvc.SendPendingReviewDigest(ctx, st.Email, st.Name, stats); err != nil {
				logger.Warn("failed to send review digest", "email", st.Email, "error", err)
			}
		}
	})
}

// CleanupOrphanBlobs deletes stored files no row references anymore,
// left behind by best-effort deletes that lost a race or crashed.
func (jr *JobRunner) CleanupOrphanBlobs() {
	jr.runWithRecovery("CleanupOrphanBlobs", func(ctx context.Context) {
		referenced, err := jr.adminRepo.ReferencedBlobPaths(ctx)
		if err != nil {
			logger.Error("failed to collect referenced paths", "error", err)
			return
		}
		keep := make(map[string]bool, len(referenced))
		for _, p := range referenced {
			keep[p] = true
		}

		keys, err := jr.store.List(ctx)
		if err != nil {
			logger.Error("failed to list stored blobs", "error", err)
			return
		}

		var removed int
		for _, key := range keys {
			if keep[key] {
				continue
			}
			if err := jr.store.Delete(ctx, key); err != nil {
				logger.Warn("failed to delete orphan blob", "key", key, "error", err)
				continue
			}
			removed++
		}
		if removed > 0 {
			logger.Info("removed orphan blobs", "count", removed)
		}
	})
}
