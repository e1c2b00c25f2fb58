package jobs

import (
	"context"

	"librarysystem-backend/internal/logger"
)

// NotifyDueSoon sends a notice for every loan due in exactly the configured
// number of days.
func (jr *JobRunner) NotifyDueSoon() {
	jr.runWithRecovery("NotifyDueSoon", func() {
		ctx := context.Background()

		count, err := jr.loanSvc.NotifyDueSoon(ctx)
		if err != nil {
			logger.Error("Failed to run due-soon notification scan", "error", err)
			return
		}

		logger.Info("Due-soon notification scan finished", "notified", count)
	})
}
