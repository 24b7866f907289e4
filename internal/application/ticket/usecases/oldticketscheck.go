package usecases

import (
	"context"

	"fixmylab/internal/shared/logger"
)

// OldTicketsCheckUseCase triggers the old-tickets digest. It is invoked by
// the scheduler and by the on-demand admin endpoint; the boolean result says
// whether a digest was actually sent.
type OldTicketsCheckUseCase struct {
	notifier Notifier
	logger   logger.Interface
}

func NewOldTicketsCheckUseCase(notifier Notifier, log logger.Interface) *OldTicketsCheckUseCase {
	return &OldTicketsCheckUseCase{
		notifier: notifier,
		logger:   log,
	}
}

func (uc *OldTicketsCheckUseCase) Execute(ctx context.Context) (bool, error) {
	sent := uc.notifier.SendOldTicketsDigest(ctx)
	uc.logger.Infow("old tickets check completed", "digest_sent", sent)
	return sent, nil
}
