package usecases

import (
	"context"
	"fmt"
	"time"

	"fixmylab/internal/domain/ticket"
	vo "fixmylab/internal/domain/ticket/valueobjects"
	"fixmylab/internal/shared/errors"
	"fixmylab/internal/shared/logger"
)

type UpdateStatusCommand struct {
	TicketID  uint
	NewStatus string
}

type UpdateStatusResult struct {
	TicketID  uint      `json:"id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	UpdatedAt time.Time `json:"updated_at"`
	// NotificationSent reports the best-effort status-change email result.
	NotificationSent bool `json:"notification_sent"`
}

type UpdateStatusUseCase struct {
	ticketRepo ticket.Repository
	notifier   Notifier
	logger     logger.Interface
}

func NewUpdateStatusUseCase(
	ticketRepo ticket.Repository,
	notifier Notifier,
	log logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     log,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error) {
	uc.logger.Infow("executing update status use case", "ticket_id", cmd.TicketID, "new_status", cmd.NewStatus)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	// The prior status is captured before the write; the notification
	// message carries the old -> new pair.
	oldStatus := t.Status()

	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	sent := false
	if oldStatus != t.Status() {
		sent = uc.notifier.SendStatusChange(ctx, t, oldStatus)
	}

	uc.logger.Infow("ticket status updated",
		"ticket_id", cmd.TicketID, "old_status", oldStatus, "new_status", newStatus, "notification_sent", sent)

	return &UpdateStatusResult{
		TicketID:         t.ID(),
		OldStatus:        oldStatus.String(),
		NewStatus:        t.Status().String(),
		UpdatedAt:        t.UpdatedAt(),
		NotificationSent: sent,
	}, nil
}
