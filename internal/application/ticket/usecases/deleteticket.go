package usecases

import (
	"context"
	"fmt"

	"fixmylab/internal/domain/ticket"
	"fixmylab/internal/shared/errors"
	"fixmylab/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	store      ObjectStore
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, store ObjectStore, log logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		store:      store,
		logger:     log,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to load ticket")
	}
	if t == nil {
		return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	// Attachment rows go with the ticket in one transaction inside the
	// repository; the stored files are cleaned up best-effort afterwards.
	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to delete ticket")
	}

	prefix := fmt.Sprintf("ticket-attachments/%d/", cmd.TicketID)
	if err := uc.store.DeletePrefix(ctx, prefix); err != nil {
		uc.logger.Warnw("failed to remove stored attachment files", "ticket_id", cmd.TicketID, "error", err)
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "number", t.Number())
	return nil
}
