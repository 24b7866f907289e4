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

// UpdateTicketCommand carries a partial field update. Nil pointers leave the
// current value untouched.
type UpdateTicketCommand struct {
	TicketID        uint
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	DeviceType      *string
	Description     *string
	Priority        *string
	Price           *float64
	ClearPrice      bool
	PurchaseDate    *time.Time
	OrderID         *string
	DevicePassword  *string
	AssignedTo      *string
	AssignedToEmail *string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, log logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangePriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.AssignedTo != nil {
		email := ""
		if cmd.AssignedToEmail != nil {
			email = *cmd.AssignedToEmail
		}
		if err := t.AssignTo(*cmd.AssignedTo, email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := t.ApplyDetails(ticket.DetailUpdate{
		CustomerName:   cmd.CustomerName,
		CustomerEmail:  cmd.CustomerEmail,
		CustomerPhone:  cmd.CustomerPhone,
		DeviceType:     cmd.DeviceType,
		Description:    cmd.Description,
		Price:          cmd.Price,
		ClearPrice:     cmd.ClearPrice,
		PurchaseDate:   cmd.PurchaseDate,
		OrderID:        cmd.OrderID,
		DevicePassword: cmd.DevicePassword,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.TicketID)

	return ticketToDTO(t), nil
}
