package usecases

import (
	"context"
	"fmt"

	"fixmylab/internal/domain/ticket"
	"fixmylab/internal/shared/errors"
	"fixmylab/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	// IncludeTerms attaches the shop's terms text to the payload; the
	// public ticket view renders it under the ticket details.
	IncludeTerms bool
}

// TermsProvider returns the rendered terms-and-conditions HTML, empty when
// unconfigured.
type TermsProvider interface {
	TermsHTML(ctx context.Context) string
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	terms      TermsProvider
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, terms TermsProvider, log logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		terms:      terms,
		logger:     log,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	dto := ticketToDTO(t)
	if query.IncludeTerms && uc.terms != nil {
		dto.Terms = uc.terms.TermsHTML(ctx)
	}
	return dto, nil
}
