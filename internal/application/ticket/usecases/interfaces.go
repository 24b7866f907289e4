package usecases

import (
	"context"
	"io"

	"fixmylab/internal/domain/ticket"
	vo "fixmylab/internal/domain/ticket/valueobjects"
)

// ObjectStore is the attachment storage port. Put streams content under the
// given key and returns a publicly resolvable URL.
type ObjectStore interface {
	Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error)
	// DeletePrefix removes every object under the prefix. Used by ticket
	// deletion to drop stored files, best-effort.
	DeletePrefix(ctx context.Context, prefix string) error
}

// Notifier is the notification port. Results are booleans: a failed send
// never fails the operation that triggered it.
type Notifier interface {
	SendNewTicket(ctx context.Context, t *ticket.Ticket) bool
	SendStatusChange(ctx context.Context, t *ticket.Ticket, oldStatus vo.TicketStatus) bool
	SendOldTicketsDigest(ctx context.Context) bool
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type OldTicketsCheckExecutor interface {
	Execute(ctx context.Context) (bool, error)
}
