package ticket

import (
	"context"
	"time"

	vo "fixmylab/internal/domain/ticket/valueobjects"
)

// Repository persists tickets and their attachments.
//
// GetByID returns (nil, nil) when no ticket exists: absence is a result, not
// an error. All other backend failures surface as errors.
type Repository interface {
	// Create assigns a ticket number when the entity has none, inserts the
	// row and sets the generated ID. Number assignment is safe under
	// concurrency: the implementation retries with a fresh number when an
	// insert loses the uniqueness race.
	Create(ctx context.Context, t *Ticket) error

	// GenerateNumber derives the next number for the bucket of now by
	// scanning the latest existing number with the bucket prefix.
	GenerateNumber(ctx context.Context, now time.Time) (string, error)

	Update(ctx context.Context, t *Ticket) error

	// Delete removes the ticket and all of its attachment rows in one
	// transaction. The cascade is explicit application behavior.
	Delete(ctx context.Context, ticketID uint) error

	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)

	// ListOlderThan returns tickets created before cutoff whose status is
	// not closed, oldest first. Used by the old-tickets digest.
	ListOlderThan(ctx context.Context, cutoff time.Time) ([]*Ticket, error)

	SaveAttachment(ctx context.Context, a *Attachment) error
	GetAttachmentsByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
}

// Filter narrows and pages ticket listings.
type Filter struct {
	Status    *vo.TicketStatus
	Priority  *vo.Priority
	UserID    *string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
