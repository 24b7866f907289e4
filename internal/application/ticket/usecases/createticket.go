package usecases

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"fixmylab/internal/domain/ticket"
	vo "fixmylab/internal/domain/ticket/valueobjects"
	"fixmylab/internal/shared/errors"
	"fixmylab/internal/shared/logger"
)

// UploadFile is a file attached to a creation request.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type CreateTicketCommand struct {
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	DeviceType     string
	Description    string
	Priority       string
	PurchaseDate   *time.Time
	OrderID        string
	DevicePassword string
	UserID         string
	Files          []UploadFile
}

type CreateTicketResult struct {
	TicketID     uint      `json:"id"`
	TicketNumber string    `json:"ticket_number"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	// AttachmentsSaved counts the uploads that completed. Uploads are
	// best-effort: a partial result still means the ticket was created.
	AttachmentsSaved int `json:"attachments_saved"`
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	store      ObjectStore
	notifier   Notifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	store ObjectStore,
	notifier Notifier,
	log logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		store:      store,
		notifier:   notifier,
		logger:     log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "customer", cmd.CustomerName, "user_id", cmd.UserID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority := vo.Priority(cmd.Priority)

	newTicket, err := ticket.NewTicket(
		cmd.CustomerName,
		cmd.CustomerEmail,
		cmd.DeviceType,
		cmd.Description,
		priority,
		cmd.UserID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newTicket.ApplyDetails(ticket.DetailUpdate{
		CustomerPhone:  &cmd.CustomerPhone,
		PurchaseDate:   cmd.PurchaseDate,
		OrderID:        &cmd.OrderID,
		DevicePassword: &cmd.DevicePassword,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	// Uploads and the notification are side effects. Their failures are
	// logged and reflected in the result, never rolled back into the
	// already-created ticket.
	saved := uc.attachFiles(ctx, newTicket, cmd.Files)

	if sent := uc.notifier.SendNewTicket(ctx, newTicket); !sent {
		uc.logger.Debugw("new ticket notification not sent", "ticket_id", newTicket.ID())
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(), "number", newTicket.Number(), "attachments_saved", saved)

	return &CreateTicketResult{
		TicketID:         newTicket.ID(),
		TicketNumber:     newTicket.Number(),
		Status:           newTicket.Status().String(),
		CreatedAt:        newTicket.CreatedAt(),
		AttachmentsSaved: saved,
	}, nil
}

// attachFiles uploads files one at a time. The first failure aborts the
// remaining uploads so a broken batch stops cleanly; files already stored
// keep their attachment rows.
func (uc *CreateTicketUseCase) attachFiles(ctx context.Context, t *ticket.Ticket, files []UploadFile) int {
	saved := 0
	for _, f := range files {
		if err := ValidateUpload(f.ContentType, f.Size); err != nil {
			uc.logger.Warnw("attachment rejected",
				"ticket_id", t.ID(), "filename", f.Filename, "content_type", f.ContentType, "error", err)
			break
		}

		key := fmt.Sprintf("ticket-attachments/%d/%s%s", t.ID(), uuid.NewString(), path.Ext(f.Filename))
		url, err := uc.store.Put(ctx, key, f.Content, f.Size, f.ContentType)
		if err != nil {
			uc.logger.Errorw("attachment upload failed, aborting remaining uploads",
				"ticket_id", t.ID(), "filename", f.Filename, "error", err)
			break
		}

		attachment, err := ticket.NewAttachment(t.ID(), url, vo.FileKindFromFilename(f.Filename))
		if err != nil {
			uc.logger.Errorw("failed to build attachment", "ticket_id", t.ID(), "error", err)
			break
		}
		if err := uc.ticketRepo.SaveAttachment(ctx, attachment); err != nil {
			uc.logger.Errorw("failed to save attachment row", "ticket_id", t.ID(), "error", err)
			break
		}
		saved++
	}
	return saved
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.UserID) == 0 {
		return errors.NewUnauthorizedError("authentication required")
	}
	if len(cmd.CustomerName) == 0 {
		return errors.NewValidationError("customer name is required")
	}
	if len(cmd.CustomerEmail) == 0 {
		return errors.NewValidationError("customer email is required")
	}
	if len(cmd.DeviceType) == 0 {
		return errors.NewValidationError("device type is required")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	return nil
}
