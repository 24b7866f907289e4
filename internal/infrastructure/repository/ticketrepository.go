package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"fixmylab/internal/domain/ticket"
	vo "fixmylab/internal/domain/ticket/valueobjects"
	"fixmylab/internal/infrastructure/persistence/mappers"
	"fixmylab/internal/infrastructure/persistence/models"
	"fixmylab/internal/shared/biztime"
	"fixmylab/internal/shared/errors"
	"fixmylab/internal/shared/logger"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":             true,
	"number":         true,
	"customer_name":  true,
	"customer_email": true,
	"device_type":    true,
	"status":         true,
	"priority":       true,
	"created_at":     true,
	"updated_at":     true,
}

// maxNumberRetries bounds how many times Create retries after losing the
// ticket-number uniqueness race.
const maxNumberRetries = 5

type TicketRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB, log logger.Interface) ticket.Repository {
	return &TicketRepository{
		db:     db,
		logger: log,
		mapper: mappers.NewTicketMapper(),
	}
}

// Create inserts the ticket, assigning a number when the entity has none.
// Two callers can read the same latest number and both try to insert it;
// the unique index on number rejects the loser, which retries with a fresh
// number.
func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	// Only a number generated during this call may be regenerated after a
	// collision; a caller-assigned number stays as given and its duplicate
	// is a hard error.
	generated := false

	for attempt := 0; ; attempt++ {
		if t.Number() == "" {
			number, err := r.GenerateNumber(ctx, biztime.Now())
			if err != nil {
				return err
			}
			if err := t.SetNumber(number); err != nil {
				return err
			}
			generated = true
		}

		model := r.mapper.ToModel(t)
		err := r.db.WithContext(ctx).Create(model).Error
		if err == nil {
			return t.SetID(model.ID)
		}

		if !generated || !errors.IsDuplicateError(err) || attempt >= maxNumberRetries {
			return fmt.Errorf("failed to create ticket: %w", err)
		}

		r.logger.Warnw("ticket number collision, retrying",
			"number", t.Number(),
			"attempt", attempt+1)
		t.ClearNumber()
	}
}

// GenerateNumber scans the latest number in the bucket of now and returns
// the next one. The first ticket of a month gets sequence 1.
func (r *TicketRepository) GenerateNumber(ctx context.Context, now time.Time) (string, error) {
	prefix := ticket.NumberPrefix(now)

	var latest string
	err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Select("number").
		Where("number LIKE ?", prefix+"%").
		Order("number DESC").
		Limit(1).
		Scan(&latest).Error
	if err != nil {
		return "", fmt.Errorf("failed to scan latest ticket number: %w", err)
	}

	return ticket.FormatNumber(now, ticket.NextSequence(latest)), nil
}

// Update persists every mutable column. Columns are selected explicitly so
// cleared values (nil price, emptied phone or assignment) reach the store;
// a struct-based Updates would skip them as zero values. Number, user_id and
// created_at never change after Create.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select(
			"customer_name", "customer_email", "customer_phone",
			"device_type", "description", "status", "priority",
			"price", "purchase_date", "order_id", "device_password",
			"assigned_to", "assigned_to_email", "updated_at",
		).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

// Delete removes the ticket and its attachment rows in one transaction.
func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("ticket_id = ?", ticketID).
			Delete(&models.AttachmentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket attachments: %w", err)
		}

		result := tx.Delete(&models.TicketModel{}, ticketID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("ticket not found")
		}
		return nil
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).
		First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadAttachments(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadAttachments(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.Filter,
) ([]*ticket.Ticket, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"number LIKE ? OR customer_name LIKE ? OR customer_email LIKE ? OR device_type LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

// ListOlderThan returns non-closed tickets created before cutoff, oldest first.
func (r *TicketRepository) ListOlderThan(ctx context.Context, cutoff time.Time) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel

	if err := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Where("status <> ?", vo.StatusClosed.String()).
		Order("created_at ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list old tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

func (r *TicketRepository) SaveAttachment(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *TicketRepository) GetAttachmentsByTicketID(
	ctx context.Context,
	ticketID uint,
) ([]*ticket.Attachment, error) {
	var attachmentModels []models.AttachmentModel

	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("uploaded_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, len(attachmentModels))
	for i, model := range attachmentModels {
		a, err := r.mapper.AttachmentToDomain(&model)
		if err != nil {
			return nil, err
		}
		attachments[i] = a
	}

	return attachments, nil
}

// loadAttachments queries attachments for a ticket and adds them to the domain entity.
func (r *TicketRepository) loadAttachments(ctx context.Context, t *ticket.Ticket, ticketID uint) error {
	attachments, err := r.GetAttachmentsByTicketID(ctx, ticketID)
	if err != nil {
		return err
	}

	for _, a := range attachments {
		if err := t.AddAttachment(a); err != nil {
			return err
		}
	}

	return nil
}
