package mappers

import (
	"time"

	"gorm.io/datatypes"

	"fixmylab/internal/domain/ticket"
	vo "fixmylab/internal/domain/ticket/valueobjects"
	"fixmylab/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// AttachmentToModel converts an attachment domain entity to a persistence model.
	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel

	// AttachmentToDomain converts an attachment persistence model to a domain entity.
	AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:              t.ID(),
		Number:          t.Number(),
		CustomerName:    t.CustomerName(),
		CustomerEmail:   t.CustomerEmail(),
		CustomerPhone:   t.CustomerPhone(),
		DeviceType:      t.DeviceType(),
		Description:     t.Description(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		Price:           t.Price(),
		OrderID:         t.OrderID(),
		DevicePassword:  t.DevicePassword(),
		UserID:          t.UserID(),
		AssignedTo:      t.AssignedTo(),
		AssignedToEmail: t.AssignedToEmail(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}

	if t.PurchaseDate() != nil {
		d := datatypes.Date(*t.PurchaseDate())
		model.PurchaseDate = &d
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
// Attachments must be loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}

	var purchaseDate *time.Time
	if model.PurchaseDate != nil {
		d := time.Time(*model.PurchaseDate)
		purchaseDate = &d
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.CustomerName,
		model.CustomerEmail,
		model.CustomerPhone,
		model.DeviceType,
		model.Description,
		status,
		priority,
		model.Price,
		purchaseDate,
		model.OrderID,
		model.DevicePassword,
		model.UserID,
		model.AssignedTo,
		model.AssignedToEmail,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// AttachmentToModel converts an attachment domain entity to a persistence model.
func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		FileURL:    a.FileURL(),
		FileType:   a.FileType().String(),
		UploadedAt: a.UploadedAt(),
	}
}

// AttachmentToDomain converts an attachment persistence model to a domain entity.
func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error) {
	kind, err := vo.NewFileKind(model.FileType)
	if err != nil {
		return nil, err
	}
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.FileURL,
		kind,
		model.UploadedAt,
	)
}
