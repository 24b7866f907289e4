package usecases

import (
	"time"

	"fixmylab/internal/domain/ticket"
)

type AttachmentDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	FileURL    string    `json:"file_url"`
	FileType   string    `json:"file_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type TicketDTO struct {
	ID              uint            `json:"id"`
	TicketNumber    string          `json:"ticket_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	DeviceType      string          `json:"device_type"`
	Description     string          `json:"description"`
	Status          string          `json:"status"`
	StatusLabel     string          `json:"status_label"`
	Priority        string          `json:"priority"`
	Price           *float64        `json:"price"`
	PurchaseDate    *time.Time      `json:"purchase_date,omitempty"`
	OrderID         string          `json:"order_id,omitempty"`
	Password        string          `json:"password,omitempty"`
	UserID          string          `json:"user_id"`
	AssignedTo      string          `json:"assigned_to,omitempty"`
	AssignedToEmail string          `json:"assigned_to_email,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Attachments     []AttachmentDTO `json:"attachments"`
	Terms           string          `json:"terms,omitempty"`
}

func attachmentToDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		FileURL:    a.FileURL(),
		FileType:   a.FileType().String(),
		UploadedAt: a.UploadedAt(),
	}
}

func ticketToDTO(t *ticket.Ticket) *TicketDTO {
	attachments := make([]AttachmentDTO, 0, len(t.Attachments()))
	for _, a := range t.Attachments() {
		attachments = append(attachments, attachmentToDTO(a))
	}

	return &TicketDTO{
		ID:              t.ID(),
		TicketNumber:    t.Number(),
		CustomerName:    t.CustomerName(),
		CustomerEmail:   t.CustomerEmail(),
		CustomerPhone:   t.CustomerPhone(),
		DeviceType:      t.DeviceType(),
		Description:     t.Description(),
		Status:          t.Status().String(),
		StatusLabel:     t.Status().Label(),
		Priority:        t.Priority().String(),
		Price:           t.Price(),
		PurchaseDate:    t.PurchaseDate(),
		OrderID:         t.OrderID(),
		Password:        t.DevicePassword(),
		UserID:          t.UserID(),
		AssignedTo:      t.AssignedTo(),
		AssignedToEmail: t.AssignedToEmail(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		Attachments:     attachments,
	}
}
