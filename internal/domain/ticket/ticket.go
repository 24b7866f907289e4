package ticket

import (
	"fmt"
	"time"

	vo "fixmylab/internal/domain/ticket/valueobjects"
)

// Ticket is a repair-order record tracked from intake to closure.
type Ticket struct {
	id             uint
	number         string
	customerName   string
	customerEmail  string
	customerPhone  string
	deviceType     string
	description    string
	status         vo.TicketStatus
	priority       vo.Priority
	price          *float64
	purchaseDate   *time.Time
	orderID        string
	devicePassword string
	userID         string
	assignedTo     string
	assignedToEmail string
	createdAt      time.Time
	updatedAt      time.Time
	attachments    []*Attachment
}

func NewTicket(
	customerName string,
	customerEmail string,
	deviceType string,
	description string,
	priority vo.Priority,
	userID string,
) (*Ticket, error) {
	if len(customerName) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if len(customerEmail) == 0 {
		return nil, fmt.Errorf("customer email is required")
	}
	if len(deviceType) == 0 {
		return nil, fmt.Errorf("device type is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := time.Now()
	return &Ticket{
		customerName:  customerName,
		customerEmail: customerEmail,
		deviceType:    deviceType,
		description:   description,
		status:        vo.StatusIntake,
		priority:      priority,
		userID:        userID,
		createdAt:     now,
		updatedAt:     now,
		attachments:   []*Attachment{},
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	customerName string,
	customerEmail string,
	customerPhone string,
	deviceType string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	price *float64,
	purchaseDate *time.Time,
	orderID string,
	devicePassword string,
	userID string,
	assignedTo string,
	assignedToEmail string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Ticket{
		id:              id,
		number:          number,
		customerName:    customerName,
		customerEmail:   customerEmail,
		customerPhone:   customerPhone,
		deviceType:      deviceType,
		description:     description,
		status:          status,
		priority:        priority,
		price:           price,
		purchaseDate:    purchaseDate,
		orderID:         orderID,
		devicePassword:  devicePassword,
		userID:          userID,
		assignedTo:      assignedTo,
		assignedToEmail: assignedToEmail,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		attachments:     []*Attachment{},
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) Number() string          { return t.number }
func (t *Ticket) CustomerName() string    { return t.customerName }
func (t *Ticket) CustomerEmail() string   { return t.customerEmail }
func (t *Ticket) CustomerPhone() string   { return t.customerPhone }
func (t *Ticket) DeviceType() string      { return t.deviceType }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) Price() *float64         { return t.price }
func (t *Ticket) PurchaseDate() *time.Time { return t.purchaseDate }
func (t *Ticket) OrderID() string         { return t.orderID }
func (t *Ticket) DevicePassword() string  { return t.devicePassword }
func (t *Ticket) UserID() string          { return t.userID }
func (t *Ticket) AssignedTo() string      { return t.assignedTo }
func (t *Ticket) AssignedToEmail() string { return t.assignedToEmail }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }

func (t *Ticket) Attachments() []*Attachment {
	attachmentsCopy := make([]*Attachment, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

// SetID is for persistence layer use after insert.
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetNumber assigns the ticket number once; it is immutable afterwards.
func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if _, ok := ParseSequence(number); !ok {
		return fmt.Errorf("malformed ticket number: %s", number)
	}
	t.number = number
	return nil
}

// ClearNumber drops an assigned number so it can be regenerated. Only the
// persistence layer uses this, when an insert loses a numbering race.
func (t *Ticket) ClearNumber() {
	if t.id == 0 {
		t.number = ""
	}
}

// ChangeStatus moves the ticket to a new status. Any valid status may follow
// any other; business rules allow free-form transitions.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// ChangePriority updates the priority.
func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	if t.priority == newPriority {
		return nil
	}
	t.priority = newPriority
	t.updatedAt = time.Now()
	return nil
}

// AssignTo records the staff member working the ticket.
func (t *Ticket) AssignTo(name, email string) error {
	if len(name) == 0 {
		return fmt.Errorf("assignee name is required")
	}
	t.assignedTo = name
	t.assignedToEmail = email
	t.updatedAt = time.Now()
	return nil
}

// DetailUpdate carries the optional staff-editable fields of a ticket.
// Nil pointers leave the current value untouched.
type DetailUpdate struct {
	CustomerName   *string
	CustomerEmail  *string
	CustomerPhone  *string
	DeviceType     *string
	Description    *string
	Price          *float64
	ClearPrice     bool
	PurchaseDate   *time.Time
	OrderID        *string
	DevicePassword *string
}

// ApplyDetails applies a partial field update and refreshes updated_at.
func (t *Ticket) ApplyDetails(u DetailUpdate) error {
	if u.CustomerName != nil {
		if len(*u.CustomerName) == 0 {
			return fmt.Errorf("customer name cannot be empty")
		}
		t.customerName = *u.CustomerName
	}
	if u.CustomerEmail != nil {
		if len(*u.CustomerEmail) == 0 {
			return fmt.Errorf("customer email cannot be empty")
		}
		t.customerEmail = *u.CustomerEmail
	}
	if u.CustomerPhone != nil {
		t.customerPhone = *u.CustomerPhone
	}
	if u.DeviceType != nil {
		if len(*u.DeviceType) == 0 {
			return fmt.Errorf("device type cannot be empty")
		}
		t.deviceType = *u.DeviceType
	}
	if u.Description != nil {
		if len(*u.Description) == 0 {
			return fmt.Errorf("description cannot be empty")
		}
		t.description = *u.Description
	}
	if u.ClearPrice {
		t.price = nil
	} else if u.Price != nil {
		t.price = u.Price
	}
	if u.PurchaseDate != nil {
		t.purchaseDate = u.PurchaseDate
	}
	if u.OrderID != nil {
		t.orderID = *u.OrderID
	}
	if u.DevicePassword != nil {
		t.devicePassword = *u.DevicePassword
	}
	t.updatedAt = time.Now()
	return nil
}

// AddAttachment links an attachment loaded from persistence.
func (t *Ticket) AddAttachment(a *Attachment) error {
	if a == nil {
		return fmt.Errorf("attachment cannot be nil")
	}
	if t.id != 0 && a.TicketID() != t.id {
		return fmt.Errorf("attachment ticket ID mismatch")
	}
	t.attachments = append(t.attachments, a)
	return nil
}

func (t *Ticket) Validate() error {
	if len(t.customerName) == 0 {
		return fmt.Errorf("customer name is required")
	}
	if len(t.customerEmail) == 0 {
		return fmt.Errorf("customer email is required")
	}
	if len(t.deviceType) == 0 {
		return fmt.Errorf("device type is required")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if len(t.userID) == 0 {
		return fmt.Errorf("user ID is required")
	}
	return nil
}
