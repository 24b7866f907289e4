package ticket

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"fixmylab/internal/application/ticket/usecases"
	"fixmylab/internal/shared/errors"
	"fixmylab/internal/shared/utils"
)

// dateLayout is the wire format for purchase dates.
const dateLayout = "2006-01-02"

type CreateTicketRequest struct {
	CustomerName   string  `json:"customer_name" binding:"required,max=200"`
	CustomerEmail  string  `json:"customer_email" binding:"required,email"`
	CustomerPhone  string  `json:"customer_phone" binding:"max=50"`
	DeviceType     string  `json:"device_type" binding:"required,max=100"`
	Description    string  `json:"description" binding:"required"`
	Priority       string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Price          *float64 `json:"price"`
	PurchaseDate   string  `json:"purchase_date" binding:"omitempty"`
	OrderID        string  `json:"order_id" binding:"max=100"`
	DevicePassword string  `json:"device_password" binding:"max=200"`
}

func (r *CreateTicketRequest) ToCommand(userID string) (usecases.CreateTicketCommand, error) {
	purchaseDate, err := parseDate(r.PurchaseDate)
	if err != nil {
		return usecases.CreateTicketCommand{}, err
	}

	priority := r.Priority
	if priority == "" {
		priority = "low"
	}

	return usecases.CreateTicketCommand{
		CustomerName:   r.CustomerName,
		CustomerEmail:  r.CustomerEmail,
		CustomerPhone:  r.CustomerPhone,
		DeviceType:     r.DeviceType,
		Description:    r.Description,
		Priority:       priority,
		PurchaseDate:   purchaseDate,
		OrderID:        r.OrderID,
		DevicePassword: r.DevicePassword,
		UserID:         userID,
	}, nil
}

type UpdateTicketRequest struct {
	CustomerName    *string  `json:"customer_name" binding:"omitempty,max=200"`
	CustomerEmail   *string  `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone   *string  `json:"customer_phone" binding:"omitempty,max=50"`
	DeviceType      *string  `json:"device_type" binding:"omitempty,max=100"`
	Description     *string  `json:"description"`
	Priority        *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Price           *float64 `json:"price"`
	ClearPrice      bool     `json:"clear_price"`
	PurchaseDate    *string  `json:"purchase_date"`
	OrderID         *string  `json:"order_id" binding:"omitempty,max=100"`
	DevicePassword  *string  `json:"device_password" binding:"omitempty,max=200"`
	AssignedTo      *string  `json:"assigned_to" binding:"omitempty,max=200"`
	AssignedToEmail *string  `json:"assigned_to_email" binding:"omitempty,email"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) (usecases.UpdateTicketCommand, error) {
	cmd := usecases.UpdateTicketCommand{
		TicketID:        ticketID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		DeviceType:      r.DeviceType,
		Description:     r.Description,
		Priority:        r.Priority,
		Price:           r.Price,
		ClearPrice:      r.ClearPrice,
		OrderID:         r.OrderID,
		DevicePassword:  r.DevicePassword,
		AssignedTo:      r.AssignedTo,
		AssignedToEmail: r.AssignedToEmail,
	}

	if r.PurchaseDate != nil {
		d, err := parseDate(*r.PurchaseDate)
		if err != nil {
			return usecases.UpdateTicketCommand{}, err
		}
		cmd.PurchaseDate = d
	}

	return cmd, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,ticketstatus"`
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", s))
	}
	return &d, nil
}

func parseListTicketsQuery(c *gin.Context) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Search:    c.Query("search"),
		Page:      utils.ParseIntQuery(c, "page", 1),
		PageSize:  utils.ParseIntQuery(c, "page_size", 20),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}
