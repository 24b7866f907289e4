package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusIntake         TicketStatus = "intake"
	StatusAssignment     TicketStatus = "assignment"
	StatusInProgress     TicketStatus = "in_progress"
	StatusPartsOrdered   TicketStatus = "parts_ordered"
	StatusReadyForPickup TicketStatus = "ready_for_pickup"
	StatusClosed         TicketStatus = "closed"
	StatusQuoteSent      TicketStatus = "quote_sent"
	StatusQuoteAccepted  TicketStatus = "quote_accepted"
	StatusRejected       TicketStatus = "rejected"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusIntake:         true,
	StatusAssignment:     true,
	StatusInProgress:     true,
	StatusPartsOrdered:   true,
	StatusReadyForPickup: true,
	StatusClosed:         true,
	StatusQuoteSent:      true,
	StatusQuoteAccepted:  true,
	StatusRejected:       true,
}

// statusLabels are the customer-facing Italian labels used in emails and on
// the printed ticket.
var statusLabels = map[TicketStatus]string{
	StatusIntake:         "Ticket inserito",
	StatusAssignment:     "In assegnazione al tecnico",
	StatusInProgress:     "In lavorazione",
	StatusPartsOrdered:   "Parti ordinate",
	StatusReadyForPickup: "Pronto per il ritiro",
	StatusClosed:         "Chiuso",
	StatusQuoteSent:      "Preventivo inviato",
	StatusQuoteAccepted:  "Preventivo accettato",
	StatusRejected:       "Rifiutato",
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// Label returns the customer-facing label for the status.
func (ts TicketStatus) Label() string {
	if label, ok := statusLabels[ts]; ok {
		return label
	}
	return string(ts)
}

// AllStatuses returns every valid status value.
func AllStatuses() []TicketStatus {
	return []TicketStatus{
		StatusIntake,
		StatusAssignment,
		StatusInProgress,
		StatusPartsOrdered,
		StatusReadyForPickup,
		StatusClosed,
		StatusQuoteSent,
		StatusQuoteAccepted,
		StatusRejected,
	}
}

// NewTicketStatus validates a raw status value. The status set is a flat
// enum: any valid status may follow any other, there is no transition graph.
func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
