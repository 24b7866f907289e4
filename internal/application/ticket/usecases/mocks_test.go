package usecases

import (
	"context"
	"io"
	"time"

	"fixmylab/internal/domain/ticket"
	vo "fixmylab/internal/domain/ticket/valueobjects"
	"fixmylab/internal/shared/logger"
)

type mockTicketRepository struct {
	CreateFunc                   func(ctx context.Context, t *ticket.Ticket) error
	GenerateNumberFunc           func(ctx context.Context, now time.Time) (string, error)
	UpdateFunc                   func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc                   func(ctx context.Context, ticketID uint) error
	GetByIDFunc                  func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByNumberFunc              func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc                     func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	ListOlderThanFunc            func(ctx context.Context, cutoff time.Time) ([]*ticket.Ticket, error)
	SaveAttachmentFunc           func(ctx context.Context, a *ticket.Attachment) error
	GetAttachmentsByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GenerateNumber(ctx context.Context, now time.Time) (string, error) {
	if m.GenerateNumberFunc != nil {
		return m.GenerateNumberFunc(ctx, now)
	}
	return "", nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListOlderThan(ctx context.Context, cutoff time.Time) ([]*ticket.Ticket, error) {
	if m.ListOlderThanFunc != nil {
		return m.ListOlderThanFunc(ctx, cutoff)
	}
	return nil, nil
}

func (m *mockTicketRepository) SaveAttachment(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveAttachmentFunc != nil {
		return m.SaveAttachmentFunc(ctx, a)
	}
	return nil
}

func (m *mockTicketRepository) GetAttachmentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.GetAttachmentsByTicketIDFunc != nil {
		return m.GetAttachmentsByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockObjectStore struct {
	PutFunc          func(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error)
	DeletePrefixFunc func(ctx context.Context, prefix string) error
}

func (m *mockObjectStore) Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, content, size, contentType)
	}
	return "/files/" + key, nil
}

func (m *mockObjectStore) DeletePrefix(ctx context.Context, prefix string) error {
	if m.DeletePrefixFunc != nil {
		return m.DeletePrefixFunc(ctx, prefix)
	}
	return nil
}

type mockNotifier struct {
	SendNewTicketFunc        func(ctx context.Context, t *ticket.Ticket) bool
	SendStatusChangeFunc     func(ctx context.Context, t *ticket.Ticket, oldStatus vo.TicketStatus) bool
	SendOldTicketsDigestFunc func(ctx context.Context) bool
}

func (m *mockNotifier) SendNewTicket(ctx context.Context, t *ticket.Ticket) bool {
	if m.SendNewTicketFunc != nil {
		return m.SendNewTicketFunc(ctx, t)
	}
	return false
}

func (m *mockNotifier) SendStatusChange(ctx context.Context, t *ticket.Ticket, oldStatus vo.TicketStatus) bool {
	if m.SendStatusChangeFunc != nil {
		return m.SendStatusChangeFunc(ctx, t, oldStatus)
	}
	return false
}

func (m *mockNotifier) SendOldTicketsDigest(ctx context.Context) bool {
	if m.SendOldTicketsDigestFunc != nil {
		return m.SendOldTicketsDigestFunc(ctx)
	}
	return false
}

type mockTermsProvider struct {
	TermsHTMLFunc func(ctx context.Context) string
}

func (m *mockTermsProvider) TermsHTML(ctx context.Context) string {
	if m.TermsHTMLFunc != nil {
		return m.TermsHTMLFunc(ctx)
	}
	return ""
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
