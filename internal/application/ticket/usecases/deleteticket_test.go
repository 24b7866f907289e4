package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixmylab/internal/domain/ticket"
	vo "fixmylab/internal/domain/ticket/valueobjects"
	"fixmylab/internal/shared/errors"
)

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	var deletedID uint
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructedTicket(t, id, vo.StatusClosed), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}

	var droppedPrefix string
	mockStore := &mockObjectStore{
		DeletePrefixFunc: func(ctx context.Context, prefix string) error {
			droppedPrefix = prefix
			return nil
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, mockStore, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 7})

	require.NoError(t, err)
	assert.Equal(t, uint(7), deletedID)
	assert.Equal(t, "ticket-attachments/7/", droppedPrefix)
}

func TestDeleteTicketUseCase_Execute_StorageCleanupIsBestEffort(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructedTicket(t, id, vo.StatusClosed), nil
		},
	}
	mockStore := &mockObjectStore{
		DeletePrefixFunc: func(ctx context.Context, prefix string) error {
			return errors.NewInternalError("disk on fire")
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, mockStore, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 7})

	assert.NoError(t, err, "row deletion already happened, file cleanup failure is logged only")
}

func TestDeleteTicketUseCase_Execute_NotFound(t *testing.T) {
	deleteCalled := false
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleteCalled = true
			return nil
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, &mockObjectStore{}, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 42})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, deleteCalled)
}
