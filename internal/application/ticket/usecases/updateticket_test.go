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

func TestUpdateTicketUseCase_Execute_PartialUpdate(t *testing.T) {
	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructedTicket(t, id, vo.StatusIntake), nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = tk
			return nil
		},
	}

	name := "Luigi Verdi"
	price := 89.90
	priority := "high"

	useCase := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:     1,
		CustomerName: &name,
		Price:        &price,
		Priority:     &priority,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Luigi Verdi", updated.CustomerName())
	require.NotNil(t, updated.Price())
	assert.Equal(t, 89.90, *updated.Price())
	assert.Equal(t, vo.PriorityHigh, updated.Priority())
	// untouched fields survive
	assert.Equal(t, "mario@example.com", updated.CustomerEmail())
	assert.Equal(t, "Luigi Verdi", result.CustomerName)
	assert.Equal(t, "high", result.Priority)
}

func TestUpdateTicketUseCase_Execute_ClearPrice(t *testing.T) {
	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			tk := reconstructedTicket(t, id, vo.StatusIntake)
			price := 50.0
			require.NoError(t, tk.ApplyDetails(ticket.DetailUpdate{Price: &price}))
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = tk
			return nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   1,
		ClearPrice: true,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Nil(t, updated.Price())
	assert.Nil(t, result.Price)
}

func TestUpdateTicketUseCase_Execute_Assign(t *testing.T) {
	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructedTicket(t, id, vo.StatusIntake), nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = tk
			return nil
		},
	}

	assignee := "Anna"
	assigneeEmail := "anna@shop.example"

	useCase := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:        1,
		AssignedTo:      &assignee,
		AssignedToEmail: &assigneeEmail,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Anna", updated.AssignedTo())
	assert.Equal(t, "anna@shop.example", updated.AssignedToEmail())
}

func TestUpdateTicketUseCase_Execute_InvalidPriority(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructedTicket(t, id, vo.StatusIntake), nil
		},
	}

	bad := "urgent"
	useCase := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 1,
		Priority: &bad,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{TicketID: 42})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
