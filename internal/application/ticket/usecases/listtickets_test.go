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

func TestListTicketsUseCase_Execute(t *testing.T) {
	var gotFilter ticket.Filter
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			gotFilter = filter
			return []*ticket.Ticket{
				reconstructedTicket(t, 1, vo.StatusIntake),
				reconstructedTicket(t, 2, vo.StatusClosed),
			}, 12, nil
		},
	}

	useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListTicketsQuery{
		Status:   "intake",
		Priority: "low",
		Search:   "mario",
		Page:     2,
		PageSize: 10,
		SortBy:   "created_at",
	})

	require.NoError(t, err)
	assert.Len(t, result.Tickets, 2)
	assert.Equal(t, int64(12), result.TotalCount)

	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, vo.StatusIntake, *gotFilter.Status)
	require.NotNil(t, gotFilter.Priority)
	assert.Equal(t, vo.PriorityLow, *gotFilter.Priority)
	assert.Equal(t, "mario", gotFilter.Search)
	assert.Equal(t, 2, gotFilter.Page)
	assert.Equal(t, 10, gotFilter.PageSize)
}

func TestListTicketsUseCase_Execute_PaginationDefaults(t *testing.T) {
	var gotFilter ticket.Filter
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})

	_, err := useCase.Execute(context.Background(), ListTicketsQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, gotFilter.Page)
	assert.Equal(t, 20, gotFilter.PageSize)

	_, err = useCase.Execute(context.Background(), ListTicketsQuery{Page: -3, PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, 1, gotFilter.Page)
	assert.Equal(t, 20, gotFilter.PageSize)
}

func TestListTicketsUseCase_Execute_InvalidFilters(t *testing.T) {
	useCase := NewListTicketsUseCase(&mockTicketRepository{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), ListTicketsQuery{Status: "bogus"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = useCase.Execute(context.Background(), ListTicketsQuery{Priority: "urgent"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
