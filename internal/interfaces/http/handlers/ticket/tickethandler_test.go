package ticket

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixmylab/internal/application/ticket/usecases"
	"fixmylab/internal/interfaces/http/handlers/testutil"
	"fixmylab/internal/shared/errors"
)

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
	gotCmd usecases.CreateTicketCommand
	called bool
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.called = true
	m.gotCmd = cmd
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	result *usecases.TicketDTO
	err    error
	gotCmd usecases.UpdateTicketCommand
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, cmd usecases.UpdateTicketCommand) (*usecases.TicketDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockUpdateStatusUC struct {
	result *usecases.UpdateStatusResult
	err    error
	gotCmd usecases.UpdateStatusCommand
}

func (m *mockUpdateStatusUC) Execute(_ context.Context, cmd usecases.UpdateStatusCommand) (*usecases.UpdateStatusResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result   *usecases.TicketDTO
	err      error
	gotQuery usecases.GetTicketQuery
}

func (m *mockGetTicketUC) Execute(_ context.Context, query usecases.GetTicketQuery) (*usecases.TicketDTO, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockListTicketsUC struct {
	result   *usecases.ListTicketsResult
	err      error
	gotQuery usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(_ context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	err    error
	gotCmd usecases.DeleteTicketCommand
	called bool
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, cmd usecases.DeleteTicketCommand) error {
	m.called = true
	m.gotCmd = cmd
	return m.err
}

type testDeps struct {
	createUC *mockCreateTicketUC
	updateUC *mockUpdateTicketUC
	statusUC *mockUpdateStatusUC
	getUC    *mockGetTicketUC
	listUC   *mockListTicketsUC
	deleteUC *mockDeleteTicketUC
}

func newTestTicketHandler() (*TicketHandler, *testDeps) {
	deps := &testDeps{
		createUC: &mockCreateTicketUC{},
		updateUC: &mockUpdateTicketUC{},
		statusUC: &mockUpdateStatusUC{},
		getUC:    &mockGetTicketUC{},
		listUC:   &mockListTicketsUC{},
		deleteUC: &mockDeleteTicketUC{},
	}
	h := NewTicketHandler(deps.createUC, deps.updateUC, deps.statusUC, deps.getUC, deps.listUC, deps.deleteUC)
	return h, deps
}

func validCreateRequest() CreateTicketRequest {
	return CreateTicketRequest{
		CustomerName:  "Mario Rossi",
		CustomerEmail: "mario@example.com",
		DeviceType:    "laptop",
		Description:   "won't power on",
	}
}

func TestTicketHandler_CreateTicket(t *testing.T) {
	t.Run("creates ticket and returns 201", func(t *testing.T) {
		h, deps := newTestTicketHandler()
		deps.createUC.result = &usecases.CreateTicketResult{
			TicketID:     42,
			TicketNumber: "FM-2025-01-0042",
			Status:       "intake",
			CreatedAt:    time.Now(),
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/tickets", validCreateRequest())
		testutil.SetStaffContext(c, 1, "staff")

		h.CreateTicket(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)

		var result usecases.CreateTicketResult
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.Equal(t, "FM-2025-01-0042", result.TicketNumber)
		assert.Equal(t, "Mario Rossi", deps.createUC.gotCmd.CustomerName)
		assert.Equal(t, "low", deps.createUC.gotCmd.Priority, "empty priority defaults to low")
	})

	t.Run("forwards session id from context", func(t *testing.T) {
		h, deps := newTestTicketHandler()
		deps.createUC.result = &usecases.CreateTicketResult{TicketID: 1}

		c, _ := testutil.NewTestContext(http.MethodPost, "/tickets", validCreateRequest())
		testutil.SetSessionContext(c, "sess-abc")

		h.CreateTicket(c)

		assert.Equal(t, "sess-abc", deps.createUC.gotCmd.UserID)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		h, deps := newTestTicketHandler()

		req := validCreateRequest()
		req.CustomerEmail = "not-an-email"
		c, w := testutil.NewTestContext(http.MethodPost, "/tickets", req)

		h.CreateTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, deps.createUC.called)
	})

	t.Run("rejects malformed purchase date", func(t *testing.T) {
		h, deps := newTestTicketHandler()

		req := validCreateRequest()
		req.PurchaseDate = "01/06/2025"
		c, w := testutil.NewTestContext(http.MethodPost, "/tickets", req)

		h.CreateTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, deps.createUC.called)
	})

	t.Run("propagates use case failures", func(t *testing.T) {
		h, deps := newTestTicketHandler()
		deps.createUC.err = errors.NewInternalError("database unavailable")

		c, w := testutil.NewTestContext(http.MethodPost, "/tickets", validCreateRequest())

		h.CreateTicket(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
	})
}

func TestTicketHandler_GetTicket(t *testing.T) {
	t.Run("returns ticket by id", func(t *testing.T) {
		h, deps := newTestTicketHandler()
		deps.getUC.result = &usecases.TicketDTO{
			ID:           7,
			TicketNumber: "FM-2025-02-0007",
			Status:       "ready",
			StatusLabel:  "Pronto per il ritiro",
		}

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/7", nil)
		testutil.SetURLParam(c, "id", "7")

		h.GetTicket(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.True(t, resp.Success)

		var dto usecases.TicketDTO
		require.NoError(t, json.Unmarshal(resp.Data, &dto))
		assert.Equal(t, uint(7), dto.ID)
		assert.Equal(t, uint(7), deps.getUC.gotQuery.TicketID)
	})

	t.Run("rejects non-numeric id", func(t *testing.T) {
		h, _ := newTestTicketHandler()

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/abc", nil)
		testutil.SetURLParam(c, "id", "abc")

		h.GetTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 404 for missing ticket", func(t *testing.T) {
		h, deps := newTestTicketHandler()
		deps.getUC.err = errors.NewNotFoundError("ticket not found")

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/99", nil)
		testutil.SetURLParam(c, "id", "99")

		h.GetTicket(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTicketHandler_ListTickets(t *testing.T) {
	t.Run("returns paginated list", func(t *testing.T) {
		h, deps := newTestTicketHandler()
		deps.listUC.result = &usecases.ListTicketsResult{
			Tickets: []*usecases.TicketDTO{
				{ID: 1, TicketNumber: "FM-2025-01-0001"},
				{ID: 2, TicketNumber: "FM-2025-01-0002"},
			},
			TotalCount: 41,
		}

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
		testutil.SetQueryParams(c, map[string]string{
			"status":    "in_progress",
			"search":    "rossi",
			"page":      "2",
			"page_size": "20",
		})

		h.ListTickets(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "in_progress", deps.listUC.gotQuery.Status)
		assert.Equal(t, "rossi", deps.listUC.gotQuery.Search)
		assert.Equal(t, 2, deps.listUC.gotQuery.Page)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.True(t, resp.Success)

		var list struct {
			Items      []*usecases.TicketDTO `json:"items"`
			Total      int64                 `json:"total"`
			Page       int                   `json:"page"`
			TotalPages int                   `json:"total_pages"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &list))
		assert.Len(t, list.Items, 2)
		assert.Equal(t, int64(41), list.Total)
		assert.Equal(t, 2, list.Page)
		assert.Equal(t, 3, list.TotalPages)
	})

	t.Run("defaults page and page size when absent", func(t *testing.T) {
		h, deps := newTestTicketHandler()
		deps.listUC.result = &usecases.ListTicketsResult{}

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)

		h.ListTickets(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, deps.listUC.gotQuery.Page)
		assert.Equal(t, 20, deps.listUC.gotQuery.PageSize)
	})

	t.Run("propagates validation errors", func(t *testing.T) {
		h, deps := newTestTicketHandler()
		deps.listUC.err = errors.NewValidationError("invalid status filter")

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
		testutil.SetQueryParams(c, map[string]string{"status": "bogus"})

		h.ListTickets(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTicketHandler_UpdateTicket(t *testing.T) {
	t.Run("applies partial update", func(t *testing.T) {
		h, deps := newTestTicketHandler()
		deps.updateUC.result = &usecases.TicketDTO{ID: 3, CustomerName: "Luigi Verdi"}

		name := "Luigi Verdi"
		price := 99.5
		c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/3", UpdateTicketRequest{
			CustomerName: &name,
			Price:        &price,
		})
		testutil.SetURLParam(c, "id", "3")

		h.UpdateTicket(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(3), deps.updateUC.gotCmd.TicketID)
		require.NotNil(t, deps.updateUC.gotCmd.CustomerName)
		assert.Equal(t, "Luigi Verdi", *deps.updateUC.gotCmd.CustomerName)
		require.NotNil(t, deps.updateUC.gotCmd.Price)
		assert.Equal(t, 99.5, *deps.updateUC.gotCmd.Price)
	})

	t.Run("parses purchase date", func(t *testing.T) {
		h, deps := newTestTicketHandler()
		deps.updateUC.result = &usecases.TicketDTO{ID: 3}

		date := "2025-06-15"
		c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/3", UpdateTicketRequest{
			PurchaseDate: &date,
		})
		testutil.SetURLParam(c, "id", "3")

		h.UpdateTicket(c)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, deps.updateUC.gotCmd.PurchaseDate)
		assert.Equal(t, 2025, deps.updateUC.gotCmd.PurchaseDate.Year())
		assert.Equal(t, time.June, deps.updateUC.gotCmd.PurchaseDate.Month())
	})

	t.Run("rejects invalid priority", func(t *testing.T) {
		h, _ := newTestTicketHandler()

		priority := "urgent"
		c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/3", UpdateTicketRequest{
			Priority: &priority,
		})
		testutil.SetURLParam(c, "id", "3")

		h.UpdateTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTicketHandler_UpdateTicketStatus(t *testing.T) {
	t.Run("updates status", func(t *testing.T) {
		h, deps := newTestTicketHandler()
		deps.statusUC.result = &usecases.UpdateStatusResult{
			TicketID:         5,
			OldStatus:        "intake",
			NewStatus:        "in_progress",
			NotificationSent: true,
		}

		c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/5/status", UpdateStatusRequest{
			Status: "in_progress",
		})
		testutil.SetURLParam(c, "id", "5")

		h.UpdateTicketStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(5), deps.statusUC.gotCmd.TicketID)
		assert.Equal(t, "in_progress", deps.statusUC.gotCmd.NewStatus)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var result usecases.UpdateStatusResult
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.True(t, result.NotificationSent)
	})

	t.Run("rejects unknown status at binding", func(t *testing.T) {
		h, _ := newTestTicketHandler()

		c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/5/status", UpdateStatusRequest{
			Status: "vanished",
		})
		testutil.SetURLParam(c, "id", "5")

		h.UpdateTicketStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects empty status", func(t *testing.T) {
		h, _ := newTestTicketHandler()

		c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/5/status", map[string]string{})
		testutil.SetURLParam(c, "id", "5")

		h.UpdateTicketStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTicketHandler_DeleteTicket(t *testing.T) {
	t.Run("deletes ticket", func(t *testing.T) {
		h, deps := newTestTicketHandler()

		c, w := testutil.NewTestContext(http.MethodDelete, "/tickets/9", nil)
		testutil.SetURLParam(c, "id", "9")

		h.DeleteTicket(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, deps.deleteUC.called)
		assert.Equal(t, uint(9), deps.deleteUC.gotCmd.TicketID)
	})

	t.Run("returns 404 for missing ticket", func(t *testing.T) {
		h, deps := newTestTicketHandler()
		deps.deleteUC.err = errors.NewNotFoundError("ticket not found")

		c, w := testutil.NewTestContext(http.MethodDelete, "/tickets/9", nil)
		testutil.SetURLParam(c, "id", "9")

		h.DeleteTicket(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects non-numeric id", func(t *testing.T) {
		h, deps := newTestTicketHandler()

		c, w := testutil.NewTestContext(http.MethodDelete, "/tickets/x", nil)
		testutil.SetURLParam(c, "id", "x")

		h.DeleteTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, deps.deleteUC.called)
	})
}
