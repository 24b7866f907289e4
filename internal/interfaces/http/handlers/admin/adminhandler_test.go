package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixmylab/internal/interfaces/http/handlers/testutil"
	"fixmylab/internal/shared/errors"
)

type mockOldTicketsUC struct {
	sent   bool
	err    error
	called bool
}

func (m *mockOldTicketsUC) Execute(_ context.Context) (bool, error) {
	m.called = true
	return m.sent, m.err
}

func TestAdminHandler_OldTicketsCheck(t *testing.T) {
	t.Run("reports digest result", func(t *testing.T) {
		uc := &mockOldTicketsUC{sent: true}
		h := NewAdminHandler(uc)

		c, w := testutil.NewTestContext(http.MethodPost, "/admin/old-tickets-check", nil)
		testutil.SetStaffContext(c, 1, "admin")

		h.OldTicketsCheck(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, uc.called)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.True(t, resp.Success)

		var result struct {
			DigestSent bool `json:"digest_sent"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.True(t, result.DigestSent)
	})

	t.Run("propagates failures", func(t *testing.T) {
		uc := &mockOldTicketsUC{err: errors.NewInternalError("mailer unavailable")}
		h := NewAdminHandler(uc)

		c, w := testutil.NewTestContext(http.MethodPost, "/admin/old-tickets-check", nil)

		h.OldTicketsCheck(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
