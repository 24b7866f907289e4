// Package admin exposes maintenance endpoints for staff.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixmylab/internal/application/ticket/usecases"
	"fixmylab/internal/shared/utils"
)

type AdminHandler struct {
	oldTicketsUC usecases.OldTicketsCheckExecutor
}

func NewAdminHandler(oldTicketsUC usecases.OldTicketsCheckExecutor) *AdminHandler {
	return &AdminHandler{
		oldTicketsUC: oldTicketsUC,
	}
}

// OldTicketsCheck handles POST /admin/old-tickets-check. It runs the same
// digest the scheduler triggers daily, on demand.
func (h *AdminHandler) OldTicketsCheck(c *gin.Context) {
	sent, err := h.oldTicketsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"digest_sent": sent})
}
