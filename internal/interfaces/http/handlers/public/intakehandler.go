// Package public exposes the customer-facing intake API: anonymous
// sessions, ticket submission with attachments, and ticket tracking.
package public

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authapp "fixmylab/internal/application/auth"
	"fixmylab/internal/application/ticket/usecases"
	"fixmylab/internal/interfaces/http/middleware"
	"fixmylab/internal/shared/errors"
	"fixmylab/internal/shared/logger"
	"fixmylab/internal/shared/utils"
)

type IntakeHandler struct {
	authService    *authapp.Service
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	logger         logger.Interface
}

func NewIntakeHandler(
	authService *authapp.Service,
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
) *IntakeHandler {
	return &IntakeHandler{
		authService:    authService,
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		logger:         logger.NewLogger(),
	}
}

// CreateSession handles POST /public/sessions. It hands the intake form an
// anonymous identity to submit tickets with.
func (h *IntakeHandler) CreateSession(c *gin.Context) {
	result, err := h.authService.CreateAnonymousSession(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Session created")
}

// CreateTicket handles POST /public/tickets. The body is multipart:
// ticket fields plus zero or more attachment files. Public submissions
// always enter as low priority; staff triage them afterwards.
func (h *IntakeHandler) CreateTicket(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.logger.Warnw("invalid multipart form for intake", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid multipart form"))
		return
	}

	cmd, err := intakeCommand(c, form, middleware.SessionID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Multipart file readers are owned by the form; close them after the
	// use case has streamed everything it accepted.
	defer closeFiles(cmd.Files)

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err, "ticket.create_failed")
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /public/tickets/:id. The payload includes the
// shop's terms text so the customer view can render it.
func (h *IntakeHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:     ticketID,
		IncludeTerms: true,
	})
	if err != nil {
		respondError(c, err, "ticket.fetch_failed")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
