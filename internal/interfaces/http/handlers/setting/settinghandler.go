// Package setting exposes the settings panel API.
package setting

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixmylab/internal/application/setting/usecases"
	"fixmylab/internal/shared/logger"
	"fixmylab/internal/shared/utils"
)

type SettingHandler struct {
	getSettingsUC    *usecases.GetSettingsUseCase
	updateSettingsUC *usecases.UpdateSettingsUseCase
	logger           logger.Interface
}

func NewSettingHandler(
	getSettingsUC *usecases.GetSettingsUseCase,
	updateSettingsUC *usecases.UpdateSettingsUseCase,
) *SettingHandler {
	return &SettingHandler{
		getSettingsUC:    getSettingsUC,
		updateSettingsUC: updateSettingsUC,
		logger:           logger.NewLogger(),
	}
}

// GetAll handles GET /settings
func (h *SettingHandler) GetAll(c *gin.Context) {
	settings, err := h.getSettingsUC.GetAll(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", settings)
}

// Get handles GET /settings/:key
func (h *SettingHandler) Get(c *gin.Context) {
	result, err := h.getSettingsUC.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type updateSettingRequest struct {
	Value string `json:"value"`
}

// Update handles PUT /settings/:key
func (h *SettingHandler) Update(c *gin.Context) {
	var req updateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update setting", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.updateSettingsUC.Set(c.Request.Context(), c.Param("key"), req.Value); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Setting updated successfully", nil)
}

// UpdateAll handles PUT /settings: the settings panel saves every field in
// one request.
func (h *SettingHandler) UpdateAll(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update settings", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.updateSettingsUC.SetAll(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", nil)
}
