// internal/handlers/visitor.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vintagecottage/storefront/internal/i18n"
	"github.com/vintagecottage/storefront/internal/services"
	"github.com/vintagecottage/storefront/internal/utils"
)

type VisitorHandler struct {
	visitorService *services.VisitorService
}

func NewVisitorHandler(visitorService *services.VisitorService) *VisitorHandler {
	return &VisitorHandler{visitorService: visitorService}
}

// POST /visitors
func (h *VisitorHandler) RegisterVisitor(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RegisterVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.visitorService.Register(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	messageKey := i18n.KeyVisitorRegistered
	if result.AlreadyRegistered {
		messageKey = i18n.KeyVisitorAlreadyRegistered
	}

	utils.SuccessResponse(c, gin.H{
		"message":            i18n.T(lang, messageKey),
		"visitor":            result.Visitor,
		"already_registered": result.AlreadyRegistered,
	})
}

// GET /admin/visitors
func (h *VisitorHandler) GetVisitors(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	visitors, total, err := h.visitorService.ListVisitors(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(visitors, total, params)
	utils.PaginatedResponse(c, result)
}
