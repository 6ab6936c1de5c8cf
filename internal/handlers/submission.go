// internal/handlers/submission.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vintagecottage/storefront/internal/i18n"
	"github.com/vintagecottage/storefront/internal/models"
	"github.com/vintagecottage/storefront/internal/services"
	"github.com/vintagecottage/storefront/internal/utils"
)

type SubmissionHandler struct {
	catalogService *services.CatalogService
}

func NewSubmissionHandler(catalogService *services.CatalogService) *SubmissionHandler {
	return &SubmissionHandler{catalogService: catalogService}
}

// POST /submissions
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	submission, err := h.catalogService.CreateSubmission(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeySubmissionCreated),
		"submission": submission,
	})
}

// GET /admin/submissions
func (h *SubmissionHandler) GetSubmissions(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var status *models.SubmissionStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := models.SubmissionStatus(statusStr)
		status = &s
	}

	submissions, total, err := h.catalogService.ListSubmissions(params, status)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(submissions, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /admin/submissions/:id
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid submission ID", nil)
		return
	}

	submission, err := h.catalogService.GetSubmission(id)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeySubmissionNotFound)
		return
	}

	utils.SuccessResponse(c, submission)
}

// PUT /admin/submissions/:id
func (h *SubmissionHandler) UpdateSubmission(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid submission ID", nil)
		return
	}

	var req services.UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	submission, err := h.catalogService.UpdateSubmission(id, &req)
	if err != nil {
		if err.Error() == "submission not found" {
			utils.NotFoundResponse(c, i18n.KeySubmissionNotFound)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeySubmissionUpdated),
		"submission": submission,
	})
}

// DELETE /admin/submissions/:id
func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid submission ID", nil)
		return
	}

	if err := h.catalogService.DeleteSubmission(id); err != nil {
		if err.Error() == "submission not found" {
			utils.NotFoundResponse(c, i18n.KeySubmissionNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySubmissionDeleted),
	})
}

// PUT /admin/submissions/:id/approve
func (h *SubmissionHandler) ApproveSubmission(c *gin.Context) {
	h.setStatus(c, models.SubmissionStatusApproved, i18n.KeySubmissionApproved)
}

// PUT /admin/submissions/:id/reject
func (h *SubmissionHandler) RejectSubmission(c *gin.Context) {
	h.setStatus(c, models.SubmissionStatusRejected, i18n.KeySubmissionRejected)
}

func (h *SubmissionHandler) setStatus(c *gin.Context, status models.SubmissionStatus, messageKey string) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid submission ID", nil)
		return
	}

	submission, err := h.catalogService.SetSubmissionStatus(id, status)
	if err != nil {
		if err.Error() == "submission not found" {
			utils.NotFoundResponse(c, i18n.KeySubmissionNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, messageKey),
		"submission": submission,
	})
}

// POST /admin/submissions/:id/add-to-shop
func (h *SubmissionHandler) AddToShop(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid submission ID", nil)
		return
	}

	product, err := h.catalogService.PromoteSubmission(id)
	if err != nil {
		if err.Error() == "submission not found" {
			utils.NotFoundResponse(c, i18n.KeySubmissionNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySubmissionPromoted),
		"product": product,
	})
}
