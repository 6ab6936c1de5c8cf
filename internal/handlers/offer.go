// internal/handlers/offer.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vintagecottage/storefront/internal/i18n"
	"github.com/vintagecottage/storefront/internal/services"
	"github.com/vintagecottage/storefront/internal/utils"
)

type OfferHandler struct {
	offerService *services.OfferService
}

func NewOfferHandler(offerService *services.OfferService) *OfferHandler {
	return &OfferHandler{offerService: offerService}
}

// GET /offers
func (h *OfferHandler) GetOffers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	offers, total, err := h.offerService.ListOffers(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(offers, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /admin/offers
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	offer, err := h.offerService.CreateOffer(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOfferCreated),
		"offer":   offer,
	})
}

// PUT /admin/offers/:id
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid offer ID", nil)
		return
	}

	var req services.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	offer, err := h.offerService.UpdateOffer(id, &req)
	if err != nil {
		if err.Error() == "offer not found" {
			utils.NotFoundResponse(c, i18n.KeyOfferNotFound)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySuccess),
		"offer":   offer,
	})
}

// DELETE /admin/offers/:id
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid offer ID", nil)
		return
	}

	if err := h.offerService.DeleteOffer(id); err != nil {
		if err.Error() == "offer not found" {
			utils.NotFoundResponse(c, i18n.KeyOfferNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOfferDeleted),
	})
}

// POST /products/:id/offers
func (h *OfferHandler) CreateUserOffer(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.CreateUserOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	req.ProductID = productID

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	userOffer, err := h.offerService.CreateUserOffer(&req)
	if err != nil {
		if err.Error() == "product not found" {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyUserOfferCreated),
		"user_offer": userOffer,
	})
}

// GET /admin/user-offers
func (h *OfferHandler) GetUserOffers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	userOffers, total, err := h.offerService.ListUserOffers(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(userOffers, total, params)
	utils.PaginatedResponse(c, result)
}

// DELETE /admin/user-offers/:id
func (h *OfferHandler) DeleteUserOffer(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid offer ID", nil)
		return
	}

	if err := h.offerService.DeleteUserOffer(id); err != nil {
		if err.Error() == "user offer not found" {
			utils.NotFoundResponse(c, i18n.KeyOfferNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOfferDeleted),
	})
}
