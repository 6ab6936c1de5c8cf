// internal/handlers/checkout.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vintagecottage/storefront/internal/i18n"
	"github.com/vintagecottage/storefront/internal/middleware"
	"github.com/vintagecottage/storefront/internal/services"
	"github.com/vintagecottage/storefront/internal/utils"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := middleware.GetCartSession(c)

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.checkoutService.Checkout(sessionID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartEmpty), nil)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":       i18n.T(lang, i18n.KeyOrderPlaced),
		"order":         result.Order,
		"client_secret": result.ClientSecret,
	})
}

// POST /orders/:id/confirm
func (h *CheckoutHandler) ConfirmOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.checkoutService.ConfirmOrder(id)
	if err != nil {
		if err.Error() == "order not found" {
			utils.NotFoundResponse(c, i18n.KeyOrderNotFound)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"order": order})
}

// GET /orders/:id
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.checkoutService.GetOrder(id)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyOrderNotFound)
		return
	}

	utils.SuccessResponse(c, order)
}

// GET /admin/orders
func (h *CheckoutHandler) GetOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.checkoutService.ListOrders(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(orders, total, params)
	utils.PaginatedResponse(c, result)
}
