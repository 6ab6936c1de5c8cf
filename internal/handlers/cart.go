// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vintagecottage/storefront/internal/i18n"
	"github.com/vintagecottage/storefront/internal/middleware"
	"github.com/vintagecottage/storefront/internal/models"
	"github.com/vintagecottage/storefront/internal/services"
	"github.com/vintagecottage/storefront/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type addCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GET /cart
//
// A read failure degrades to an empty cart so the storefront keeps
// rendering; the X-Cart-Degraded header tells the client the cart state is
// not authoritative.
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.GetCartSession(c)

	cart, err := h.cartService.FetchCart(sessionID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("cart fetch failed, serving empty cart")

		c.Header("X-Cart-Degraded", "true")
		cart = &models.Cart{SessionID: sessionID, Items: []models.CartLine{}}
	}

	utils.SuccessResponse(c, gin.H{
		"session_id": cart.SessionID,
		"items":      cart.Items,
		"total":      cart.Total(),
		"count":      cart.Count(),
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := middleware.GetCartSession(c)

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.cartService.AddItem(sessionID, req.ProductID); err != nil {
		if err.Error() == "product not found" {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemAdded),
	})
}

// PUT /cart/items/:productID
func (h *CartHandler) SetQuantity(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := middleware.GetCartSession(c)

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.cartService.SetQuantity(sessionID, productID, req.Quantity); err != nil {
		if errors.Is(err, services.ErrItemNotInCart) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySuccess),
	})
}

// DELETE /cart/items/:productID
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := middleware.GetCartSession(c)

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.cartService.RemoveItem(sessionID, productID); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemRemoved),
	})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID := middleware.GetCartSession(c)

	if err := h.cartService.Clear(sessionID); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartCleared),
	})
}
