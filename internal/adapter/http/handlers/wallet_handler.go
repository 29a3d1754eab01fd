package handlers

import (
	"errors"
	"log"
	"net/http"

	request "cobranca_service/internal/adapter/http/dto/request"
	response "cobranca_service/internal/adapter/http/dto/response"
	"cobranca_service/internal/usecase"
	"cobranca_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWalletPayload = pkg.NewDomainErrorSimple("INVALID_WALLET_INPUT", "Invalid wallet payload", http.StatusBadRequest)

// WalletHandler handles HTTP requests for the user's gateway wallet: the
// customer registration and saved cards.
type WalletHandler struct {
	usecase usecase.IWalletUseCase
}

func NewWalletHandler(uc usecase.IWalletUseCase) *WalletHandler {
	return &WalletHandler{usecase: uc}
}

// RegisterCustomer registers the user as a gateway customer. Idempotent.
func (h *WalletHandler) RegisterCustomer(c *gin.Context) {
	userID := c.Param("user_id")

	var payload request.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWalletPayload.HTTPStatus, errInvalidWalletPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.RegisterCustomer(c.Request.Context(), userID, payload.ToProfile())
	if err != nil {
		log.Printf("[wallet][handler] register-customer failed user_id=%s err=%v", userID, err)
		appErr := mapWalletError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CustomerResponse{ID: customer.ID, Email: customer.Email, Name: customer.Name})
}

// RegisterCard tokenizes a card, persists it at the gateway and records the
// local non-sensitive reference.
func (h *WalletHandler) RegisterCard(c *gin.Context) {
	userID := c.Param("user_id")

	var payload request.RegisterCardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWalletPayload.HTTPStatus, errInvalidWalletPayload.ToHTTPError())
		return
	}

	card, err := h.usecase.RegisterCreditCard(c.Request.Context(), userID, payload.ToCreditCard(), payload.CPF, payload.Flag)
	if err != nil {
		log.Printf("[wallet][handler] register-card failed user_id=%s err=%v", userID, err)
		appErr := mapWalletError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSavedCard(card))
}

// RemoveCard deletes a saved card, gateway first.
func (h *WalletHandler) RemoveCard(c *gin.Context) {
	userID := c.Param("user_id")
	cardID := c.Param("card_id")

	if err := h.usecase.RemoveCreditCard(c.Request.Context(), userID, cardID); err != nil {
		log.Printf("[wallet][handler] remove-card failed user_id=%s card_id=%s err=%v", userID, cardID, err)
		appErr := mapWalletError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPaymentMethods returns the user's gateway-side cards.
func (h *WalletHandler) ListPaymentMethods(c *gin.Context) {
	userID := c.Param("user_id")

	methods, err := h.usecase.ListPaymentMethods(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[wallet][handler] list-methods failed user_id=%s err=%v", userID, err)
		appErr := mapWalletError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentMethods(methods))
}

func mapWalletError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidSavedCardID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSavedCardNotFound):
		return pkg.NewDomainErrorSimple("CARD_NOT_FOUND", "Saved card not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotRegistered):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_REGISTERED", "Register the gateway customer first", http.StatusConflict)
	default:
		return mapPaymentError(err)
	}
}
