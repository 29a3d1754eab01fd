package handlers

import (
	"errors"
	"log"
	"net/http"

	request "cobranca_service/internal/adapter/http/dto/request"
	response "cobranca_service/internal/adapter/http/dto/response"
	"cobranca_service/internal/infrastructure/payments/iugu"
	"cobranca_service/internal/usecase"
	"cobranca_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for payment orchestration runs and
// invoice lifecycle operations.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment runs one payment orchestration for the posted request.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create start direct=%t user_id=%q", payload.DirectPayment, payload.UserID)
	result, err := h.usecase.CreatePayment(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success direct=%t", payload.DirectPayment)

	c.JSON(http.StatusCreated, response.FromPaymentResult(result))
}

// RefundInvoice refunds an already paid invoice at the gateway.
func (h *PaymentHandler) RefundInvoice(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[payment][handler] refund start invoice_id=%s", invoiceID)

	invoice, err := h.usecase.RefundInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[payment][handler] refund failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// CancelInvoice cancels a pending invoice at the gateway.
func (h *PaymentHandler) CancelInvoice(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[payment][handler] cancel start invoice_id=%s", invoiceID)

	invoice, err := h.usecase.CancelInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[payment][handler] cancel failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func mapPaymentError(err error) *pkg.AppError {
	var respErr *iugu.ResponseError
	var transportErr *iugu.TransportError

	switch {
	case errors.Is(err, usecase.ErrMissingCreditCard):
		return pkg.NewDomainErrorSimple("MISSING_CREDIT_CARD", "Credit card required for direct payment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCreditCardData):
		return pkg.NewDomainErrorSimple("MISSING_CREDIT_CARD_DATA", "Credit card data required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPaymentMethodID):
		return pkg.NewDomainErrorSimple("MISSING_PAYMENT_METHOD_ID", "Payment method id required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &respErr):
		return pkg.NewDomainError("GATEWAY_REJECTED", "Payment gateway rejected the operation", err, http.StatusUnprocessableEntity)
	case errors.As(err, &transportErr):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Payment gateway unreachable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
