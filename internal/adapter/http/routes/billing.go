package routes

import (
	"cobranca_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathInvoices = "/invoices"
	PathUsers    = "/users"
)

func addBillingRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, walletHandler *handlers.WalletHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("/:invoice_id/refund", paymentHandler.RefundInvoice)
		invoices.POST("/:invoice_id/cancel", paymentHandler.CancelInvoice)
	}

	users := rg.Group(PathUsers)
	{
		users.POST("/:user_id/customer", walletHandler.RegisterCustomer)
		users.GET("/:user_id/payment-methods", walletHandler.ListPaymentMethods)
		users.POST("/:user_id/cards", walletHandler.RegisterCard)
		users.DELETE("/:user_id/cards/:card_id", walletHandler.RemoveCard)
	}
}
