package interfaces

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

// IPaymentGateway is the typed surface of the external payment gateway
// (Iugu). Every operation is one network round trip; errors from the REST
// layer propagate unchanged, with no retry and no translation.
type IPaymentGateway interface {
	GetCustomer(ctx context.Context, customerID string) (entities.Customer, error)
	CreateCustomer(ctx context.Context, profile entities.CustomerProfile) (entities.Customer, error)
	ListPaymentMethods(ctx context.Context, customerID string) ([]entities.PaymentMethod, error)
	CreateToken(ctx context.Context, card entities.CreditCard) (entities.PaymentToken, error)
	CreatePaymentMethod(ctx context.Context, customerID, tokenID, description string, isDefault bool) (entities.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	CreateInvoice(ctx context.Context, email, customerID, dueDate string, items []entities.LineItem) (entities.Invoice, error)
	CreateChargeCustomer(ctx context.Context, paymentMethodID, customerID, invoiceID, tokenID string) (entities.Charge, error)
	CreateCharge(ctx context.Context, email string, items []entities.LineItem, tokenID string) (entities.Charge, error)
	RefundInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error)
	CancelInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error)
}
