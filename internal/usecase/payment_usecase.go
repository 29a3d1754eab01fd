package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"
)

var (
	ErrMissingCreditCard      = errors.New("credit card required")
	ErrMissingCreditCardData  = errors.New("credit card data required")
	ErrMissingPaymentMethodID = errors.New("payment method id required")
	ErrInvalidInvoiceID       = errors.New("invalid invoice id")
)

// IPaymentUseCase runs the payment orchestration state machine: one
// PaymentRequest in, one PaymentResult (or a single error) out.
type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error)
	RefundInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error)
	CancelInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error)
}

// PaymentUseCase sequences gateway calls into complete payment workflows.
//
// Every run is a strictly sequential chain: no stage starts before the
// previous stage's result is in, the first failure aborts the remainder, and
// already-created gateway entities are never compensated.
type PaymentUseCase struct {
	gateway  interfaces.IPaymentGateway
	userRepo interfaces.IUserRepository
	notifier interfaces.IPushNotifier
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase wires the orchestrator. userRepo and notifier are
// optional; without them the post-charge push notification is skipped.
func NewPaymentUseCase(gateway interfaces.IPaymentGateway, userRepo interfaces.IUserRepository, notifier interfaces.IPushNotifier) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway, userRepo: userRepo, notifier: notifier}
}

// resultAggregator accumulates the entities produced by each stage of a run.
// On success the caller gets the full aggregate; on failure it gets only the
// error, never a partial result.
type resultAggregator struct {
	result entities.PaymentResult
}

func (a *resultAggregator) setCustomer(c entities.Customer)           { a.result.Customer = &c }
func (a *resultAggregator) setToken(t entities.PaymentToken)          { a.result.Token = &t }
func (a *resultAggregator) setPaymentMethod(p entities.PaymentMethod) { a.result.PaymentMethod = &p }
func (a *resultAggregator) setInvoice(i entities.Invoice)             { a.result.Invoice = &i }
func (a *resultAggregator) setCharge(c entities.Charge)               { a.result.Charge = &c }

func (u *PaymentUseCase) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	log.Printf("[payment][usecase] create start direct=%t customer_id=%q items=%d", req.DirectPayment, req.Customer.ID, len(req.Items))

	var (
		result entities.PaymentResult
		err    error
	)
	if req.DirectPayment {
		result, err = u.directPayment(ctx, req)
	} else {
		result, err = u.customerPayment(ctx, req)
	}
	if err != nil {
		log.Printf("[payment][usecase] create failed direct=%t err=%v", req.DirectPayment, err)
		return entities.PaymentResult{}, err
	}

	u.notifyCharged(req, result)
	log.Printf("[payment][usecase] create success direct=%t", req.DirectPayment)
	return result, nil
}

// directPayment tokenizes the raw card and charges it immediately, with no
// customer or invoice wrapper.
func (u *PaymentUseCase) directPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	if req.CreditCard == nil {
		return entities.PaymentResult{}, ErrMissingCreditCard
	}

	agg := &resultAggregator{}

	token, err := u.gateway.CreateToken(ctx, *req.CreditCard)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	agg.setToken(token)

	charge, err := u.gateway.CreateCharge(ctx, req.Customer.Email, req.Items, token.ID)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	agg.setCharge(charge)

	return agg.result, nil
}

// customerPayment resolves the customer (fetch-by-id or create-new, never
// both) and dispatches to the card-handling sub-flow selected by whether the
// request references an already persisted payment method.
func (u *PaymentUseCase) customerPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	var (
		customer entities.Customer
		err      error
	)
	if req.Customer.ID != "" {
		customer, err = u.gateway.GetCustomer(ctx, req.Customer.ID)
	} else {
		profile := req.Customer.Profile
		if profile.Email == "" {
			profile.Email = req.Customer.Email
		}
		customer, err = u.gateway.CreateCustomer(ctx, profile)
	}
	if err != nil {
		return entities.PaymentResult{}, err
	}

	if req.CreditCard == nil || req.CreditCard.ID == "" {
		return u.paymentWithNewCreditCard(ctx, customer, req)
	}
	return u.paymentWithPaymentMethod(ctx, customer, req)
}

// paymentWithNewCreditCard tokenizes the raw card, optionally persists it as
// a payment method, then invoices and charges. The charge references the
// payment method when the card was saved, the token otherwise - never both.
func (u *PaymentUseCase) paymentWithNewCreditCard(ctx context.Context, customer entities.Customer, req entities.PaymentRequest) (entities.PaymentResult, error) {
	if req.CreditCard == nil {
		return entities.PaymentResult{}, ErrMissingCreditCardData
	}

	agg := &resultAggregator{}
	agg.setCustomer(customer)

	token, err := u.gateway.CreateToken(ctx, *req.CreditCard)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	agg.setToken(token)

	if req.CreditCard.Save {
		pm, err := u.gateway.CreatePaymentMethod(ctx, customer.ID, token.ID, req.CreditCard.Description, req.CreditCard.IsDefault)
		if err != nil {
			return entities.PaymentResult{}, err
		}
		agg.setPaymentMethod(pm)

		invoice, err := u.gateway.CreateInvoice(ctx, customer.Email, customer.ID, req.DueDate, req.Items)
		if err != nil {
			return entities.PaymentResult{}, err
		}
		agg.setInvoice(invoice)

		charge, err := u.gateway.CreateChargeCustomer(ctx, pm.ID, customer.ID, invoice.ID, "")
		if err != nil {
			return entities.PaymentResult{}, err
		}
		agg.setCharge(charge)
		return agg.result, nil
	}

	invoice, err := u.gateway.CreateInvoice(ctx, customer.Email, customer.ID, req.DueDate, req.Items)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	agg.setInvoice(invoice)

	charge, err := u.gateway.CreateChargeCustomer(ctx, "", customer.ID, invoice.ID, token.ID)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	agg.setCharge(charge)
	return agg.result, nil
}

// paymentWithPaymentMethod invoices and charges against a payment method the
// customer already holds. No token is created on this path.
func (u *PaymentUseCase) paymentWithPaymentMethod(ctx context.Context, customer entities.Customer, req entities.PaymentRequest) (entities.PaymentResult, error) {
	if req.CreditCard == nil || req.CreditCard.ID == "" {
		return entities.PaymentResult{}, ErrMissingPaymentMethodID
	}

	agg := &resultAggregator{}
	agg.setCustomer(customer)

	invoice, err := u.gateway.CreateInvoice(ctx, customer.Email, customer.ID, req.DueDate, req.Items)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	agg.setInvoice(invoice)

	charge, err := u.gateway.CreateChargeCustomer(ctx, req.CreditCard.ID, customer.ID, invoice.ID, "")
	if err != nil {
		return entities.PaymentResult{}, err
	}
	agg.setCharge(charge)
	return agg.result, nil
}

// notifyCharged pushes a confirmation to the paying user's devices after a
// successful charge. Fire-and-forget: failures are logged and never surface.
func (u *PaymentUseCase) notifyCharged(req entities.PaymentRequest, result entities.PaymentResult) {
	if u.notifier == nil || u.userRepo == nil || req.UserID == "" || result.Charge == nil {
		return
	}

	charge := *result.Charge
	go func() {
		ctx := context.Background()
		user, err := u.userRepo.GetByID(ctx, req.UserID)
		if err != nil || user.ID == "" || len(user.DeviceTokens) == 0 {
			log.Printf("[payment][usecase] notify skipped user_id=%s err=%v", req.UserID, err)
			return
		}
		payload := map[string]any{
			"type":       "payment_charged",
			"invoice_id": charge.InvoiceID,
			"success":    charge.Success,
		}
		if err := u.notifier.Notify(ctx, user.DeviceTokens, nil, payload); err != nil {
			log.Printf("[payment][usecase] notify failed user_id=%s err=%v", req.UserID, err)
		}
	}()
}

func (u *PaymentUseCase) RefundInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	log.Printf("[payment][usecase] refund start invoice_id=%s", invoiceID)
	return u.gateway.RefundInvoice(ctx, invoiceID)
}

func (u *PaymentUseCase) CancelInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	log.Printf("[payment][usecase] cancel start invoice_id=%s", invoiceID)
	return u.gateway.CancelInvoice(ctx, invoiceID)
}
