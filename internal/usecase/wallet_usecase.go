package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrUserNotFound          = errors.New("user not found")
	ErrCustomerNotRegistered = errors.New("user has no gateway customer; register the customer first")
	ErrSavedCardNotFound     = errors.New("saved card not found")
	ErrInvalidSavedCardID    = errors.New("invalid saved card id")
)

// IWalletUseCase manages the gateway-side wallet of a local user: the
// customer registration and the cards persisted for reuse.
type IWalletUseCase interface {
	RegisterCustomer(ctx context.Context, userID string, profile entities.CustomerProfile) (entities.Customer, error)
	RegisterCreditCard(ctx context.Context, userID string, card entities.CreditCard, cpf, flag string) (entities.SavedCard, error)
	RemoveCreditCard(ctx context.Context, userID, cardID string) error
	ListPaymentMethods(ctx context.Context, userID string) ([]entities.PaymentMethod, error)
}

type WalletUseCase struct {
	gateway  interfaces.IPaymentGateway
	userRepo interfaces.IUserRepository
	cardRepo interfaces.ISavedCardRepository
}

var _ IWalletUseCase = (*WalletUseCase)(nil)

func NewWalletUseCase(gateway interfaces.IPaymentGateway, userRepo interfaces.IUserRepository, cardRepo interfaces.ISavedCardRepository) *WalletUseCase {
	return &WalletUseCase{gateway: gateway, userRepo: userRepo, cardRepo: cardRepo}
}

// RegisterCustomer creates a gateway customer for the user and stores its id
// on the user record. Idempotent: a user already holding an external customer
// id is returned as-is, with no gateway call.
func (u *WalletUseCase) RegisterCustomer(ctx context.Context, userID string, profile entities.CustomerProfile) (entities.Customer, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Customer{}, ErrInvalidUserID
	}
	log.Printf("[wallet][usecase] register-customer start user_id=%s", userID)

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entities.Customer{}, err
	}
	if user.ID == "" {
		return entities.Customer{}, ErrUserNotFound
	}
	if user.ExternalCustomerID != "" {
		log.Printf("[wallet][usecase] register-customer already-registered user_id=%s customer_id=%s", userID, user.ExternalCustomerID)
		return entities.Customer{ID: user.ExternalCustomerID, Email: user.Email, Name: user.Name}, nil
	}

	if profile.Email == "" {
		profile.Email = user.Email
	}
	if profile.Name == "" {
		profile.Name = user.Name
	}

	customer, err := u.gateway.CreateCustomer(ctx, profile)
	if err != nil {
		log.Printf("[wallet][usecase] register-customer gateway failed user_id=%s err=%v", userID, err)
		return entities.Customer{}, err
	}

	user.ExternalCustomerID = customer.ID
	user.UpdatedAt = time.Now().UTC()
	if _, err := u.userRepo.Save(ctx, user); err != nil {
		log.Printf("[wallet][usecase] register-customer save failed user_id=%s customer_id=%s err=%v", userID, customer.ID, err)
		return entities.Customer{}, err
	}
	log.Printf("[wallet][usecase] register-customer success user_id=%s customer_id=%s", userID, customer.ID)
	return customer, nil
}

// RegisterCreditCard tokenizes the raw card, persists it as the user's
// default gateway payment method and records a local non-sensitive reference
// (last four digits only).
func (u *WalletUseCase) RegisterCreditCard(ctx context.Context, userID string, card entities.CreditCard, cpf, flag string) (entities.SavedCard, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.SavedCard{}, ErrInvalidUserID
	}
	log.Printf("[wallet][usecase] register-card start user_id=%s", userID)

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entities.SavedCard{}, err
	}
	if user.ID == "" {
		return entities.SavedCard{}, ErrUserNotFound
	}
	if user.ExternalCustomerID == "" {
		return entities.SavedCard{}, ErrCustomerNotRegistered
	}

	token, err := u.gateway.CreateToken(ctx, card)
	if err != nil {
		log.Printf("[wallet][usecase] register-card tokenization failed user_id=%s err=%v", userID, err)
		return entities.SavedCard{}, err
	}

	pm, err := u.gateway.CreatePaymentMethod(ctx, user.ExternalCustomerID, token.ID, card.Description, true)
	if err != nil {
		log.Printf("[wallet][usecase] register-card payment-method failed user_id=%s err=%v", userID, err)
		return entities.SavedCard{}, err
	}

	month, _ := strconv.Atoi(card.Month)
	year, _ := strconv.Atoi(card.Year)
	saved := entities.SavedCard{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		CardExternalID:  pm.ID,
		Name:            card.Description,
		CPF:             cpf,
		Flag:            flag,
		LastDigits:      lastDigits(card.Number),
		MonthOfValidity: month,
		YearOfValidity:  year,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := u.cardRepo.Create(ctx, saved)
	if err != nil {
		log.Printf("[wallet][usecase] register-card persist failed user_id=%s card_external_id=%s err=%v", userID, pm.ID, err)
		return entities.SavedCard{}, err
	}
	log.Printf("[wallet][usecase] register-card success user_id=%s card_id=%s", userID, created.ID)
	return created, nil
}

// RemoveCreditCard deletes the payment method at the gateway, then the local
// reference. A gateway failure leaves the local record untouched.
func (u *WalletUseCase) RemoveCreditCard(ctx context.Context, userID, cardID string) error {
	userID = strings.TrimSpace(userID)
	cardID = strings.TrimSpace(cardID)
	if userID == "" {
		return ErrInvalidUserID
	}
	if cardID == "" {
		return ErrInvalidSavedCardID
	}
	log.Printf("[wallet][usecase] remove-card start user_id=%s card_id=%s", userID, cardID)

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.ID == "" {
		return ErrUserNotFound
	}
	if user.ExternalCustomerID == "" {
		return ErrCustomerNotRegistered
	}

	card, err := u.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card.ID == "" || card.UserID != user.ID {
		return ErrSavedCardNotFound
	}

	if err := u.gateway.DeletePaymentMethod(ctx, user.ExternalCustomerID, card.CardExternalID); err != nil {
		log.Printf("[wallet][usecase] remove-card gateway failed user_id=%s card_id=%s err=%v", userID, cardID, err)
		return err
	}
	if err := u.cardRepo.Delete(ctx, card.ID); err != nil {
		return err
	}
	log.Printf("[wallet][usecase] remove-card success user_id=%s card_id=%s", userID, cardID)
	return nil
}

// ListPaymentMethods returns the gateway-side cards of a registered user.
func (u *WalletUseCase) ListPaymentMethods(ctx context.Context, userID string) ([]entities.PaymentMethod, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, ErrUserNotFound
	}
	if user.ExternalCustomerID == "" {
		return nil, ErrCustomerNotRegistered
	}

	return u.gateway.ListPaymentMethods(ctx, user.ExternalCustomerID)
}

func lastDigits(number string) string {
	digits := strings.TrimSpace(number)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
