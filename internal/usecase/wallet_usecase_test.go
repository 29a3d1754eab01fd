package usecase

import (
	"context"
	"errors"
	"testing"

	"cobranca_service/internal/domain/entities"
	mock_interfaces "cobranca_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWalletUseCase_RegisterCustomer(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewWalletUseCase(nil, nil, nil)
		_, err := uc.RegisterCustomer(context.Background(), " ", entities.CustomerProfile{})
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewWalletUseCase(nil, userRepo, nil)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, nil)

		_, err := uc.RegisterCustomer(context.Background(), "user-1", entities.CustomerProfile{})
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("already registered skips the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewWalletUseCase(gateway, userRepo, nil)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Email: "joao@test.com", ExternalCustomerID: "cus-1"}, nil)

		customer, err := uc.RegisterCustomer(context.Background(), "user-1", entities.CustomerProfile{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer.ID != "cus-1" || customer.Email != "joao@test.com" {
			t.Fatalf("unexpected customer: %+v", customer)
		}
	})

	t.Run("creates customer and stores the external id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewWalletUseCase(gateway, userRepo, nil)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Email: "joao@test.com", Name: "Joao Silva"}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, profile entities.CustomerProfile) (entities.Customer, error) {
				if profile.Email != "joao@test.com" || profile.Name != "Joao Silva" {
					t.Fatalf("expected user fallback on empty profile, got %+v", profile)
				}
				return entities.Customer{ID: "cus-1", Email: profile.Email, Name: profile.Name}, nil
			},
		)
		userRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ExternalCustomerID != "cus-1" {
					t.Fatalf("expected external customer id persisted, got %+v", u)
				}
				if u.UpdatedAt.IsZero() {
					t.Fatalf("updated_at must be set")
				}
				return u, nil
			},
		)

		customer, err := uc.RegisterCustomer(context.Background(), "user-1", entities.CustomerProfile{})
		if err != nil || customer.ID != "cus-1" {
			t.Fatalf("unexpected result err=%v customer=%+v", err, customer)
		}
	})

	t.Run("save failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewWalletUseCase(gateway, userRepo, nil)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(entities.Customer{ID: "cus-1"}, nil)
		userRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.User{}, errors.New("db"))

		_, err := uc.RegisterCustomer(context.Background(), "user-1", entities.CustomerProfile{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestWalletUseCase_RegisterCreditCard(t *testing.T) {
	card := entities.CreditCard{
		Number:      "5555666677778884",
		CVV:         "123",
		FirstName:   "Joao",
		LastName:    "Silva",
		Month:       "11",
		Year:        "2029",
		Description: "Cartao pessoal",
	}

	t.Run("requires a registered customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewWalletUseCase(nil, userRepo, nil)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)

		_, err := uc.RegisterCreditCard(context.Background(), "user-1", card, "", "")
		if !errors.Is(err, ErrCustomerNotRegistered) {
			t.Fatalf("expected ErrCustomerNotRegistered, got %v", err)
		}
	})

	t.Run("tokenizes, attaches as default and persists last digits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		cardRepo := mock_interfaces.NewMockISavedCardRepository(ctrl)
		uc := NewWalletUseCase(gateway, userRepo, cardRepo)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", ExternalCustomerID: "cus-1"}, nil)
		gomock.InOrder(
			gateway.EXPECT().CreateToken(gomock.Any(), card).Return(entities.PaymentToken{ID: "tok-1"}, nil),
			gateway.EXPECT().CreatePaymentMethod(gomock.Any(), "cus-1", "tok-1", "Cartao pessoal", true).Return(entities.PaymentMethod{ID: "pm-1"}, nil),
		)
		cardRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.SavedCard) (entities.SavedCard, error) {
				if c.ID == "" {
					t.Fatalf("expected generated id")
				}
				if c.UserID != "user-1" || c.CardExternalID != "pm-1" {
					t.Fatalf("unexpected references: %+v", c)
				}
				if c.LastDigits != "8884" {
					t.Fatalf("expected last four digits, got %q", c.LastDigits)
				}
				if c.MonthOfValidity != 11 || c.YearOfValidity != 2029 {
					t.Fatalf("unexpected validity: %+v", c)
				}
				if c.CPF != "11122233344" || c.Flag != "mastercard" {
					t.Fatalf("unexpected card metadata: %+v", c)
				}
				return c, nil
			},
		)

		saved, err := uc.RegisterCreditCard(context.Background(), "user-1", card, "11122233344", "mastercard")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.LastDigits != "8884" {
			t.Fatalf("unexpected saved card: %+v", saved)
		}
	})

	t.Run("tokenization failure stops before persistence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		cardRepo := mock_interfaces.NewMockISavedCardRepository(ctrl)
		uc := NewWalletUseCase(gateway, userRepo, cardRepo)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", ExternalCustomerID: "cus-1"}, nil)
		gateway.EXPECT().CreateToken(gomock.Any(), card).Return(entities.PaymentToken{}, errors.New("card refused"))

		_, err := uc.RegisterCreditCard(context.Background(), "user-1", card, "", "")
		if err == nil || err.Error() != "card refused" {
			t.Fatalf("expected card refused, got %v", err)
		}
	})
}

func TestWalletUseCase_RemoveCreditCard(t *testing.T) {
	t.Run("invalid card id", func(t *testing.T) {
		uc := NewWalletUseCase(nil, nil, nil)
		err := uc.RemoveCreditCard(context.Background(), "user-1", " ")
		if !errors.Is(err, ErrInvalidSavedCardID) {
			t.Fatalf("expected ErrInvalidSavedCardID, got %v", err)
		}
	})

	t.Run("rejects cards owned by another user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		cardRepo := mock_interfaces.NewMockISavedCardRepository(ctrl)
		uc := NewWalletUseCase(nil, userRepo, cardRepo)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", ExternalCustomerID: "cus-1"}, nil)
		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(entities.SavedCard{ID: "card-1", UserID: "someone-else"}, nil)

		err := uc.RemoveCreditCard(context.Background(), "user-1", "card-1")
		if !errors.Is(err, ErrSavedCardNotFound) {
			t.Fatalf("expected ErrSavedCardNotFound, got %v", err)
		}
	})

	t.Run("gateway delete precedes local delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		cardRepo := mock_interfaces.NewMockISavedCardRepository(ctrl)
		uc := NewWalletUseCase(gateway, userRepo, cardRepo)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", ExternalCustomerID: "cus-1"}, nil)
		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(entities.SavedCard{ID: "card-1", UserID: "user-1", CardExternalID: "pm-1"}, nil)
		gomock.InOrder(
			gateway.EXPECT().DeletePaymentMethod(gomock.Any(), "cus-1", "pm-1").Return(nil),
			cardRepo.EXPECT().Delete(gomock.Any(), "card-1").Return(nil),
		)

		if err := uc.RemoveCreditCard(context.Background(), "user-1", "card-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure keeps the local record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		cardRepo := mock_interfaces.NewMockISavedCardRepository(ctrl)
		uc := NewWalletUseCase(gateway, userRepo, cardRepo)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", ExternalCustomerID: "cus-1"}, nil)
		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(entities.SavedCard{ID: "card-1", UserID: "user-1", CardExternalID: "pm-1"}, nil)
		gateway.EXPECT().DeletePaymentMethod(gomock.Any(), "cus-1", "pm-1").Return(errors.New("gateway down"))

		err := uc.RemoveCreditCard(context.Background(), "user-1", "card-1")
		if err == nil || err.Error() != "gateway down" {
			t.Fatalf("expected gateway down, got %v", err)
		}
	})
}

func TestWalletUseCase_ListPaymentMethods(t *testing.T) {
	t.Run("unregistered customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewWalletUseCase(nil, userRepo, nil)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)

		_, err := uc.ListPaymentMethods(context.Background(), "user-1")
		if !errors.Is(err, ErrCustomerNotRegistered) {
			t.Fatalf("expected ErrCustomerNotRegistered, got %v", err)
		}
	})

	t.Run("delegates to the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewWalletUseCase(gateway, userRepo, nil)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", ExternalCustomerID: "cus-1"}, nil)
		gateway.EXPECT().ListPaymentMethods(gomock.Any(), "cus-1").Return([]entities.PaymentMethod{{ID: "pm-1"}}, nil)

		methods, err := uc.ListPaymentMethods(context.Background(), " user-1 ")
		if err != nil || len(methods) != 1 || methods[0].ID != "pm-1" {
			t.Fatalf("unexpected result err=%v methods=%+v", err, methods)
		}
	})
}

func TestLastDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "4111111111111111", want: "1111"},
		{in: " 5555666677778884 ", want: "8884"},
		{in: "123", want: "123"},
		{in: "", want: ""},
	}
	for _, tc := range cases {
		if got := lastDigits(tc.in); got != tc.want {
			t.Fatalf("lastDigits(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
