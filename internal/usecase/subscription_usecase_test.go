package usecase

import (
	"context"
	"errors"
	"testing"

	"cobranca_service/internal/domain/entities"
	mock_interfaces "cobranca_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSubscriptionUseCase_ValidateAndroid(t *testing.T) {
	t.Run("list error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		uc := NewSubscriptionUseCase(repo, nil, nil)

		repo.EXPECT().ListWithAndroidToken(gomock.Any()).Return(nil, errors.New("db"))

		if err := uc.ValidateAndroid(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("saves verifier verdicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		verifier := mock_interfaces.NewMockIAndroidReceiptVerifier(ctrl)
		uc := NewSubscriptionUseCase(repo, verifier, nil)

		subs := []entities.Subscription{
			{ID: "sub-1", Product: "premium", AndroidPurchaseToken: "tok-a", Valid: true},
			{ID: "sub-2", Product: "premium", AndroidPurchaseToken: "tok-b"},
		}
		repo.EXPECT().ListWithAndroidToken(gomock.Any()).Return(subs, nil)
		verifier.EXPECT().VerifyAndroid(gomock.Any(), "premium", "tok-a").Return(false, nil)
		verifier.EXPECT().VerifyAndroid(gomock.Any(), "premium", "tok-b").Return(true, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
				switch s.ID {
				case "sub-1":
					if s.Valid {
						t.Fatalf("sub-1 should be invalidated")
					}
				case "sub-2":
					if !s.Valid {
						t.Fatalf("sub-2 should be validated")
					}
				default:
					t.Fatalf("unexpected subscription saved: %+v", s)
				}
				if s.UpdatedAt.IsZero() {
					t.Fatalf("updated_at must be set")
				}
				return s, nil
			},
		).Times(2)

		if err := uc.ValidateAndroid(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("verifier failure skips the item but continues the sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		verifier := mock_interfaces.NewMockIAndroidReceiptVerifier(ctrl)
		uc := NewSubscriptionUseCase(repo, verifier, nil)

		subs := []entities.Subscription{
			{ID: "sub-1", Product: "premium", AndroidPurchaseToken: "tok-a"},
			{ID: "sub-2", Product: "premium", AndroidPurchaseToken: "tok-b"},
		}
		repo.EXPECT().ListWithAndroidToken(gomock.Any()).Return(subs, nil)
		verifier.EXPECT().VerifyAndroid(gomock.Any(), "premium", "tok-a").Return(false, errors.New("google down"))
		verifier.EXPECT().VerifyAndroid(gomock.Any(), "premium", "tok-b").Return(true, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
				if s.ID != "sub-2" {
					t.Fatalf("only sub-2 should be saved, got %+v", s)
				}
				return s, nil
			},
		)

		if err := uc.ValidateAndroid(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSubscriptionUseCase_ValidateIOS(t *testing.T) {
	t.Run("rotates the receipt for valid subscriptions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		verifier := mock_interfaces.NewMockIIOSReceiptVerifier(ctrl)
		uc := NewSubscriptionUseCase(repo, nil, verifier)

		subs := []entities.Subscription{{ID: "sub-1", IOSReceipt: "old-receipt"}}
		repo.EXPECT().ListWithIOSReceipt(gomock.Any()).Return(subs, nil)
		verifier.EXPECT().VerifyIOS(gomock.Any(), "old-receipt").Return(true, "new-receipt", nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
				if !s.Valid || s.IOSReceipt != "new-receipt" {
					t.Fatalf("expected rotated valid receipt, got %+v", s)
				}
				return s, nil
			},
		)

		if err := uc.ValidateIOS(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid subscription keeps its receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		verifier := mock_interfaces.NewMockIIOSReceiptVerifier(ctrl)
		uc := NewSubscriptionUseCase(repo, nil, verifier)

		subs := []entities.Subscription{{ID: "sub-1", IOSReceipt: "old-receipt", Valid: true}}
		repo.EXPECT().ListWithIOSReceipt(gomock.Any()).Return(subs, nil)
		verifier.EXPECT().VerifyIOS(gomock.Any(), "old-receipt").Return(false, "", nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
				if s.Valid || s.IOSReceipt != "old-receipt" {
					t.Fatalf("expected invalid untouched receipt, got %+v", s)
				}
				return s, nil
			},
		)

		if err := uc.ValidateIOS(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
