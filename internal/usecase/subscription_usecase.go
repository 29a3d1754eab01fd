package usecase

import (
	"context"
	"log"
	"time"

	"cobranca_service/internal/usecase/interfaces"
)

// ISubscriptionUseCase revalidates store-purchased subscription receipts.
// Each platform is a simple two-branch loop: verify, persist the verdict.
type ISubscriptionUseCase interface {
	ValidateAndroid(ctx context.Context) error
	ValidateIOS(ctx context.Context) error
}

type SubscriptionUseCase struct {
	repo            interfaces.ISubscriptionRepository
	androidVerifier interfaces.IAndroidReceiptVerifier
	iosVerifier     interfaces.IIOSReceiptVerifier
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(repo interfaces.ISubscriptionRepository, androidVerifier interfaces.IAndroidReceiptVerifier, iosVerifier interfaces.IIOSReceiptVerifier) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo, androidVerifier: androidVerifier, iosVerifier: iosVerifier}
}

// ValidateAndroid re-checks every subscription holding a Google Play purchase
// token. A verifier failure on one subscription does not stop the sweep.
func (u *SubscriptionUseCase) ValidateAndroid(ctx context.Context) error {
	log.Printf("[subscription][usecase] android sweep start")

	subs, err := u.repo.ListWithAndroidToken(ctx)
	if err != nil {
		log.Printf("[subscription][usecase] android sweep list failed err=%v", err)
		return err
	}

	for _, sub := range subs {
		valid, err := u.androidVerifier.VerifyAndroid(ctx, sub.Product, sub.AndroidPurchaseToken)
		if err != nil {
			log.Printf("[subscription][usecase] android verify failed subscription_id=%s err=%v", sub.ID, err)
			continue
		}
		sub.Valid = valid
		sub.UpdatedAt = time.Now().UTC()
		if _, err := u.repo.Save(ctx, sub); err != nil {
			log.Printf("[subscription][usecase] android save failed subscription_id=%s err=%v", sub.ID, err)
		}
	}
	log.Printf("[subscription][usecase] android sweep done checked=%d", len(subs))
	return nil
}

// ValidateIOS re-checks every subscription holding an App Store receipt,
// rotating the stored receipt to the latest one Apple returns for valid
// subscriptions.
func (u *SubscriptionUseCase) ValidateIOS(ctx context.Context) error {
	log.Printf("[subscription][usecase] ios sweep start")

	subs, err := u.repo.ListWithIOSReceipt(ctx)
	if err != nil {
		log.Printf("[subscription][usecase] ios sweep list failed err=%v", err)
		return err
	}

	for _, sub := range subs {
		valid, latestReceipt, err := u.iosVerifier.VerifyIOS(ctx, sub.IOSReceipt)
		if err != nil {
			log.Printf("[subscription][usecase] ios verify failed subscription_id=%s err=%v", sub.ID, err)
			continue
		}
		sub.Valid = valid
		if valid && latestReceipt != "" {
			sub.IOSReceipt = latestReceipt
		}
		sub.UpdatedAt = time.Now().UTC()
		if _, err := u.repo.Save(ctx, sub); err != nil {
			log.Printf("[subscription][usecase] ios save failed subscription_id=%s err=%v", sub.ID, err)
		}
	}
	log.Printf("[subscription][usecase] ios sweep done checked=%d", len(subs))
	return nil
}
