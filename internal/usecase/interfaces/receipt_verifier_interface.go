package interfaces

import "context"

// IAndroidReceiptVerifier checks a Google Play purchase token against the
// Android Publisher API.
type IAndroidReceiptVerifier interface {
	VerifyAndroid(ctx context.Context, product, purchaseToken string) (valid bool, err error)
}

// IIOSReceiptVerifier checks an App Store receipt against the iTunes
// verifyReceipt endpoint. latestReceipt is the rotated receipt returned by
// Apple for valid subscriptions; it replaces the stored one.
type IIOSReceiptVerifier interface {
	VerifyIOS(ctx context.Context, receipt string) (valid bool, latestReceipt string, err error)
}
