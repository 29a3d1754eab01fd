package receipts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"cobranca_service/internal/usecase/interfaces"
)

const (
	appStoreProductionURL = "https://buy.itunes.apple.com/verifyReceipt"
	appStoreSandboxURL    = "https://sandbox.itunes.apple.com/verifyReceipt"
)

// AppStoreVerifier validates subscription receipts against the iTunes
// verifyReceipt endpoint.
type AppStoreVerifier struct {
	sharedSecret string
	verifyURL    string
	httpClient   *http.Client
}

var _ interfaces.IIOSReceiptVerifier = (*AppStoreVerifier)(nil)

type AppStoreConfig struct {
	SharedSecret string
	// Environment selects the endpoint: "production" hits the store, anything
	// else the sandbox.
	Environment string
	HTTPClient  *http.Client
}

func NewAppStoreVerifier(cfg AppStoreConfig) (*AppStoreVerifier, error) {
	if cfg.SharedSecret == "" {
		return nil, errors.New("app store verifier: missing shared secret")
	}

	verifyURL := appStoreSandboxURL
	if cfg.Environment == "production" {
		verifyURL = appStoreProductionURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &AppStoreVerifier{
		sharedSecret: cfg.SharedSecret,
		verifyURL:    verifyURL,
		httpClient:   httpClient,
	}, nil
}

func (v *AppStoreVerifier) VerifyIOS(ctx context.Context, receipt string) (bool, string, error) {
	body, err := json.Marshal(map[string]string{
		"receipt-data": receipt,
		"password":     v.sharedSecret,
	})
	if err != nil {
		return false, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, bytes.NewReader(body))
	if err != nil {
		return false, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, "", err
	}
	defer resp.Body.Close()

	// Status 0 means the receipt is valid; latest_receipt carries the rotated
	// receipt to store for the next poll.
	var result struct {
		Status        int    `json:"status"`
		LatestReceipt string `json:"latest_receipt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, "", err
	}
	return result.Status == 0, result.LatestReceipt, nil
}
