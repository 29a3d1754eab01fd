package receipts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cobranca_service/internal/usecase/interfaces"
)

const (
	googleTokenURL          = "https://accounts.google.com/o/oauth2/token"
	androidPublisherURLBase = "https://www.googleapis.com/androidpublisher/v2/applications"
)

// GooglePlayVerifier validates subscription purchase tokens against the
// Android Publisher API. Each verification exchanges the long-lived refresh
// token for a fresh access token first.
type GooglePlayVerifier struct {
	clientID     string
	clientSecret string
	refreshToken string
	bundleID     string
	httpClient   *http.Client
}

var _ interfaces.IAndroidReceiptVerifier = (*GooglePlayVerifier)(nil)

type GooglePlayConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	BundleID     string
	HTTPClient   *http.Client
}

func NewGooglePlayVerifier(cfg GooglePlayConfig) (*GooglePlayVerifier, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" || cfg.BundleID == "" {
		return nil, errors.New("google play verifier: incomplete credentials")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GooglePlayVerifier{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		refreshToken: cfg.RefreshToken,
		bundleID:     cfg.BundleID,
		httpClient:   httpClient,
	}, nil
}

func (v *GooglePlayVerifier) VerifyAndroid(ctx context.Context, product, purchaseToken string) (bool, error) {
	accessToken, err := v.refreshAccessToken(ctx)
	if err != nil {
		return false, err
	}

	u := fmt.Sprintf("%s/%s/purchases/subscriptions/%s/tokens/%s?access_token=%s",
		androidPublisherURLBase, v.bundleID, product, purchaseToken, url.QueryEscape(accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	// A purchase is valid when the API reports neither an error nor a
	// cancellation reason.
	var result struct {
		Error        json.RawMessage `json:"error"`
		CancelReason *int            `json:"cancelReason"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return false, err
	}
	return len(result.Error) == 0 && result.CancelReason == nil, nil
}

func (v *GooglePlayVerifier) refreshAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", v.clientID)
	form.Set("client_secret", v.clientSecret)
	form.Set("refresh_token", v.refreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", err
	}
	if token.AccessToken == "" {
		return "", errors.New("google play verifier: empty access token")
	}
	return token.AccessToken, nil
}
