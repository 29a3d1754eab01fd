package iugu

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cobranca_service/internal/domain/entities"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		APIToken:  "tok-secret",
		AccountID: "acc-1",
		BaseURL:   srv.URL,
		TestMode:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Fatalf("request body should be json: %v", err)
	}
	return body
}

func TestNewClient(t *testing.T) {
	t.Run("missing api token", func(t *testing.T) {
		_, err := NewClient(Config{})
		if !errors.Is(err, ErrMissingAPIToken) {
			t.Fatalf("expected ErrMissingAPIToken, got %v", err)
		}
	})

	t.Run("defaults to production base url", func(t *testing.T) {
		c, err := NewClient(Config{APIToken: "tok"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.baseURL != DefaultBaseURL {
			t.Fatalf("expected default base url, got %q", c.baseURL)
		}
	})

	t.Run("base url gets a trailing slash", func(t *testing.T) {
		c, err := NewClient(Config{APIToken: "tok", BaseURL: "http://localhost:9999"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.baseURL != "http://localhost:9999/" {
			t.Fatalf("expected trailing slash, got %q", c.baseURL)
		}
	})
}

func TestClient_CreateToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/payment_token" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body := decodeBody(t, r)
		if body["account_id"] != "acc-1" {
			t.Errorf("expected account_id from config, got %v", body["account_id"])
		}
		if body["method"] != "credit_card" {
			t.Errorf("expected credit_card method, got %v", body["method"])
		}
		if body["test"] != true {
			t.Errorf("expected test flag from config, got %v", body["test"])
		}
		data, _ := body["data"].(map[string]any)
		if data == nil {
			t.Fatalf("card data must be nested under data")
		}
		if data["number"] != "4111111111111111" || data["verification_value"] != "123" {
			t.Errorf("unexpected card data: %v", data)
		}
		if data["first_name"] != "Joao" || data["last_name"] != "Silva" || data["month"] != "12" || data["year"] != "2030" {
			t.Errorf("unexpected holder data: %v", data)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": "tok-1", "method": "credit_card", "test": true})
	})

	token, err := client.CreateToken(context.Background(), entities.CreditCard{
		Number: "4111111111111111", CVV: "123", FirstName: "Joao", LastName: "Silva", Month: "12", Year: "2030",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.ID != "tok-1" || !token.Test {
		t.Fatalf("unexpected token: %+v", token)
	}
}

func TestClient_CreateChargeCustomer(t *testing.T) {
	t.Run("by payment method id", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			if body["api_token"] != "tok-secret" {
				t.Errorf("expected embedded api_token")
			}
			if body["customer_payment_method_id"] != "pm-1" {
				t.Errorf("expected customer_payment_method_id, got %v", body)
			}
			if _, ok := body["token"]; ok {
				t.Errorf("token must be omitted when charging a payment method")
			}
			json.NewEncoder(w).Encode(map[string]any{"success": true, "invoice_id": "inv-1", "identification": "chg-1"})
		})

		charge, err := client.CreateChargeCustomer(context.Background(), "pm-1", "cus-1", "inv-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !charge.Success || charge.ID != "chg-1" || charge.InvoiceID != "inv-1" {
			t.Fatalf("unexpected charge: %+v", charge)
		}
	})

	t.Run("by token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			if body["token"] != "tok-1" {
				t.Errorf("expected token, got %v", body)
			}
			if _, ok := body["customer_payment_method_id"]; ok {
				t.Errorf("customer_payment_method_id must be omitted when charging a token")
			}
			json.NewEncoder(w).Encode(map[string]any{"success": true, "identification": "chg-1"})
		})

		charge, err := client.CreateChargeCustomer(context.Background(), "", "cus-1", "inv-1", "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if charge.InvoiceID != "inv-1" {
			t.Fatalf("expected invoice id fallback from request, got %+v", charge)
		}
	})
}

func TestClient_CreateCharge(t *testing.T) {
	t.Run("with token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			if body["token"] != "tok-1" {
				t.Errorf("expected token, got %v", body)
			}
			if _, ok := body["method"]; ok {
				t.Errorf("method must be omitted when a token is present")
			}
			items, _ := body["items"].([]any)
			if len(items) != 1 {
				t.Fatalf("expected one item, got %v", body["items"])
			}
			item := items[0].(map[string]any)
			if item["price_cents"] != float64(4990) || item["description"] != "Plano mensal" {
				t.Errorf("unexpected item wire format: %v", item)
			}
			json.NewEncoder(w).Encode(map[string]any{"success": true, "identification": "chg-1"})
		})

		items := []entities.LineItem{{Description: "Plano mensal", Quantity: 1, PriceCents: 4990}}
		charge, err := client.CreateCharge(context.Background(), "joao@test.com", items, "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if charge.TokenID != "tok-1" {
			t.Fatalf("unexpected charge: %+v", charge)
		}
	})

	t.Run("without token falls back to bank slip", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			if body["method"] != "bank_slip" {
				t.Errorf("expected bank_slip fallback, got %v", body["method"])
			}
			if _, ok := body["token"]; ok {
				t.Errorf("token must be omitted, got %v", body)
			}
			json.NewEncoder(w).Encode(map[string]any{"success": true, "url": "https://fatura/1"})
		})

		charge, err := client.CreateCharge(context.Background(), "joao@test.com", []entities.LineItem{{Description: "x", Quantity: 1, PriceCents: 100}}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if charge.URL != "https://fatura/1" {
			t.Fatalf("unexpected charge: %+v", charge)
		}
	})
}

func TestClient_Customers(t *testing.T) {
	t.Run("get customer sends api token as query", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || r.URL.Path != "/customers/cus-1" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			if r.URL.Query().Get("api_token") != "tok-secret" {
				t.Errorf("expected api_token query param")
			}
			json.NewEncoder(w).Encode(map[string]any{"id": "cus-1", "email": "joao@test.com", "name": "Joao"})
		})

		customer, err := client.GetCustomer(context.Background(), "cus-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer.ID != "cus-1" || customer.Profile.Email != "joao@test.com" {
			t.Fatalf("unexpected customer: %+v", customer)
		}
	})

	t.Run("create customer omits empty optionals", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			if body["email"] != "joao@test.com" || body["name"] != "Joao" {
				t.Errorf("unexpected required fields: %v", body)
			}
			if body["cpf_cnpj"] != "11122233344" {
				t.Errorf("expected cpf_cnpj, got %v", body)
			}
			for _, key := range []string{"notes", "zip_code", "street", "city"} {
				if _, ok := body[key]; ok {
					t.Errorf("empty optional %q must be omitted", key)
				}
			}
			json.NewEncoder(w).Encode(map[string]any{"id": "cus-1"})
		})

		_, err := client.CreateCustomer(context.Background(), entities.CustomerProfile{
			Email: "joao@test.com", Name: "Joao", CpfCnpj: "11122233344",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("create payment method", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/customers/cus-1/payment_methods" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			body := decodeBody(t, r)
			if body["token"] != "tok-1" || body["set_as_default"] != true {
				t.Errorf("unexpected body: %v", body)
			}
			json.NewEncoder(w).Encode(map[string]any{"id": "pm-1", "description": "Cartao"})
		})

		pm, err := client.CreatePaymentMethod(context.Background(), "cus-1", "tok-1", "Cartao", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pm.ID != "pm-1" || pm.CustomerID != "cus-1" {
			t.Fatalf("unexpected payment method: %+v", pm)
		}
	})

	t.Run("delete payment method", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete || r.URL.Path != "/customers/cus-1/payment_methods/pm-1" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			if r.URL.Query().Get("api_token") != "tok-secret" {
				t.Errorf("expected api_token query param")
			}
			w.WriteHeader(http.StatusOK)
		})

		if err := client.DeletePaymentMethod(context.Background(), "cus-1", "pm-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClient_Invoices(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/invoices" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			body := decodeBody(t, r)
			if body["customer_id"] != "cus-1" || body["due_date"] != "2026-09-30" {
				t.Errorf("unexpected body: %v", body)
			}
			json.NewEncoder(w).Encode(map[string]any{"id": "inv-1", "status": "pending", "total_cents": 4990})
		})

		inv, err := client.CreateInvoice(context.Background(), "joao@test.com", "cus-1", "2026-09-30", []entities.LineItem{{Description: "x", Quantity: 1, PriceCents: 4990}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID != "inv-1" || inv.Status != entities.InvoiceStatusPending || inv.TotalCents != 4990 {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})

	t.Run("refund posts to the refund path", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/invoices/inv-1/refund" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]any{"id": "inv-1", "status": "refunded"})
		})

		inv, err := client.RefundInvoice(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusRefunded {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})

	t.Run("cancel puts to the cancel path", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut || r.URL.Path != "/invoices/inv-1/cancel" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]any{"id": "inv-1", "status": "canceled"})
		})

		inv, err := client.CancelInvoice(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusCanceled {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})
}

func TestClient_Errors(t *testing.T) {
	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client, err := NewClient(Config{APIToken: "tok", BaseURL: srv.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = client.GetCustomer(context.Background(), "cus-1")
		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			t.Fatalf("expected TransportError, got %v", err)
		}
	})

	t.Run("non-2xx status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{"errors": map[string]any{"number": []string{"invalido"}}})
		})

		_, err := client.CreateToken(context.Background(), entities.CreditCard{Number: "1"})
		var respErr *ResponseError
		if !errors.As(err, &respErr) {
			t.Fatalf("expected ResponseError, got %v", err)
		}
		if respErr.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("unexpected status: %d", respErr.StatusCode)
		}
	})

	t.Run("errors field on a 200 response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"errors": "fatura nao encontrada"})
		})

		_, err := client.RefundInvoice(context.Background(), "inv-404")
		var respErr *ResponseError
		if !errors.As(err, &respErr) {
			t.Fatalf("expected ResponseError, got %v", err)
		}
	})

	t.Run("empty errors field is not an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"id": "cus-1", "errors": map[string]any{}})
		})

		if _, err := client.GetCustomer(context.Background(), "cus-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
