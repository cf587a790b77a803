// Package gateway wraps the Razorpay orders API and the payment signature
// verification used to confirm deposits.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vkarpale/wagerhall/pkg/clients"
)

var ErrUnavailable = errors.New("payment gateway unavailable")

// Order is the opaque handle returned by the provider. Amount is converted
// back from the provider's minor currency units.
type Order struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	client    clients.HTTPClientI
}

func New(baseURL, keyID, keySecret string, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		client:    client,
	}
}

var minorUnits = decimal.NewFromInt(100)

// CreateOrder registers a payment order with the provider. The provider deals
// in minor currency units (paise), our amounts are major units.
func (c *Client) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (*Order, error) {
	body, err := json.Marshal(orderRequest{
		Amount:   amount.Mul(minorUnits).IntPart(),
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("gateway request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Error("gateway returned non-200", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var decoded orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	return &Order{
		ID:       decoded.ID,
		Amount:   decimal.NewFromInt(decoded.Amount).Div(minorUnits),
		Currency: decoded.Currency,
	}, nil
}

// VerifySignature checks the provider's confirmation signature:
// hex(HMAC-SHA256(secret, orderID + "|" + paymentID)).
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
