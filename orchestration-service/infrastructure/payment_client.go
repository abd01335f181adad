package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
	"github.com/ticketera/ticket-platform/shared/models"
)

var _ domain.PaymentPort = (*PaymentClient)(nil)

// PaymentClient implements PaymentPort against the payment service
type PaymentClient struct {
	http *jsonClient
}

// NewPaymentClient creates a new PaymentClient
func NewPaymentClient(baseURL string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{http: newJSONClient("payment-service", baseURL, timeout)}
}

type authorizePaymentRequest struct {
	Amount     float64 `json:"monto"`
	CardNumber string  `json:"cardNumber"`
	CVV        string  `json:"cvv"`
	ExpiryDate string  `json:"expiryDate"`
	CardHolder string  `json:"cardHolder"`
}

type paymentResponse struct {
	PaymentID string  `json:"paymentId"`
	Status    string  `json:"status"`
	Amount    float64 `json:"monto"`
	Message   string  `json:"mensaje"`
}

// AuthorizePayment charges the buyer. A declined charge comes back as 402
// with a regular body and is reported as a REJECTED outcome.
func (c *PaymentClient) AuthorizePayment(ctx context.Context, auth domain.PaymentAuthorization) (*domain.PaymentOutcome, error) {
	req := request{
		method: http.MethodPost,
		path:   "/api/payments/authorize",
		body: authorizePaymentRequest{
			Amount:     auth.Amount.Float(),
			CardNumber: auth.PaymentMethod.CardNumber,
			CVV:        auth.PaymentMethod.CVV,
			ExpiryDate: auth.PaymentMethod.ExpiryDate,
			CardHolder: auth.PaymentMethod.CardHolder,
		},
		idempotencyKey: auth.IdempotencyKey,
	}

	resp, err := c.http.do(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.ok() && resp.statusCode != http.StatusPaymentRequired {
		return nil, c.http.statusError(req, resp)
	}

	var body paymentResponse
	if err := resp.decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode payment response")
	}

	outcome := &domain.PaymentOutcome{
		PaymentID: body.PaymentID,
		Status:    domain.PaymentStatus(body.Status),
		Amount:    auth.Amount,
		Reason:    body.Message,
	}
	if amount, err := models.NewMoneyFromFloat(body.Amount); err == nil && amount.IsPositive() {
		outcome.Amount = amount
	}

	switch {
	case resp.statusCode == http.StatusPaymentRequired:
		outcome.Status = domain.PaymentRejected
	case outcome.Status != domain.PaymentApproved && outcome.Status != domain.PaymentRejected:
		return nil, errors.Errorf("unknown payment status %q", body.Status)
	}

	if outcome.Status == domain.PaymentApproved && outcome.PaymentID == "" {
		return nil, errors.New("approved payment without payment id")
	}

	return outcome, nil
}
