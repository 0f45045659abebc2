// services/checkout_service.go
package services

import (
	"errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"

	"menucraft-backend/models"
)

// ErrInvalidPlan is returned for an unknown subscription plan key.
var ErrInvalidPlan = errors.New("invalid plan")

type Plan struct {
	Amount   int64  // cents
	Name     string
	Interval string // "month" or "year"
}

var plans = map[string]Plan{
	"starter_monthly": {Amount: 900, Name: "MenuCraft Starter — Monthly", Interval: "month"},
	"starter_yearly":  {Amount: 7900, Name: "MenuCraft Starter — Yearly", Interval: "year"},
	"pro_monthly":     {Amount: 2900, Name: "MenuCraft Pro — Monthly", Interval: "month"},
	"pro_yearly":      {Amount: 24900, Name: "MenuCraft Pro — Yearly", Interval: "year"},
}

// CheckoutService creates hosted Stripe subscription checkout sessions.
// One bounded outbound call, no retries; the caller redirects to the URL.
type CheckoutService struct {
	BaseURL string
}

func NewCheckoutService(secretKey, baseURL string) *CheckoutService {
	stripe.Key = secretKey
	return &CheckoutService{BaseURL: baseURL}
}

func (s *CheckoutService) CreateSession(user *models.User, planKey string) (string, error) {
	plan, ok := plans[planKey]
	if !ok {
		return "", ErrInvalidPlan
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail:      stripe.String(user.Email),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(plan.Name),
					},
					UnitAmount: stripe.Int64(plan.Amount),
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String(plan.Interval),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.BaseURL + "/dashboard?upgraded=true"),
		CancelURL:  stripe.String(s.BaseURL + "/dashboard?cancelled=true"),
	}

	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}
