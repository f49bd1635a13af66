// README: Payment service; creates and verifies Stripe checkout sessions.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"go.uber.org/zap"

	"flanvo/internal/modules/group"
	"flanvo/internal/types"
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrProvider        = errors.New("payment provider error")
)

// checkoutAPI is the slice of the Stripe client the service needs; tests
// substitute a stub so no network is touched.
type checkoutAPI interface {
	NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeCheckout struct {
	api *client.API
}

func (s stripeCheckout) NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return s.api.CheckoutSessions.New(params)
}

func (s stripeCheckout) GetSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return s.api.CheckoutSessions.Get(id, params)
}

// GroupLedger is what the service needs from the group module to record a
// confirmed payment.
type GroupLedger interface {
	MarkPaid(ctx context.Context, groupID, requestID types.ID, amountCents int64) error
	Roster(ctx context.Context, groupID types.ID) ([]group.RosterEntry, error)
}

type Service struct {
	checkout checkoutAPI
	groups   GroupLedger
	baseURL  string
	currency string
	log      *zap.Logger
}

// NewService constructs the payment service with an explicitly owned Stripe
// client handle (no package-level singleton).
func NewService(secretKey, baseURL, currency string, groups GroupLedger, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		checkout: stripeCheckout{api: client.New(secretKey, nil)},
		groups:   groups,
		baseURL:  baseURL,
		currency: currency,
		log:      log,
	}
}

// CreateSession opens a hosted checkout session for one member's share.
// A non-positive amount is rejected before any network call.
func (s *Service) CreateSession(ctx context.Context, groupID types.ID, amountCents int64, currency string) (string, error) {
	if amountCents <= 0 {
		return "", ErrInvalidAmount
	}
	if groupID == "" {
		return "", ErrInvalidAmount
	}
	if currency == "" {
		currency = s.currency
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(strings.ToLower(currency)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(fmt.Sprintf("Ride share - group %s", groupID)),
				},
				UnitAmount: stripe.Int64(amountCents),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(s.baseURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.baseURL + "/matches?canceled=1"),
	}
	params.Context = ctx
	params.AddMetadata("groupId", string(groupID))

	sess, err := s.checkout.NewSession(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return sess.ID, nil
}

// RetrieveSession fetches and normalizes a checkout session.
func (s *Service) RetrieveSession(ctx context.Context, sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, ErrSessionNotFound
	}
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := s.checkout.GetSession(sessionID, params)
	if err != nil {
		var sErr *stripe.Error
		if errors.As(err, &sErr) && sErr.Code == stripe.ErrorCodeResourceMissing {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return normalize(sess), nil
}

// ConfirmPayment verifies a session and, when it is paid, marks the member's
// share as paid and returns the group roster.
func (s *Service) ConfirmPayment(ctx context.Context, sessionID string, requestID types.ID) (*Confirmation, error) {
	sess, err := s.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	conf := &Confirmation{Session: sess, Paid: sess.PaymentStatus == string(stripe.CheckoutSessionPaymentStatusPaid)}
	if !conf.Paid || sess.GroupID == "" || requestID == "" {
		return conf, nil
	}

	if err := s.groups.MarkPaid(ctx, sess.GroupID, requestID, sess.AmountTotal); err != nil {
		// The payment itself succeeded; surface the roster anyway.
		s.log.Warn("recording paid share failed",
			zap.String("group_id", string(sess.GroupID)),
			zap.String("request_id", string(requestID)),
			zap.Error(err))
	}

	roster, err := s.groups.Roster(ctx, sess.GroupID)
	if err != nil {
		return conf, nil
	}
	for _, e := range roster {
		conf.Roster = append(conf.Roster, RosterView{
			RequestID:       e.RequestID,
			Email:           e.Email,
			PriceShareCents: e.PriceShareCents,
			PaidStatus:      e.PaidStatus,
		})
	}
	return conf, nil
}

func normalize(sess *stripe.CheckoutSession) Session {
	out := Session{
		ID:            sess.ID,
		AmountTotal:   sess.AmountTotal,
		Currency:      strings.ToUpper(string(sess.Currency)),
		PaymentStatus: string(sess.PaymentStatus),
	}
	if out.Currency == "" {
		out.Currency = "EUR"
	}
	if sess.Metadata != nil {
		out.GroupID = types.ID(sess.Metadata["groupId"])
	}
	if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		email := sess.CustomerDetails.Email
		out.PayerEmail = &email
	}
	out.HostedURL = sess.URL
	return out
}
