// README: Hosted-checkout session types.
package payment

import "flanvo/internal/types"

// Session is the normalized view of a hosted checkout session.
type Session struct {
	ID            string
	AmountTotal   int64
	Currency      string
	PaymentStatus string
	GroupID       types.ID
	PayerEmail    *string
	HostedURL     string
}

// Confirmation is the post-payment view: the verified session and, when the
// payment is confirmed and recorded, the group roster.
type Confirmation struct {
	Session Session
	Paid    bool
	Roster  []RosterView
}

// RosterView is one roster line for display.
type RosterView struct {
	RequestID       types.ID
	Email           *string
	PriceShareCents *int64
	PaidStatus      *string
}
