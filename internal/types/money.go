// README: Common money value object used across modules.
package types

// Money is an amount in the smallest currency unit (cents).
type Money struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}
