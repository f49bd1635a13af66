// README: Handlers for checkout session creation and verification.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"flanvo/internal/modules/payment"
	"flanvo/internal/types"
)

// PaymentService is the payment module surface the handlers use.
type PaymentService interface {
	CreateSession(ctx context.Context, groupID types.ID, amountCents int64, currency string) (string, error)
	ConfirmPayment(ctx context.Context, sessionID string, requestID types.ID) (*payment.Confirmation, error)
}

type PaymentHandler struct {
	payments PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: svc}
}

type checkoutReq struct {
	GroupID     string `json:"group_id"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.GroupID == "" {
		writeError(c, http.StatusBadRequest, "missing group_id")
		return
	}
	sessionID, err := h.payments.CreateSession(c.Request.Context(), types.ID(req.GroupID), req.AmountCents, req.Currency)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"session_id": sessionID})
}

// Session verifies a completed checkout and records the caller's paid share.
// request_id is optional; without it the session is verified but nothing is
// recorded.
func (h *PaymentHandler) Session(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		writeError(c, http.StatusBadRequest, "missing session_id")
		return
	}
	requestID := types.ID(c.Query("request_id"))

	conf, err := h.payments.ConfirmPayment(c.Request.Context(), sessionID, requestID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	members := make([]gin.H, len(conf.Roster))
	for i, m := range conf.Roster {
		members[i] = gin.H{
			"request_id":        m.RequestID,
			"email":             m.Email,
			"price_share_cents": m.PriceShareCents,
			"status":            m.PaidStatus,
		}
	}
	writeJSON(c, http.StatusOK, gin.H{
		"session_id":         conf.Session.ID,
		"amount_total_cents": conf.Session.AmountTotal,
		"currency":           conf.Session.Currency,
		"payment_status":     conf.Session.PaymentStatus,
		"group_id":           conf.Session.GroupID,
		"payer_email":        conf.Session.PayerEmail,
		"paid":               conf.Paid,
		"members":            members,
	})
}
