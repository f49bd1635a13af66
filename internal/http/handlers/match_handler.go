// README: Handler for same-flight match suggestions.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"flanvo/internal/modules/matching"
	"flanvo/internal/types"
)

// MatchService is the matching module surface the handler uses.
type MatchService interface {
	Suggest(ctx context.Context, userID types.ID) (*matching.Suggestion, error)
}

type MatchHandler struct {
	matching MatchService
}

func NewMatchHandler(svc MatchService) *MatchHandler {
	return &MatchHandler{matching: svc}
}

func (h *MatchHandler) Suggest(c *gin.Context) {
	userID, _ := currentUser(c)
	sug, err := h.matching.Suggest(c.Request.Context(), userID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	peers := make([]gin.H, len(sug.Peers))
	for i, p := range sug.Peers {
		peers[i] = memberJSON(p, sug.Fare.PerMemberCents[p.Request.ID])
	}
	writeJSON(c, http.StatusOK, gin.H{
		"mine":         memberJSON(sug.Mine, sug.Fare.PerMemberCents[sug.Mine.Request.ID]),
		"peers":        peers,
		"airport_code": sug.AirportCode,
		"fare": gin.H{
			"total_cents":      sug.Fare.TotalCents,
			"per_member_cents": sug.Fare.PerMemberCents,
			"currency":         sug.Fare.Currency,
		},
	})
}

func memberJSON(m matching.MemberEstimate, shareCents int64) gin.H {
	return gin.H{
		"request_id":   m.Request.ID,
		"dest":         m.Request.Dest,
		"dest_address": m.Request.DestAddress,
		"pax":          m.Request.Pax,
		"road_km":      m.RoadKm,
		"eta_min":      m.EtaMin,
		"share_cents":  shareCents,
	}
}
