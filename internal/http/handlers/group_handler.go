// README: Handlers for group formation and rosters.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"flanvo/internal/modules/group"
	"flanvo/internal/modules/pricing"
	"flanvo/internal/types"
)

// GroupService is the group module surface the handler uses.
type GroupService interface {
	Form(ctx context.Context, cmd group.FormCommand) (types.ID, error)
	Roster(ctx context.Context, groupID types.ID) ([]group.RosterEntry, error)
}

type GroupHandler struct {
	groups GroupService
}

func NewGroupHandler(svc GroupService) *GroupHandler {
	return &GroupHandler{groups: svc}
}

type formGroupReq struct {
	FlightID           string             `json:"flight_id"`
	RequesterRequestID string             `json:"requester_request_id"`
	PeerRequestIDs     []string           `json:"peer_request_ids"`
	DistancesKm        map[string]float64 `json:"distances_km"`
	Fare               struct {
		TotalCents     int64            `json:"total_cents"`
		PerMemberCents map[string]int64 `json:"per_member_cents"`
		Currency       string           `json:"currency"`
	} `json:"fare"`
}

func (h *GroupHandler) Form(c *gin.Context) {
	var req formGroupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.FlightID == "" || req.RequesterRequestID == "" {
		writeError(c, http.StatusBadRequest, "missing flight_id or requester_request_id")
		return
	}

	members := make([]group.MemberInput, 0, len(req.PeerRequestIDs)+1)
	for _, id := range append([]string{req.RequesterRequestID}, req.PeerRequestIDs...) {
		m := group.MemberInput{RequestID: types.ID(id)}
		if km, ok := req.DistancesKm[id]; ok {
			v := km
			m.DistanceKm = &v
		}
		members = append(members, m)
	}

	perMember := make(map[types.ID]int64, len(req.Fare.PerMemberCents))
	for id, cents := range req.Fare.PerMemberCents {
		perMember[types.ID(id)] = cents
	}

	groupID, err := h.groups.Form(c.Request.Context(), group.FormCommand{
		FlightID: types.ID(req.FlightID),
		Members:  members,
		Fare: pricing.Result{
			TotalCents:     req.Fare.TotalCents,
			PerMemberCents: perMember,
			Currency:       req.Fare.Currency,
		},
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"group_id": groupID, "status": group.StatusForming})
}

func (h *GroupHandler) Roster(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing group id")
		return
	}
	roster, err := h.groups.Roster(c.Request.Context(), types.ID(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]gin.H, len(roster))
	for i, e := range roster {
		out[i] = gin.H{
			"request_id":        e.RequestID,
			"email":             e.Email,
			"distance_km":       e.DistanceKm,
			"price_share_cents": e.PriceShareCents,
			"status":            e.PaidStatus,
		}
	}
	writeJSON(c, http.StatusOK, gin.H{"members": out})
}
