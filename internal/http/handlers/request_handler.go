// README: Handlers for traveler pooling requests.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"flanvo/internal/modules/request"
	"flanvo/internal/types"
)

// RequestService is the request module surface the handler uses.
type RequestService interface {
	Create(ctx context.Context, cmd request.CreateCommand) (types.ID, error)
	Latest(ctx context.Context, userID types.ID) (*request.Request, error)
}

type RequestHandler struct {
	requests RequestService
}

func NewRequestHandler(svc RequestService) *RequestHandler {
	return &RequestHandler{requests: svc}
}

type createRequestReq struct {
	FlightNumber string   `json:"flight_number"`
	FlightDate   string   `json:"flight_date"`
	ArrivalIata  string   `json:"arrival_iata"`
	OriginIata   *string  `json:"origin_iata"`
	DestAddress  string   `json:"dest_address"`
	DestLat      *float64 `json:"dest_lat"`
	DestLon      *float64 `json:"dest_lon"`
	Pax          int      `json:"pax"`
	Luggage      *string  `json:"luggage"`
}

func (h *RequestHandler) Create(c *gin.Context) {
	var req createRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	userID, email := currentUser(c)

	id, err := h.requests.Create(c.Request.Context(), request.CreateCommand{
		UserID:       userID,
		Email:        email,
		FlightNumber: req.FlightNumber,
		FlightDate:   req.FlightDate,
		ArrivalCode:  req.ArrivalIata,
		OriginCode:   req.OriginIata,
		DestAddress:  req.DestAddress,
		DestLat:      req.DestLat,
		DestLon:      req.DestLon,
		Pax:          req.Pax,
		Luggage:      req.Luggage,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"request_id": id})
}

func (h *RequestHandler) Latest(c *gin.Context) {
	userID, _ := currentUser(c)
	r, err := h.requests.Latest(c.Request.Context(), userID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, requestJSON(*r))
}

func requestJSON(r request.Request) gin.H {
	return gin.H{
		"request_id":   r.ID,
		"flight_id":    r.FlightID,
		"dest":         r.Dest,
		"dest_address": r.DestAddress,
		"pax":          r.Pax,
		"created_at":   r.CreatedAt,
	}
}
