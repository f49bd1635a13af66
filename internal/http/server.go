// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"flanvo/internal/config"
	"flanvo/internal/http/handlers"
	"flanvo/internal/http/middleware"
	"flanvo/internal/infra"
	"flanvo/internal/maps"
)

type ServerDeps struct {
	Requests handlers.RequestService
	Matching handlers.MatchService
	Groups   handlers.GroupService
	Payments handlers.PaymentService
	Geocoder maps.Geocoder
	Router   maps.DistanceProvider
	Tariff   config.PricingConfig
	Verifier infra.TokenVerifier
	Logger   *zap.Logger
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(s.deps.Logger))
	r.Use(middleware.Logging(s.deps.Logger))

	requestHandler := handlers.NewRequestHandler(s.deps.Requests)
	matchHandler := handlers.NewMatchHandler(s.deps.Matching)
	groupHandler := handlers.NewGroupHandler(s.deps.Groups)
	paymentHandler := handlers.NewPaymentHandler(s.deps.Payments)
	geoHandler := handlers.NewGeoHandler(s.deps.Geocoder, s.deps.Router, s.deps.Tariff)

	authed := r.Group("/api", middleware.Auth(s.deps.Verifier))
	authed.POST("/requests", requestHandler.Create)
	authed.GET("/requests/latest", requestHandler.Latest)
	authed.GET("/matches", matchHandler.Suggest)
	authed.POST("/groups", groupHandler.Form)
	authed.GET("/groups/:id/members", groupHandler.Roster)
	authed.POST("/checkout", paymentHandler.Checkout)

	// Session verification is reached from the payment redirect; geocoding
	// and distance previews are public lookups.
	r.GET("/api/checkout/session", paymentHandler.Session)
	r.GET("/api/distance", geoHandler.Distance)
	r.GET("/api/geocode-address", geoHandler.GeocodeAddress)
	r.GET("/api/geocode-airport", geoHandler.GeocodeAirport)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
