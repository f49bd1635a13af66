// README: Thin geocoding and road-distance endpoints.
package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"flanvo/internal/config"
	"flanvo/internal/maps"
	"flanvo/internal/types"
)

type GeoHandler struct {
	geocoder maps.Geocoder
	router   maps.DistanceProvider
	tariff   config.PricingConfig
}

func NewGeoHandler(geocoder maps.Geocoder, router maps.DistanceProvider, tariff config.PricingConfig) *GeoHandler {
	return &GeoHandler{geocoder: geocoder, router: router, tariff: tariff}
}

func (h *GeoHandler) GeocodeAddress(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		writeError(c, http.StatusBadRequest, "missing q")
		return
	}
	loc, err := h.geocoder.GeocodeAddress(c.Request.Context(), q)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, locationJSON(loc))
}

func (h *GeoHandler) GeocodeAirport(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		code = c.Query("q")
	}
	if code == "" {
		writeError(c, http.StatusBadRequest, "missing code")
		return
	}
	loc, err := h.geocoder.GeocodeAirport(c.Request.Context(), code)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, locationJSON(loc))
}

// Distance returns the road distance between two coordinates plus a fare
// preview. Tariff query params override the configured defaults.
func (h *GeoHandler) Distance(c *gin.Context) {
	from, ok1 := pointParam(c, "fromLat", "fromLng")
	to, ok2 := pointParam(c, "toLat", "toLng")
	if !ok1 || !ok2 {
		writeError(c, http.StatusBadRequest, "missing or invalid coordinates")
		return
	}

	tariff := h.tariff
	tariff.BaseFareCents = int64Param(c, "base_fare_cents", tariff.BaseFareCents)
	tariff.RatePerKmCents = int64Param(c, "rate_per_km_cents", tariff.RatePerKmCents)
	tariff.MinFareCents = int64Param(c, "min_fare_cents", tariff.MinFareCents)
	if cur := c.Query("currency"); cur != "" {
		tariff.Currency = cur
	}

	est, err := h.router.RoadDistance(c.Request.Context(), from, to)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	total := tariff.BaseFareCents + int64(math.Round(float64(tariff.RatePerKmCents)*est.DistanceKm))
	if total < tariff.MinFareCents {
		total = tariff.MinFareCents
	}

	writeJSON(c, http.StatusOK, gin.H{
		"route": gin.H{
			"distance_km":      math.Round(est.DistanceKm*100) / 100,
			"duration_minutes": math.Round(est.DurationMin*10) / 10,
		},
		"pricing": gin.H{
			"base_fare_cents":   tariff.BaseFareCents,
			"rate_per_km_cents": tariff.RatePerKmCents,
			"min_fare_cents":    tariff.MinFareCents,
			"estimated_total":   types.Money{AmountCents: total, Currency: tariff.Currency},
		},
	})
}

func locationJSON(loc maps.Location) gin.H {
	return gin.H{"lat": loc.Point.Lat, "lon": loc.Point.Lon, "label": loc.Label}
}

func pointParam(c *gin.Context, latKey, lonKey string) (types.Point, bool) {
	lat, err1 := strconv.ParseFloat(c.Query(latKey), 64)
	lon, err2 := strconv.ParseFloat(c.Query(lonKey), 64)
	if err1 != nil || err2 != nil {
		return types.Point{}, false
	}
	return types.Point{Lat: lat, Lon: lon}, true
}

func int64Param(c *gin.Context, key string, def int64) int64 {
	if v := c.Query(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
