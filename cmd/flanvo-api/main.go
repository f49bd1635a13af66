// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"flanvo/internal/config"
	httptransport "flanvo/internal/http"
	"flanvo/internal/infra"
	"flanvo/internal/maps"
	"flanvo/internal/modules/flight"
	"flanvo/internal/modules/group"
	"flanvo/internal/modules/matching"
	"flanvo/internal/modules/payment"
	"flanvo/internal/modules/pricing"
	"flanvo/internal/modules/request"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("db init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	geocoder, err := maps.NewGeocodeService(cfg.Maps.APIKey, maps.DefaultAirports)
	if err != nil {
		logger.Fatal("geocoder init", zap.Error(err))
	}
	router, err := maps.NewRouteService(cfg.Maps.APIKey)
	if err != nil {
		logger.Fatal("route service init", zap.Error(err))
	}

	flightStore := flight.NewStore(dbPool, redisClient)

	requestStore := request.NewStore(dbPool)
	requestSvc := request.NewService(requestStore, flightStore, geocoder)

	pricingStore := pricing.NewStore(dbPool)
	pricingSvc := pricing.NewService(pricingStore, cfg.Pricing)

	matchingStore := matching.NewStore(redisClient)
	matchingSvc := matching.NewService(requestStore, flightStore, geocoder, router, pricingSvc, matchingStore, cfg.Matching, logger)

	groupStore := group.NewStore(dbPool)
	groupSvc := group.NewService(groupStore)

	paymentSvc := payment.NewService(cfg.Stripe.SecretKey, cfg.Stripe.BaseURL, cfg.Pricing.Currency, groupSvc, logger)

	verifier := infra.NewJWTVerifier(cfg.Auth.JWTSecret)

	server := httptransport.NewServer(httptransport.ServerDeps{
		Requests: requestSvc,
		Matching: matchingSvc,
		Groups:   groupSvc,
		Payments: paymentSvc,
		Geocoder: geocoder,
		Router:   router,
		Tariff:   cfg.Pricing,
		Verifier: verifier,
		Logger:   logger,
	})

	httpServer := &http.Server{Addr: cfg.HTTP.Addr, Handler: server.Routes()}
	go func() {
		<-ctx.Done()
		_ = httpServer.Shutdown(context.Background())
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("serve", zap.Error(err))
	}
}
