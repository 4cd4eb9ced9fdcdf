package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	cartapp "github.com/d1m3lo/storefront/internal/cart/app"
	cartmem "github.com/d1m3lo/storefront/internal/cart/infra/memory"
	"github.com/d1m3lo/storefront/internal/cart/infra/notify"

	catalogapp "github.com/d1m3lo/storefront/internal/catalog/app"
	"github.com/d1m3lo/storefront/internal/catalog/infra/static"

	checkoutapp "github.com/d1m3lo/storefront/internal/checkout/app"
	checkoutadapter "github.com/d1m3lo/storefront/internal/checkout/infra/adapter"

	orderapp "github.com/d1m3lo/storefront/internal/order/app"
	ordermem "github.com/d1m3lo/storefront/internal/order/infra/memory"

	favapp "github.com/d1m3lo/storefront/internal/favorites/app"
	favmem "github.com/d1m3lo/storefront/internal/favorites/infra/memory"

	"github.com/d1m3lo/storefront/internal/httpapi"
	"github.com/d1m3lo/storefront/pkg/config"
	"github.com/d1m3lo/storefront/pkg/logger"
	"github.com/d1m3lo/storefront/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	catalogRepo, err := static.NewProductRepo(cfg.Currency)
	if err != nil {
		log.Error("catalog seed load failed", slog.Any("err", err))
		os.Exit(1)
	}
	catalogSvc := catalogapp.NewService(catalogRepo)

	// Cart
	cartSvc := cartapp.NewService(cartmem.NewCartRepo(), notify.NewSlogNotifier(log))

	// Order
	orderSvc := orderapp.NewService(ordermem.NewOrderRepo(), log)

	// Checkout (adapters)
	cartReader := checkoutadapter.NewCartServiceReader(cartSvc)
	catalogReader := checkoutadapter.NewCatalogServiceReader(catalogSvc)
	orderWriter := checkoutadapter.NewOrderServiceWriter(orderSvc, cfg.Currency, cfg.ShippingAmount)
	checkoutSvc := checkoutapp.NewService(cartReader, catalogReader, orderWriter, cfg.QuoteConcurrency)

	// Favorites
	favSvc := favapp.NewService(favmem.NewFavoriteRepo())

	app := httpapi.NewApp(log, catalogSvc, cartSvc, checkoutSvc, orderSvc, favSvc)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
