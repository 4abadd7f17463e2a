package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pgnest/internal/localstore"
	"pgnest/internal/preview"
	"pgnest/internal/seed"
	"pgnest/internal/server"
	"pgnest/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	local, err := localstore.NewOSStore(config.DataDir, logger)
	if err != nil {
		return err
	}

	previews := preview.NewRegistry()
	defer previews.Close()

	repos := server.Repositories{
		Listings:      store.NewListingRepository(seed.Listings()),
		Wishlist:      store.NewWishlistRepository(seed.WishlistEntries(), seed.WishlistFolders()),
		Documents:     store.NewDocumentRepository(local, seed.Documents(), seed.Agreement(), seed.MoveInChecklist()),
		Bookings:      store.NewBookingRepository(seed.Bookings()),
		Payments:      store.NewPaymentRepository(seed.PaymentHistory(), seed.PendingDues(), seed.PaymentStats()),
		Complaints:    store.NewComplaintRepository(seed.ActiveComplaints(), seed.ResolvedComplaints(), seed.ComplaintCategories(), seed.MaintenanceSchedule()),
		Reviews:       store.NewReviewRepository(seed.Reviews()),
		Notifications: store.NewNotificationRepository(seed.Notifications(), seed.NotificationSettings()),
		Profile:       store.NewProfileRepository(local, previews, seed.Profile(), seed.Verification()),
	}

	srv, err := server.New(config, logger, repos, previews)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
