package routes

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/infra/backend"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/barber-booking/internal/usecase/auth"
	ucCart "github.com/BruksfildServices01/barber-booking/internal/usecase/cart"
	ucCheckout "github.com/BruksfildServices01/barber-booking/internal/usecase/checkout"
	ucFavorite "github.com/BruksfildServices01/barber-booking/internal/usecase/favorite"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/messages"
	ucNotification "github.com/BruksfildServices01/barber-booking/internal/usecase/notification"
	ucProfile "github.com/BruksfildServices01/barber-booking/internal/usecase/profile"
	ucReview "github.com/BruksfildServices01/barber-booking/internal/usecase/review"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// Options carries the knobs tests need to make timing deterministic.
type Options struct {
	Clock    timezone.Clock
	PickerRN func(n int) int
	Messages messages.Options
}

// App holds the long-lived workers that must be stopped on shutdown.
type App struct {
	dispatcher *audit.Dispatcher
	checkout   *ucCheckout.Service
	hub        *messages.Hub
}

func (a *App) Shutdown(ctx context.Context) error {
	a.checkout.Shutdown()
	a.hub.Close()
	return a.dispatcher.Close(ctx)
}

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	b *backend.Backend,
	m *metrics.Metrics,
	log *zap.Logger,
	opts Options,
) (*App, error) {

	if b == nil || m == nil {
		return nil, errors.New("routes: backend and metrics are required")
	}
	validators.Register()
	now := opts.Clock
	if now == nil {
		now = timezone.NewClock(cfg.Timezone)
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		middleware.CORSMiddleware(),
		middleware.NewRateLimiter(cfg.RateLimitPerMin, log).Middleware(),
		m.Middleware(),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentSlotRepository(b.Slots)
	favoriteRepo := infraRepo.NewFavoriteSlotRepository(b.Slots)
	profileRepo := infraRepo.NewProfileSlotRepository(b.Slots)

	auditDispatcher := audit.NewDispatcher(audit.New(b.Audit), log)

	mediaService := media.NewService(media.NewProcessor(), b.Uploader)
	shopCatalog := catalog.New(cfg.CatalogLatency)
	picker := schedule.NewPicker(now, opts.PickerRN)
	carts := ucCart.NewService()

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher, now)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher, now)
	rebookAppointmentUC := ucAppointment.NewRebookAppointment(appointmentRepo, auditDispatcher)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(appointmentRepo, auditDispatcher, now)
	toggleReminderUC := ucAppointment.NewToggleReminder(appointmentRepo)
	editDraftUC := ucAppointment.NewGetEditDraft(appointmentRepo, carts)

	// ======================================================
	// USE CASES: EVERYTHING ELSE
	// ======================================================
	profileService := ucProfile.NewService(profileRepo, mediaService, auditDispatcher)
	authService := ucAuth.NewService(b.Accounts, profileService, cfg.JWTSecret, now)
	favoriteService := ucFavorite.NewService(favoriteRepo, auditDispatcher, now)
	reviewService := ucReview.NewService(b.Reviews, profileRepo, auditDispatcher, now)
	notificationService := ucNotification.NewService(b.Audit)

	checkoutService := ucCheckout.NewService(
		carts,
		picker,
		createAppointmentUC,
		updateAppointmentUC,
		ucCheckout.Config{
			QRSeconds:      cfg.QRExpirySeconds,
			SuccessSeconds: cfg.SuccessRedirectSeconds,
			Tick:           cfg.CountdownTick,
			Retention:      cfg.SessionRetention,
		},
		now,
		log,
		m,
	)

	msgOpts := opts.Messages
	if msgOpts.ReplyChance == 0 && msgOpts.MaxDelay == 0 {
		msgOpts = messages.DefaultOptions()
	}
	hub := messages.NewHub(now, msgOpts, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(shopCatalog)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	profileHandler := handlers.NewProfileHandler(profileService)
	mediaHandler := handlers.NewMediaHandler(mediaService, b.Objects)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	cartHandler := handlers.NewCartHandler(carts)
	scheduleHandler := handlers.NewScheduleHandler(picker)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	messageHandler := handlers.NewMessageHandler(hub, log)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		cancelAppointmentUC,
		rebookAppointmentUC,
		completeAppointmentUC,
		toggleReminderUC,
		editDraftUC,
	)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET(backend.MediaPath+"/*key", mediaHandler.Serve)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CATALOG (public)
		// ------------------------------
		api.GET("/locations", catalogHandler.Locations)
		api.GET("/shops", catalogHandler.Shops)
		api.GET("/shops/:id", catalogHandler.Shop)
		api.GET("/shops/:id/services", catalogHandler.Services)
		api.GET("/shops/:id/reviews", reviewHandler.List)
		api.GET("/barbers", catalogHandler.Barbers)
		api.GET("/discounts", catalogHandler.Discounts)
		api.GET("/help", catalogHandler.Help)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/shops/:id/reviews", reviewHandler.Create)
			secured.POST("/me/media", mediaHandler.Upload)

			secured.GET("/me/profile", profileHandler.Get)
			secured.PATCH("/me/profile", profileHandler.Update)
			secured.POST("/me/avatar", profileHandler.Avatar)

			secured.GET("/me/notifications", notificationHandler.List)

			secured.GET("/me/favorites", favoriteHandler.List)
			secured.GET("/me/favorites/:shopId", favoriteHandler.Status)
			secured.POST("/me/favorites/:shopId", favoriteHandler.Toggle)
			secured.DELETE("/me/favorites/:shopId", favoriteHandler.Remove)

			secured.GET("/me/cart", cartHandler.Get)
			secured.DELETE("/me/cart", cartHandler.Clear)
			secured.POST("/me/cart/items", cartHandler.AddItem)
			secured.PATCH("/me/cart/items/:name", cartHandler.SetQuantity)
			secured.DELETE("/me/cart/items/:name", cartHandler.RemoveItem)

			secured.GET("/me/schedule", scheduleHandler.Get)

			// ------------------------------
			// CHECKOUT
			// ------------------------------
			secured.POST("/me/checkout/quote", checkoutHandler.Quote)
			secured.POST("/me/checkout", checkoutHandler.Create)
			secured.GET("/me/checkout/:id", checkoutHandler.Get)
			secured.POST("/me/checkout/:id/confirm", checkoutHandler.Confirm)
			secured.POST("/me/checkout/:id/cancel", checkoutHandler.Cancel)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/rebook", appointmentHandler.Rebook)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/reminder", appointmentHandler.Reminder)
			secured.GET("/me/appointments/:id/edit", appointmentHandler.EditDraft)

			// ------------------------------
			// MESSAGES
			// ------------------------------
			secured.GET("/me/messages", messageHandler.List)
			secured.GET("/me/messages/ws", messageHandler.Stream)
			secured.GET("/me/messages/:id", messageHandler.Open)
			secured.POST("/me/messages/:id", messageHandler.Send)
		}
	}

	return &App{
		dispatcher: auditDispatcher,
		checkout:   checkoutService,
		hub:        hub,
	}, nil
}
