package app

import (
	"net/http"

	"doctorsportal/internal/middleware"
	"doctorsportal/internal/modules/access"
	"doctorsportal/internal/modules/availability"
	"doctorsportal/internal/modules/booking"
	"doctorsportal/internal/modules/catalog"
	"doctorsportal/internal/modules/payment"
	"doctorsportal/internal/modules/user"
	"doctorsportal/internal/pkg/jwt"
	"doctorsportal/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Deps are the long-lived collaborators built once at startup.
type Deps struct {
	DB       *gorm.DB
	Tokens   *jwt.Service
	Intents  payment.IntentCreator
	Payments payment.Options
	Log      zerolog.Logger
}

// NewRouter assembles every module on a single gin engine.
func NewRouter(d Deps) *gin.Engine {
	userRepo := repository.NewUserRepository(d.DB)
	offeringRepo := repository.NewOfferingRepository(d.DB)
	bookingRepo := repository.NewBookingRepository(d.DB)
	paymentRepo := repository.NewPaymentRepository(d.DB)

	policy := access.NewPolicy(userRepo)
	auth := middleware.JWTAuth(d.Tokens)
	admin := middleware.RequireAdmin(policy, d.Log)

	accessHandler := access.NewHandler(policy, d.Log)
	availabilityHandler := availability.NewHandler(availability.NewService(offeringRepo, bookingRepo), d.Log)
	catalogHandler := catalog.NewHandler(catalog.NewService(offeringRepo), d.Log)
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, offeringRepo), d.Log)
	paymentHandler := payment.NewHandler(
		payment.NewService(paymentRepo, bookingRepo, d.Intents, d.Log, d.Payments),
		d.Log,
	)
	userHandler := user.NewHandler(user.NewService(userRepo, d.Tokens), d.Log)

	r := gin.New()
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.Recovery(d.Log))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "doctors portal server is running")
	})

	root := r.Group("/")
	{
		accessHandler.RegisterRoutes(root)
		availabilityHandler.RegisterRoutes(root)
		catalogHandler.RegisterRoutes(root, auth, admin)
		bookingHandler.RegisterRoutes(root, auth)
		paymentHandler.RegisterRoutes(root)
		userHandler.RegisterRoutes(root, auth, admin)
	}

	return r
}
