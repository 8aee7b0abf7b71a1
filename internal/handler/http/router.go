package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/henokg/lessonhub/internal/infrastructure/metrics"
	usecasecontract "github.com/henokg/lessonhub/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	userHandler    *UserHandler
	lessonHandler  *LessonHandler
	paymentHandler *PaymentHandler
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, lessonUsecase usecasecontract.ILessonUseCase, paymentUsecase usecasecontract.IPaymentUseCase) *Router {
	return &Router{
		userHandler:    NewUserHandler(userUsecase),
		lessonHandler:  NewLessonHandler(lessonUsecase),
		paymentHandler: NewPaymentHandler(paymentUsecase),
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(metrics.RequestCounter())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// liveness
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "lesson hub up and running")
	})

	// user routes
	router.POST("/users", r.userHandler.RegisterUser)
	router.GET("/users/:email/role", r.userHandler.GetUserRole)

	// lesson routes
	router.POST("/add-lesson", r.lessonHandler.CreateLesson)
	router.GET("/my-lessons/:email", r.lessonHandler.GetMyLessons)
	router.GET("/public-lessons", r.lessonHandler.GetPublicLessons)
	router.GET("/public-lessons/:id", r.lessonHandler.GetLesson)
	router.POST("/public-lessons/like/:id", r.lessonHandler.LikeLesson)
	router.POST("/public-lessons/favorite/:id", r.lessonHandler.ToggleFavorite)
	router.POST("/public-lessons/comment/:id", r.lessonHandler.AddComment)
	router.GET("/featured-lessons", r.lessonHandler.GetFeaturedLessons)
	router.GET("/top-contributors", r.lessonHandler.GetTopContributors)
	router.GET("/most-saved-lessons", r.lessonHandler.GetMostSavedLessons)

	// payment routes
	router.POST("/create-checkout-session", r.paymentHandler.CreateCheckoutSession)
	router.PATCH("/payment-success", r.paymentHandler.ConfirmPayment)
}
