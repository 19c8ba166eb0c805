package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/data4life/data4life-api/logmodule"
	"github.com/data4life/data4life-api/schema"
	"github.com/data4life/data4life-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// BackgroundEnqueuer submits tasks to the background job pool. It is
// satisfied by a machinery server.
type BackgroundEnqueuer interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// NotificationDispatcher pushes a notification to a single citizen and
// records it. It is satisfied by a hotspot dispatcher.
type NotificationDispatcher interface {
	NotifyOne(accountNumber string, notificationType schema.NotificationType, title, body string) error
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.Data4LifeCore
	mongoStore store.MongoStore

	// Notification dispatching for the admin endpoints. Citizen-facing
	// alerts go through the background job pool instead.
	dispatcher NotificationDispatcher

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	backgroundEnqueuer BackgroundEnqueuer
}

// NewServer new instance of server
func NewServer(
	core store.Data4LifeCore,
	mongoStore store.MongoStore,
	dispatcher NotificationDispatcher,
	backgroundEnqueuer BackgroundEnqueuer,
	jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:              core,
		mongoStore:         mongoStore,
		dispatcher:         dispatcher,
		backgroundEnqueuer: backgroundEnqueuer,
		jwtPrivateKey:      jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/auth", s.requestJWT)
	apiRoute.POST("/accounts", s.accountRegister)

	// api route other than `/auth` and account registration will apply
	// the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeCitizenMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.POST("/me/devices", s.registerDevice)
	}

	locationRoute := apiRoute.Group("/locations")
	{
		locationRoute.POST("/sync", s.locationSync)
	}

	notificationRoute := apiRoute.Group("/notifications")
	{
		notificationRoute.GET("", s.listNotifications)
		notificationRoute.PATCH("/:notificationID", s.updateNotificationStatus)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/notifications/citizen", s.sendNotificationToCitizen)
		secretRoute.POST("/notifications/all", s.sendNotificationToAllCitizens)
		secretRoute.POST("/patient-locations", s.createPatientLocations)
		secretRoute.POST("/diseases", s.createDisease)
		secretRoute.POST("/diseases/:diseaseID/infection-statuses", s.createInfectionStatus)
	}

	dashboardRoute := r.Group("/dashboard")
	dashboardRoute.Use(logmodule.Ginrus("Dashboard"))
	dashboardRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Api-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	dashboardRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.dashboard")))
	{
		dashboardRoute.GET("/map-data", s.mapData)
		dashboardRoute.GET("/stats", s.stats)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping both the citizen registry and the location store
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
