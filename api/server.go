package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/solveme-app/solveme-api/background"
	"github.com/solveme-app/solveme-api/external/classifier"
	"github.com/solveme-app/solveme-api/external/geoinfo"
	"github.com/solveme-app/solveme-api/logmodule"
	"github.com/solveme-app/solveme-api/match"
	"github.com/solveme-app/solveme-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.MongoStore

	// match coordinator over the stores
	coordinator *match.Coordinator

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	classifier classifier.Classifier
	geoInfo    geoinfo.GeoInfo

	// job pool enqueuer
	background *machinery.Server
	stats      match.StatsRecorder
}

// NewServer new instance of server
func NewServer(
	mongoClient *mongo.Client,
	backgroundServer *machinery.Server,
	jwtKey *rsa.PrivateKey,
	geoInfo geoinfo.GeoInfo) *Server {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	enqueuer := background.NewEnqueuer(backgroundServer)

	config := match.DefaultConfig()
	if r := viper.GetFloat64("match.assign_radius_meters"); r > 0 {
		config.AssignRadiusMeters = r
	}
	if r := viper.GetFloat64("match.accept_radius_meters"); r > 0 {
		config.AcceptRadiusMeters = r
	}

	return &Server{
		mongoStore:    mongoStore,
		coordinator:   match.NewCoordinator(mongoStore, mongoStore, mongoStore, enqueuer, enqueuer, enqueuer, config),
		jwtPrivateKey: jwtKey,
		classifier:    classifier.New(viper.GetString("classifier.endpoint")),
		geoInfo:       geoInfo,
		background:    backgroundServer,
		stats:         enqueuer,
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
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Geo-Position"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.enterApp)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.updateGeoPositionMiddleware)

	bubbleRoute := apiRoute.Group("/bubbles")
	{
		bubbleRoute.POST("", s.createBubble)
		bubbleRoute.GET("", s.listBubbles)
		bubbleRoute.GET("/nearby", s.nearbyBubbles)
		bubbleRoute.GET("/solvers/active", s.activeSolvers)
	}

	matchRoute := apiRoute.Group("/match")
	{
		matchRoute.POST("/find-solver", s.findSolver)
		matchRoute.POST("/solver-accept", s.solverAccept)
		matchRoute.GET("/status/:bubbleID", s.matchStatus)
	}

	solverRoute := apiRoute.Group("/solvers")
	{
		solverRoute.POST("/wait", s.toggleWait)
		solverRoute.POST("/ready", s.setReady)
		solverRoute.POST("/heartbeat", s.heartbeat)
	}

	profileRoute := apiRoute.Group("/profile")
	{
		profileRoute.GET("/me", s.profileDetail)
	}

	questRoute := apiRoute.Group("/quests")
	{
		questRoute.GET("/today", s.todayQuests)
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
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "SolveMe 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
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
