package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flamesdigital/flames-api/handlers"
	"github.com/flamesdigital/flames-api/internal/config"
	contentsvc "github.com/flamesdigital/flames-api/internal/content/service"
	"github.com/flamesdigital/flames-api/internal/database"
	"github.com/flamesdigital/flames-api/internal/submissions"
	"github.com/flamesdigital/flames-api/pkg/logger"
	"github.com/flamesdigital/flames-api/pkg/metrics"
)

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: database=%v name=%s", cfg.Database.URL != "", cfg.Database.Name)

	ctx := context.Background()

	// Connect to MongoDB when configured. A missing DATABASE_URL or a failed
	// connection is not fatal: the API keeps serving the default catalog and
	// accepts submissions with the demo identifier. The absent state is held
	// for the process lifetime, no automatic reconnects.
	store := database.None()
	if cfg.Database.URL != "" {
		st, errConn := database.Connect(ctx, cfg.Database.URL, cfg.Database.Name, cfg.Database.Timeout)
		if errConn != nil {
			logger.Warnf("cannot connect to MongoDB, running in demo mode: %v", errConn)
		} else {
			store = st
			defer func() { _ = store.Close(ctx) }()
			logger.Infof("connected to MongoDB database %s", store.Name())
		}
	} else {
		logger.Warnf("DATABASE_URL not set, running in demo mode")
	}

	// one-time best-effort seeding of empty content collections
	contentsvc.EnsureDefaults(ctx, store)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for the public site: set common headers and
	// respond to OPTIONS.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	handlers.RegisterContentRoutes(r, contentsvc.NewService(store))
	handlers.RegisterSubmissionRoutes(r, submissions.NewService(store))
	handlers.RegisterSchemaRoutes(r)
	handlers.RegisterDiagnostics(r, cfg, store)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("Starting content API on %s (store available=%v)", addr, store.Available())
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
