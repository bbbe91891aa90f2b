// Package http assembles the gin engine and the HTTP server for hsn-advisor.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/turtacn/hsn-advisor/internal/application/advisor"
	"github.com/turtacn/hsn-advisor/internal/config"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/metrics"
	"github.com/turtacn/hsn-advisor/internal/interfaces/http/handlers"
	"github.com/turtacn/hsn-advisor/internal/interfaces/http/middleware"
)

// RouterOptions carries optional router collaborators.  Zero values select a
// nop logger and no metrics endpoint.
type RouterOptions struct {
	Logger  logging.Logger
	Metrics *metrics.Metrics
	Version string
}

// NewRouter builds the gin engine with the full middleware chain and all API
// routes registered.
func NewRouter(svc *advisor.Service, cfg *config.Config, opts RouterOptions) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.RequestLogger(logger.Named("http")),
	)
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	handlers.NewHealthHandler(svc, opts.Version).RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	handlers.NewAdvisorHandler(svc).RegisterRoutes(v1)
	handlers.NewDatasetHandler(svc, cfg.Server.MaxUploadSize, logger.Named("dataset")).RegisterRoutes(v1)
	handlers.NewAdminHandler(svc).RegisterRoutes(v1)

	return r
}
