package handlers

import (
	"github.com/SscSPs/storefront/cmd/docs"
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront/internal/core/ports/services"
	"github.com/SscSPs/storefront/internal/geo"
	"github.com/SscSPs/storefront/internal/middleware"
	"github.com/SscSPs/storefront/internal/platform/config"
	"github.com/SscSPs/storefront/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type routeOptions struct {
	directory *geo.Directory
	health    []portsrepo.HealthChecker
	posthog   *utils.PosthogClientWrapper
}

// RouteOption is a functional option for RegisterRoutes
type RouteOption func(*routeOptions)

// WithGeoDirectory serves reference data from d instead of the bundled dataset.
func WithGeoDirectory(d *geo.Directory) RouteOption {
	return func(o *routeOptions) {
		o.directory = d
	}
}

// WithHealthChecker adds a dependency probed by /health.
func WithHealthChecker(hc portsrepo.HealthChecker) RouteOption {
	return func(o *routeOptions) {
		if hc != nil {
			o.health = append(o.health, hc)
		}
	}
}

// WithPosthog tracks authenticated requests.
func WithPosthog(client *utils.PosthogClientWrapper) RouteOption {
	return func(o *routeOptions) {
		o.posthog = client
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	options ...RouteOption,
) {
	opts := routeOptions{directory: geo.Default()}
	for _, option := range options {
		option(&opts)
	}

	r.GET("/health", newHealthHandler(opts.health).health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Reference data is public; address forms render before login.
	public := r.Group("/api/v1")
	registerGeoRoutes(public, opts.directory)

	setupAPIV1Routes(r, cfg, services, opts)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 routes
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts routeOptions,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(opts.posthog))

	registerReviewRoutes(v1, services.Review)
	registerVariantRoutes(v1, services.Variant)
	registerSubscriptionRoutes(v1, services.Subscription, opts.posthog)
	registerActivityRoutes(v1, services.Activity)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
