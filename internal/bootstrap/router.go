package bootstrap

import (
	"github.com/gin-gonic/gin"

	httpapi "github.com/legal-assistant/legal-assistant-backend/internal/api/http"
	"github.com/legal-assistant/legal-assistant-backend/internal/api/http/middleware"
	lahttp "github.com/legal-assistant/legal-assistant-backend/internal/legal_analysis/http"
	"github.com/legal-assistant/legal-assistant-backend/internal/legal_analysis/pipeline"
	"github.com/legal-assistant/legal-assistant-backend/internal/legal_analysis/service"
	"github.com/legal-assistant/legal-assistant-backend/web"
)

type RouterDeps struct {
	Version        string
	Pipeline       pipeline.Pipeline
	AllowedOrigins []string
	RateLimit      float64
	RateBurst      int
	MaxBodyBytes   int64
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	// paths differing by a trailing slash are unmatched routes
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(middleware.RequestIDMiddleware())
	r.Use(gin.CustomRecovery(httpapi.Recovery))
	if cors := middleware.CORSMiddleware(dep.AllowedOrigins); cors != nil {
		r.Use(cors)
	}
	r.NoRoute(httpapi.NotFound)

	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.Static())
	httpapi.NewLandingHandler(dep.Version).RegisterRoutes(r)

	api := r.Group("/api")
	httpapi.NewHealthHandler(httpapi.DefaultHealthMessage).RegisterRoutes(api)

	analysisHandler := lahttp.New(service.NewInvoker(dep.Pipeline), dep.MaxBodyBytes)
	analysisHandler.Register(api, middleware.RateLimitMiddleware(dep.RateLimit, dep.RateBurst))

	return r
}
