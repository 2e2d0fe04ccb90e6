package middleware

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows browser calls from the given origins. Entries that
// are not absolute http(s) URLs are logged and skipped; it returns nil when
// no usable origin remains. Once enabled, a cross-origin request from any
// other origin is answered with a bare 403.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	allowed := []string{}
	for _, s := range origins {
		u, err := url.Parse(s)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			log.Printf("[warn] operation=cors ignoring origin %q: not an http(s) url", s)
			continue
		}
		allowed = append(allowed, (&url.URL{Scheme: u.Scheme, Host: u.Host}).String())
	}

	if len(allowed) == 0 {
		return nil
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowed,
		AllowMethods:     []string{http.MethodOptions, http.MethodHead, http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Content-Type", HeaderRequestID},
		ExposeHeaders:    []string{HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
