package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// CORS allows credentialed GET requests from a single origin.
func CORS(origin string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// SecurityHeaders sets the conservative response headers browsers honour for
// JSON APIs. HSTS is only sent over TLS or behind a proxy reporting https.
func SecurityHeaders() gin.HandlerFunc {
	return secure.New(secure.Config{
		STSSeconds:              15552000,
		STSIncludeSubdomains:    true,
		CustomFrameOptionsValue: "SAMEORIGIN",
		ContentTypeNosniff:      true,
		IENoOpen:                true,
		ReferrerPolicy:          "no-referrer",
		SSLProxyHeaders:         map[string]string{"X-Forwarded-Proto": "https"},
	})
}
