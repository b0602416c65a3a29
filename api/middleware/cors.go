package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/rentalke/rentalke-backend/pkg/config"
)

var fallbackCORSOrigins = []string{
	"http://localhost:3000",           // local dev
	"https://rentalke.vercel.app",     // Vercel domain
	"https://www.rentalke.vercel.app", // Vercel alias
}

// CORS returns middleware that applies the API's allowed origin policy.
func CORS(site config.SiteConfig) func(http.Handler) http.Handler {
	origins := site.Origins()
	if len(origins) == 0 {
		origins = fallbackCORSOrigins
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
