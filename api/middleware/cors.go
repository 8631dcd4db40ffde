package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",         // local dev
	"https://watch.streamhaus.tv",   // player frontend
	"https://admin.streamhaus.tv",   // admin console
	"https://streamhaus.vercel.app", // preview deployments
}

// CORS returns middleware that applies the API's allowed origin policy.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   defaultCORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-SH-Token", "X-Requested-With"},
		ExposedHeaders:   []string{"X-SH-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
