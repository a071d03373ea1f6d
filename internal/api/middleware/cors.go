package middleware

import (
	"github.com/go-chi/cors"
)

// NewCORS creates a new CORS middleware with the given allowed origins
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
			RequestIDHeader,
		},
		ExposedHeaders:   []string{"Content-Type", RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
