package middlewares

import (
	"github.com/rs/cors"
	"github.com/yeremiapane/food-delivery/config"
)

var defaultCORSMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}

// NewCORS builds the CORS handler that wraps the router. With nothing
// configured every origin, header and method is allowed; once any list is
// set, the unset ones fall back to "*".
func NewCORS(s config.Settings) *cors.Cors {
	origins, headers, methods := s.AllowedOrigins, s.AllowedHeaders, s.AllowedMethods
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	if len(headers) == 0 {
		headers = []string{"*"}
	}
	if len(methods) == 0 || (len(methods) == 1 && methods[0] == "*") {
		methods = defaultCORSMethods
	}

	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedHeaders:   headers,
		AllowedMethods:   methods,
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           s.CORSMaxAge,
	})
}
