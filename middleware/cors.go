package middleware

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}

	if origin := os.Getenv("ORIGIN_URL"); origin != "" {
		cfg.AllowOrigins = []string{origin}
	} else {
		cfg.AllowAllOrigins = true
	}

	return cors.New(cfg)
}
