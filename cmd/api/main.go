package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/junsalon/salon-api/internal/config"
	dbpkg "github.com/junsalon/salon-api/internal/db"
	"github.com/junsalon/salon-api/internal/middleware"
	"github.com/junsalon/salon-api/internal/routes"
	"github.com/junsalon/salon-api/internal/slots"
)

func main() {

	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	table, err := slots.Load(cfg.SlotsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load slot configuration")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, table, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
