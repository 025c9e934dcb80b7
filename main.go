package main

import (
	"fmt"

	"littlelemon/configs"
	"littlelemon/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	log := configs.NewLogger(cfg.LogLevel)

	// DB
	db, err := configs.ConnectionDB(cfg.DBSource)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.WithError(err).Fatal("migrate database")
	}

	if err := configs.SeedGroups(db); err != nil {
		log.WithError(err).Fatal("seed groups failed")
	}
	if err := configs.SeedAdmin(db, cfg, log); err != nil {
		log.WithError(err).Fatal("seed admin failed")
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())

	app := routes.RegisterRoutes(r, db, cfg, log)
	go app.Hub.Run()

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
