package main

import (
	"github.com/sirupsen/logrus"

	"github.com/pageza/homechef/backend/config"
	"github.com/pageza/homechef/backend/internal/database"
	"github.com/pageza/homechef/backend/internal/logging"
)

// migrate creates or updates the relational schema for STORE_DRIVER=sqlite|postgres
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logging.New(cfg)

	db, err := database.Open(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("migrate")
	}
	log.WithField("driver", cfg.StoreDriver).Info("schema is up to date")
}
