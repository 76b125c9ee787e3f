package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/porquinho-server/internal/config"
	"github.com/carson-networks/porquinho-server/internal/storage"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	if !env.PostgresEnabled() {
		logrus.Fatal("PORQUINHO_POSTGRES_ADDRESS is not set; nothing to migrate")
		return
	}

	result, err := storage.RunPostgresMigrations(env.PostgresDSN())
	if err != nil {
		logrus.WithError(err).Fatal("RunPostgresMigrations")
		return
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreVersion,
		"postMigrationVersion": result.PostVersion,
	}).Info("Migration status")
}
