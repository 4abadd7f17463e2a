package main

import (
	"fmt"

	"pgnest/internal/localstore"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var resetCommand = &cli.Command{
	Name:  "reset",
	Usage: "Clear persisted tenant state so the dashboard reseeds on next start",
	Action: func(c *cli.Context) error {
		config, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger := logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})

		local, err := localstore.NewOSStore(config.DataDir, logger)
		if err != nil {
			return err
		}

		for _, key := range []string{
			localstore.KeyDocuments,
			localstore.KeyProfilePhoto,
			localstore.KeyPreferences,
		} {
			local.Remove(key)
			logrus.WithField("key", key).Info("cleared stored value")
		}

		return nil
	},
}
