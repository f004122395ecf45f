package main

import (
	"os"

	"github.com/hbalmes/webtoapp-api/api/logger"
	"github.com/hbalmes/webtoapp-api/api/packaging"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	logger.Init(os.Getenv("SCOPE"), os.Getenv("LOG_LEVEL"))

	cliApp := &cli.App{
		Name:  "configure-app",
		Usage: "write the app name and url into the packaging configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path of the tauri configuration file",
				Value: "app-template/src-tauri/tauri.conf.json",
			},
			&cli.StringFlag{
				Name:    "name",
				Usage:   "app name",
				EnvVars: []string{"APP_NAME"},
				Value:   "My App",
			},
			&cli.StringFlag{
				Name:    "url",
				Usage:   "website url loaded by the main window",
				EnvVars: []string{"APP_URL"},
				Value:   "https://google.com",
			},
			&cli.StringFlag{
				Name:    "version",
				Usage:   "semantic version of the app, kept as is when empty",
				EnvVars: []string{"APP_VERSION"},
			},
		},
		HideVersion: true,
		Action: func(c *cli.Context) error {
			result, err := packaging.Configure(c.String("config"), packaging.Options{
				AppName: c.String("name"),
				AppURL:  c.String("url"),
				Version: c.String("version"),
			})
			if err != nil {
				return err
			}

			log.Info().
				Str("name", result.ProductName).
				Str("url", result.URL).
				Str("identifier", result.Identifier).
				Str("version", result.Version).
				Msg("updated tauri.conf.json")
			return nil
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("error updating tauri.conf.json")
		os.Exit(1)
	}
}
