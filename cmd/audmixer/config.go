// SPDX-License-Identifier: EPL-2.0

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/viper"
)

func setViperDefaults() {
	viper.SetDefault("loglevel", "info")
	viper.SetDefault("outputrate", 48000)
	viper.SetDefault("streamvolume", 255)
	viper.SetDefault("capturepath", "")
	viper.SetDefault("chunkframes", 4800)
}

func loadConfig(configFilePath string) {
	setViperDefaults()

	if configFilePath == "" {
		return
	}

	viper.SetConfigFile(configFilePath)
	if err := viper.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			slog.Info("no config file found, using defaults", "configFilePath", configFilePath)
			return
		}
		slog.Error("error during config read", "err", err)
		os.Exit(1)
	}
}

func configureLogging() {
	var level slog.Level
	switch viper.GetString("loglevel") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
