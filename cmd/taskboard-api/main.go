package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/mkosinov/taskboard/internal/config"
	"github.com/mkosinov/taskboard/internal/logger"
	"github.com/mkosinov/taskboard/internal/router"
	"github.com/mkosinov/taskboard/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to initialize dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = strconv.Itoa(cfg.Public.HttpPort)
	}

	logger.Log.Info("server started", "port", httpPort)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", httpPort), r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
