package main

import (
	"os"
	"strconv"

	"github.com/emzola/bookstore/config"
	"github.com/emzola/bookstore/data"
	"github.com/emzola/bookstore/handler"
	"github.com/emzola/bookstore/internal/jsonlog"
	"github.com/emzola/bookstore/repository"
	"github.com/emzola/bookstore/service"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Initialize configuration
	cfg, err := config.Decode()
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Initialize the in-memory book store with the sample records
	seed := data.Seed()
	repo := repository.New(seed)
	logger.PrintInfo("book store seeded", map[string]string{
		"records": strconv.Itoa(len(seed)),
	})

	// Application layers
	service := service.New(cfg, logger, repo)
	handler := handler.New(cfg, logger, service)

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
