package main

import (
	"wordsearch/internal/app"
	"wordsearch/internal/config"
	"wordsearch/internal/menu"
	"wordsearch/internal/tui"
)

// controllerAPI is everything the commands need from a session.
type controllerAPI interface {
	menu.Controller
	tui.Controller
}

var (
	loadConfig        = config.Load
	controllerFactory = func(cfg config.Config) controllerAPI {
		return app.New(app.Options{Filler: cfg.Filler, Seed: cfg.Seed})
	}
)

func controller(cfg config.Config) controllerAPI {
	return controllerFactory(cfg)
}
