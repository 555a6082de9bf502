package main

import (
	"ratesmanager/internal/app"

	"github.com/sirupsen/logrus"
)

// @title       Exchange Rates Manager API
// @version     1.0
// @description Currency exchange rates backed by Postgres with read-through fallback to an external quote provider.
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application stopped with error")
	}
}
