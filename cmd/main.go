package main

import (
	"os"

	"goldconv/internal/commands"

	"github.com/sirupsen/logrus"
)

// @title Gold price conversion API
// @version 1.0
// @description Prices gold by weight and purity in USD, AZN and TRY.
// @BasePath /api/v1
func main() {
	if err := commands.Execute(); err != nil {
		logrus.WithError(err).Error("goldconv failed")
		os.Exit(1)
	}
}
