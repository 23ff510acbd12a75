package main

import (
	"fmt"
	"os"

	"github.com/stpnv0/SalonBooker/internal/app"
	"github.com/stpnv0/SalonBooker/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "salon_booker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}
	return application.Run()
}
