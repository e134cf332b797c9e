package main

import (
	"log"

	"github.com/buffalosolar/admin-center/internal/admin/app"
)

func main() {
	application, err := app.New(app.LoadConfig())
	if err != nil {
		log.Fatalf("admin-center: init: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("admin-center: %v", err)
	}
}
