package main

import (
	"log"

	"wheel_backend/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
