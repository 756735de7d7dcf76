package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/app"
	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
