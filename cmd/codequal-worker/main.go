package main

import (
	"github.com/joho/godotenv"

	"github.com/codequal/codequal-api/pkg/worker/app"
)

func main() {
	_ = godotenv.Load()

	a := app.NewApp()
	a.Run()
}
