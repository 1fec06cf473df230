package main

import (
	"github.com/joho/godotenv"

	app "github.com/codequal/codequal-api/pkg/api"
	"github.com/codequal/codequal-api/pkg/worker/lib/queue"
)

func main() {
	_ = godotenv.Load()

	queue.Init()

	a := app.NewApp()
	a.RunForever()
}
