package main

import (
	"fmt"
	"log"

	"github.com/newsnotes-app/newsnotes/internal/pkg/application"
	"github.com/newsnotes-app/newsnotes/internal/pkg/cache"
	"github.com/newsnotes-app/newsnotes/internal/pkg/database"
	"github.com/newsnotes-app/newsnotes/internal/pkg/env"
)

func main() {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	app := application.New()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}
