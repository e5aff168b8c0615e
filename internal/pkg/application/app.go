package application

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/newsnotes-app/newsnotes/internal/pkg/router"
)

// New assembles the fiber application: view engine, base middlewares, static
// assets, API docs and the route tree. The caller is responsible for env,
// database and cache setup.
func New() *fiber.App {
	basePath := findBasePath()

	engine := html.New(basePath+"views", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", monitor.New())

	// static files
	app.Static("/", basePath+"public/assets")

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}

// findBasePath locates the project root so the binary can run from the repo
// root, from cmd/, or under go test in a package directory.
func findBasePath() string {
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/newsnotes or a package test dir to project root
		"../../../", // Fallback
	}

	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			return path
		}
	}

	panic("Could not find project root directory")
}
