package main

import (
	"fmt"
	"log"

	"github.com/beka-birhanu/maze-solver-api/api"
	api_i "github.com/beka-birhanu/maze-solver-api/api/i"
	mazeapi "github.com/beka-birhanu/maze-solver-api/api/maze"
	"github.com/beka-birhanu/maze-solver-api/config"
	"github.com/beka-birhanu/maze-solver-api/service"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	mazeService    *service.MazeService
	solveService   *service.SolveService
	mazeController api_i.Controller
	router         *api.Router
)

func initServices() {
	mazeService = service.NewMazeService()
	solveService = service.NewSolveService(mazeService)
	log.Printf("[APP] [INFO] Services initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.New(mazeService, solveService)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Creating maze controller: %v", err)
	}
	log.Printf("[APP] [INFO] Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	log.Printf("[APP] [INFO] Router initialized")
}

func main() {
	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	initServices()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		log.Fatalf("[APP] [FATAL] Starting server: %v", err)
	}
}
