package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/api"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/config"
)

func main() {
	cfg := config.GetSchedulerConfig()

	app := fiber.New()
	api.Register(app.Group("/api").Group("/v1"), api.NewSchedulerHandlerImpl(cfg))

	log.Println("cpu scheduling simulator listening on port", cfg.Port)
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
