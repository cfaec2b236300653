package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"localweather.app/internal/mockupstream"
)

func main() {
	port := flag.Int("port", 8081, "listen port")
	flag.Parse()

	gin.SetMode(gin.ReleaseMode)
	r := mockupstream.NewRouter(mockupstream.Options{})

	slog.Info("Mock upstream server starting", "port", *port,
		"weather_base_url", fmt.Sprintf("http://localhost:%d", *port),
		"ip_lookup_url", fmt.Sprintf("http://localhost:%d/json", *port))
	if err := r.Run(fmt.Sprintf(":%d", *port)); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
