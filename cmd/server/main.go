// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"github.com/xtrillion/minerva-site/internal/config"
	"github.com/xtrillion/minerva-site/internal/demo"
	"github.com/xtrillion/minerva-site/internal/mcp"
	"github.com/xtrillion/minerva-site/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	fredClient, err := mcp.NewClient(cfg.FRED.Endpoint, cfg.FRED.Timeout)
	if err != nil {
		log.Fatalf("failed to create FRED client: %v", err)
	}

	imfClient, err := mcp.NewClient(cfg.IMF.Endpoint, cfg.IMF.Timeout)
	if err != nil {
		log.Fatalf("failed to create IMF client: %v", err)
	}

	engine := demo.NewEngine(
		mcp.NewFREDClient(fredClient, cfg.Demo.LookbackYears),
		mcp.NewIMFClient(imfClient),
	)

	srv := server.New(*cfg, engine)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
