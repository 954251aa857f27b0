package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/nordcart/mcp-commerce/catalog"
	"github.com/nordcart/mcp-commerce/config"
	"github.com/nordcart/mcp-commerce/databases"
	"github.com/nordcart/mcp-commerce/mcp"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("config error", "error", err)
		return
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		slog.Error("catalog error", "error", err)
		return
	}

	connStr, err := cfg.Database.GetConnectionString()
	if err != nil {
		slog.Error("connection string error", "error", err)
		return
	}

	store, err := databases.NewStore(cfg.Database.DBType, connStr)
	if err != nil {
		slog.Error("failed to open contact store", "error", err)
		return
	}
	defer store.Close()

	// Create a new MCP server
	s := server.NewMCPServer(
		"mcp-commerce",
		"0.0.1",
		server.WithToolCapabilities(false),
		server.WithLogging(),
	)

	mcp.RegisterTools(s, cat, store, slog.Default())
	slog.Info("serving catalog", "entities", len(cat.Entities))

	// Start the stdio server
	if err := server.ServeStdio(s); err != nil {
		fmt.Printf("Server error: %v\n", err)
	}
}
