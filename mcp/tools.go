package mcp

import (
	"log/slog"

	goMCP "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/nordcart/mcp-commerce/catalog"
	"github.com/nordcart/mcp-commerce/contacts"
	"github.com/nordcart/mcp-commerce/handlers"
)

func RegisterTools(s *server.MCPServer, cat *catalog.Catalog, store contacts.Store, log *slog.Logger) {
	// List tool
	listTool := goMCP.NewTool("list_entities",
		goMCP.WithDescription("List the external entities defined in the mapping catalog"),
	)

	// Describe tool
	describeTool := goMCP.NewTool("describe_entity",
		goMCP.WithDescription("Get the virtual table schema generated for an external entity"),
		goMCP.WithString("entity",
			goMCP.Required(),
			goMCP.Description("Name of the entity to describe"),
		),
	)

	// Map tool
	mapTool := goMCP.NewTool("map_record",
		goMCP.WithDescription("Map a source-system JSON payload into a typed record for an entity"),
		goMCP.WithString("entity",
			goMCP.Required(),
			goMCP.Description("Name of the entity whose field mappings to apply"),
		),
		goMCP.WithString("payload",
			goMCP.Required(),
			goMCP.Description("JSON object payload from the source system"),
		),
	)

	// Resolve tool
	resolveTool := goMCP.NewTool("resolve_contact",
		goMCP.WithDescription("Resolve the owning contact by customer id, external ref or account number"),
		goMCP.WithString("identifier",
			goMCP.Required(),
			goMCP.Description("Candidate identifier to match"),
		),
	)

	s.AddTool(listTool, handlers.ListEntitiesHandler(cat))
	s.AddTool(describeTool, handlers.DescribeEntityHandler(cat))
	s.AddTool(mapTool, handlers.MapRecordHandler(cat, log))
	s.AddTool(resolveTool, handlers.ResolveContactHandler(store))
}
