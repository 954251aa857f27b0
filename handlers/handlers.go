package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nordcart/mcp-commerce/catalog"
	"github.com/nordcart/mcp-commerce/contacts"
	"github.com/nordcart/mcp-commerce/document"
	"github.com/nordcart/mcp-commerce/record"
	"github.com/nordcart/mcp-commerce/schema"
)

// ListEntitiesHandler creates a handler for the list_entities tool
func ListEntitiesHandler(cat *catalog.Catalog) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonData, err := json.MarshalIndent(cat.Names(), "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal results: %v", err)), nil
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	}
}

// DescribeEntityHandler creates a handler for the describe_entity tool
func DescribeEntityHandler(cat *catalog.Catalog) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("entity")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing entity parameter: %v", err)), nil
		}

		entity, ok := cat.Entity(name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Unknown entity: %s", name)), nil
		}

		descriptor := schema.BuildTableDescriptor(*entity)

		jsonData, err := json.MarshalIndent(descriptor, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal results: %v", err)), nil
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	}
}

// MapRecordHandler creates a handler for the map_record tool
func MapRecordHandler(cat *catalog.Catalog, log *slog.Logger) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sink := record.SlogSink(log)

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("entity")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing entity parameter: %v", err)), nil
		}

		payload, err := request.RequireString("payload")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing payload parameter: %v", err)), nil
		}

		entity, ok := cat.Entity(name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Unknown entity: %s", name)), nil
		}

		doc, err := document.Parse([]byte(payload))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid payload: %v", err)), nil
		}

		rec, err := record.MapFields(doc, entity.Fields, name, sink)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Mapping failed: %v", err)), nil
		}

		jsonData, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal results: %v", err)), nil
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	}
}

// ResolveContactHandler creates a handler for the resolve_contact tool
func ResolveContactHandler(store contacts.Store) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		identifier, err := request.RequireString("identifier")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing identifier parameter: %v", err)), nil
		}

		contact, err := store.FindByIdentifier(ctx, identifier)
		if err != nil {
			var notFound *contacts.NotFoundError
			if errors.As(err, &notFound) {
				return mcp.NewToolResultError(notFound.Error()), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Lookup failed: %v", err)), nil
		}

		jsonData, err := json.MarshalIndent(contact, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal results: %v", err)), nil
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	}
}
