package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"toc-filter/pkg/config"
)

const (
	serverName    = "toc-filter"
	serverVersion = "1.0.0"
)

// ServerConfig holds configuration for the MCP server
type ServerConfig struct {
	AppConfig  *config.AppConfig
	ConfigPath string
	Transport  string // "stdio" or "sse"
	Port       int
	Logger     *logrus.Logger
}

// Server wraps the MCP server with toc-filter specific functionality
type Server struct {
	mcpServer *server.MCPServer
	cfg       *ServerConfig
	log       *logrus.Entry
}

// NewServer creates a new MCP server instance
func NewServer(cfg *ServerConfig) (*Server, error) {
	if cfg.AppConfig == nil {
		return nil, fmt.Errorf("AppConfig is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithLogging(),
	)

	s := &Server{
		mcpServer: mcpServer,
		cfg:       cfg,
		log:       cfg.Logger.WithField("component", "mcp"),
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// insert_toc - Run the full transform on a document
	insertTOCTool := mcp.NewTool("insert_toc",
		mcp.WithDescription("Replace the first {toc} marker in an HTML fragment with a generated table of contents and anchor the headings. Returns the document unchanged when no marker is present."),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("The HTML document fragment to transform"),
		),
		mcp.WithNumber("minlevel",
			mcp.Description("Lowest heading level to include (default 1)"),
		),
		mcp.WithNumber("maxlevel",
			mcp.Description("Highest heading level to include (default 6)"),
		),
		mcp.WithBoolean("chapternumbers",
			mcp.Description("Enable hierarchical chapter numbering"),
		),
		mcp.WithString("prefix",
			mcp.Description("Literal string prepended to the numbering display"),
		),
		mcp.WithBoolean("emit_heading_id",
			mcp.Description("Also set an id attribute on rewritten heading tags"),
		),
	)
	s.mcpServer.AddTool(insertTOCTool, s.handleInsertTOC)

	// list_headings - Outline a document without rewriting it
	listHeadingsTool := mcp.NewTool("list_headings",
		mcp.WithDescription("Extract the heading outline of an HTML fragment with the anchor IDs the transform would assign, without modifying the document"),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("The HTML document fragment to outline"),
		),
		mcp.WithNumber("minlevel",
			mcp.Description("Lowest heading level to include (default 1)"),
		),
		mcp.WithNumber("maxlevel",
			mcp.Description("Highest heading level to include (default 6)"),
		),
		mcp.WithBoolean("chapternumbers",
			mcp.Description("Assign position-derived numbered anchors"),
		),
	)
	s.mcpServer.AddTool(listHeadingsTool, s.handleListHeadings)

	// slugify - Expose the anchor slug derivation
	slugifyTool := mcp.NewTool("slugify",
		mcp.WithDescription("Derive the URL-safe anchor slug for a piece of heading text"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The heading text to slugify"),
		),
	)
	s.mcpServer.AddTool(slugifyTool, s.handleSlugify)

	s.log.Infof("Registered %d MCP tools", 3)
}

// Run starts the MCP server with the configured transport
func (s *Server) Run() error {
	switch s.cfg.Transport {
	case "stdio":
		s.log.Info("Starting MCP server with stdio transport")
		return server.ServeStdio(s.mcpServer)
	case "sse":
		addr := fmt.Sprintf(":%d", s.cfg.Port)
		s.log.Infof("Starting MCP server with SSE transport on %s", addr)
		sseServer := server.NewSSEServer(s.mcpServer)
		return sseServer.Start(addr)
	default:
		return fmt.Errorf("unknown transport: %s (supported: stdio, sse)", s.cfg.Transport)
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down MCP server...")
	return nil
}
