// Package mcp exposes the retrieval engine over the Model Context Protocol.
//
// The server is thin glue: it validates tool parameters, delegates to the
// engine, and formats responses. No scoring or retrieval logic lives here.
// Identical concurrent queries are collapsed with singleflight so a burst of
// the same question runs the pipeline once.
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/nileshkumar-sf/kt-agent/internal/engine"
)

const (
	// ServerName is the MCP server name.
	ServerName = "kt-agent"
	// ServerVersion is the current server version.
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the engine it serves.
type Server struct {
	mcp    *server.MCPServer
	engine *engine.Engine
	logger *zap.Logger
	group  singleflight.Group
}

// NewServer constructs the engine for the project root and wires the tools.
func NewServer(projectRoot string, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	eng, err := engine.New(projectRoot, engine.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	s := &Server{
		mcp:    server.NewMCPServer(ServerName, ServerVersion),
		engine: eng,
		logger: logger,
	}
	s.registerTools()
	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// Engine exposes the underlying engine, mainly for tests.
func (s *Server) Engine() *engine.Engine { return s.engine }

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchCodeTool(), s.handleSearchCode)
	s.mcp.AddTool(listImportsTool(), s.handleListImports)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
}
