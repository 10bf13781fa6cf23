package server

import (
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/numerics/newtonpoly"
	"github.com/numerics/newtonpoly/internal/tools"
)

// NewtonServer represents the interpolation MCP server
type NewtonServer struct {
	mcpServer *server.MCPServer
	logger    *log.Logger
}

// NewNewtonServer creates a new interpolation MCP server with all tools registered
func NewNewtonServer(logger *log.Logger) *NewtonServer {
	s := &NewtonServer{
		mcpServer: server.NewMCPServer(newtonpoly.Name, newtonpoly.Version, server.WithToolCapabilities(false)),
		logger:    logger,
	}

	s.registerTools()

	return s
}

// MCPServer returns the underlying MCP server
func (s *NewtonServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Start serves the MCP protocol on stdin and stdout until the input is closed
func (s *NewtonServer) Start() error {
	s.logger.Printf("Starting %s MCP server %s on stdio", newtonpoly.Name, newtonpoly.Version)

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *NewtonServer) registerTools() {
	nodesTool := tools.NewChebyshevNodesTool()
	s.mcpServer.AddTool(nodesTool.GetTool(), nodesTool.Handle)

	ddTool := tools.NewDividedDifferencesTool()
	s.mcpServer.AddTool(ddTool.GetTool(), ddTool.Handle)

	evalTool := tools.NewEvaluateTool()
	s.mcpServer.AddTool(evalTool.GetTool(), evalTool.Handle)

	hornerTool := tools.NewHornerTool()
	s.mcpServer.AddTool(hornerTool.GetTool(), hornerTool.Handle)

	interpolateTool := tools.NewInterpolateTool()
	s.mcpServer.AddTool(interpolateTool.GetTool(), interpolateTool.Handle)
}
