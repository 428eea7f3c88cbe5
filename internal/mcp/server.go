package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/uvalc/uvalc/internal/domain/activity"
	"github.com/uvalc/uvalc/internal/domain/assembly"
	"github.com/uvalc/uvalc/internal/domain/material"
	"github.com/uvalc/uvalc/internal/domain/project"
)

const serverInstructions = `uvalc computes the thermal transmittance (U-value) of a building
envelope from a stack of material layers.

Typical flow: load_materials with a raw CSV catalog (any of the accepted
column spellings and encodings), then compute_u_value with the returned
source_id and a layer stack. Each layer can reference a different material
for the thermal-bridge path; unset bridge references inherit the normal
ones. Projects can be saved and reloaded losslessly.`

// Services contains all domain services needed by MCP.
type Services struct {
	Projects  *project.Service
	Materials *material.Service
	Activity  *activity.Service
}

// Defaults are the assembly parameters applied when a tool call omits them.
type Defaults struct {
	Rsi         float64
	Rse         float64
	BridgeRatio float64
}

// Config contains server configuration.
type Config struct {
	Services Services
	Defaults Defaults
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and
// middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "uvalc",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	defaults := cfg.Defaults
	if defaults.Rsi == 0 {
		defaults.Rsi = assembly.DefaultRsi
	}
	if defaults.Rse == 0 {
		defaults.Rse = assembly.DefaultRse
	}
	if defaults.BridgeRatio == 0 {
		defaults.BridgeRatio = assembly.DefaultBridgeRatio
	}

	registerTools(server, cfg.Services, defaults)

	return server
}
