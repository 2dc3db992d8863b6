// Thoughtflow: structured thinking MCP server
//
// A universal MCP server that integrates with any AI coding tool
// (Claude Code, OpenCode, Gemini CLI, Codex, Cursor, VS Code Copilot)
// and provides eight structured thinking frameworks as tools.
//
// Usage:
//
//	thoughtflow serve    # Start MCP server (stdio transport)
//	thoughtflow update   # Update to the latest version
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	tfserver "github.com/yuyat/thoughtflow/internal/server"
	"github.com/yuyat/thoughtflow/internal/updater"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "update":
		runUpdate()
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("thoughtflow v%s\n", tfserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting thoughtflow MCP server",
		zap.String("version", tfserver.Version),
		zap.String("transport", "stdio"),
	)

	// Background version check — logs to stderr so it doesn't interfere
	// with MCP's stdio transport on stdout.
	go checkForUpdates(logger)

	s := tfserver.New()
	if err := server.ServeStdio(s); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}

	logger.Info("server stopped")
	return nil
}

// newLogger builds the process logger. Everything goes to stderr:
// stdout belongs to the MCP stdio transport.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// checkForUpdates runs a non-blocking version check and logs a notice
// if an update is available. Best-effort: network failures are
// silently ignored.
func checkForUpdates(logger *zap.Logger) {
	result := updater.CheckVersion(tfserver.Version)
	if result.UpdateAvailable {
		logger.Info("update available",
			zap.String("current", result.CurrentVersion),
			zap.String("latest", result.LatestVersion),
			zap.String("release", result.ReleaseURL),
		)
	}
}

// runUpdate performs a self-update to the latest version.
func runUpdate() {
	fmt.Fprintf(os.Stderr, "🔍 Checking for updates...\n")

	result := updater.CheckVersion(tfserver.Version)
	if !result.UpdateAvailable {
		fmt.Fprintf(os.Stderr, "✅ Already at the latest version (v%s)\n", result.CurrentVersion)
		return
	}

	fmt.Fprintf(os.Stderr, "📦 New version available: v%s → v%s\n", result.CurrentVersion, result.LatestVersion)
	fmt.Fprintf(os.Stderr, "⬇️  Downloading...\n")

	if err := updater.SelfUpdate(tfserver.Version); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Update failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "\n   You can download manually from:\n   %s\n", result.ReleaseURL)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "✅ Updated to v%s!\n", result.LatestVersion)
	fmt.Fprintf(os.Stderr, "   Restart thoughtflow to use the new version.\n")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Thoughtflow v%s — structured thinking MCP server

Usage:
  thoughtflow serve    Start the MCP server (stdio transport)
  thoughtflow update   Update to the latest version

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "thoughtflow": {
        "command": "thoughtflow",
        "args": ["serve"]
      }
    }
  }

Environment:
  DISABLE_THOUGHT_LOGGING=true   Disable the sequential thought boxes on stderr

Learn more: https://github.com/yuyat/thoughtflow
`, tfserver.Version)
}
