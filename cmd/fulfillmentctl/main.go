package main

import (
	"log/slog"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/in/cli"
	"fulfillment/internal/core/application/workflow"
)

func main() {
	cli.Execute(func(outDir string, logger *slog.Logger) *workflow.Driver {
		app := cmd.NewMemoryCompositionRoot(cmd.Config{ExportDir: outDir}, logger)
		return app.CreateWorkflowDriver()
	})
}
