package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"fulfillment/internal/core/application/workflow"

	"github.com/spf13/cobra"
)

func runCmd(factory DriverFactory, debug *bool) *cobra.Command {
	var orderPath string
	var planPath string
	var outDir string
	var format string

	c := &cobra.Command{
		Use:   "run",
		Short: "Run an order document through a plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "pretty" && format != "json" {
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}

			plan := workflow.Plan{}
			if planPath != "" {
				f, err := os.Open(planPath)
				if err != nil {
					return fmt.Errorf("open plan: %w", err)
				}
				defer func() { _ = f.Close() }()

				if plan, err = LoadPlan(f); err != nil {
					return err
				}
			}

			document, err := os.Open(orderPath)
			if err != nil {
				return fmt.Errorf("open order: %w", err)
			}
			defer func() { _ = document.Close() }()

			driver := factory(outDir, newLogger(cmd, *debug))
			result, err := driver.Run(cmd.Context(), document, plan)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), result, format)
		},
	}

	c.Flags().StringVarP(&orderPath, "order", "o", "", "Order document, JSON or YAML (required)")
	c.Flags().StringVarP(&planPath, "plan", "p", "", "Plan file, YAML (optional; import only when omitted)")
	c.Flags().StringVar(&outDir, "out", "out", "Directory for exported documents")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("order")
	return c
}

type resultOutput struct {
	OrderID        int              `json:"orderId"`
	Items          int              `json:"items"`
	RemainingItems int              `json:"remainingItems"`
	Closed         bool             `json:"closed"`
	Cost           float64          `json:"cost"`
	Shipments      []shipmentOutput `json:"shipments"`
	Exported       []string         `json:"exported"`
}

type shipmentOutput struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"`
	Containers int     `json:"containers"`
	Cost       float64 `json:"cost"`
}

func printResult(w io.Writer, result workflow.Result, format string) error {
	out := resultOutput{
		OrderID:        result.OrderID,
		Items:          result.Summary.Items,
		RemainingItems: result.Summary.RemainingItems,
		Closed:         result.Summary.Closed,
		Cost:           result.Summary.Cost,
		Shipments:      make([]shipmentOutput, 0, len(result.Summary.Shipments)),
		Exported:       result.Exported,
	}
	for _, s := range result.Summary.Shipments {
		out.Shipments = append(out.Shipments, shipmentOutput{
			ID:         s.ID,
			Status:     s.Status.String(),
			Containers: s.Containers,
			Cost:       s.Cost,
		})
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		printPretty(w, out)
		return nil
	}
}

func printPretty(w io.Writer, out resultOutput) {
	fmt.Fprintf(w, "Order:     %d\n", out.OrderID)
	fmt.Fprintf(w, "Items:     %d (%d remaining)\n", out.Items, out.RemainingItems)
	fmt.Fprintf(w, "Closed:    %t\n", out.Closed)
	fmt.Fprintf(w, "Cost:      %.2f\n", out.Cost)
	fmt.Fprintln(w)

	for _, s := range out.Shipments {
		fmt.Fprintf(w, "- %s %s, %d container(s), %.2f\n", s.ID, s.Status, s.Containers, s.Cost)
	}
	for _, path := range out.Exported {
		fmt.Fprintf(w, "exported %s\n", path)
	}
}
