package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dshills/netsim/pkg/export"
	"github.com/dshills/netsim/pkg/metrics"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load a model and config, run one simulation tick, and print the result",
	Args:  cobra.NoArgs,
	RunE:  runSimulate,
}

var (
	runOutputPath string
	runCompact    bool
)

func init() {
	runCmd.Flags().StringVar(&runOutputPath, "output", "", "write the JSON snapshot to this path instead of stdout")
	runCmd.Flags().BoolVar(&runCompact, "compact", false, "write compact (non-indented) JSON")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, net, engine, err := bootstrap()
	if err != nil {
		return err
	}

	var reg *metrics.Registry
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		go func() {
			if err := reg.Serve(ctx, cfg.Metrics.ListenAddr); err != nil {
				engine.Log.Error("metrics server stopped", err)
			}
		}()
	}

	result := engine.Simulate()
	if reg != nil {
		reg.Observe(net)
	}

	snap := export.BuildSnapshot(net)
	var data []byte
	if runCompact {
		data, err = export.ExportJSONCompact(snap)
	} else {
		data, err = export.ExportJSON(snap)
	}
	if err != nil {
		return fmt.Errorf("exporting snapshot: %w", err)
	}

	if runOutputPath != "" {
		if err := os.WriteFile(runOutputPath, data, 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	} else {
		fmt.Println(string(data))
	}

	fmt.Fprintf(os.Stderr, "run %s: %d/%d lsps routed, %d/%d demands routed\n",
		result.RunID,
		result.RoutedLSPs, result.RoutedLSPs+result.UnroutedLSPs,
		result.RoutedDemands, result.RoutedDemands+result.UnroutedDemands)

	if result.Report.HasFailures() {
		fmt.Fprintln(os.Stderr, result.Report.Summary())
		return fmt.Errorf("simulation produced %d validation failure(s)", len(result.Report.Failures))
	}
	return nil
}
