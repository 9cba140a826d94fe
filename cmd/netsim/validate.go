package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load a model and config, run one tick, and report validation failures only",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	_, _, engine, err := bootstrap()
	if err != nil {
		return err
	}

	result := engine.Simulate()
	if result.Report.HasFailures() {
		fmt.Println(result.Report.Summary())
		return fmt.Errorf("validation failed: %d issue(s)", len(result.Report.Failures))
	}
	fmt.Println(result.Report.Summary())
	return nil
}
