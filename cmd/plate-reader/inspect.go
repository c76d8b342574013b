package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/plate-reader/internal/plate"
)

var correctCmd = &cobra.Command{
	Use:   "correct <text>...",
	Short: "Apply the OCR misread corrections to plate strings",
	Example: `  plate-reader correct MH12ICL234
  plate-reader correct KA01AG1234 ZGI2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCorrect,
}

var regionCmd = &cobra.Command{
	Use:   "region <text>...",
	Short: "Resolve the issuing region of plate strings",
	Example: `  plate-reader region MH12AB1234
  plate-reader region --correct cQ01AB1234
  plate-reader region --list`,
	RunE: runRegion,
}

func init() {
	rootCmd.AddCommand(correctCmd)
	rootCmd.AddCommand(regionCmd)

	regionCmd.Flags().Bool("correct", false, "Apply corrections before resolving")
	regionCmd.Flags().Bool("list", false, "Print the region table instead")
	regionCmd.Args = func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	}
}

func inspectPipeline() *plate.Pipeline {
	opts := plate.Options{}
	if cfg, err := requireConfig(); err == nil {
		opts = cfg.PipelineOptions(nil)
	}
	return plate.NewPipeline(opts)
}

func runCorrect(cmd *cobra.Command, args []string) error {
	p := inspectPipeline()
	out := cmd.OutOrStdout()
	for _, text := range args {
		corrected := p.Correct(text)
		status := "rejected"
		if p.Admit(corrected) {
			status = "admitted"
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", text, corrected, status)
	}
	return nil
}

func runRegion(cmd *cobra.Command, args []string) error {
	p := inspectPipeline()
	out := cmd.OutOrStdout()

	if list, _ := cmd.Flags().GetBool("list"); list {
		for _, e := range p.Regions().Entries() {
			fmt.Fprintf(out, "%s\t%s\n", e.Code, e.Name)
		}
		return nil
	}

	applyCorrections, _ := cmd.Flags().GetBool("correct")
	for _, text := range args {
		if applyCorrections {
			text = p.Correct(text)
		}
		fmt.Fprintf(out, "%s\t%s\n", text, p.Resolve(text))
	}
	return nil
}
