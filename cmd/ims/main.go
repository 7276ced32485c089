// Package main provides the ims CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Rhine227/IMS-Automation/pkg/ims"
	"github.com/Rhine227/IMS-Automation/pkg/ims/legacy"
	"github.com/Rhine227/IMS-Automation/pkg/ims/output"
	"github.com/Rhine227/IMS-Automation/pkg/ims/templates"
)

var (
	outputPath string
	pretty     bool
	verbose    bool
)

func main() {
	// Optional .env for IMS_TEMPLATE_DIR and friends.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "ims",
		Short: "Extract structured checklist data from IMS workbooks",
		Long: `ims reads Inspection Maintenance System spreadsheet templates and
converts their category/task/input structure to JSON, inferring the
hierarchy from cell formatting (bold text, fill color, header labels).`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	extractCmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract one workbook to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: sibling .json, \"-\" for stdout)")
	extractCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")

	runCmd := &cobra.Command{
		Use:   "run [template]",
		Short: "Extract a named template from the template directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplate,
	}

	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE:  runTemplates,
	}

	convertCmd := &cobra.Command{
		Use:   "convert [dir]",
		Short: "Convert legacy .xls workbooks under a directory to .xlsx",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConvert,
	}

	rootCmd.AddCommand(extractCmd, runCmd, templatesCmd, convertCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runExtract(cmd *cobra.Command, args []string) error {
	return extractTo(args[0], outputPath)
}

func runTemplate(cmd *cobra.Command, args []string) error {
	path, err := templates.WorkbookPath(templates.Dir(), args[0])
	if err != nil {
		return err
	}
	pretty = true
	return extractTo(path, "")
}

func extractTo(inputPath, outPath string) error {
	doc, err := ims.Extract(inputPath, ims.Options{Logger: newLogger()})
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(doc, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outPath == "-" {
		fmt.Println(string(jsonData))
		return nil
	}
	if outPath == "" {
		outPath = output.SiblingPath(inputPath)
	}
	if err := output.WriteFile(outPath, jsonData); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Data extracted and saved to %s\n", outPath)
	return nil
}

func runTemplates(cmd *cobra.Command, args []string) error {
	names, err := templates.List(templates.Dir())
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no templates found in %s", templates.Dir())
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	converted, err := legacy.ConvertDir(dir)
	for _, path := range converted {
		fmt.Printf("Converted to %s\n", path)
	}
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	return nil
}
