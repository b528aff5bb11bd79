package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"fleet-app-go/internal/client"
	"fleet-app-go/internal/export"
	"fleet-app-go/internal/render"
	"fleet-app-go/internal/report"
)

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

var (
	apiURL       string
	month        string
	truckModel   string
	licensePlate string
	supplier     string
	search       string
	outDir       string
	baseName     string
)

var rootCmd = &cobra.Command{
	Use:   "fleet-report",
	Short: "Generate a fleet report PDF from the fleet API",
	Long: `Fetches truck logs and expenses from a running fleet API, applies the
requested filters and writes the rendered report as a PDF file.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if apiURL == "" {
			return fmt.Errorf("api url is required (--api-url or FLEET_API_URL)")
		}

		ctx := cmd.Context()

		api, err := client.New(apiURL)
		if err != nil {
			return err
		}

		if err := api.Health(ctx); err != nil {
			return err
		}

		if err := api.LoadAll(ctx); err != nil {
			return err
		}

		spec := report.FilterSpec{
			Month:        month,
			TruckModel:   truckModel,
			LicensePlate: licensePlate,
			Supplier:     supplier,
			Search:       search,
		}
		logs, expenses := report.Apply(api.TruckLogs(), api.Expenses(), spec)

		target, err := render.Report(render.Data{
			TruckLogs:   logs,
			Expenses:    expenses,
			Summary:     report.Aggregate(logs, expenses),
			GeneratedAt: time.Now(),
		})
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}

		registry := export.NewRegistry()
		exporter := export.New(registry)

		targetID := uuid.NewString()
		registry.Mount(targetID, target)

		doc, err := exporter.Export(ctx, targetID, baseName)
		if err != nil {
			return fmt.Errorf("export pdf: %w", err)
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		path := filepath.Join(outDir, doc.FileName)
		if err := os.WriteFile(path, doc.Bytes, 0o644); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d records, %d expenses)\n", path, len(logs), len(expenses))
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&apiURL, "api-url", getEnvOrDefault("FLEET_API_URL", ""), "Base URL of the fleet API")
	rootCmd.Flags().StringVar(&month, "month", "", "Filter by month (YYYY-MM)")
	rootCmd.Flags().StringVar(&truckModel, "truck-model", "", "Filter truck logs by model")
	rootCmd.Flags().StringVar(&licensePlate, "license-plate", "", "Filter truck logs by license plate")
	rootCmd.Flags().StringVar(&supplier, "supplier", "", "Filter expenses by supplier")
	rootCmd.Flags().StringVarP(&search, "search", "q", "", "Free text search across all record fields")
	rootCmd.Flags().StringVar(&outDir, "out", ".", "Directory the PDF is written to")
	rootCmd.Flags().StringVar(&baseName, "name", "Relatorio_Frota", "Base name of the PDF file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
