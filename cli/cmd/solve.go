// ABOUTME: Solve command for the airlift CLI
// ABOUTME: Posts a manifest to the allocation endpoint and renders load plans

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/twaldron/airlift-planner/cli/internal/client"
	"github.com/twaldron/airlift-planner/cli/internal/styles"
	"github.com/twaldron/airlift-planner/models"
)

var (
	solveManifestPath string
	solveAircraftType string
	solveFleetSpec    string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a load allocation for a manifest",
	Long: `Solve an aircraft load allocation for a deployment manifest.

The manifest may be a JSON file with classified cargo lists or an XLSX
spreadsheet, which is sent through the backend importer first. Choose
either a single aircraft type or a finite fleet mix.

Exit codes:
  0 - Solve completed (the result may still report a shortfall)
  2 - Error (connectivity, bad manifest, invalid input)

Example:
  airlift solve --manifest deployment.json --fleet "C-17A=3,C-130J=2"`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSolve(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveManifestPath, "manifest", "", "Manifest file (.json or .xlsx)")
	solveCmd.Flags().StringVar(&solveAircraftType, "aircraft", "", "Single aircraft type with unlimited airframes")
	solveCmd.Flags().StringVar(&solveFleetSpec, "fleet", "", "Fleet mix as TYPE=COUNT pairs, e.g. \"C-17A=3,C-5M=1\"")
}

// runSolve loads the manifest, requests a solve, and renders the result
func runSolve(ctx context.Context, w io.Writer) int {
	c := client.New(GetAPIURL())

	input, err := buildAllocationRequest(ctx, c, solveManifestPath, solveAircraftType, solveFleetSpec)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	result, err := c.Allocate(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatResultHuman(result))
	}

	return 0
}

// buildAllocationRequest assembles a solve request from the command flags
func buildAllocationRequest(ctx context.Context, c *client.Client, manifestPath, aircraftType, fleetSpec string) (*models.AllocationRequest, error) {
	if manifestPath == "" {
		return nil, fmt.Errorf("--manifest is required")
	}
	if aircraftType == "" && fleetSpec == "" {
		return nil, fmt.Errorf("provide --aircraft or --fleet")
	}
	if aircraftType != "" && fleetSpec != "" {
		return nil, fmt.Errorf("--aircraft and --fleet are mutually exclusive")
	}

	manifest, err := loadManifest(ctx, c, manifestPath)
	if err != nil {
		return nil, err
	}

	input := &models.AllocationRequest{Manifest: manifest, AircraftType: aircraftType}
	if fleetSpec != "" {
		fleet, err := parseFleet(fleetSpec)
		if err != nil {
			return nil, err
		}
		input.Fleet = fleet
	}
	return input, nil
}

// loadManifest reads cargo from a JSON manifest, or uploads a spreadsheet
// to the import endpoint when the file extension is .xlsx
func loadManifest(ctx context.Context, c *client.Client, path string) (models.ClassifiedManifest, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		f, err := os.Open(path)
		if err != nil {
			return models.ClassifiedManifest{}, fmt.Errorf("cannot open manifest %s: %w", path, err)
		}
		defer f.Close()

		imported, err := c.ImportManifest(ctx, path, f)
		if err != nil {
			return models.ClassifiedManifest{}, err
		}
		return imported.Manifest, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.ClassifiedManifest{}, fmt.Errorf("cannot read manifest %s: %w", path, err)
	}
	var manifest models.ClassifiedManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return models.ClassifiedManifest{}, fmt.Errorf("manifest %s is not valid JSON: %w", path, err)
	}
	return manifest, nil
}

// parseFleet parses a "TYPE=COUNT,TYPE=COUNT" fleet specification
func parseFleet(spec string) ([]models.FleetEntry, error) {
	var fleet []models.FleetEntry
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		acType, countStr, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("fleet entry %q must look like TYPE=COUNT", part)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil || count < 0 {
			return nil, fmt.Errorf("fleet entry %q has an invalid count", part)
		}
		fleet = append(fleet, models.FleetEntry{Type: strings.TrimSpace(acType), Available: count})
	}
	if len(fleet) == 0 {
		return nil, fmt.Errorf("fleet specification %q is empty", spec)
	}
	return fleet, nil
}

// formatResultHuman renders an allocation result as a load plan summary
func formatResultHuman(result *models.AllocationResult) string {
	output := fmt.Sprintf("%s  %s\n", styles.Title.Render("Load Plan"), styles.Feasibility(result.Feasible))
	output += fmt.Sprintf("Aircraft: %d (%d ADVON, %d MAIN)   Cargo: %.0f lb   Pallets: %d   Vehicles: %d   Pax: %d\n",
		result.TotalAircraft, result.AdvonAircraft, result.MainAircraft,
		result.TotalWeightLb, result.TotalPallets, result.TotalRollingStock, result.TotalPassengers)

	for _, plan := range result.Aircraft {
		output += fmt.Sprintf("\n%s\n", plan.Label)
		output += fmt.Sprintf("  Payload:  %9.0f lb  %s %5.1f%%\n",
			plan.TotalWeightLb, styles.ProgressBar(plan.PayloadUtilPct, 20), plan.PayloadUtilPct)
		output += fmt.Sprintf("  Pallets:  %d/%d positions   Vehicles: %d   Pax: %d\n",
			plan.PositionsUsed, plan.PositionsTotal, len(plan.Vehicles), plan.Passengers)
		output += fmt.Sprintf("  CG:       %.1f%% MAC [%s]", plan.Balance.CobPercent, envelopeTag(plan.Balance))
		if plan.Limits.LimitingFactor != "" {
			output += fmt.Sprintf("   Limiting: %s", plan.Limits.LimitingFactor)
		}
		output += "\n"
	}

	output += formatFleetUsage(result.FleetUsage)
	output += formatShortfall(result)

	for _, warn := range result.Warnings {
		output += fmt.Sprintf("  [%s] %s\n", styles.Severity(warn.Severity), warn.Message)
	}
	for _, rec := range result.Recommendations {
		output += fmt.Sprintf("  %s %s: %s\n", styles.Label.Render("suggestion"), rec.Title, rec.Description)
	}

	return strings.TrimRight(output, "\n")
}

func formatFleetUsage(usage []models.FleetUsage) string {
	if len(usage) == 0 {
		return ""
	}
	output := "\nFleet usage:\n"
	for _, u := range usage {
		output += fmt.Sprintf("  %-10s %d/%d\n", u.Type, u.Used, u.Available)
	}
	return output
}

func formatShortfall(result *models.AllocationResult) string {
	if result.Shortfall == nil {
		return ""
	}

	s := result.Shortfall
	output := fmt.Sprintf("\n%s %.0f lb not loaded (%d pallets, %d vehicles, %d pax)\n",
		styles.StatusCritical.Render("Shortfall:"), s.UnloadedWeightLb, s.Pallets, s.RollingStock, s.Passengers)
	output += fmt.Sprintf("  %s\n", s.Reason)

	const maxListed = 5
	for i, unloaded := range result.UnloadedItems {
		if i == maxListed {
			output += fmt.Sprintf("  ... and %d more\n", len(result.UnloadedItems)-maxListed)
			break
		}
		output += fmt.Sprintf("  - %s (%.0f lb): %s\n", unloaded.Item.Description, unloaded.Item.WeightLb, unloaded.Reason)
	}
	return output
}

// envelopeTag renders the CG envelope status with status coloring
func envelopeTag(balance models.BalanceReport) string {
	if balance.InEnvelope {
		return styles.StatusOK.Render("in envelope")
	}
	return styles.StatusCritical.Render(strings.ReplaceAll(balance.EnvelopeStatus, "_", " "))
}
