// ABOUTME: Check command for the airlift CLI
// ABOUTME: Validates allocation thresholds for CI/CD pipelines

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/twaldron/airlift-planner/cli/internal/client"
	"github.com/twaldron/airlift-planner/models"
)

var (
	checkManifestPath string
	checkAircraftType string
	checkFleetSpec    string
	maxAircraft       int
	requireFeasible   bool
	minUtilization    float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check allocation thresholds",
	Long: `Solve a manifest and exit non-zero if the plan misses any threshold.

Exit codes:
  0 - All checks passed
  1 - One or more thresholds exceeded
  2 - Error (connectivity, bad manifest, invalid input)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCheck(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkManifestPath, "manifest", "", "Manifest file (.json or .xlsx)")
	checkCmd.Flags().StringVar(&checkAircraftType, "aircraft", "", "Single aircraft type with unlimited airframes")
	checkCmd.Flags().StringVar(&checkFleetSpec, "fleet", "", "Fleet mix as TYPE=COUNT pairs, e.g. \"C-17A=3,C-5M=1\"")
	checkCmd.Flags().IntVar(&maxAircraft, "max-aircraft", 0, "Fail when the plan needs more airframes than this (0 = no limit)")
	checkCmd.Flags().BoolVar(&requireFeasible, "require-feasible", true, "Fail when any cargo or passengers are left behind")
	checkCmd.Flags().Float64Var(&minUtilization, "min-utilization", 0, "Fail when mean payload utilization is below this percentage")
}

// checkResult represents the result of a single threshold check
type checkResult struct {
	name      string
	value     float64
	threshold float64
	unit      string
	passed    bool
}

// runCheck solves the manifest, runs the threshold checks, and returns exit code
func runCheck(ctx context.Context, w io.Writer) int {
	if err := validateCheckFlags(maxAircraft, minUtilization); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	c := client.New(GetAPIURL())

	input, err := buildAllocationRequest(ctx, c, checkManifestPath, checkAircraftType, checkFleetSpec)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	result, err := c.Allocate(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	results := performChecks(result)

	if IsJSONOutput() {
		fmt.Fprintln(w, formatCheckJSON(results))
	} else {
		fmt.Fprintln(w, formatCheckHuman(results))
	}

	_, failed := countResults(results)
	if failed > 0 {
		return 1
	}
	return 0
}

// validateCheckFlags ensures threshold values are valid
func validateCheckFlags(aircraft int, utilization float64) error {
	if aircraft < 0 {
		return fmt.Errorf("--max-aircraft must not be negative")
	}
	if utilization < 0 || utilization > 100 {
		return fmt.Errorf("--min-utilization must be between 0 and 100")
	}
	return nil
}

// performChecks runs the configured threshold checks against the result
func performChecks(result *models.AllocationResult) []checkResult {
	var results []checkResult

	if requireFeasible {
		feasibleCheck := checkResult{
			name:      "Unloaded cargo",
			value:     unloadedWeight(result),
			threshold: 0,
			unit:      " lb",
			passed:    result.Feasible,
		}
		results = append(results, feasibleCheck)
	}

	if maxAircraft > 0 {
		aircraftCheck := checkResult{
			name:      "Aircraft required",
			value:     float64(result.TotalAircraft),
			threshold: float64(maxAircraft),
			unit:      "",
			passed:    result.TotalAircraft <= maxAircraft,
		}
		results = append(results, aircraftCheck)
	}

	if minUtilization > 0 {
		utilCheck := checkResult{
			name:      "Payload utilization",
			value:     meanPayloadUtil(result),
			threshold: minUtilization,
			unit:      "%",
			passed:    meanPayloadUtil(result) >= minUtilization,
		}
		results = append(results, utilCheck)
	}

	return results
}

// unloadedWeight returns the shortfall weight, zero for feasible plans
func unloadedWeight(result *models.AllocationResult) float64 {
	if result.Shortfall == nil {
		return 0
	}
	return result.Shortfall.UnloadedWeightLb
}

// meanPayloadUtil averages payload utilization across planned aircraft
func meanPayloadUtil(result *models.AllocationResult) float64 {
	if len(result.Aircraft) == 0 {
		return 0
	}
	var sum float64
	for _, plan := range result.Aircraft {
		sum += plan.PayloadUtilPct
	}
	return sum / float64(len(result.Aircraft))
}

// countResults returns the count of passed and failed checks
func countResults(results []checkResult) (passed, failed int) {
	for _, r := range results {
		if r.passed {
			passed++
		} else {
			failed++
		}
	}
	return
}

// formatCheckHuman formats check results for human readability
func formatCheckHuman(results []checkResult) string {
	var output string

	for _, r := range results {
		symbol := "✓"
		if !r.passed {
			symbol = "✗"
		}
		output += fmt.Sprintf("%s %s: %.0f%s (threshold: %.0f%s)\n",
			symbol, r.name, r.value, r.unit, r.threshold, r.unit)
	}

	passed, failed := countResults(results)
	if failed > 0 {
		output += fmt.Sprintf("\nFAILED: %d check(s) exceeded threshold", failed)
	} else {
		output += fmt.Sprintf("\nPASSED: All %d check(s) within thresholds", passed)
	}

	return output
}

// formatCheckJSON formats check results as JSON
func formatCheckJSON(results []checkResult) string {
	_, failed := countResults(results)

	checks := make([]map[string]interface{}, len(results))
	for i, r := range results {
		checks[i] = map[string]interface{}{
			"name":      r.name,
			"value":     r.value,
			"threshold": r.threshold,
			"unit":      r.unit,
			"passed":    r.passed,
		}
	}

	status := "passed"
	if failed > 0 {
		status = "failed"
	}

	output := map[string]interface{}{
		"status": status,
		"checks": checks,
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
