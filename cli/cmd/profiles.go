// ABOUTME: Profiles command for the airlift CLI
// ABOUTME: Lists the aircraft types the backend can plan against

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
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List available aircraft profiles",
	Long:  `Display the aircraft types the backend can plan against, with payload, bay, pallet, and seating limits.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProfiles(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

// runProfiles fetches and prints the aircraft profile list
func runProfiles(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.ListProfiles(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatProfilesJSON(resp))
	} else {
		fmt.Fprintln(w, formatProfilesHuman(resp))
	}

	return 0
}

// formatProfilesHuman formats the profile list as a table
func formatProfilesHuman(resp *client.ProfilesResponse) string {
	output := fmt.Sprintf("%-10s %-24s %13s %11s %8s %6s\n",
		"TYPE", "NAME", "PAYLOAD (lb)", "BAY (in)", "PALLETS", "SEATS")

	for _, p := range resp.Profiles {
		output += fmt.Sprintf("%-10s %-24s %13.0f %5.0fx%-5.0f %8d %6d\n",
			p.Type, p.Name, p.MaxPayloadLb, p.BayLengthIn, p.BayWidthIn, p.PalletPositions, p.SeatCapacity)
	}

	output += fmt.Sprintf("\n%d aircraft type(s)", resp.Count)
	return output
}

// formatProfilesJSON formats the profile list as JSON
func formatProfilesJSON(resp *client.ProfilesResponse) string {
	data, _ := json.MarshalIndent(resp, "", "  ")
	return string(data)
}
