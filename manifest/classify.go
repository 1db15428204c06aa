// ABOUTME: Manifest classification splitting raw cargo lines by category
// ABOUTME: Honors explicit categories and falls back to description keywords

package manifest

import (
	"strings"

	"github.com/twaldron/airlift-planner/models"
)

// rollingStockKeywords mark cargo that drives or rolls aboard. Matched
// case-insensitively against the description.
var rollingStockKeywords = []string{
	"truck", "hmmwv", "humvee", "trailer", "vehicle", "lav",
	"stryker", "mrap", "jltv", "forklift", "loader", "tractor",
	"ambulance", "howitzer", "generator set", "water buffalo",
}

// prebuiltKeywords mark loads that arrive already built up on a platform.
var prebuiltKeywords = []string{"pallet", "463l", "tricon", "quadcon"}

// Classify splits manifest lines into the solver's input shape. Lines
// with a recognized explicit category keep it; anything else is
// inferred from the description, defaulting to palletizable loose cargo.
func Classify(items []models.CargoItem) models.ClassifiedManifest {
	var m models.ClassifiedManifest
	for _, item := range items {
		item.Category = categorize(item)
		item.Phase = normalizePhase(item.Phase)
		switch item.Category {
		case models.CategoryRollingStock:
			m.RollingStock = append(m.RollingStock, item)
		case models.CategoryPrebuiltPallet:
			m.PrebuiltPallets = append(m.PrebuiltPallets, item)
		case models.CategoryPax:
			m.PaxGroups = append(m.PaxGroups, item)
		default:
			m.LooseItems = append(m.LooseItems, item)
		}
	}
	return m
}

// categorize resolves one line's category. Explicit wins; a passenger
// count wins next because PAX lines often carry a unit name that would
// otherwise look like equipment.
func categorize(item models.CargoItem) string {
	switch strings.ToUpper(strings.TrimSpace(item.Category)) {
	case models.CategoryRollingStock:
		return models.CategoryRollingStock
	case models.CategoryPalletizable:
		return models.CategoryPalletizable
	case models.CategoryPrebuiltPallet:
		return models.CategoryPrebuiltPallet
	case models.CategoryPax:
		return models.CategoryPax
	}

	if item.PaxCount > 0 {
		return models.CategoryPax
	}

	desc := strings.ToLower(item.Description)
	for _, kw := range rollingStockKeywords {
		if strings.Contains(desc, kw) {
			return models.CategoryRollingStock
		}
	}
	for _, kw := range prebuiltKeywords {
		if strings.Contains(desc, kw) {
			return models.CategoryPrebuiltPallet
		}
	}
	return models.CategoryPalletizable
}

// normalizePhase folds the phase column to ADVON or MAIN.
func normalizePhase(phase string) string {
	switch strings.ToUpper(strings.TrimSpace(phase)) {
	case models.PhaseAdvon, "ADVANCE", "ADV":
		return models.PhaseAdvon
	default:
		return models.PhaseMain
	}
}
