// ABOUTME: Tests for the profiles command
// ABOUTME: Verifies profile table formatting and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/twaldron/airlift-planner/cli/internal/client"
	"github.com/twaldron/airlift-planner/models"
)

func profilesFixture() *client.ProfilesResponse {
	return &client.ProfilesResponse{
		Profiles: []models.AircraftProfile{
			{Type: "C-17A", Name: "Globemaster III", MaxPayloadLb: 170900, BayLengthIn: 1056, BayWidthIn: 216, PalletPositions: 18, SeatCapacity: 54},
			{Type: "C-130J", Name: "Super Hercules", MaxPayloadLb: 42000, BayLengthIn: 603, BayWidthIn: 119, PalletPositions: 6, SeatCapacity: 64},
		},
		Count: 2,
	}
}

func TestFormatProfilesHuman(t *testing.T) {
	output := formatProfilesHuman(profilesFixture())

	if !bytes.Contains([]byte(output), []byte("C-17A")) {
		t.Error("expected output to contain C-17A")
	}
	if !bytes.Contains([]byte(output), []byte("PAYLOAD")) {
		t.Error("expected output to contain the payload column header")
	}
	if !bytes.Contains([]byte(output), []byte("2 aircraft type(s)")) {
		t.Error("expected output to contain the type count")
	}
}

func TestFormatProfilesJSON(t *testing.T) {
	output := formatProfilesJSON(profilesFixture())

	var parsed client.ProfilesResponse
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Count != 2 {
		t.Errorf("expected count 2, got %d", parsed.Count)
	}
}

func TestProfilesCommand_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profilesFixture())
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runProfiles(context.Background(), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("C-130J")) {
		t.Error("expected C-130J in output")
	}
}

func TestProfilesCommand_ConnectionError(t *testing.T) {
	apiURL = "http://localhost:99999"
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runProfiles(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Error:")) {
		t.Error("expected error message in output")
	}
}
