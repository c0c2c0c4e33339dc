package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tegami-lpr/msfspmdg/internal/plan"
)

const testPLN = `<?xml version="1.0" encoding="UTF-8"?>
<SimBase.Document Type="AceXML" version="1,1">
    <FlightPlan.FlightPlan>
        <ATCWaypoint id="KXXX">
            <ATCWaypointType>Airport</ATCWaypointType>
            <WorldPosition>N40 0 0.0,W073 0 0.0,+0050</WorldPosition>
        </ATCWaypoint>
        <ATCWaypoint id="WPT1">
            <ATCWaypointType>SIDSTARAPP</ATCWaypointType>
            <WorldPosition>N40 30 0.0,W073 30 0.0,+5000</WorldPosition>
        </ATCWaypoint>
        <ATCWaypoint id="KYYY">
            <ATCWaypointType>Airport</ATCWaypointType>
            <WorldPosition>%s</WorldPosition>
        </ATCWaypoint>
    </FlightPlan.FlightPlan>
</SimBase.Document>
`

func writePLN(t *testing.T, pos string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "KXXXKYYY.pln")
	if err := os.WriteFile(path, []byte(strings.Replace(testPLN, "%s", pos, 1)), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvert(t *testing.T) {
	in := writePLN(t, "N41 0 0.0,W074 0 0.0,+0100")
	out := filepath.Join(t.TempDir(), "KXXXKYYY.rte")

	now := time.Date(2024, time.March, 5, 7, 9, 0, 0, time.UTC)
	if err := convert(in, out, now, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(string(b), "\n")
	if lines[0] != "Generated by MSFSPMDG 05 Mar 2024 07:09 UTC" {
		t.Errorf("got header %q", lines[0])
	}
	if lines[2] != "2" {
		t.Errorf("got count line %q, expected 2", lines[2])
	}
	if strings.Contains(string(b), "WPT1") {
		t.Errorf("procedure waypoint in output:\n%s", b)
	}
	if lines[4] != "KXXX" || lines[7] != "1 N 40.0000 W -73.0000 50" {
		t.Errorf("got departure %q %q", lines[4], lines[7])
	}
	if lines[18] != "KYYY" || lines[21] != "1 N 41.0000 W -74.0000 100" {
		t.Errorf("got arrival %q %q", lines[18], lines[21])
	}
}

func TestConvertMalformedCoordinate(t *testing.T) {
	in := writePLN(t, "N41 0,W074 0 0.0,+0100")
	out := filepath.Join(t.TempDir(), "KXXXKYYY.rte")

	err := convert(in, out, time.Now(), nil)
	var ferr *plan.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output file was created: %v", err)
	}
}
