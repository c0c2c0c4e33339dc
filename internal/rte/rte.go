// Package rte writes PMDG .rte route files.
package rte

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tegami-lpr/msfspmdg/internal/plan"
)

const (
	generator  = "MSFSPMDG"
	timeLayout = "02 Jan 2006 15:04"

	legDirect = "DIRECT"
	separator = "-----"
)

// Format returns the route file text for the given waypoints; now is the
// generation time written in the header.
func Format(wps []plan.Waypoint, now time.Time) string {
	lines := []string{
		fmt.Sprintf("Generated by %s %s UTC", generator, now.UTC().Format(timeLayout)),
		"",
		strconv.Itoa(len(wps)),
		"",
	}

	for _, wpt := range wps {
		endpoint := wpt.Kind == plan.Endpoint

		alt := plan.CruiseAltitude
		if endpoint {
			alt = wpt.Altitude
		}

		lines = append(lines,
			wpt.Ident,
			strconv.Itoa(int(wpt.Kind)),
			legDirect,
			fmt.Sprintf("1 N %.4f W %.4f %d", wpt.Latitude, wpt.Longitude, alt),
			separator,
			flag(endpoint), // departure
			"0")

		if endpoint {
			// departure vs arrival is decided by the ident alone
			lines = append(lines,
				"",
				flag(wpt.Ident == wps[0].Ident),
				strconv.Itoa(alt),
				plan.NoAltitudeType,
				strconv.Itoa(plan.NoRestriction),
				strconv.Itoa(plan.NoRestriction),
				"")
		} else {
			lines = append(lines, "0", "")
		}
	}

	return strings.Join(lines, "\n")
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// WriteFile creates or truncates path and writes text to it.
func WriteFile(path string, text string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return &plan.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &plan.IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if _, err = fmt.Fprint(file, text); err != nil {
		return &plan.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
