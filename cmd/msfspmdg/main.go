package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/tegami-lpr/msfspmdg/internal/log"
	"github.com/tegami-lpr/msfspmdg/internal/plan"
	"github.com/tegami-lpr/msfspmdg/internal/rte"
)

var (
	app    = kingpin.New("msfspmdg", "Convert MSFS flight plan to PMDG .rte flight plan.")
	input  = app.Arg("input", "Input MSFS flight plan (.pln)").Required().ExistingFile()
	output = app.Arg("output", "Output PMDG flight plan (.rte)").Required().String()
)

func errorExit(lg *log.Logger, msg string, err error) {
	if err == nil {
		return
	}
	lg.Error(msg, "error", err)
	fmt.Fprintf(os.Stderr, "msfspmdg: %s: %v\n", msg, err)
	os.Exit(1)
}

// convert parses inputFile and writes the route to outputFile. Nothing is
// written unless the whole plan parses.
func convert(inputFile, outputFile string, now time.Time, lg *log.Logger) error {
	waypoints, err := plan.ParseFile(inputFile, lg)
	if err != nil {
		return err
	}
	lg.Infof("%s: %d waypoints", inputFile, len(waypoints))

	return rte.WriteFile(outputFile, rte.Format(waypoints, now))
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	lg := log.New("info", "")
	lg.Info("Converting", "input", *input, "output", *output)

	err := convert(*input, *output, time.Now(), lg)
	errorExit(lg, "conversion failed", err)

	fmt.Printf("Converted %s to %s\n", *input, *output)
}
