// Package plan reads Microsoft Flight Simulator .pln flight plans.
package plan

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	xmlparser "github.com/tamerh/xml-stream-parser"
	"golang.org/x/net/html"

	"github.com/tegami-lpr/msfspmdg/internal/log"
)

const (
	flightPlanElement = "FlightPlan.FlightPlan"
	waypointElement   = "ATCWaypoint"
	typeElement       = "ATCWaypointType"
	positionElement   = "WorldPosition"
	identAttr         = "id"

	procedureType = "SIDSTARAPP"
)

// Child elements that newer plans use to tag SID, STAR and approach legs.
var procedureElements = []string{"DepartureFP", "ArrivalFP", "ApproachTypeFP"}

// ParseFile reads the flight plan at path; see Parse.
func ParseFile(path string, lg *log.Logger) ([]Waypoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	return Parse(f, lg.With("file", path))
}

// Parse reads a flight plan document and returns its waypoints in order,
// without procedure waypoints. The first and last remaining waypoints are
// endpoints and all others are en route.
func Parse(r io.Reader, lg *log.Logger) ([]Waypoint, error) {
	fp, err := readFlightPlan(r, lg)
	if err != nil {
		return nil, err
	}

	type fix struct {
		ident    string
		lat, lon float64
		alt      int
	}
	var fixes []fix
	for idx, wpt := range fp.Childs[waypointElement] {
		ident, ok := wpt.Attrs[identAttr]
		if !ok {
			return nil, &StructureError{Index: idx, Field: "attribute " + identAttr}
		}
		ident = html.UnescapeString(ident)

		wptType, ok := childText(wpt, typeElement)
		if !ok {
			return nil, &StructureError{Index: idx, Ident: ident, Field: "element " + typeElement}
		}
		if isProcedure(wpt, wptType) {
			lg.Debug("Skipping procedure waypoint", "ident", ident, "type", wptType)
			continue
		}

		pos, ok := childText(wpt, positionElement)
		if !ok {
			return nil, &StructureError{Index: idx, Ident: ident, Field: "element " + positionElement}
		}
		lat, lon, alt, err := decodePosition(pos)
		if err != nil {
			return nil, err
		}

		fixes = append(fixes, fix{ident: ident, lat: lat, lon: lon, alt: alt})
	}

	waypoints := make([]Waypoint, 0, len(fixes))
	for idx, f := range fixes {
		kind := EnRoute
		if idx == 0 || idx == len(fixes)-1 {
			kind = Endpoint
		}
		waypoints = append(waypoints, newWaypoint(f.ident, f.lat, f.lon, f.alt, kind))
	}

	lg.Info("Parsed flight plan", "waypoints", len(fp.Childs[waypointElement]),
		"kept", len(waypoints))
	return waypoints, nil
}

// readFlightPlan returns the first flight plan element in the document.
// The parser's channel is always drained so its goroutine can finish.
func readFlightPlan(r io.Reader, lg *log.Logger) (*xmlparser.XMLElement, error) {
	doc, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read", Path: "flight plan", Err: err}
	}
	if err := checkWellFormed(doc); err != nil {
		return nil, &DocumentError{Reason: "malformed markup", Err: err}
	}

	br := bufio.NewReaderSize(bytes.NewReader(doc), 65536)
	parser := xmlparser.NewXMLParser(br, flightPlanElement)

	var fp *xmlparser.XMLElement
	var perr error
	count := 0
	for el := range parser.Stream() {
		if el.Err != nil {
			if perr == nil {
				perr = el.Err
			}
			continue
		}
		count++
		if fp == nil {
			fp = el
		}
	}

	if perr != nil {
		return nil, &DocumentError{Reason: "malformed markup", Err: perr}
	}
	if fp == nil {
		return nil, &DocumentError{Reason: "no " + flightPlanElement + " element"}
	}
	if count > 1 {
		lg.Warnf("Found %d %s elements; using the first", count, flightPlanElement)
	}
	return fp, nil
}

// checkWellFormed walks every token of doc. The stream parser only looks
// inside the elements it returns, so unbalanced tags elsewhere would
// otherwise go unnoticed.
func checkWellFormed(doc []byte) error {
	d := xml.NewDecoder(bytes.NewReader(doc))
	// Only structure matters here; text is never used.
	d.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) { return input, nil }
	for {
		if _, err := d.Token(); err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// childText returns the entity-decoded text of the first child called name.
func childText(e xmlparser.XMLElement, name string) (string, bool) {
	c, ok := e.Childs[name]
	if !ok || len(c) == 0 {
		return "", false
	}
	return strings.TrimSpace(html.UnescapeString(c[0].InnerText)), true
}

func isProcedure(wpt xmlparser.XMLElement, wptType string) bool {
	if strings.EqualFold(wptType, procedureType) {
		return true
	}
	for _, name := range procedureElements {
		if _, ok := wpt.Childs[name]; ok {
			return true
		}
	}
	return false
}

// decodePosition splits a WorldPosition value, e.g.
// `N47° 26' 56.00",W122° 18' 33.00",+000433.00`.
func decodePosition(pos string) (lat, lon float64, alt int, err error) {
	fields := strings.Split(pos, ",")
	if len(fields) != 3 {
		err = &FormatError{Input: pos, Reason: "expected latitude, longitude and altitude"}
		return
	}

	if lat, err = DecodeDMS(fields[0]); err != nil {
		return
	}
	if lon, err = DecodeDMS(fields[1]); err != nil {
		return
	}
	alt, err = decodeAltitude(fields[2])
	return
}

// decodeAltitude drops the leading unit character and truncates to whole
// feet.
func decodeAltitude(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &FormatError{Input: s, Reason: "empty altitude"}
	}
	_, n := utf8.DecodeRuneInString(s)
	v, err := strconv.ParseFloat(s[n:], 64)
	if err != nil {
		return 0, &FormatError{Input: s, Reason: "invalid altitude", Err: err}
	}
	return int(v), nil
}
