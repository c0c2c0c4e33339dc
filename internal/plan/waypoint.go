package plan

// WaypointKind is the PMDG waypoint type code.
type WaypointKind int

const (
	Endpoint WaypointKind = 1 // departure or arrival airport
	EnRoute  WaypointKind = 5
)

const (
	// CruiseAltitude is used for every en-route waypoint, whatever the
	// plan says.
	CruiseAltitude = 35000
	// NoRestriction marks an unset altitude or speed restriction.
	NoRestriction = -1000000
	// NoAltitudeType is the altitude restriction type placeholder.
	NoAltitudeType = "-"
)

type Waypoint struct {
	Ident     string  // waypoint ident
	Latitude  float64 // decimal degrees, negative is south
	Longitude float64 // decimal degrees, negative is west
	Altitude  int     // feet
	Kind      WaypointKind

	// RestrictionPhase is 1 for endpoints. The route writer works out
	// departure vs arrival itself and never reads it.
	RestrictionPhase        int
	RestrictionAltitudeType string
	RestrictionAltitude     int
	RestrictionSpeed        int
}

func (k WaypointKind) String() string {
	switch k {
	case Endpoint:
		return "endpoint"
	case EnRoute:
		return "enroute"
	default:
		return "unknown"
	}
}

// newWaypoint fills in the kind dependent fields.
func newWaypoint(ident string, lat, lon float64, alt int, kind WaypointKind) Waypoint {
	wpt := Waypoint{
		Ident:                   ident,
		Latitude:                lat,
		Longitude:               lon,
		Kind:                    kind,
		RestrictionAltitudeType: NoAltitudeType,
		RestrictionSpeed:        NoRestriction,
	}
	if kind == Endpoint {
		wpt.Altitude = alt
		wpt.RestrictionPhase = 1
		wpt.RestrictionAltitude = alt
	} else {
		wpt.Altitude = CruiseAltitude
		wpt.RestrictionAltitude = NoRestriction
	}
	return wpt
}
