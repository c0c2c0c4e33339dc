package plan

import (
	"strconv"
	"strings"
	"unicode"
)

// DecodeDMS converts a hemisphere-prefixed degrees/minutes/seconds string
// such as `N47° 26' 56.00"` to signed decimal degrees. Anything besides
// digits, '.' and whitespace after the hemisphere letter is ignored.
func DecodeDMS(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &FormatError{Input: s, Reason: "empty coordinate"}
	}

	hemisphere := s[0]
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s[1:])

	fields := strings.Fields(cleaned)
	if len(fields) != 3 {
		return 0, &FormatError{Input: s, Reason: "expected degrees, minutes and seconds, got " +
			strconv.Itoa(len(fields)) + " values"}
	}

	var dms [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, &FormatError{Input: s, Reason: "invalid number " + strconv.Quote(f), Err: err}
		}
		dms[i] = v
	}

	deg := dms[0] + dms[1]/60 + dms[2]/3600
	if hemisphere == 'S' || hemisphere == 'W' {
		deg = -deg
	}
	return deg, nil
}
