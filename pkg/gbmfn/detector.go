package gbmfn

import (
	"fmt"
	"strings"
)

// Detector identifies one member of the instrument's fixed detector set.
//
// The zero value is DetectorAll, meaning "no specific detector" — the state a
// Record is in when its filename carries the "all" token. Concrete detectors
// occupy 1..DetectorCount so that an uninitialized Record never aliases a
// real detector.
type Detector int

// DetectorAll is the zero value: the record covers all detectors rather than
// a specific one. It is not a member of AllDetectors().
const DetectorAll Detector = 0

// Concrete detectors in canonical enumeration order. Numeric indices used by
// the producing pipeline are Index() values 0..13, not these constants.
const (
	DetectorN0 Detector = iota + 1
	DetectorN1
	DetectorN2
	DetectorN3
	DetectorN4
	DetectorN5
	DetectorN6
	DetectorN7
	DetectorN8
	DetectorN9
	DetectorNA
	DetectorNB
	DetectorB0
	DetectorB1
)

// DetectorCount is the size of the fixed detector set.
const DetectorCount = 14

// detectorCodes holds the short codes in canonical order, indexed by Index().
var detectorCodes = [DetectorCount]string{
	"n0", "n1", "n2", "n3", "n4", "n5", "n6", "n7", "n8", "n9", "na", "nb",
	"b0", "b1",
}

// detectorNames holds the full names in canonical order, indexed by Index().
var detectorNames = [DetectorCount]string{
	"NAI_00", "NAI_01", "NAI_02", "NAI_03", "NAI_04", "NAI_05", "NAI_06",
	"NAI_07", "NAI_08", "NAI_09", "NAI_10", "NAI_11",
	"BGO_00", "BGO_01",
}

// AllDetectors returns the full detector set in canonical enumeration order.
// The returned slice is freshly allocated on each call.
func AllDetectors() []Detector {
	out := make([]Detector, DetectorCount)
	for i := range out {
		out[i] = Detector(i + 1)
	}
	return out
}

// DetectorFromIndex resolves a numeric detector index (0..13).
func DetectorFromIndex(index int) (Detector, error) {
	if index < 0 || index >= DetectorCount {
		return DetectorAll, fmt.Errorf("index %d: %w", index, ErrInvalidDetector)
	}
	return Detector(index + 1), nil
}

// DetectorFromName resolves a short code ("n0".."b1"), a full name
// ("NAI_00".."BGO_01"), or the "all" sentinel. Matching is case-insensitive.
func DetectorFromName(name string) (Detector, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == AllDetectorsToken {
		return DetectorAll, nil
	}
	for i := 0; i < DetectorCount; i++ {
		if n == detectorCodes[i] || n == strings.ToLower(detectorNames[i]) {
			return Detector(i + 1), nil
		}
	}
	return DetectorAll, fmt.Errorf("name %q: %w", name, ErrInvalidDetector)
}

// IsValid returns true if the Detector is a defined value, including DetectorAll.
func (d Detector) IsValid() bool {
	return d >= DetectorAll && d <= Detector(DetectorCount)
}

// IsSet returns true if the Detector names a concrete detector rather than
// the "all detectors" state.
func (d Detector) IsSet() bool {
	return d != DetectorAll && d.IsValid()
}

// Index returns the pipeline's numeric index (0..13), or -1 for DetectorAll
// and undefined values.
func (d Detector) Index() int {
	if !d.IsSet() {
		return -1
	}
	return int(d) - 1
}

// Code returns the short code used inside filenames ("n0".."b1").
// DetectorAll yields the "all" token.
func (d Detector) Code() string {
	if !d.IsSet() {
		return AllDetectorsToken
	}
	return detectorCodes[d.Index()]
}

// Name returns the canonical full name ("NAI_00".."BGO_01"), or the "all"
// token for DetectorAll.
func (d Detector) Name() string {
	if !d.IsSet() {
		return AllDetectorsToken
	}
	return detectorNames[d.Index()]
}

// String returns the short code form.
func (d Detector) String() string {
	return d.Code()
}
