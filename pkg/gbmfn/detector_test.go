package gbmfn_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/skyburst/gbmfn/pkg/gbmfn"
)

func TestDetectorCanonicalOrder(t *testing.T) {
	wantCodes := []string{
		"n0", "n1", "n2", "n3", "n4", "n5", "n6", "n7", "n8", "n9", "na", "nb",
		"b0", "b1",
	}
	wantNames := []string{
		"NAI_00", "NAI_01", "NAI_02", "NAI_03", "NAI_04", "NAI_05", "NAI_06",
		"NAI_07", "NAI_08", "NAI_09", "NAI_10", "NAI_11",
		"BGO_00", "BGO_01",
	}

	dets := gbmfn.AllDetectors()
	if len(dets) != gbmfn.DetectorCount {
		t.Fatalf("AllDetectors() returned %d detectors, want %d", len(dets), gbmfn.DetectorCount)
	}

	for i, d := range dets {
		if d.Index() != i {
			t.Errorf("detector %d: Index() = %d, want %d", i, d.Index(), i)
		}
		if d.Code() != wantCodes[i] {
			t.Errorf("detector %d: Code() = %q, want %q", i, d.Code(), wantCodes[i])
		}
		if d.Name() != wantNames[i] {
			t.Errorf("detector %d: Name() = %q, want %q", i, d.Name(), wantNames[i])
		}
		if !d.IsSet() {
			t.Errorf("detector %d: IsSet() = false, want true", i)
		}
	}
}

func TestAllDetectorsIsFresh(t *testing.T) {
	a := gbmfn.AllDetectors()
	a[0] = gbmfn.DetectorB1

	b := gbmfn.AllDetectors()
	if b[0] != gbmfn.DetectorN0 {
		t.Error("mutating the result of AllDetectors() leaked into a later call")
	}
}

func TestDetectorResolutionAgreement(t *testing.T) {
	// Every valid index must resolve to the same detector as its short code
	// and its full name, in upper and lower case.
	for i := 0; i < gbmfn.DetectorCount; i++ {
		byIndex, err := gbmfn.DetectorFromIndex(i)
		if err != nil {
			t.Fatalf("DetectorFromIndex(%d): %v", i, err)
		}

		for _, name := range []string{
			byIndex.Code(),
			strings.ToUpper(byIndex.Code()),
			byIndex.Name(),
			strings.ToLower(byIndex.Name()),
		} {
			byName, err := gbmfn.DetectorFromName(name)
			if err != nil {
				t.Fatalf("DetectorFromName(%q): %v", name, err)
			}
			if byName != byIndex {
				t.Errorf("DetectorFromName(%q) = %v, want %v", name, byName, byIndex)
			}
		}
	}
}

func TestDetectorFromIndexOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, gbmfn.DetectorCount, 100} {
		_, err := gbmfn.DetectorFromIndex(idx)
		if !errors.Is(err, gbmfn.ErrInvalidDetector) {
			t.Errorf("DetectorFromIndex(%d) error = %v, want ErrInvalidDetector", idx, err)
		}
	}
}

func TestDetectorFromName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  gbmfn.Detector
		wantError bool
	}{
		{name: "short code", input: "n0", expected: gbmfn.DetectorN0},
		{name: "short code upper", input: "NB", expected: gbmfn.DetectorNB},
		{name: "bgo short code", input: "b1", expected: gbmfn.DetectorB1},
		{name: "full name", input: "NAI_09", expected: gbmfn.DetectorN9},
		{name: "full name lower", input: "bgo_00", expected: gbmfn.DetectorB0},
		{name: "all sentinel", input: "all", expected: gbmfn.DetectorAll},
		{name: "all sentinel upper", input: "ALL", expected: gbmfn.DetectorAll},
		{name: "surrounding whitespace", input: "  n4 ", expected: gbmfn.DetectorN4},
		{name: "unknown code", input: "n12", wantError: true},
		{name: "unknown name", input: "NAI_12", wantError: true},
		{name: "empty", input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gbmfn.DetectorFromName(tt.input)
			if tt.wantError {
				if !errors.Is(err, gbmfn.ErrInvalidDetector) {
					t.Fatalf("DetectorFromName(%q) error = %v, want ErrInvalidDetector", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectorFromName(%q): %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("DetectorFromName(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDetectorAllBehavior(t *testing.T) {
	var d gbmfn.Detector // zero value

	if d != gbmfn.DetectorAll {
		t.Fatal("zero value is not DetectorAll")
	}
	if d.IsSet() {
		t.Error("DetectorAll.IsSet() = true, want false")
	}
	if !d.IsValid() {
		t.Error("DetectorAll.IsValid() = false, want true")
	}
	if d.Index() != -1 {
		t.Errorf("DetectorAll.Index() = %d, want -1", d.Index())
	}
	if d.Code() != gbmfn.AllDetectorsToken {
		t.Errorf("DetectorAll.Code() = %q, want %q", d.Code(), gbmfn.AllDetectorsToken)
	}

	for _, d := range gbmfn.AllDetectors() {
		if d == gbmfn.DetectorAll {
			t.Error("AllDetectors() contains DetectorAll")
		}
	}
}

func TestDetectorIsValid(t *testing.T) {
	if gbmfn.Detector(-1).IsValid() {
		t.Error("Detector(-1).IsValid() = true")
	}
	if gbmfn.Detector(gbmfn.DetectorCount + 1).IsValid() {
		t.Error("out-of-range detector reported valid")
	}
}
