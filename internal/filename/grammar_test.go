package filename

import (
	"path/filepath"
	"testing"

	"github.com/skyburst/gbmfn/pkg/gbmfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected gbmfn.Record
	}{
		{
			name:  "trigger product",
			input: "glg_cspec_n0_bn090131090_v00.pha",
			expected: gbmfn.Record{
				DataType:  "cspec",
				Detector:  gbmfn.DetectorN0,
				Trigger:   true,
				UID:       "090131090",
				Version:   0,
				Extension: "pha",
			},
		},
		{
			name:  "daily product with date-id uid",
			input: "glg_ctime_nb_190305_v12.pha",
			expected: gbmfn.Record{
				DataType:  "ctime",
				Detector:  gbmfn.DetectorNB,
				UID:       "190305",
				Version:   12,
				Extension: "pha",
			},
		},
		{
			name:  "all-detectors product",
			input: "glg_trigdat_all_bn170817529_v01.fit",
			expected: gbmfn.Record{
				DataType:  "trigdat",
				Detector:  gbmfn.DetectorAll,
				Trigger:   true,
				UID:       "170817529",
				Version:   1,
				Extension: "fit",
			},
		},
		{
			name:  "uid with three-digit sub-index",
			input: "glg_poshist_all_170101_123_v02.fit",
			expected: gbmfn.Record{
				DataType:  "poshist",
				Detector:  gbmfn.DetectorAll,
				UID:       "170101_123",
				Version:   2,
				Extension: "fit",
			},
		},
		{
			name:  "uid with digit-letter suffix",
			input: "glg_tte_b1_171115_23z_v00.fit",
			expected: gbmfn.Record{
				DataType:  "tte",
				Detector:  gbmfn.DetectorB1,
				UID:       "171115_23z",
				Version:   0,
				Extension: "fit",
			},
		},
		{
			name:  "meta between uid and version",
			input: "glg_cspec_n5_bn090131090_snippet_v03.pha",
			expected: gbmfn.Record{
				DataType:  "cspec",
				Detector:  gbmfn.DetectorN5,
				Trigger:   true,
				UID:       "090131090",
				Meta:      "_snippet",
				Version:   3,
				Extension: "pha",
			},
		},
		{
			name: "underscored data type",
			// The data_type capture is greedy, so internal underscores stay
			// inside it as long as a detector token follows.
			input: "glg_lat_position_all_190305_v00.fit",
			expected: gbmfn.Record{
				DataType:  "lat_position",
				Detector:  gbmfn.DetectorAll,
				UID:       "190305",
				Version:   0,
				Extension: "fit",
			},
		},
		{
			name: "meta absorbing an almost-uid tail",
			// "170101_123abc" is no accepted UID shape; the uid backs off to
			// the bare date-id and the rest lands in meta.
			input: "glg_poshist_all_170101_123abc_v00.fit",
			expected: gbmfn.Record{
				DataType:  "poshist",
				Detector:  gbmfn.DetectorAll,
				UID:       "170101",
				Meta:      "_123abc",
				Version:   0,
				Extension: "fit",
			},
		},
		{
			name:  "dotted extension",
			input: "glg_tte_n9_bn120226871_v01.fit.gz",
			expected: gbmfn.Record{
				DataType:  "tte",
				Detector:  gbmfn.DetectorN9,
				Trigger:   true,
				UID:       "120226871",
				Version:   1,
				Extension: "fit.gz",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rec)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	// For every name the grammar accepts, serializing the parsed record must
	// reproduce the input byte for byte.
	names := []string{
		"glg_cspec_n0_bn090131090_v00.pha",
		"glg_cspec_b0_bn090131090_v00.pha",
		"glg_ctime_nb_190305_v12.pha",
		"glg_trigdat_all_bn170817529_v01.fit",
		"glg_poshist_all_170101_123_v02.fit",
		"glg_tte_b1_171115_23z_v00.fit",
		"glg_cspec_n5_bn090131090_snippet_v03.pha",
		"glg_tte_n9_bn120226871_v01.fit.gz",
		"glg_lat_position_all_190305_v00.fit",
	}

	for _, name := range names {
		rec, err := Parse(name)
		require.NoError(t, err, "parsing %s", name)
		assert.Equal(t, name, rec.Basename(), "round-trip of %s", name)
	}
}

func TestParseNoMatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "unrelated file", input: "notes.txt"},
		{name: "wrong prefix", input: "gll_cspec_n0_bn090131090_v00.pha"},
		{name: "missing detector", input: "glg_cspec_bn090131090_v00.pha"},
		{name: "bad detector token", input: "glg_cspec_n0x_bn090131090_v00.pha"},
		{name: "uid too short", input: "glg_cspec_n0_bn09013_v00.pha"},
		{name: "one-digit version", input: "glg_cspec_n0_bn090131090_v0.pha"},
		{name: "three-digit version", input: "glg_cspec_n0_bn090131090_v000.pha"},
		{name: "missing extension", input: "glg_cspec_n0_bn090131090_v00"},
		{name: "missing version", input: "glg_cspec_n0_bn090131090.pha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, gbmfn.ErrNoMatch)
			assert.Contains(t, err.Error(), tt.input)
		})
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	rec, err := Parse("GLG_CSPEC_N0_BN090131090_V00.PHA")
	require.NoError(t, err)
	assert.Equal(t, gbmfn.DetectorN0, rec.Detector)
	assert.True(t, rec.Trigger)
	assert.Equal(t, "090131090", rec.UID)
}

func TestFromPath(t *testing.T) {
	t.Run("sets directory from the path", func(t *testing.T) {
		p := filepath.Join("data", "bn090131090", "glg_cspec_n0_bn090131090_v00.pha")
		rec, err := FromPath(p)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("data", "bn090131090"), rec.Directory)
		assert.Equal(t, p, rec.FullPath())
	})

	t.Run("bare basename leaves directory empty", func(t *testing.T) {
		rec, err := FromPath("glg_cspec_n0_bn090131090_v00.pha")
		require.NoError(t, err)
		assert.Empty(t, rec.Directory)
	})

	t.Run("non-conforming basename", func(t *testing.T) {
		_, err := FromPath(filepath.Join("data", "README.md"))
		assert.ErrorIs(t, err, gbmfn.ErrNoMatch)
	})
}
