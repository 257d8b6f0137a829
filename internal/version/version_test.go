package version

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemVerBumps(t *testing.T) {
	v := SemVer{Major: 1, Minor: 2, Patch: 3}

	assert.Equal(t, SemVer{Major: 2}, v.BumpMajor())
	assert.Equal(t, SemVer{Major: 1, Minor: 3}, v.BumpMinor())
	assert.Equal(t, SemVer{Major: 1, Minor: 2, Patch: 4}, v.BumpPatch())

	// Repeated application keeps composing.
	assert.Equal(t, SemVer{Major: 1, Minor: 2, Patch: 5}, v.BumpPatch().BumpPatch())
}

func TestSemVerCompare(t *testing.T) {
	tests := map[string]struct {
		a, b SemVer
		want int
	}{
		"equal":             {SemVer{1, 2, 3}, SemVer{1, 2, 3}, 0},
		"major wins":        {SemVer{2, 0, 0}, SemVer{1, 9, 9}, 1},
		"minor breaks tie":  {SemVer{1, 3, 0}, SemVer{1, 2, 9}, 1},
		"patch breaks tie":  {SemVer{1, 2, 3}, SemVer{1, 2, 4}, -1},
		"zero against zero": {SemVer{}, SemVer{}, 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestCalVerNext(t *testing.T) {
	tests := map[string]struct {
		prev CalVer
		ref  Period
		want CalVer
	}{
		"same period advances sequence": {
			prev: CalVer{Year: 2024, Month: 5, Sequence: 3},
			ref:  Period{Year: 2024, Month: 5},
			want: CalVer{Year: 2024, Month: 5, Sequence: 4},
		},
		"new month resets sequence": {
			prev: CalVer{Year: 2024, Month: 5, Sequence: 3},
			ref:  Period{Year: 2024, Month: 6},
			want: CalVer{Year: 2024, Month: 6, Sequence: 0},
		},
		"new year resets sequence": {
			prev: CalVer{Year: 2024, Month: 12, Sequence: 7},
			ref:  Period{Year: 2025, Month: 1},
			want: CalVer{Year: 2025, Month: 1, Sequence: 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.prev.Next(tt.ref))
		})
	}
}

func TestCurrentPeriod(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, Period{Year: 2026, Month: 8}, CurrentPeriod(now))
}

func TestVersionStrings(t *testing.T) {
	assert.Equal(t, "1.2.3", SemVer{1, 2, 3}.String())
	assert.Equal(t, "0.0.0", SemVer{}.String())
	assert.Equal(t, "2024.05.3", CalVer{Year: 2024, Month: 5, Sequence: 3}.String())
	assert.Equal(t, "2024.12.0", CalVer{Year: 2024, Month: 12}.String())
}

func TestParseTag(t *testing.T) {
	tests := map[string]struct {
		tag     string
		prefix  string
		scheme  Scheme
		want    Version
		wantErr bool
	}{
		"full semver":               {tag: "v1.2.3", prefix: "v", scheme: SchemeSemVer, want: SemVer{1, 2, 3}},
		"semver without patch":      {tag: "v1.2", prefix: "v", scheme: SchemeSemVer, want: SemVer{1, 2, 0}},
		"semver major only":         {tag: "v2", prefix: "v", scheme: SchemeSemVer, want: SemVer{2, 0, 0}},
		"no prefix configured":      {tag: "1.2.3", prefix: "", scheme: SchemeSemVer, want: SemVer{1, 2, 3}},
		"scoped tag":                {tag: "service/v1.0.0", prefix: "v", scheme: SchemeSemVer, want: SemVer{1, 0, 0}},
		"calver":                    {tag: "v2024.05.3", prefix: "v", scheme: SchemeCalVer, want: CalVer{Year: 2024, Month: 5, Sequence: 3}},
		"calver unpadded month":     {tag: "v2024.5.3", prefix: "v", scheme: SchemeCalVer, want: CalVer{Year: 2024, Month: 5, Sequence: 3}},
		"garbage tag":               {tag: "release-candidate", prefix: "v", scheme: SchemeSemVer, wantErr: true},
		"semver tag under calver":   {tag: "v1.2.3", prefix: "v", scheme: SchemeCalVer, wantErr: true},
		"calver under semver":       {tag: "v2024.05.3", prefix: "v", scheme: SchemeSemVer, want: SemVer{2024, 5, 3}},
		"trailing noise is invalid": {tag: "v1.2.3-rc1", prefix: "v", scheme: SchemeSemVer, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseTag(tt.tag, tt.prefix, tt.scheme)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Rendering a version as a tag and parsing it back yields an equal version.
func TestTagRoundTrip(t *testing.T) {
	versions := []Version{
		SemVer{},
		SemVer{1, 2, 3},
		SemVer{Major: 10, Minor: 0, Patch: 42},
		CalVer{Year: 2024, Month: 5, Sequence: 3},
		CalVer{Year: 2026, Month: 12, Sequence: 0},
	}

	for _, v := range versions {
		tag := FormatTag(v, "v")
		parsed, err := ParseTag(tag, "v", v.Scheme())
		require.NoError(t, err, "tag %s", tag)
		assert.Equal(t, v, parsed, "tag %s", tag)
	}
}

func TestParseScheme(t *testing.T) {
	for in, want := range map[string]Scheme{"semver": SchemeSemVer, "CalVer": SchemeCalVer, " semver ": SchemeSemVer} {
		got, err := ParseScheme(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseScheme("chronover")
	assert.Error(t, err)
}
