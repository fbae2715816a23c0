package update

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuikit/lineup/internal/version"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name     string
		v1       string
		v2       string
		expected int
	}{
		{
			name:     "equal versions",
			v1:       "1.0.0",
			v2:       "1.0.0",
			expected: 0,
		},
		{
			name:     "v1 less than v2 - patch",
			v1:       "1.0.0",
			v2:       "1.0.1",
			expected: -1,
		},
		{
			name:     "v1 less than v2 - minor",
			v1:       "1.0.0",
			v2:       "1.1.0",
			expected: -1,
		},
		{
			name:     "v1 greater than v2",
			v1:       "2.0.0",
			v2:       "1.9.9",
			expected: 1,
		},
		{
			name:     "with v prefix",
			v1:       "v1.0.0",
			v2:       "v1.0.1",
			expected: -1,
		},
		{
			name:     "different lengths",
			v1:       "1.0",
			v2:       "1.0.0",
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, compareVersions(tt.v1, tt.v2))
		})
	}
}

func TestCheckDevelopmentVersion(t *testing.T) {
	// Development builds skip the network entirely.
	originalVersion := version.Version
	version.Version = "unknown"
	defer func() {
		version.Version = originalVersion
	}()

	info, err := Check(context.Background())
	require.NoError(t, err)
	require.NotNil(t, info)
	require.False(t, info.Available)
}

func TestLastCheckRoundTrip(t *testing.T) {
	dir := t.TempDir()

	// Nothing saved yet: a check is due.
	assert.True(t, ShouldCheck(dir))

	info := &Info{
		CurrentVersion: "1.0.0",
		LatestVersion:  "1.1.0",
		ReleaseURL:     "https://github.com/tuikit/lineup/releases/tag/v1.1.0",
		Available:      true,
	}
	require.NoError(t, SaveLastCheck(dir, info))

	// A fresh save means the next check is not due yet.
	assert.False(t, ShouldCheck(dir))

	last, err := loadLastCheck(dir)
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", last.LatestVersion)
	assert.True(t, last.Available)
	assert.WithinDuration(t, time.Now(), last.CheckedAt, time.Minute)
}
