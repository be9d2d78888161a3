package main

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionFromSettings(t *testing.T) {
	tests := []struct {
		name       string
		settings   []debug.BuildSetting
		wantCommit string
		wantDate   string
	}{
		{
			name:       "empty settings",
			settings:   nil,
			wantCommit: "unknown",
			wantDate:   "unknown",
		},
		{
			name: "full revision and time",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc1234def5678"},
				{Key: "vcs.time", Value: "2026-01-15T10:00:00Z"},
			},
			wantCommit: "abc1234",
			wantDate:   "2026-01-15T10:00:00Z",
		},
		{
			name: "dirty working tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc1234def5678"},
				{Key: "vcs.time", Value: "2026-01-15T10:00:00Z"},
				{Key: "vcs.modified", Value: "true"},
			},
			wantCommit: "abc1234-dirty",
			wantDate:   "2026-01-15T10:00:00Z",
		},
		{
			name: "short revision ignored",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
			},
			wantCommit: "unknown",
			wantDate:   "unknown",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotCommit, gotDate := versionFromSettings(tc.settings)
			assert.Equal(t, tc.wantCommit, gotCommit)
			assert.Equal(t, tc.wantDate, gotDate)
		})
	}
}
