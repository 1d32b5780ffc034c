package main

import (
	"reflect"
	"testing"
	"time"

	"github.com/drewacevedo/ytsummary/internal/youtube"
)

func TestComputeCutoff(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days int
		mode youtube.Mode
		want time.Time
	}{
		{
			name: "channel mode one day",
			days: 1,
			mode: youtube.ModeChannelHandles,
			want: now.AddDate(0, 0, -1),
		},
		{
			name: "channel mode zero days still filters from now",
			days: 0,
			mode: youtube.ModeChannelHandles,
			want: now,
		},
		{
			name: "explicit ids with window",
			days: 7,
			mode: youtube.ModeExplicitIDs,
			want: now.AddDate(0, 0, -7),
		},
		{
			name: "explicit ids without window have no cutoff",
			days: 0,
			mode: youtube.ModeExplicitIDs,
			want: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeCutoff(now, tt.days, tt.mode); !got.Equal(tt.want) {
				t.Errorf("computeCutoff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitInputs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "comma separated",
			args: []string{"@chanA,@chanB"},
			want: []string{"@chanA", "@chanB"},
		},
		{
			name: "space separated args",
			args: []string{"@chanA", "@chanB"},
			want: []string{"@chanA", "@chanB"},
		},
		{
			name: "mixed separators and empties",
			args: []string{"@chanA, @chanB", ",", "V123"},
			want: []string{"@chanA", "@chanB", "V123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitInputs(tt.args); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitInputs() = %v, want %v", got, tt.want)
			}
		})
	}
}
