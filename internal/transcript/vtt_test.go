package transcript

import "testing"

func TestParseVTT(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name: "basic cues",
			payload: `WEBVTT

00:00:00.000 --> 00:00:02.000
hello there

00:00:02.000 --> 00:00:04.000
general kenobi`,
			want: "hello there general kenobi",
		},
		{
			name: "numeric cue indices dropped",
			payload: `WEBVTT

1
00:00:00.000 --> 00:00:02.000
first line

2
00:00:02.000 --> 00:00:04.000
second line`,
			want: "first line second line",
		},
		{
			name: "styling tags stripped",
			payload: `WEBVTT

00:00:00.000 --> 00:00:02.000
<b>bold</b> and <i>italic</i> and <c>colored</c>`,
			want: "bold and italic and colored",
		},
		{
			name: "note blocks dropped",
			payload: `WEBVTT

NOTE this is metadata

00:00:00.000 --> 00:00:02.000
kept line`,
			want: "kept line",
		},
		{
			name: "repeated auto-caption lines pass through",
			payload: `WEBVTT

00:00:00.000 --> 00:00:02.000
so today we are

00:00:02.000 --> 00:00:04.000
so today we are`,
			want: "so today we are so today we are",
		},
		{
			name:    "empty payload",
			payload: "",
			want:    "",
		},
		{
			name: "header metadata lines pass through",
			payload: `WEBVTT
Kind: captions`,
			want: "Kind: captions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseVTT(tt.payload); got != tt.want {
				t.Errorf("ParseVTT() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"42", true},
		{"0", true},
		{"", false},
		{"12a", false},
		{"00:00", false},
	}

	for _, tt := range tests {
		if got := isNumeric(tt.in); got != tt.want {
			t.Errorf("isNumeric(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
