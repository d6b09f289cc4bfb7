package formatting_test

import (
	"testing"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/formatting"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"2048", 2048, false},
		{"50MB", 50 * 1024 * 1024, false},
		{"1.5 gb", 1536 * 1024 * 1024, false},
		{" 10 kb ", 10 * 1024, false},
		{"", 0, true},
		{"ten MB", 0, true},
		{"5 XB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n         int64
		precision int
		want      string
	}{
		{0, 1, "0 B"},
		{512, 0, "512 B"},
		{1536, 1, "1.5 KB"},
		{50 * 1024 * 1024, 0, "50 MB"},
		{50 * 1024 * 1024, -3, "50 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
