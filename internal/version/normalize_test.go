package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeALT(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1.2.3-alt1", "1.2.3"},
		{"2:4.5.6-alt2", "4.5.6"},
		{"0.1-alt3", "0.1"},
		{"0.9-rc1-alt0.1", "0.9-rc1"},
		{"5.15.2-alt1.git4f2b1c", "5.15.2"},
		{"1.0", "1.0"},
		{"3:1.0-alt1-alt2", "1.0"},
		{"alt1", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := NormalizeALT(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeALT(got), "NormalizeALT is not idempotent for %q", tt.raw)
		})
	}
}

func TestNormalizeDebian(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1.2.3-4+git123", "1.2.3"},
		{"8.1.4", "8.1.4"},
		{"8.1.4-1", "8.1.4"},
		{"2.0+pve1", "2.0"},
		{"0.9~rc1-2", "0.9~rc1"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := NormalizeDebian(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeDebian(got), "NormalizeDebian is not idempotent for %q", tt.raw)
		})
	}
}
