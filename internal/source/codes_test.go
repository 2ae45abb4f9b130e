package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionCode(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: "11110", want: "11110", wantOK: true},
		{raw: "1110", want: "01110", wantOK: true},
		{raw: " 28140 ", want: "28140", wantOK: true},
		{raw: "28140.0", want: "28140", wantOK: true},
		{raw: "28140.5", wantOK: false},
		{raw: "", wantOK: false},
		{raw: "nan", wantOK: false},
		{raw: "서울", wantOK: false},
		{raw: "-1", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := RegionCode(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPublicRegionCode(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: "1111010100", want: "11110", wantOK: true},
		{raw: "2814012345", want: "28140", wantOK: true},
		{raw: "1111010100.0", want: "11110", wantOK: true},
		{raw: "111101010", want: "01111", wantOK: true},
		{raw: "", wantOK: false},
		{raw: "unknown", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := PublicRegionCode(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
