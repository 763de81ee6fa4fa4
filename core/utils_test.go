package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanString(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		lower bool
		want  string
	}{
		{name: "empty", s: "", want: ""},
		{name: "whitespace only", s: " \t\n ", want: ""},
		{name: "trimmed", s: "  Grade 6 ", want: "Grade 6"},
		{name: "lowered", s: " Neema@Shule.CD ", lower: true, want: "neema@shule.cd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanString(tt.s, tt.lower))
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want []string
	}{
		{name: "empty", s: "", want: []string{}},
		{name: "whitespace only", s: "   ", want: []string{}},
		{name: "single item", s: "Amy", want: []string{"Amy"}},
		{name: "items are trimmed", s: " Amy,  Bob ,Carol", want: []string{"Amy", "Bob", "Carol"}},
		{name: "empty tokens survive", s: "Amy,,Bob", want: []string{"Amy", "", "Bob"}},
		{name: "trailing comma", s: "Amy,", want: []string{"Amy", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.s))
		})
	}
}
