package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil stays nil", nil, nil},
		{"broker list with spaces", []string{" broker-1:9092", "broker-2:9092 "}, []string{"broker-1:9092", "broker-2:9092"}},
		{"repeats keep first position", []string{"b:9092", "a:9092", "b:9092"}, []string{"b:9092", "a:9092"}},
		{"blanks dropped", []string{"", "  ", "a:9092"}, []string{"a:9092"}},
		{"only blanks", []string{" ", ""}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeAndTrim(tt.in))
		})
	}
}
