package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRanges(t *testing.T) {
	cases := []struct {
		name  string
		input []int
		want  string
	}{
		{"empty", nil, ""},
		{"single value", []int{5}, "5"},
		{"single run", []int{2, 3, 4}, "2-4"},
		{"mixed runs and singletons", []int{1, 2, 3, 5, 7, 8, 9}, "1-3,5,7-9"},
		{"pair run", []int{4, 5}, "4-5"},
		{"all isolated", []int{1, 3, 5}, "1,3,5"},
		{"singleton before run", []int{1, 3, 4, 5}, "1,3-5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatRanges(tc.input))
		})
	}
}
