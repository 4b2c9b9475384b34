package coverage

import (
	"strconv"
	"strings"
)

// formatRanges renders an ascending list of line numbers as a compact
// range string: consecutive runs collapse to "first-last", isolated
// values stay bare, e.g. [1 2 3 5 7 8 9] becomes "1-3,5,7-9". An empty
// list renders as "".
func formatRanges(sorted []int) string {
	if len(sorted) == 0 {
		return ""
	}

	var parts []string
	first := sorted[0]
	last := sorted[0]
	flush := func() {
		if first == last {
			parts = append(parts, strconv.Itoa(first))
			return
		}
		parts = append(parts, strconv.Itoa(first)+"-"+strconv.Itoa(last))
	}

	for _, item := range sorted[1:] {
		if item == last+1 {
			last = item
			continue
		}
		flush()
		first, last = item, item
	}
	flush()

	return strings.Join(parts, ",")
}
