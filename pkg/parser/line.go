package parser

import "strings"

// SplitLine splits a raw line into timestamp, level and message fields.
//
// The timestamp runs up to the second space (it contains one itself, between
// date and time), the level sits between the second and third space, and the
// message is everything after the third. Lines with fewer than three spaces
// return ok == false.
func SplitLine(line string) (Fields, bool) {
	first := strings.IndexByte(line, ' ')
	if first < 0 {
		return Fields{}, false
	}
	second := nextSpace(line, first+1)
	if second < 0 {
		return Fields{}, false
	}
	third := nextSpace(line, second+1)
	if third < 0 {
		return Fields{}, false
	}

	return Fields{
		Timestamp: line[:second],
		Level:     line[second+1 : third],
		Message:   line[third+1:],
	}, true
}

func nextSpace(s string, from int) int {
	i := strings.IndexByte(s[from:], ' ')
	if i < 0 {
		return -1
	}
	return from + i
}
