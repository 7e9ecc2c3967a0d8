// Package coerce converts loosely formatted textual values to numbers.
package coerce

import "strconv"

// ToInt converts a textual count to an integer. Characters other than
// digits and a leading minus sign are ignored, so "1,234" and "3 files"
// both convert. Input with no digits returns 0 and false.
func ToInt(s string) (int, bool) {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c == '-' && len(b) == 0 {
			b = append(b, c)
		}
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, false
	}
	return n, true
}
