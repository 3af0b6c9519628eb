package http1

import "math"

// parseContentLength accepts decimal digits only, so signs, spaces and empty values are
// all rejected. Values not fitting into int are rejected too.
func parseContentLength(raw string) (n int, ok bool) {
	if len(raw) == 0 {
		return 0, false
	}

	for i := 0; i < len(raw); i++ {
		char := raw[i] - '0'
		if char > 9 {
			return 0, false
		}

		if n > (math.MaxInt-int(char))/10 {
			return 0, false
		}

		n = n*10 + int(char)
	}

	return n, true
}
