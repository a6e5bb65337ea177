package version

import (
	"regexp"
	"strconv"
	"strings"
)

var dottedNumeric = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// IsDotted reports whether s looks like 1, 1.2 or 1.2.3.
func IsDotted(s string) bool {
	return dottedNumeric.MatchString(s)
}

func parse(s string) ([]int, bool) {
	parts := strings.Split(s, ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

// CompareVersions compares dotted version strings component by component as
// integers. It returns -1 if a < b, 1 if a > b and 0 otherwise. When all
// shared components are equal the shorter version sorts first, so
// "1.0" < "1.0.0". Either side failing to parse compares as equal.
func CompareVersions(a, b string) int {
	va, ok := parse(a)
	if !ok {
		return 0
	}
	vb, ok := parse(b)
	if !ok {
		return 0
	}

	for i := 0; i < len(va) && i < len(vb); i++ {
		switch {
		case va[i] < vb[i]:
			return -1
		case va[i] > vb[i]:
			return 1
		}
	}
	switch {
	case len(va) < len(vb):
		return -1
	case len(va) > len(vb):
		return 1
	}
	return 0
}
