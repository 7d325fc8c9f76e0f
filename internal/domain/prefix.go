package domain

import (
	"strconv"
	"strings"
	"time"
)

// PrefixSeparator joins the time prefix to the base name. The first
// separator-delimited segment of a base name is treated as an existing
// prefix by ApplyPrefix and StripPrefix.
const PrefixSeparator = "_"

// TimePrefix encodes t as seconds since the Unix epoch in base 36 with
// the digit order reversed, so the fastest-changing digit comes first.
func TimePrefix(t time.Time) string {
	digits := strconv.FormatInt(t.Unix(), 36)
	b := []byte(digits)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// StripPrefix removes one leading prefix segment from a filename: if the
// base name contains the separator, everything up to and including the
// first separator is dropped. The extension is untouched. Names without
// a separator are returned unchanged.
func StripPrefix(name string) string {
	base, ext := SplitName(name)
	idx := strings.Index(base, PrefixSeparator)
	if idx < 0 {
		return name
	}
	return base[idx+len(PrefixSeparator):] + ext
}

// ApplyPrefix prepends the time prefix for t to a filename. An existing
// prefix segment is stripped first, so repeated application does not
// accumulate prefixes and is idempotent within a single second.
func ApplyPrefix(name string, t time.Time) string {
	name = StripPrefix(name)
	base, ext := SplitName(name)
	return TimePrefix(t) + PrefixSeparator + base + ext
}
