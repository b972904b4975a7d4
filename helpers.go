package aria

import (
	"fmt"
	"strconv"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// boolValue formats a boolean as its "true"/"false" token.
func boolValue(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// intValue formats an integer as its decimal text.
func intValue(n int) string {
	return strconv.Itoa(n)
}

// floatValue formats a number using Go's default shortest
// representation, e.g. 2.5 → "2.5", 3 → "3".
func floatValue(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// idList joins element IDs with single spaces. An empty list yields
// an empty string, not an omitted attribute.
func idList(ids []string) string {
	return strings.Join(ids, " ")
}

// joinTokens joins the tokens of repeatable enum values with single
// spaces, preserving order.
func joinTokens[T fmt.Stringer](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}
