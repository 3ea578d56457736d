package api

import (
	"net/url"
	"strings"
)

// PercentEncode escapes s for a query string, encoding spaces as %20 instead
// of the form-encoding plus sign.
func PercentEncode(s string) string {
	s = url.QueryEscape(s)
	return strings.ReplaceAll(s, "+", "%20")
}
