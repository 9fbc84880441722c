// Package sourcehash computes a stable fingerprint over the wire-visible
// parts of an HTTP request: the method, the URL, normalised headers and a
// bounded summary of the body.
//
// Two representations of the same request hash identically, which is what
// makes drift detection between a builder-held request and its originating
// file region possible. The fingerprint deliberately excludes names, meta
// directives and scripts: only changes that would alter the request on the
// wire count as drift.
package sourcehash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	// snippetLength is the number of characters kept from each end of a
	// long body.
	snippetLength = 160

	// shortBodyMax is the longest body included in the fingerprint in
	// full, anything longer is summarised by its length and ends.
	shortBodyMax = 2 * snippetLength
)

// Header is one header occurrence fed into the fingerprint. A value
// containing commas is treated as multi-valued and split during
// normalisation.
type Header struct {
	Name  string
	Value string
}

// Sum computes the hex encoded fingerprint of a request.
//
// The canonical input is "<METHOD> <url>", a newline, the normalised
// header block, a newline, and the body summary.
func Sum(method, url string, headers []Header, body string) string {
	payload := strings.ToUpper(strings.TrimSpace(method)) + " " + url +
		"\n" + normaliseHeaders(headers) +
		"\n" + summariseBody(body)

	digest := sha256.Sum256([]byte(payload))

	return hex.EncodeToString(digest[:])
}

// normaliseHeaders canonicalises headers so that casing, ordering and
// multi-value representation do not affect the fingerprint.
//
// Names are lower-cased, values split on commas and trimmed, groups sorted
// by name with values sorted within each group, then rendered as
// "name:v1,v2" lines. Headers with empty names are dropped. No headers at
// all yields the empty string.
func normaliseHeaders(headers []Header) string {
	groups := make(map[string][]string)

	for _, header := range headers {
		name := strings.ToLower(strings.TrimSpace(header.Name))
		if name == "" {
			continue
		}

		for _, piece := range strings.Split(header.Value, ",") {
			groups[name] = append(groups[name], strings.TrimSpace(piece))
		}
	}

	lines := make([]string, 0, len(groups))

	for _, name := range slices.Sorted(maps.Keys(groups)) {
		values := groups[name]
		slices.Sort(values)

		lines = append(lines, name+":"+strings.Join(values, ","))
	}

	return strings.Join(lines, "\n")
}

// summariseBody reduces a body to a bounded representation that is still
// sensitive to changes at either end.
//
// Line endings are normalised and the result trimmed; an empty body yields
// the empty string, a short body is included in full behind its length,
// and a long body keeps its length plus a snippet from each end.
func summariseBody(body string) string {
	body = strings.TrimSpace(strings.ReplaceAll(body, "\r\n", "\n"))
	if body == "" {
		return ""
	}

	runes := []rune(body)
	length := len(runes)

	if length <= shortBodyMax {
		return fmt.Sprintf("len=%d\n%s", length, body)
	}

	return fmt.Sprintf(
		"len=%d\n%s\n...\n%s",
		length,
		string(runes[:snippetLength]),
		string(runes[length-snippetLength:]),
	)
}
