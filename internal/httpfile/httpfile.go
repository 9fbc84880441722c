// Package httpfile models parsed .http file regions as delivered by the
// request execution engine, and renders request line and header text
// following .http conventions.
//
// The authoritative .http grammar lives in the execution engine; this
// package recognises only the subset of the format the request builder
// round-trips: '###' separators, '# @key value' meta directives, the
// request line, headers, '> {% %}' script blocks and the body.
package httpfile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/restforge/restforge/internal/model"
)

// requestLinePattern matches a request line: optional leading whitespace,
// a method keyword, then the rest of the line.
var requestLinePattern = regexp.MustCompile(
	`(?i)^\s*(` + methodAlternation() + `)(?:\s+(.*))?$`,
)

// methodAlternation renders the supported methods as a regex alternation.
func methodAlternation() string {
	methods := model.Methods()

	names := make([]string, 0, len(methods))
	for _, method := range methods {
		names = append(names, string(method))
	}

	return strings.Join(names, "|")
}

// MatchRequestLine reports whether line is a request line, returning the
// upper-cased method and the remainder of the line if so.
func MatchRequestLine(line string) (method, rest string, ok bool) {
	matches := requestLinePattern.FindStringSubmatch(line)
	if matches == nil {
		return "", "", false
	}

	return strings.ToUpper(matches[1]), strings.TrimSpace(matches[2]), true
}

// Header is a single request header. Multi-valued headers carry one entry
// per occurrence in Values, in source order.
type Header struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

// Headers is an ordered, case-preserving header list.
//
// Lookups are case-insensitive linear scans, which is fine at the scale of
// a handful of headers per request.
type Headers []Header

// Add appends a value to the header with the given key, coalescing into an
// existing entry if one matches case-insensitively, preserving the casing
// of the first occurrence.
func (h *Headers) Add(key, value string) {
	for i := range *h {
		if strings.EqualFold((*h)[i].Key, key) {
			(*h)[i].Values = append((*h)[i].Values, value)
			return
		}
	}

	*h = append(*h, Header{Key: key, Values: []string{value}})
}

// Get returns the value of the first header matching key
// case-insensitively, with multiple values joined by ", ".
func (h Headers) Get(key string) (value string, ok bool) {
	for _, header := range h {
		if strings.EqualFold(header.Key, key) {
			return strings.Join(header.Values, ", "), true
		}
	}

	return "", false
}

// Request is the wire shape of a request within a region: the parts that
// appear on the request line, in the header block and in the body.
type Request struct {
	Method  string  `json:"method"`
	URL     string  `json:"url"`
	Headers Headers `json:"headers,omitempty"`
	Body    string  `json:"body,omitempty"`
}

// Symbol identifies a region within its file and carries the region's raw
// source text.
type Symbol struct {
	// Name of the region, from a '### Title' separator or '@name'
	// directive. May be empty.
	Name string `json:"name,omitempty"`

	// Source is the raw text of the region.
	Source string `json:"source,omitempty"`

	// StartLine and EndLine delimit the region in the file, 1 indexed.
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

// Region is a single unit within a .http file as segmented by the engine.
//
// Request is nil for regions that contain no request, e.g. a pure comment
// block.
type Region struct {
	Request  *Request       `json:"request,omitempty"`
	MetaData map[string]any `json:"metaData,omitempty"`
	Symbol   Symbol         `json:"symbol"`
}

// FormatRequest renders the request line, headers and (if includeBody is
// true) the body of a request as .http text. Multi-valued headers are
// folded onto one line, comma separated. The body is preceded by a blank
// line.
func FormatRequest(request Request, includeBody bool) string {
	builder := &strings.Builder{}

	fmt.Fprintf(builder, "%s %s\n", request.Method, request.URL)

	for _, header := range request.Headers {
		fmt.Fprintf(builder, "%s: %s\n", header.Key, strings.Join(header.Values, ", "))
	}

	if includeBody && request.Body != "" {
		builder.WriteByte('\n')
		builder.WriteString(request.Body)
		builder.WriteByte('\n')
	}

	return builder.String()
}
