package convert

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/restforge/restforge/internal/httpfile"
	"github.com/restforge/restforge/internal/model"
)

// maxFallbackName is the longest raw URL kept as a request's fallback
// display name before truncation.
const maxFallbackName = 40

var (
	// bulkSeparatorPattern matches a line that is exactly '###', the
	// separator between requests in a bulk file.
	bulkSeparatorPattern = regexp.MustCompile(`(?m)^###[ \t]*$`)

	// bulkNamePattern matches an @name directive, with or without a
	// leading comment marker.
	bulkNamePattern = regexp.MustCompile(`(?m)^#?[ \t]*@name[ \t]+(.+)$`)

	// bulkScriptPattern strips script blocks out of section bodies in one
	// non-greedy pass.
	bulkScriptPattern = regexp.MustCompile(`(?s)>\s*\{%.*?%\}`)
)

// ParseFile is a deliberately simplified, best-effort splitter over a
// whole .http file, used only to list requests in a collection browser.
//
// The authoritative round trip goes through the engine's region parser and
// [ExtractRequest]; this one only needs to be good enough for a tree view,
// so sections without a recognisable request line are silently skipped and
// only a narrow set of body types is inferred.
func ParseFile(content string) []model.Request {
	var requests []model.Request

	for _, section := range bulkSeparatorPattern.Split(content, -1) {
		if strings.TrimSpace(section) == "" {
			continue
		}

		if request, ok := parseSection(section); ok {
			requests = append(requests, request)
		}
	}

	return requests
}

// parseSection parses a single '###' delimited section, reporting false
// for sections with no recognisable request line.
func parseSection(section string) (model.Request, bool) {
	lines := strings.Split(section, "\n")

	requestIdx := -1

	var method, rest string

	for i, line := range lines {
		if m, r, ok := httpfile.MatchRequestLine(line); ok {
			requestIdx = i
			method, rest = m, r

			break
		}
	}

	if requestIdx == -1 {
		return model.Request{}, false
	}

	rawURL := rest
	if fields := strings.Fields(rest); len(fields) > 0 {
		rawURL = fields[0]
	}

	name := ""
	if matches := bulkNamePattern.FindStringSubmatch(section); matches != nil {
		name = strings.TrimSpace(matches[1])
	}

	if name == "" {
		name = fallbackName(rawURL)
	}

	request := model.New(name)
	request.Method = model.Method(method)
	request.URL = rawURL

	// Headers are the 'key: value' lines between the request line and the
	// first blank line, skipping comments and directives
	bodyStart := len(lines)

	for i := requestIdx + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if line == "" {
			bodyStart = i + 1
			break
		}

		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "@") ||
			strings.HasPrefix(line, "//") {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		request.Headers = append(request.Headers, model.KeyValue{
			Key:     strings.TrimSpace(key),
			Value:   strings.TrimSpace(value),
			Enabled: true,
		})
	}

	body := ""
	if bodyStart < len(lines) {
		body = strings.Join(lines[bodyStart:], "\n")
		body = strings.TrimSpace(bulkScriptPattern.ReplaceAllString(body, ""))
	}

	request.Body = sniffBulkBody(request.Headers, body)

	return request, true
}

// sniffBulkBody infers a body type from the Content-Type header using a
// narrower type set than the full extractor: json, form or raw.
func sniffBulkBody(headers []model.KeyValue, body string) model.Body {
	if body == "" {
		return model.Body{Type: model.BodyNone}
	}

	contentType, _ := headerValue(headers, "Content-Type")
	contentType = strings.ToLower(contentType)

	switch {
	case strings.Contains(contentType, "application/json"):
		return model.Body{Type: model.BodyJSON, Content: body}
	case strings.Contains(contentType, "application/x-www-form-urlencoded"):
		return model.Body{Type: model.BodyForm, Content: body}
	default:
		return model.Body{Type: model.BodyRaw, Content: body}
	}
}

// fallbackName derives a display name from the URL's path, or a truncated
// form of the raw URL when it will not parse.
func fallbackName(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return truncate(rawURL)
	}

	if base := path.Base(parsed.Path); base != "" && base != "." && base != "/" {
		return base
	}

	if parsed.Host != "" {
		return parsed.Host
	}

	return truncate(rawURL)
}

// truncate bounds a raw URL for display.
func truncate(rawURL string) string {
	if len(rawURL) <= maxFallbackName {
		return rawURL
	}

	return rawURL[:maxFallbackName] + "..."
}
