package httpfile

import (
	"regexp"
	"strings"
)

// Script block delimiters. A block opens at a line whose trimmed content is
// exactly ScriptOpen and closes at the next line that is exactly
// ScriptClose.
const (
	ScriptOpen  = "> {%"
	ScriptClose = "%}"
)

var (
	// separatorPattern matches a region separator, optionally carrying a
	// title e.g. '### Get user'.
	separatorPattern = regexp.MustCompile(`^###(?:\s+(.*?))?\s*$`)

	// metaPattern matches a meta directive comment e.g. '# @name value'
	// or a bare '# @flag'.
	metaPattern = regexp.MustCompile(`^\s*#\s*@([A-Za-z0-9_-]+)(?:\s+(.+?))?\s*$`)
)

// rawSection is a chunk of file between separators.
type rawSection struct {
	title string
	start int // 0 indexed line number of the first line
	lines []string
}

// Parse segments src into regions. It never fails: content it does not
// recognise simply ends up in regions without a request, which consumers
// skip.
//
// The name argument is the file name, used only for context by callers.
func Parse(name, src string) []Region {
	lines := strings.Split(src, "\n")

	var sections []rawSection

	current := rawSection{start: 0}

	for i, line := range lines {
		if matches := separatorPattern.FindStringSubmatch(line); matches != nil {
			if len(current.lines) > 0 {
				sections = append(sections, current)
			}

			current = rawSection{title: strings.TrimSpace(matches[1]), start: i + 1}

			continue
		}

		current.lines = append(current.lines, line)
	}

	if len(current.lines) > 0 {
		sections = append(sections, current)
	}

	var regions []Region

	for _, section := range sections {
		if strings.TrimSpace(strings.Join(section.lines, "\n")) == "" {
			continue
		}

		regions = append(regions, buildRegion(section))
	}

	return regions
}

// buildRegion parses a single section into a [Region].
func buildRegion(section rawSection) Region {
	region := Region{
		Symbol: Symbol{
			Name:      section.title,
			Source:    strings.Join(section.lines, "\n"),
			StartLine: section.start + 1,
			EndLine:   section.start + max(len(section.lines), 1),
		},
	}

	requestIdx := -1

	var method, rest string

	inScript := false

	for i, line := range section.lines {
		trimmed := strings.TrimSpace(line)

		if inScript {
			if trimmed == ScriptClose {
				inScript = false
			}

			continue
		}

		if trimmed == ScriptOpen {
			inScript = true
			continue
		}

		if requestIdx != -1 {
			continue
		}

		if matches := metaPattern.FindStringSubmatch(line); matches != nil {
			if region.MetaData == nil {
				region.MetaData = make(map[string]any)
			}

			if matches[2] == "" {
				region.MetaData[matches[1]] = true
			} else {
				region.MetaData[matches[1]] = matches[2]
			}

			continue
		}

		if m, r, ok := MatchRequestLine(line); ok {
			requestIdx = i
			method, rest = m, r
		}
	}

	if name, ok := region.MetaData["name"].(string); ok && name != "" {
		region.Symbol.Name = name
	}

	if requestIdx == -1 {
		return region
	}

	request := &Request{Method: method}

	// The request line may carry an HTTP version after the URL
	if fields := strings.Fields(rest); len(fields) > 0 {
		request.URL = fields[0]
	}

	// Headers run from the line after the request line to the first blank
	// line, script block or non header-shaped line
	headerEnd := len(section.lines)

	for i := requestIdx + 1; i < len(section.lines); i++ {
		line := section.lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == ScriptOpen {
			headerEnd = i
			break
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			headerEnd = i
			break
		}

		request.Headers.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	// The body is everything after the header block, with script blocks
	// removed
	var bodyLines []string

	inScript = false

	for i := headerEnd; i < len(section.lines); i++ {
		trimmed := strings.TrimSpace(section.lines[i])

		if inScript {
			if trimmed == ScriptClose {
				inScript = false
			}

			continue
		}

		if trimmed == ScriptOpen {
			inScript = true
			continue
		}

		bodyLines = append(bodyLines, section.lines[i])
	}

	request.Body = strings.TrimSpace(strings.Join(bodyLines, "\n"))

	region.Request = request

	return region
}
