package convert

import (
	"strings"

	"github.com/restforge/restforge/internal/httpfile"
)

// scriptBlock is one delimited script block found in region source.
type scriptBlock struct {
	content string
	line    int // 0 indexed line of the opening delimiter
}

// ExtractScripts locates '> {%' / '%}' script blocks in raw region source
// and partitions them around the request line: blocks before it are joined
// into the pre-request script, blocks after it into the post-response test
// script. Each block is trimmed, multiple blocks on the same side are
// joined by a blank line.
//
// Without a request line there is no pivot, so both results are empty.
// An unterminated block consumes the rest of the input. Empty results are
// returned as empty strings, meaning "no script".
func ExtractScripts(source string) (preRequest, test string) {
	lines := strings.Split(source, "\n")

	requestLine := -1

	var blocks []scriptBlock

	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == httpfile.ScriptOpen {
			start := i

			var inner []string

			for i++; i < len(lines) && strings.TrimSpace(lines[i]) != httpfile.ScriptClose; i++ {
				inner = append(inner, lines[i])
			}

			blocks = append(blocks, scriptBlock{
				line:    start,
				content: strings.Join(inner, "\n"),
			})

			continue
		}

		if requestLine == -1 {
			if _, _, ok := httpfile.MatchRequestLine(lines[i]); ok {
				requestLine = i
			}
		}
	}

	if requestLine == -1 {
		return "", ""
	}

	var before, after []string

	for _, block := range blocks {
		content := strings.TrimSpace(block.content)
		if content == "" {
			continue
		}

		if block.line < requestLine {
			before = append(before, content)
		} else {
			after = append(after, content)
		}
	}

	return strings.Join(before, "\n\n"), strings.Join(after, "\n\n")
}
