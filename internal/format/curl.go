package format

import (
	_ "embed"
	"io"
	"strings"
	"text/template"

	"github.com/restforge/restforge/internal/convert"
	"github.com/restforge/restforge/internal/model"
)

//go:embed templates/curl.txt.tmpl
var curlTempl string

// minifier is a [strings.Replacer] that removes all whitespace from a
// string, used to collapse multi-line JSON bodies onto a single -d
// argument.
//
//nolint:gochecknoglobals // Also has to be here
var minifier = strings.NewReplacer(
	"\t", "",
	"\n", "",
	"\v", "",
	"\f", "",
	"\r", "",
	" ", "",
)

// curlFunctions are custom template functions available in the
// curlTemplate.
//
//nolint:gochecknoglobals // This has to be here
var curlFunctions = template.FuncMap{
	"minify": minifier.Replace,
	"mergeURL": func(request model.Request) string {
		return convert.BuildURL(request.URL, request.Params)
	},
}

// curlTemplate is the parsed curl command line text/template.
//
//nolint:gochecknoglobals // Having the template as a global means it's parsed only once
var curlTemplate = template.Must(template.New("curl").Funcs(curlFunctions).Parse(curlTempl))

// CurlExporter is an [Exporter] that transforms request collections into
// curl shell snippets.
type CurlExporter struct{}

// Export implements [Exporter] for [CurlExporter] and exports the given
// collection as one curl snippet per request.
func (c CurlExporter) Export(w io.Writer, collection model.Collection) error {
	return curlTemplate.Execute(w, collection)
}
