package convert

import (
	"encoding/base64"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/restforge/restforge/internal/httpfile"
	"github.com/restforge/restforge/internal/model"
)

// ExtractRequest converts a parsed file region into a structured request.
//
// It returns nil for a region without a request, e.g. a pure comment
// block, which callers must treat as "skip this region". Everything else
// degrades silently: a garbled Authorization header stays a header, a
// relative URL keeps its query inline, a form body that will not decode
// stays raw content.
func ExtractRequest(region *httpfile.Region) *model.Request {
	if region == nil || region.Request == nil {
		return nil
	}

	request := model.New(requestName(region))

	request.Method = model.Method(strings.ToUpper(region.Request.Method))
	if !request.Method.IsValid() {
		request.Method = model.MethodGet
	}

	request.URL = region.Request.URL

	// One KeyValue per header, multiple values collapsed onto one display
	// string
	for _, header := range region.Request.Headers {
		request.Headers = append(request.Headers, model.KeyValue{
			Key:     header.Key,
			Value:   strings.Join(header.Values, ", "),
			Enabled: true,
		})
	}

	extractAuth(&request)
	extractBody(&request, region.Request.Body)
	extractParams(&request)
	extractMeta(&request, region.MetaData)

	request.PreRequestScript, request.TestScript = ExtractScripts(region.Symbol.Source)

	request.Source = &model.Source{
		Symbol:    region.Symbol.Name,
		StartLine: region.Symbol.StartLine,
		EndLine:   region.Symbol.EndLine,
		Hash:      RegionSourceHash(region),
	}

	return &request
}

// requestName picks the display name: the title meta directive, then the
// name directive, then the region's symbol name, then a literal fallback.
func requestName(region *httpfile.Region) string {
	if title, ok := region.MetaData["title"].(string); ok && title != "" {
		return title
	}

	if name, ok := region.MetaData["name"].(string); ok && name != "" {
		return name
	}

	if region.Symbol.Name != "" {
		return region.Symbol.Name
	}

	return "Request"
}

// extractAuth scans for an Authorization header and lifts Basic and Bearer
// schemes into the structured auth variant, removing the raw header so it
// is not duplicated on re-serialisation. A failed base64 decode leaves the
// header untouched and auth as none.
func extractAuth(request *model.Request) {
	for i, header := range request.Headers {
		if !strings.EqualFold(header.Key, "Authorization") {
			continue
		}

		if credentials, ok := strings.CutPrefix(header.Value, "Basic "); ok {
			decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(credentials))
			if err != nil {
				// Not valid base64, keep the raw header
				return
			}

			username, password, _ := strings.Cut(string(decoded), ":")

			request.Auth = model.Auth{
				Type:  model.AuthBasic,
				Basic: &model.BasicAuth{Username: username, Password: password},
			}
			request.Headers = slices.Delete(request.Headers, i, i+1)
		} else if token, ok := strings.CutPrefix(header.Value, "Bearer "); ok {
			request.Auth = model.Auth{
				Type:   model.AuthBearer,
				Bearer: &model.BearerAuth{Token: token},
			}
			request.Headers = slices.Delete(request.Headers, i, i+1)
		}

		return
	}
}

// extractBody infers the body variant from the Content-Type header and
// fills the appropriate payload.
func extractBody(request *model.Request, body string) {
	if body == "" {
		request.Body = model.Body{Type: model.BodyNone}
		return
	}

	contentType, _ := headerValue(request.Headers, "Content-Type")
	contentType = strings.ToLower(contentType)

	switch {
	case strings.Contains(contentType, "application/graphql"):
		request.Body = model.Body{Type: model.BodyGraphQL, Content: body}
	case strings.Contains(contentType, "application/x-ndjson"),
		strings.Contains(contentType, "application/ndjson"):
		request.Body = model.Body{Type: model.BodyNDJSON, Content: body}
	case strings.Contains(contentType, "application/xml"),
		strings.Contains(contentType, "text/xml"),
		strings.Contains(contentType, "+xml"):
		request.Body = model.Body{Type: model.BodyXML, Content: body}
	case strings.Contains(contentType, "application/json"):
		request.Body = model.Body{Type: model.BodyJSON, Content: body}
	case strings.Contains(contentType, "application/x-www-form-urlencoded"):
		request.Body = model.Body{Type: model.BodyForm, Content: body}
		if fields, ok := parseForm(body); ok {
			request.Body.FormData = fields
		}
	case strings.Contains(contentType, "multipart/form-data"):
		// Kept raw, no field splitting is attempted for multipart
		request.Body = model.Body{Type: model.BodyFormData, Content: body}
	default:
		request.Body = model.Body{Type: model.BodyRaw, Content: body}
	}
}

// headerValue looks up a header by name case-insensitively.
func headerValue(headers []model.KeyValue, key string) (value string, ok bool) {
	for _, header := range headers {
		if strings.EqualFold(header.Key, key) {
			return header.Value, true
		}
	}

	return "", false
}

// parseForm splits URL encoded content into ordered key/value fields.
// It reports failure when a field will not decode, in which case the raw
// content is kept as-is.
func parseForm(content string) (fields []model.KeyValue, ok bool) {
	for _, pair := range strings.Split(content, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")

		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			return nil, false
		}

		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			return nil, false
		}

		fields = append(fields, model.KeyValue{
			Key:     decodedKey,
			Value:   decodedValue,
			Enabled: true,
		})
	}

	return fields, true
}

// extractParams promotes the query string of an absolute URL into discrete
// params, rewriting the stored URL to origin plus path. Relative and
// malformed URLs are left untouched, that is the expected case for URLs
// built from {{variable}} placeholders.
func extractParams(request *model.Request) {
	parsed, err := url.Parse(request.URL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return
	}

	var params []model.KeyValue

	if parsed.RawQuery != "" {
		// Split by hand rather than url.ParseQuery to preserve the
		// original parameter order
		for _, pair := range strings.Split(parsed.RawQuery, "&") {
			if pair == "" {
				continue
			}

			key, value, _ := strings.Cut(pair, "=")

			if decoded, err := url.QueryUnescape(key); err == nil {
				key = decoded
			}

			if decoded, err := url.QueryUnescape(value); err == nil {
				value = decoded
			}

			params = append(params, model.KeyValue{Key: key, Value: value, Enabled: true})
		}
	}

	request.URL = parsed.Scheme + "://" + parsed.Host + parsed.Path
	request.Params = params
}

// extractMeta converts the region's metadata map into ordered meta
// entries. Bare directives render as empty values, nil values are
// dropped, keys are sorted for deterministic output.
func extractMeta(request *model.Request, metaData map[string]any) {
	for _, key := range slices.Sorted(maps.Keys(metaData)) {
		value := metaData[key]

		var rendered string

		switch v := value.(type) {
		case nil:
			continue
		case bool:
			if !v {
				rendered = "false"
			}
		case string:
			rendered = v
		default:
			rendered = fmt.Sprintf("%v", v)
		}

		request.Meta = append(request.Meta, model.KeyValue{
			Key:     "@" + key,
			Value:   rendered,
			Enabled: true,
		})
	}
}
