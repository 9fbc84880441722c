// Package convert implements the bidirectional conversion between the
// structured request model and .http text, together with the source hash
// entry points used for drift detection and a best-effort bulk parser for
// collection browsing.
//
// Everything in this package is a pure, synchronous transformation.
// Malformed input is expected, it comes from user-edited text and half
// filled forms, so conversions degrade silently instead of failing.
package convert

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/restforge/restforge/internal/httpfile"
	"github.com/restforge/restforge/internal/model"
)

// Serialize renders a structured request as a .http text block.
//
// The section order is fixed: meta directives, OAuth2 meta shortcuts, the
// pre-request script block, the request line with headers and body, and
// the post-response script block. Output is deterministic given identical
// input order, nothing is reordered or deduplicated beyond the OAuth2
// shortcut dedupe.
func Serialize(request model.Request) string {
	builder := &strings.Builder{}

	writeMeta(builder, request.Meta)
	writeOAuth2Meta(builder, request)
	writeScript(builder, request.PreRequestScript)

	builder.WriteString(httpfile.FormatRequest(wireRequest(request), true))

	writeScript(builder, request.TestScript)

	return builder.String()
}

// writeMeta renders enabled meta entries as '# @key value' comment lines.
// Any leading '@' on the key is stripped before the directive '@' is added
// back, an empty value renders a bare '# @key'.
func writeMeta(builder *strings.Builder, meta []model.KeyValue) {
	for _, entry := range meta {
		key := strings.TrimLeft(entry.Key, "@")
		if !entry.Enabled || strings.TrimSpace(key) == "" {
			continue
		}

		if entry.Value == "" {
			fmt.Fprintf(builder, "# @%s\n", key)
		} else {
			fmt.Fprintf(builder, "# @%s %s\n", key, entry.Value)
		}
	}
}

// writeOAuth2Meta renders the OAuth2 auth variant as its meta directive
// group. A directive is skipped when the meta list already carries an
// entry with the same key, matched case-insensitively, so explicit user
// directives win over derived ones.
func writeOAuth2Meta(builder *strings.Builder, request model.Request) {
	if request.Auth.Type != model.AuthOAuth2 || request.Auth.OAuth2 == nil {
		return
	}

	oauth := request.Auth.OAuth2

	directive := func(key, value string) {
		if hasMeta(request.Meta, key) {
			return
		}

		if value == "" {
			fmt.Fprintf(builder, "# @%s\n", key)
		} else {
			fmt.Fprintf(builder, "# @%s %s\n", key, value)
		}
	}

	directive("oauth2", oauth.GrantType)
	directive("tokenUrl", oauth.TokenURL)
	directive("clientId", oauth.ClientID)

	if oauth.Scope != "" {
		directive("scope", oauth.Scope)
	}
}

// hasMeta reports whether the meta list has an enabled entry whose key
// matches key case-insensitively, ignoring any leading '@'.
func hasMeta(meta []model.KeyValue, key string) bool {
	for _, entry := range meta {
		if entry.Enabled && strings.EqualFold(strings.TrimLeft(entry.Key, "@"), key) {
			return true
		}
	}

	return false
}

// writeScript wraps script source in '> {%' and '%}' delimiter lines.
// Empty scripts render nothing.
func writeScript(builder *strings.Builder, script string) {
	if script == "" {
		return
	}

	builder.WriteString(httpfile.ScriptOpen + "\n")
	builder.WriteString(script)

	if !strings.HasSuffix(script, "\n") {
		builder.WriteByte('\n')
	}

	builder.WriteString(httpfile.ScriptClose + "\n")
}

// wireRequest derives the wire shape of a structured request: query params
// merged into the URL, headers coalesced with any auth-derived
// Authorization header appended last, and the body rendered per its
// variant.
func wireRequest(request model.Request) httpfile.Request {
	return httpfile.Request{
		Method:  string(request.Method),
		URL:     BuildURL(request.URL, request.Params),
		Headers: buildHeaders(request),
		Body:    buildBody(request.Body),
	}
}

// BuildURL appends enabled params to the URL as an encoded query string,
// continuing an existing query with '&' and starting a fresh one with '?'.
func BuildURL(rawURL string, params []model.KeyValue) string {
	query := make([]string, 0, len(params))

	for _, param := range params {
		if !param.Enabled || strings.TrimSpace(param.Key) == "" {
			continue
		}

		query = append(query, url.QueryEscape(param.Key)+"="+url.QueryEscape(param.Value))
	}

	if len(query) == 0 {
		return rawURL
	}

	separator := "?"
	if strings.Contains(rawURL, "?") {
		separator = "&"
	}

	return rawURL + separator + strings.Join(query, "&")
}

// buildHeaders merges enabled headers into an ordered, case-preserving
// list, coalescing duplicate names. Basic and bearer auth each inject an
// Authorization header, appended after the explicit headers and only when
// the header list does not already carry one.
func buildHeaders(request model.Request) httpfile.Headers {
	var headers httpfile.Headers

	for _, header := range request.Headers {
		if !header.Enabled || strings.TrimSpace(header.Key) == "" {
			continue
		}

		headers.Add(header.Key, header.Value)
	}

	_, haveAuthorization := headers.Get("Authorization")

	switch request.Auth.Type {
	case model.AuthBasic:
		if basic := request.Auth.Basic; basic != nil && !haveAuthorization {
			credentials := base64.StdEncoding.EncodeToString(
				[]byte(basic.Username + ":" + basic.Password),
			)
			headers.Add("Authorization", "Basic "+credentials)
		}
	case model.AuthBearer:
		if bearer := request.Auth.Bearer; bearer != nil && !haveAuthorization {
			headers.Add("Authorization", "Bearer "+bearer.Token)
		}
	default:
		// The remaining variants have no header encoding, oauth2 is
		// carried by meta directives and apikey/digest/aws round-trip
		// through the structured model only
	}

	return headers
}

// buildBody renders the body per its variant: nothing for none, an
// encoded key=value string for the form kinds, an '@path' file reference
// for binary, and the raw content for everything else.
func buildBody(body model.Body) string {
	switch body.Type {
	case model.BodyNone, "":
		return ""
	case model.BodyForm, model.BodyFormData:
		if len(body.FormData) > 0 {
			return encodeForm(body.FormData)
		}

		return body.Content
	case model.BodyBinary:
		// Strip a user supplied leading '@' so we never emit '@@path'
		return "@" + strings.TrimPrefix(body.BinaryPath, "@")
	default:
		return body.Content
	}
}

// encodeForm renders enabled form fields as a URL encoded query string.
func encodeForm(fields []model.KeyValue) string {
	pairs := make([]string, 0, len(fields))

	for _, field := range fields {
		if !field.Enabled {
			continue
		}

		pairs = append(pairs, url.QueryEscape(field.Key)+"="+url.QueryEscape(field.Value))
	}

	return strings.Join(pairs, "&")
}
