package convert_test

import (
	"testing"

	"github.com/restforge/restforge/internal/convert"
	"github.com/restforge/restforge/internal/httpfile"
	"github.com/restforge/restforge/internal/model"
	"go.followtheprocess.codes/test"
)

// parseOne parses src and extracts the single request region it must
// contain.
func parseOne(t *testing.T, src string) *model.Request {
	t.Helper()

	regions := httpfile.Parse("demo.http", src)
	test.Equal(t, len(regions), 1)

	request := convert.ExtractRequest(&regions[0])
	test.True(t, request != nil)

	return request
}

func TestExtractRequestNil(t *testing.T) {
	test.True(t, convert.ExtractRequest(nil) == nil)

	commentOnly := httpfile.Region{
		Symbol: httpfile.Symbol{Name: "Notes", Source: "# just a comment"},
	}
	test.True(t, convert.ExtractRequest(&commentOnly) == nil)
}

func TestExtractRequestBasics(t *testing.T) {
	request := parseOne(t, `### Get user
GET https://api.com/v1/users/1
Accept: application/json
`)

	test.Equal(t, request.Name, "Get user")
	test.Equal(t, request.Method, model.MethodGet)
	test.Equal(t, request.URL, "https://api.com/v1/users/1")
	test.True(t, request.ID != "")
	test.Equal(t, len(request.Headers), 1)
	test.Equal(t, request.Headers[0].Key, "Accept")
	test.Equal(t, request.Headers[0].Value, "application/json")
	test.Equal(t, request.Body.Type, model.BodyNone)

	test.True(t, request.Source != nil)
	test.Equal(t, request.Source.Symbol, "Get user")
	test.Equal(t, len(request.Source.Hash), 64)
}

func TestExtractRequestNamePriority(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		src  string // Region source
		want string // Expected request name
	}{
		{
			name: "title directive wins",
			src:  "### Separator\n# @title The Title\n# @name TheName\nGET https://api.com\n",
			want: "The Title",
		},
		{
			name: "name directive beats separator",
			src:  "### Separator\n# @name TheName\nGET https://api.com\n",
			want: "TheName",
		},
		{
			name: "separator title",
			src:  "### Separator\nGET https://api.com\n",
			want: "Separator",
		},
		{
			name: "fallback",
			src:  "GET https://api.com\n",
			want: "Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, parseOne(t, tt.src).Name, tt.want)
		})
	}
}

func TestExtractMethodFallback(t *testing.T) {
	tests := []struct {
		name   string // Name of the test case
		method string // Method as delivered by the engine
		want   model.Method
	}{
		{name: "lowercase normalised", method: "post", want: model.MethodPost},
		{name: "empty defaults to get", method: "", want: model.MethodGet},
		{name: "unknown defaults to get", method: "YEET", want: model.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := httpfile.Region{
				Request: &httpfile.Request{Method: tt.method, URL: "https://api.com"},
			}

			request := convert.ExtractRequest(&region)
			test.True(t, request != nil)
			test.Equal(t, request.Method, tt.want)
		})
	}
}

func TestExtractBasicAuth(t *testing.T) {
	request := parseOne(t, `GET https://api.com
Authorization: Basic ZG9lOnBhc3M=
Accept: application/json
`)

	test.Equal(t, request.Auth.Type, model.AuthBasic)
	test.True(t, request.Auth.Basic != nil)
	test.Equal(t, request.Auth.Basic.Username, "doe")
	test.Equal(t, request.Auth.Basic.Password, "pass")

	// The raw header is lifted into the auth variant
	test.Equal(t, len(request.Headers), 1)
	test.Equal(t, request.Headers[0].Key, "Accept")
}

func TestExtractBearerAuth(t *testing.T) {
	request := parseOne(t, `GET https://api.com
Authorization: Bearer abc123
`)

	test.Equal(t, request.Auth.Type, model.AuthBearer)
	test.True(t, request.Auth.Bearer != nil)
	test.Equal(t, request.Auth.Bearer.Token, "abc123")
	test.Equal(t, len(request.Headers), 0)
}

func TestExtractGarbledAuthKept(t *testing.T) {
	// Invalid base64 must not be destructive, the header stays put
	request := parseOne(t, `GET https://api.com
Authorization: Basic !!!notbase64!!!
`)

	test.Equal(t, request.Auth.Type, model.AuthNone)
	test.Equal(t, len(request.Headers), 1)
	test.Equal(t, request.Headers[0].Key, "Authorization")
}

func TestExtractUnknownSchemeKept(t *testing.T) {
	request := parseOne(t, `GET https://api.com
Authorization: Digest username="doe"
`)

	test.Equal(t, request.Auth.Type, model.AuthNone)
	test.Equal(t, len(request.Headers), 1)
}

func TestExtractBodyTypes(t *testing.T) {
	tests := []struct {
		name        string         // Name of the test case
		contentType string         // Content-Type header value
		body        string         // Body content
		want        model.BodyType // Expected body type
	}{
		{
			name:        "json",
			contentType: "application/json",
			body:        `{"a": 1}`,
			want:        model.BodyJSON,
		},
		{
			name:        "json with charset",
			contentType: "application/json; charset=utf-8",
			body:        `{"a": 1}`,
			want:        model.BodyJSON,
		},
		{
			name:        "graphql",
			contentType: "application/graphql",
			body:        "query { user { id } }",
			want:        model.BodyGraphQL,
		},
		{
			name:        "ndjson",
			contentType: "application/x-ndjson",
			body:        `{"a":1}` + "\n" + `{"a":2}`,
			want:        model.BodyNDJSON,
		},
		{
			name:        "xml",
			contentType: "application/xml",
			body:        "<user/>",
			want:        model.BodyXML,
		},
		{
			name:        "xml suffix",
			contentType: "application/soap+xml",
			body:        "<env/>",
			want:        model.BodyXML,
		},
		{
			name:        "form",
			contentType: "application/x-www-form-urlencoded",
			body:        "a=1&b=2",
			want:        model.BodyForm,
		},
		{
			name:        "multipart",
			contentType: "multipart/form-data; boundary=xyz",
			body:        "--xyz--",
			want:        model.BodyFormData,
		},
		{
			name:        "unknown is raw",
			contentType: "text/plain",
			body:        "hello",
			want:        model.BodyRaw,
		},
		{
			name:        "no content type is raw",
			contentType: "",
			body:        "hello",
			want:        model.BodyRaw,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "POST https://api.com\n"
			if tt.contentType != "" {
				src += "Content-Type: " + tt.contentType + "\n"
			}

			src += "\n" + tt.body + "\n"

			request := parseOne(t, src)
			test.Equal(t, request.Body.Type, tt.want)
			test.Equal(t, request.Body.Content, tt.body)
		})
	}
}

func TestExtractFormFields(t *testing.T) {
	request := parseOne(t, `POST https://api.com/login
Content-Type: application/x-www-form-urlencoded

user=doe&pass=s3cret%21
`)

	test.Equal(t, request.Body.Type, model.BodyForm)
	test.Equal(t, len(request.Body.FormData), 2)
	test.Equal(t, request.Body.FormData[0].Key, "user")
	test.Equal(t, request.Body.FormData[0].Value, "doe")
	test.Equal(t, request.Body.FormData[1].Key, "pass")
	test.Equal(t, request.Body.FormData[1].Value, "s3cret!")
}

func TestExtractFormUndecodableStaysRaw(t *testing.T) {
	request := parseOne(t, `POST https://api.com/login
Content-Type: application/x-www-form-urlencoded

user=%ZZbroken
`)

	test.Equal(t, request.Body.Type, model.BodyForm)
	test.Equal(t, request.Body.Content, "user=%ZZbroken")
	test.Equal(t, len(request.Body.FormData), 0)
}

func TestExtractParams(t *testing.T) {
	request := parseOne(t, "GET https://api.com/v1/items?page=2&q=two+words\n")

	test.Equal(t, request.URL, "https://api.com/v1/items")
	test.Equal(t, len(request.Params), 2)
	test.Equal(t, request.Params[0].Key, "page")
	test.Equal(t, request.Params[0].Value, "2")
	test.Equal(t, request.Params[1].Key, "q")
	test.Equal(t, request.Params[1].Value, "two words")
}

func TestExtractParamsRelativeURLUntouched(t *testing.T) {
	// Variable based URLs are not parseable as absolute, leave them be
	request := parseOne(t, "GET {{base}}/items?page=2\n")

	test.Equal(t, request.URL, "{{base}}/items?page=2")
	test.Equal(t, len(request.Params), 0)
}

func TestExtractMeta(t *testing.T) {
	request := parseOne(t, `# @name GetUser
# @timeout 30s
# @no-redirect
GET https://api.com
`)

	// Keys come out sorted with a '@' prefix, bare flags as empty values
	test.Equal(t, len(request.Meta), 3)
	test.Equal(t, request.Meta[0].Key, "@name")
	test.Equal(t, request.Meta[0].Value, "GetUser")
	test.Equal(t, request.Meta[1].Key, "@no-redirect")
	test.Equal(t, request.Meta[1].Value, "")
	test.Equal(t, request.Meta[2].Key, "@timeout")
	test.Equal(t, request.Meta[2].Value, "30s")
}

func TestExtractScriptsAttached(t *testing.T) {
	request := parseOne(t, `# @name Scripted
> {%
  setup()
%}
GET https://api.com

> {%
  check()
%}
`)

	test.Equal(t, request.PreRequestScript, "setup()")
	test.Equal(t, request.TestScript, "check()")
}

func TestRoundTrip(t *testing.T) {
	original := model.Request{
		Name:   "CreateUser",
		Method: model.MethodPost,
		URL:    "https://api.com/v1/users",
		Params: []model.KeyValue{
			{Key: "notify", Value: "true", Enabled: true},
		},
		Headers: []model.KeyValue{
			{Key: "Content-Type", Value: "application/json", Enabled: true},
		},
		Auth: model.Auth{
			Type:   model.AuthBearer,
			Bearer: &model.BearerAuth{Token: "abc123"},
		},
		Body: model.Body{
			Type:    model.BodyJSON,
			Content: `{"name": "dave"}`,
		},
		Meta: []model.KeyValue{
			{Key: "@name", Value: "CreateUser", Enabled: true},
		},
		PreRequestScript: "setup()",
		TestScript:       "check()",
	}

	text := convert.Serialize(original)

	regions := httpfile.Parse("demo.http", text)
	test.Equal(t, len(regions), 1)

	extracted := convert.ExtractRequest(&regions[0])
	test.True(t, extracted != nil)

	test.Equal(t, extracted.Name, "CreateUser")
	test.Equal(t, extracted.Method, model.MethodPost)
	test.Equal(t, extracted.URL, "https://api.com/v1/users")

	test.Equal(t, len(extracted.Params), 1)
	test.Equal(t, extracted.Params[0].Key, "notify")
	test.Equal(t, extracted.Params[0].Value, "true")

	test.Equal(t, extracted.Auth.Type, model.AuthBearer)
	test.True(t, extracted.Auth.Bearer != nil)
	test.Equal(t, extracted.Auth.Bearer.Token, "abc123")

	test.Equal(t, extracted.Body.Type, model.BodyJSON)
	test.Equal(t, extracted.Body.Content, `{"name": "dave"}`)

	test.Equal(t, extracted.PreRequestScript, "setup()")
	test.Equal(t, extracted.TestScript, "check()")

	// The round trip preserves the wire fingerprint
	test.Equal(t, convert.RequestSourceHash(original), extracted.Source.Hash)
	test.Equal(t, convert.RequestSourceHash(*extracted), extracted.Source.Hash)
}
