package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/restforge/restforge/internal/format"
	"github.com/restforge/restforge/internal/model"
	"go.followtheprocess.codes/test"
)

func sampleCollection() model.Collection {
	return model.Collection{
		Name: "demo",
		Requests: []model.Request{
			{
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
					Content: "{\n  \"name\": \"dave\"\n}",
				},
				TestScript: "check()",
			},
			{
				Name:   "GetUser",
				Method: model.MethodGet,
				URL:    "https://api.com/v1/users/1",
			},
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	collection := sampleCollection()

	buf := &bytes.Buffer{}
	test.Ok(t, format.JSONExporter{}.Export(buf, collection))

	imported, err := format.JSONImporter{}.Import(buf)
	test.Ok(t, err)

	test.Equal(t, imported.Name, "demo")
	test.Equal(t, len(imported.Requests), 2)

	first := imported.Requests[0]
	test.Equal(t, first.Name, "CreateUser")
	test.Equal(t, first.Method, model.MethodPost)
	test.Equal(t, first.URL, "https://api.com/v1/users")
	test.Equal(t, first.Auth.Type, model.AuthBearer)
	test.True(t, first.Auth.Bearer != nil)
	test.Equal(t, first.Auth.Bearer.Token, "abc123")
	test.Equal(t, first.Body.Type, model.BodyJSON)
	test.Equal(t, first.TestScript, "check()")

	test.Equal(t, imported.Requests[1].Name, "GetUser")
}

func TestJSONImportUnknownFields(t *testing.T) {
	input := `{"name": "demo", "wat": true}`

	_, err := format.JSONImporter{}.Import(strings.NewReader(input))
	test.Err(t, err)
}

func TestJSONImportGarbage(t *testing.T) {
	_, err := format.JSONImporter{}.Import(strings.NewReader("not json at all"))
	test.Err(t, err)
}

func TestYAMLExport(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Ok(t, format.YAMLExporter{}.Export(buf, sampleCollection()))

	output := buf.String()
	test.True(t, strings.Contains(output, "name: demo"))
	test.True(t, strings.Contains(output, "CreateUser"))
	test.True(t, strings.Contains(output, "https://api.com/v1/users"))
}

func TestTOMLExport(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Ok(t, format.TOMLExporter{}.Export(buf, sampleCollection()))

	output := buf.String()
	test.True(t, strings.Contains(output, `name = "demo"`))
	test.True(t, strings.Contains(output, "CreateUser"))
}

func TestCurlExport(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Ok(t, format.CurlExporter{}.Export(buf, sampleCollection()))

	want := `# CreateUser
curl -X POST \
  -H 'Content-Type: application/json' \
  -d '{"name":"dave"}' \
  'https://api.com/v1/users?notify=true'

# GetUser
curl -X GET \
  'https://api.com/v1/users/1'

`

	test.Diff(t, buf.String(), want)
}

func TestCurlExportSkipsDisabledHeaders(t *testing.T) {
	collection := model.Collection{
		Name: "demo",
		Requests: []model.Request{
			{
				Name:   "Get",
				Method: model.MethodGet,
				URL:    "https://api.com",
				Headers: []model.KeyValue{
					{Key: "X-Debug", Value: "1", Enabled: false},
				},
			},
		},
	}

	buf := &bytes.Buffer{}
	test.Ok(t, format.CurlExporter{}.Export(buf, collection))

	want := `# Get
curl -X GET \
  'https://api.com'

`

	test.Diff(t, buf.String(), want)
}
