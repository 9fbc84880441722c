package model_test

import (
	"testing"

	"github.com/restforge/restforge/internal/model"
	"go.followtheprocess.codes/test"
)

func TestNew(t *testing.T) {
	request := model.New("GetUser")

	test.Equal(t, request.Name, "GetUser")
	test.Equal(t, request.Method, model.MethodGet)
	test.Equal(t, request.Auth.Type, model.AuthNone)
	test.Equal(t, request.Body.Type, model.BodyNone)
	test.True(t, request.ID != "")
}

func TestNewUniqueIDs(t *testing.T) {
	first := model.New("One")
	second := model.New("Two")

	test.NotEqual(t, first.ID, second.ID)
}

func TestMethodIsValid(t *testing.T) {
	tests := []struct {
		name   string       // Name of the test case
		method model.Method // Method under test
		want   bool         // Expected result
	}{
		{name: "get", method: model.MethodGet, want: true},
		{name: "post", method: model.MethodPost, want: true},
		{name: "trace", method: model.MethodTrace, want: true},
		{name: "lowercase", method: model.Method("get"), want: false},
		{name: "empty", method: model.Method(""), want: false},
		{name: "nonsense", method: model.Method("YEET"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, tt.method.IsValid(), tt.want)
		})
	}
}

func TestMethods(t *testing.T) {
	methods := model.Methods()

	test.Equal(t, len(methods), 9)

	for _, method := range methods {
		test.True(t, method.IsValid())
	}
}

func TestContainsRequest(t *testing.T) {
	collection := model.Collection{
		Name: "demo",
		Requests: []model.Request{
			{Name: "GetUser"},
			{Name: "DeleteUser"},
		},
	}

	test.True(t, collection.ContainsRequest("GetUser"))
	test.True(t, collection.ContainsRequest("DeleteUser"))
	test.True(t, !collection.ContainsRequest("MakeUser"))
	test.True(t, !collection.ContainsRequest(""))
}
