package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-service/internal/pkg/logging"
	"github.com/murkotick/storefront-service/internal/transport/graphql/storefront"
)

type fakeExecutor struct {
	got     []storefront.Request
	result  *graphql.Result
	outcome storefront.Outcome
}

func (f *fakeExecutor) Do(_ context.Context, req storefront.Request) (*graphql.Result, storefront.Outcome) {
	f.got = append(f.got, req)
	return f.result, f.outcome
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(exec *fakeExecutor) *gin.Engine {
	return NewRouter(exec, logging.Discard())
}

func serve(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorDetail {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestPost_ExecutesQueryOnBothPaths(t *testing.T) {
	for _, path := range Paths {
		t.Run(path, func(t *testing.T) {
			exec := &fakeExecutor{result: &graphql.Result{Data: map[string]interface{}{"categories": []interface{}{}}}}
			w := serve(newRouter(exec), http.MethodPost, path,
				`{"query":"{ categories { name } }","variables":{"a":1}}`,
				map[string]string{"Content-Type": "application/json"})

			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"data":{"categories":[]}}`, w.Body.String())
			require.Len(t, exec.got, 1)
			assert.Equal(t, "{ categories { name } }", exec.got[0].Query)
			assert.Equal(t, float64(1), exec.got[0].Variables["a"])
		})
	}
}

func TestPost_BadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
		msg  string
	}{
		{"empty body", "", "Request body is empty"},
		{"whitespace body", "  \n", "Request body is empty"},
		{"invalid json", "{not json", "Invalid JSON body"},
		{"missing query", `{"variables":{}}`, "Missing 'query' in request body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exec := &fakeExecutor{}
			w := serve(newRouter(exec), http.MethodPost, "/graphql", tc.body, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			detail := decodeError(t, w)
			assert.Equal(t, tc.msg, detail.Message)
			assert.Equal(t, "bad_request", detail.Type)
			assert.Empty(t, exec.got)
		})
	}
}

func TestPost_UnavailableIs503(t *testing.T) {
	exec := &fakeExecutor{
		result:  &graphql.Result{Data: map[string]interface{}{"categories": nil}},
		outcome: storefront.Outcome{Unavailable: true},
	}
	w := serve(newRouter(exec), http.MethodPost, "/graphql", `{"query":"{ categories { name } }"}`, nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"data"`)
}

func TestGet_ReturnsInfo(t *testing.T) {
	w := serve(newRouter(&fakeExecutor{}), http.MethodGet, "/graphql", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "GraphQL endpoint is running", body["message"])
	assert.Equal(t, "/graphql", body["endpoint"])
	assert.NotNil(t, body["example"])
}

func TestOptions_NoBody(t *testing.T) {
	w := serve(newRouter(&fakeExecutor{}), http.MethodOptions, "/graphql", "", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCORS_PreflightFromAnyOrigin(t *testing.T) {
	w := serve(newRouter(&fakeExecutor{}), http.MethodOptions, "/graphql", "", map[string]string{
		"Origin":                         "http://shop.example",
		"Access-Control-Request-Method":  http.MethodPost,
		"Access-Control-Request-Headers": "Content-Type",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORS_SimpleRequestGetsAllowOrigin(t *testing.T) {
	exec := &fakeExecutor{result: &graphql.Result{Data: map[string]interface{}{}}}
	w := serve(newRouter(exec), http.MethodPost, "/", `{"query":"{ categories { name } }"}`, map[string]string{
		"Origin": "http://localhost:3000",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
