package httpbind_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcorp/libs/go/strongof/domains"
	"github.com/authcorp/libs/go/strongof/httpbind"
	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

type (
	UserID   struct{ strong.Guid[UserID] }
	PageSize struct{ strong.Int32[PageSize] }
)

func newRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/users/{id}/posts/{slug}", func(w http.ResponseWriter, r *http.Request) {
		id, err := httpbind.PathParam[UserID](r, "id")
		if err != nil {
			httpbind.WriteError(w, err)
			return
		}
		slug, err := httpbind.PathParam[domains.Slug](r, "slug")
		if err != nil {
			httpbind.WriteError(w, err)
			return
		}
		size, err := httpbind.OptionalQueryParam[PageSize](r, "size")
		if err != nil {
			httpbind.WriteError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   id,
			"slug": slug,
			"size": size.UnwrapOr(strong.From[PageSize](int32(20))),
		})
	}).Methods(http.MethodGet)
	return router
}

func TestPathAndQueryBinding(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/users/6ba7b810-9dad-11d1-80b4-00c04fd430c8/posts/my-blog-post?size=50", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8","slug":"my-blog-post","size":50}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/users/6ba7b810-9dad-11d1-80b4-00c04fd430c8/posts/ok", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8","slug":"ok","size":20}`, rec.Body.String())
}

func TestBindingErrors(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		code  string
		param string
	}{
		{"bad guid", "/users/nope/posts/ok", "BAD_REQUEST", "id"},
		{"bad slug", "/users/6ba7b810-9dad-11d1-80b4-00c04fd430c8/posts/My_Blog", "VALIDATION_ERROR", "slug"},
		{"bad size", "/users/6ba7b810-9dad-11d1-80b4-00c04fd430c8/posts/ok?size=big", "BAD_REQUEST", "size"},
	}
	router := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body struct {
				Code    string `json:"code"`
				Details struct {
					Source string `json:"source"`
					Name   string `json:"name"`
				} `json:"details"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.param, body.Details.Name)
		})
	}
}

func TestRequiredValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := httpbind.QueryParam[PageSize](req, "size")
	assert.True(t, errors.Is(err, httpbind.ErrMissing))

	var bindErr *httpbind.BindError
	require.True(t, errors.As(err, &bindErr))
	assert.Equal(t, httpbind.SourceQuery, bindErr.Source)
	assert.Equal(t, http.StatusBadRequest, bindErr.HTTPStatus())

	req.Header.Set("X-Page-Size", "10")
	size, err := httpbind.HeaderParam[PageSize](req, "X-Page-Size")
	require.NoError(t, err)
	assert.Equal(t, int32(10), size.Value())

	_, err = httpbind.HeaderParam[PageSize](req, "X-Missing")
	assert.ErrorIs(t, err, httpbind.ErrMissing)
}

func TestWriteErrorInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	httpbind.WriteError(rec, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"boom"}`, rec.Body.String())
}

func TestPersonalDataIsNotEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?contact=ada(at)example.com&slug=My_Blog", nil)

	_, err := httpbind.QueryParam[domains.EmailAddress](req, "contact")
	require.ErrorIs(t, err, validation.ErrInvalid)
	var bindErr *httpbind.BindError
	require.ErrorAs(t, err, &bindErr)
	assert.Empty(t, bindErr.Value)

	rec := httptest.NewRecorder()
	httpbind.WriteError(rec, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), "ada(at)example.com")

	_, err = httpbind.QueryParam[domains.Slug](req, "slug")
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, "My_Blog", bindErr.Value)
}
