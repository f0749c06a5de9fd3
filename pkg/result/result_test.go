package result

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var e Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]int{"n": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := decode(t, rec)
	require.Equal(t, CodeSuccess, env.Code)
	require.Empty(t, env.Message)
	require.NotNil(t, env.Data)
}

func TestFailStaysHTTP200(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, "account locked")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode(t, rec)
	require.Equal(t, CodeFailure, env.Code)
	require.Equal(t, "account locked", env.Message)
	require.Nil(t, env.Data)
}

func TestFailStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	FailStatus(rec, http.StatusUnauthorized, "missing token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, CodeFailure, decode(t, rec).Code)
}
