package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withServer(t *testing.T, h http.HandlerFunc) {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	old := url
	url = srv.URL
	t.Cleanup(func() { url = old })
}

func TestCall_DecodesResponse(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/progress", r.URL.Path)
		w.Write([]byte(`{"total":1330,"level":3,"to_next":170}`))
	})

	var buf bytes.Buffer
	progressCmd.SetOut(&buf)
	require.NoError(t, progressCmd.RunE(progressCmd, nil))

	assert.Equal(t, "points 1330  level 3  170 to next level\n", buf.String())
}

func TestCall_ConvertsErrorResponse(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"no active session","kind":"inactive"}`))
	})

	err := call(http.MethodPost, "/quiz/next", nil, nil)
	require.Error(t, err)
	assert.Equal(t, "inactive: no active session", err.Error())
}

func TestCall_SendsBody(t *testing.T) {
	var got string
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		buf.ReadFrom(r.Body)
		got = buf.String()
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{}`))
	})

	require.NoError(t, call(http.MethodPost, "/sandbox/send", map[string]string{"amount": "1.5", "to": "0xabc"}, nil))
	assert.True(t, strings.Contains(got, `"amount":"1.5"`))
}
