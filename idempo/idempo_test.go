package idempo

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCachedStatusHandlesDriverNumericTypes(t *testing.T) {
	cases := []struct {
		name     string
		response map[string]interface{}
		want     int
	}{
		{"int32", map[string]interface{}{"status": int32(422)}, 422},
		{"int64", map[string]interface{}{"status": int64(409)}, 409},
		{"float64", map[string]interface{}{"status": float64(201)}, 201},
		{"int", map[string]interface{}{"status": 500}, 500},
		{"missing", map[string]interface{}{}, http.StatusOK},
		{"zero", map[string]interface{}{"status": int32(0)}, http.StatusOK},
		{"wrong type", map[string]interface{}{"status": "422"}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cachedStatus(tc.response))
		})
	}
}

func TestCaptureResponseWriterRecordsStatusAndBody(t *testing.T) {
	rec := newRecorder()
	crw := NewCaptureResponseWriter(rec)

	crw.WriteHeader(http.StatusUnprocessableEntity)
	crw.WriteHeader(http.StatusOK) // second call must not overwrite
	crw.Write([]byte(`{"error":"validation failed"}`))

	assert.Equal(t, http.StatusUnprocessableEntity, crw.Status())
	assert.JSONEq(t, `{"error":"validation failed"}`, string(crw.BodyBytes()))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.status)
}

type recorder struct {
	header http.Header
	status int
	body   []byte
}

func newRecorder() *recorder {
	return &recorder{header: make(http.Header), status: http.StatusOK}
}

func (r *recorder) Header() http.Header { return r.header }

func (r *recorder) WriteHeader(status int) { r.status = status }

func (r *recorder) Write(b []byte) (int, error) {
	r.body = append(r.body, b...)
	return len(b), nil
}
