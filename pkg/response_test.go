package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponseHelpers(t *testing.T) {
	workoutJSON := `{"id":"w-1","title":"Push day"}`

	testCases := []struct {
		name            string
		write           func(w http.ResponseWriter)
		expectedStatus  int
		expectedType    string
		expectedPayload string
	}{
		{
			name: "bytes with created status",
			write: func(w http.ResponseWriter) {
				WriteResponseBytes(w, ContentType.JSON, []byte(workoutJSON), http.StatusCreated)
			},
			expectedStatus:  http.StatusCreated,
			expectedType:    ContentType.JSON,
			expectedPayload: workoutJSON,
		},
		{
			name: "string with not found status",
			write: func(w http.ResponseWriter) {
				WriteResponse(w, ContentType.Text, "not found: /nope", http.StatusNotFound)
			},
			expectedStatus:  http.StatusNotFound,
			expectedType:    ContentType.Text,
			expectedPayload: "not found: /nope",
		},
		{
			name:            "text ok",
			write:           func(w http.ResponseWriter) { WriteTextResponseOK(w, "ok, version: dev") },
			expectedStatus:  http.StatusOK,
			expectedType:    ContentType.Text,
			expectedPayload: "ok, version: dev",
		},
		{
			name:            "json ok",
			write:           func(w http.ResponseWriter) { WriteJSONResponseOK(w, workoutJSON) },
			expectedStatus:  http.StatusOK,
			expectedType:    ContentType.JSON,
			expectedPayload: workoutJSON,
		},
		{
			name: "no content type",
			write: func(w http.ResponseWriter) {
				WriteResponseBytes(w, "", nil, http.StatusNoContent)
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tc.write(rr)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectedType, rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedPayload, rr.Body.String())
		})
	}
}
