package submitter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/corrections/model"
	"github.com/viant/corrections/progress"
)

func testPayload(t *testing.T) *model.Payload {
	payload, err := model.DecodePayload([]byte(`{"metadata":{"language":"es","chapters_covered":[1,2]},"corrections":[{"id":1},{"id":2},{"id":3}]}`))
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return payload
}

func TestService_Submit(t *testing.T) {
	var testCases = []struct {
		description   string
		status        int
		body          string
		expectSuccess bool
		expectFile    string
		expectCommit  string
		expectMessage string
	}{
		{
			description:   "success",
			status:        http.StatusOK,
			body:          `{"file":"es.json"}`,
			expectSuccess: true,
			expectFile:    "es.json",
		},
		{
			description:   "success with commit link",
			status:        http.StatusCreated,
			body:          `{"file":"es.json","commit_url":"https://example/commit/1"}`,
			expectSuccess: true,
			expectFile:    "es.json",
			expectCommit:  "https://example/commit/1",
		},
		{
			description:   "rejected with message",
			status:        http.StatusTooManyRequests,
			body:          `{"error":"rate limited"}`,
			expectMessage: "rate limited",
		},
		{
			description:   "rejected without message",
			status:        http.StatusInternalServerError,
			body:          `{}`,
			expectMessage: model.DefaultFailureMessage,
		},
		{
			description:   "success with numeric file",
			status:        http.StatusOK,
			body:          `{"file":42}`,
			expectSuccess: true,
			expectFile:    "42",
		},
		{
			description:   "success with non string commit link",
			status:        http.StatusOK,
			body:          `{"file":"es.json","commit_url":{"href":"https://example/commit/1"}}`,
			expectSuccess: true,
			expectFile:    "es.json",
		},
		{
			description:   "success with array body",
			status:        http.StatusOK,
			body:          `[]`,
			expectSuccess: true,
		},
		{
			description:   "rejected with structured error",
			status:        http.StatusTooManyRequests,
			body:          `{"error":{"code":"rate"}}`,
			expectMessage: `{"code":"rate"}`,
		},
		{
			description:   "rejected with null error",
			status:        http.StatusBadRequest,
			body:          `{"error":null}`,
			expectMessage: model.DefaultFailureMessage,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			var requests int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&requests, 1)
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				data, _ := io.ReadAll(r.Body)
				received, err := model.DecodePayload(data)
				if assert.Nil(t, err) {
					assert.Equal(t, 3, received.ItemCount())
					assert.Equal(t, "es", received.Language())
				}
				w.WriteHeader(testCase.status)
				_, _ = w.Write([]byte(testCase.body))
			}))
			defer server.Close()

			ctx, tracker := progress.WithNewTracker(context.Background(), "test", nil)
			outcome := New(server.URL, server.Client()).Submit(ctx, testPayload(t))
			assert.EqualValues(t, 1, atomic.LoadInt32(&requests))
			assert.Equal(t, 1, tracker.Snapshot().Requests)
			if !assert.NotNil(t, outcome) {
				return
			}
			assert.Equal(t, testCase.expectSuccess, outcome.IsSuccess())
			if testCase.expectSuccess {
				assert.Equal(t, testCase.expectFile, outcome.Details().File)
				assert.Equal(t, testCase.expectCommit, outcome.Details().CommitURL)
				assert.Equal(t, testCase.status, outcome.Details().StatusCode)
				assert.JSONEq(t, testCase.body, string(outcome.Details().Raw))
				return
			}
			assert.Equal(t, testCase.expectMessage, outcome.Message())
		})
	}
}

func TestService_Submit_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	outcome := New(server.URL, nil).Submit(context.Background(), testPayload(t))
	assert.False(t, outcome.IsSuccess())
	assert.Contains(t, outcome.Message(), "invalid response (status 502)")
}

func TestService_Submit_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	outcome := New(endpoint, nil).Submit(context.Background(), testPayload(t))
	assert.False(t, outcome.IsSuccess())
	assert.NotEmpty(t, outcome.Message())
	assert.NotEqual(t, model.DefaultFailureMessage, outcome.Message())
}

func TestService_Submit_InvalidEndpoint(t *testing.T) {
	outcome := New("://missing-scheme", nil).Submit(context.Background(), testPayload(t))
	assert.False(t, outcome.IsSuccess())
	assert.NotEmpty(t, outcome.Message())
}

func TestService_Submit_NilPayload(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		_ = json.NewEncoder(w).Encode(map[string]string{"file": "x.json"})
	}))
	defer server.Close()

	outcome := New(server.URL, nil).Submit(context.Background(), nil)
	assert.True(t, outcome.IsSuccess())
	assert.Equal(t, "null", string(body))
}
