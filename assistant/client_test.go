package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", srv.URL+"/", "test-model", 5*time.Second)
	c.delay = time.Millisecond

	return c
}

func reply(w http.ResponseWriter, content string) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
}

func TestClientComplete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}

		assert.Equal(t, "test-model", req.Model)
		assert.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "hello", req.Messages[1].Content)

		reply(w, "hi there")
	})

	got, err := c.Complete(context.Background(), Prompt{System: "sys", User: "hello"})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "hi there", got)
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		reply(w, "ok")
	})

	got, err := c.Complete(context.Background(), Prompt{User: "x"})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "ok", got)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientGivesUp(t *testing.T) {
	var calls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Complete(context.Background(), Prompt{User: "x"})
	if !errors.Is(err, errMaxRetries) {
		t.Errorf("expected max retries error, but got: %v", err)
	}

	assert.Equal(t, int32(maxRetries), calls.Load())
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Complete(context.Background(), Prompt{User: "x"})
	if !errors.Is(err, errHTTPStatus) {
		t.Errorf("expected status error, but got: %v", err)
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestClientEmptyReply(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		reply(w, "   ")
	})

	_, err := c.Complete(context.Background(), Prompt{User: "x"})
	if !errors.Is(err, errEmptyResponse) {
		t.Errorf("expected empty response error, but got: %v", err)
	}
}

func TestClientWithoutKey(t *testing.T) {
	c := NewClient("", "", "", time.Second)

	assert.False(t, c.Configured())
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultModel, c.model)

	_, err := c.Complete(context.Background(), Prompt{User: "x"})
	if !errors.Is(err, errNoAPIKey) {
		t.Errorf("expected missing key error, but got: %v", err)
	}
}

func TestStripCodeFence(t *testing.T) {
	table := []struct {
		in   string
		want string
	}{
		{`["a"]`, `["a"]`},
		{"```json\n[\"a\"]\n```", `["a"]`},
		{"```\n[1, 2]\n```  ", `[1, 2]`},
		{"  plain text ", "plain text"},
	}

	for _, v := range table {
		got := stripCodeFence(v.in)
		if got != v.want {
			t.Errorf("stripCodeFence(%q): expected %q, but got %q", v.in, v.want, got)
		}
	}
}
