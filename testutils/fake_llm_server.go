package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
)

// FakeLLMServer answers chat completion requests with a canned reply. Set
// Reply before making requests, or FailNext to exercise fallback paths.
type FakeLLMServer struct {
	s        *httptest.Server
	Reply    string
	FailNext atomic.Bool
	calls    atomic.Int32
}

func NewFakeLLMServer() *FakeLLMServer {
	f := &FakeLLMServer{
		Reply: "A fine day for cricket.",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", f.completionsHandler)
	f.s = httptest.NewServer(mux)
	return f
}

func (f *FakeLLMServer) Close() {
	f.s.Close()
}

func (f *FakeLLMServer) URL() string {
	return f.s.URL
}

func (f *FakeLLMServer) Calls() int {
	return int(f.calls.Load())
}

func (f *FakeLLMServer) completionsHandler(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)

	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if f.FailNext.Swap(false) {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var req struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": f.Reply}},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
