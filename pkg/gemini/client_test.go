package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"civic-ai-orchestrator/pkg/gemini"
)

func TestBuildLabelPrompt(t *testing.T) {
	prompt := gemini.BuildLabelPrompt(7)
	if !strings.Contains(prompt, "7") {
		t.Errorf("prompt missing max results: %s", prompt)
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Text())
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		_, err := client.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Wrong Key", func(t *testing.T) {
		c2 := gemini.NewClient("wrong")
		c2.SetAPIURL(ts.URL)

		_, err := c2.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "hi"}}}},
		})
		if err == nil {
			t.Fatalf("expected unauthorized error")
		}
	})
}

func TestClient_DetectLabels(t *testing.T) {
	var answer string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		parts := req.Contents[0].Parts
		if len(parts) != 2 || parts[0].InlineData == nil || parts[0].InlineData.MimeType != "image/jpeg" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		resp := gemini.GenerateResponse{Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: answer}}}},
		}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	client := gemini.NewClient("k")
	client.SetAPIURL(ts.URL)
	client.SetModel("gemini-test")
	if client.Model() != "gemini-test" {
		t.Fatalf("expected model override, got %s", client.Model())
	}

	t.Run("Sorted And Clamped", func(t *testing.T) {
		answer = "```json\n[{\"description\":\"asphalt\",\"score\":0.8},{\"description\":\"pothole\",\"score\":1.4},{\"description\":\"\",\"score\":0.9}]\n```"

		labels, err := client.DetectLabels(context.Background(), []byte("img"), "image/jpeg", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(labels) != 2 {
			t.Fatalf("expected 2 labels, got %d", len(labels))
		}
		if labels[0].Description != "pothole" || labels[0].Score != 1 {
			t.Errorf("unexpected first label: %+v", labels[0])
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		answer = `[{"description":"a","score":0.3},{"description":"b","score":0.2},{"description":"c","score":0.1}]`

		labels, err := client.DetectLabels(context.Background(), []byte("img"), "image/jpeg", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(labels) != 2 {
			t.Errorf("expected 2 labels, got %d", len(labels))
		}
	})

	t.Run("Empty Answer", func(t *testing.T) {
		answer = ""
		if _, err := client.DetectLabels(context.Background(), []byte("img"), "image/jpeg", 5); err == nil {
			t.Error("expected error for empty answer")
		}
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		answer = "a pothole, probably"
		if _, err := client.DetectLabels(context.Background(), []byte("img"), "image/jpeg", 5); err == nil {
			t.Error("expected parse error")
		}
	})
}
