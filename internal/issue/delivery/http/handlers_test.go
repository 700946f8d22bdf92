package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"civic-ai-orchestrator/internal/classifier"
	"civic-ai-orchestrator/internal/issue"
	"civic-ai-orchestrator/pkg/log"
	"civic-ai-orchestrator/pkg/response"
)

// mockUseCase is a test implementation of issue.UseCase
type mockUseCase struct {
	categorizeOut issue.CategorizeOutput
	categorizeErr error
	lastImage     issue.CategorizeInput
	lastLabels    issue.ClassifyLabelsInput
	rules         *classifier.RuleSet
}

func (m *mockUseCase) Categorize(ctx context.Context, input issue.CategorizeInput) (issue.CategorizeOutput, error) {
	m.lastImage = input
	return m.categorizeOut, m.categorizeErr
}

func (m *mockUseCase) AssessPriority(ctx context.Context, input issue.AssessPriorityInput) (issue.AssessPriorityOutput, error) {
	return issue.AssessPriorityOutput{Result: m.rules.ClassifyPriority(input.Description)}, nil
}

func (m *mockUseCase) ClassifyLabels(ctx context.Context, input issue.ClassifyLabelsInput) (issue.CategorizeOutput, error) {
	m.lastLabels = input
	for _, l := range input.Labels {
		if l.Score < 0 || l.Score > 1 {
			return issue.CategorizeOutput{}, issue.ErrInvalidLabel
		}
		if strings.TrimSpace(l.Description) == "" {
			return issue.CategorizeOutput{}, issue.ErrBlankLabel
		}
	}
	return issue.CategorizeOutput{Result: m.rules.ClassifyLabels(input.Labels)}, nil
}

func (m *mockUseCase) Ready() bool { return true }

func setupRouter(uc issue.UseCase, maxUpload int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/internal"), New(log.NewNop(), uc, maxUpload))
	return r
}

func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write(data)
	w.Close()
	return body, w.FormDataContentType()
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return m
}

func TestCategorize(t *testing.T) {
	t.Run("returns category and confidence", func(t *testing.T) {
		uc := &mockUseCase{categorizeOut: issue.CategorizeOutput{
			Result: classifier.ClassificationResult{Category: "Pothole", Confidence: 0.98},
		}}
		r := setupRouter(uc, 1<<20)

		body, ct := multipartBody(t, "file", "test.jpg", "image/jpeg", []byte("fake image data"))
		req := httptest.NewRequest(http.MethodPost, "/internal/ai/categorize", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		m := decode(t, w)
		if m["category"] != "Pothole" || m["confidence"] != 0.98 {
			t.Errorf("unexpected body: %v", m)
		}
		if string(uc.lastImage.Image) != "fake image data" {
			t.Errorf("image bytes not forwarded: %q", uc.lastImage.Image)
		}
		if uc.lastImage.ContentType != "image/jpeg" || uc.lastImage.Filename != "test.jpg" {
			t.Errorf("unexpected part metadata: %+v", uc.lastImage)
		}
	})

	t.Run("fallback result is still 200", func(t *testing.T) {
		uc := &mockUseCase{categorizeOut: issue.CategorizeOutput{Result: classifier.Uncategorized(), Fallback: true}}
		r := setupRouter(uc, 1<<20)

		body, ct := multipartBody(t, "file", "x.png", "image/png", []byte("data"))
		req := httptest.NewRequest(http.MethodPost, "/internal/ai/categorize", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"category":"Uncategorized","confidence":0}` {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		r := setupRouter(&mockUseCase{}, 1<<20)

		body, ct := multipartBody(t, "photo", "x.jpg", "image/jpeg", []byte("data"))
		req := httptest.NewRequest(http.MethodPost, "/internal/ai/categorize", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decode(t, w)["detail"] != errMissingFile.Error() {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("file too large", func(t *testing.T) {
		r := setupRouter(&mockUseCase{}, 8)

		body, ct := multipartBody(t, "file", "x.jpg", "image/jpeg", []byte(strings.Repeat("a", 32)))
		req := httptest.NewRequest(http.MethodPost, "/internal/ai/categorize", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})

	t.Run("domain errors map to status", func(t *testing.T) {
		tcs := map[string]struct {
			err  error
			want int
		}{
			"empty":       {issue.ErrEmptyImage, http.StatusBadRequest},
			"unsupported": {issue.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
			"too large":   {issue.ErrImageTooLarge, http.StatusRequestEntityTooLarge},
			"unexpected":  {errors.New("boom"), http.StatusInternalServerError},
		}
		for name, tc := range tcs {
			t.Run(name, func(t *testing.T) {
				r := setupRouter(&mockUseCase{categorizeErr: tc.err}, 1<<20)

				body, ct := multipartBody(t, "file", "x.jpg", "image/jpeg", []byte("data"))
				req := httptest.NewRequest(http.MethodPost, "/internal/ai/categorize", body)
				req.Header.Set("Content-Type", ct)
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.want {
					t.Errorf("expected %d, got %d", tc.want, w.Code)
				}
				detail, ok := decode(t, w)["detail"]
				if !ok {
					t.Errorf("expected detail body, got %s", w.Body.String())
				}
				if tc.want == http.StatusInternalServerError && detail != response.DefaultErrorMessage {
					t.Errorf("expected generic detail, got %v", detail)
				}
			})
		}
	})
}

func TestAssessPriority(t *testing.T) {
	uc := &mockUseCase{rules: classifier.DefaultRuleSet()}
	r := setupRouter(uc, 0)

	tcs := map[string]struct {
		body       string
		wantStatus int
		wantLevel  string
		reasoning  string
	}{
		"high": {
			body:       `{"description":"There is a huge hole and it is very dangerous, almost caused an accident."}`,
			wantStatus: http.StatusOK, wantLevel: "high", reasoning: "urgent keywords",
		},
		"medium": {
			body:       `{"description":"The trash bin is overflowing and smells bad."}`,
			wantStatus: http.StatusOK, wantLevel: "medium", reasoning: "moderate inconvenience",
		},
		"low": {
			body:       `{"description":"There is some graffiti on the wall."}`,
			wantStatus: http.StatusOK, wantLevel: "low", reasoning: "standard priority",
		},
		"empty description": {
			body:       `{"description":""}`,
			wantStatus: http.StatusOK, wantLevel: "low", reasoning: "standard priority",
		},
		"missing description": {
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		"malformed json": {
			body:       `{"description":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/internal/ai/assess-priority", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
			m := decode(t, w)
			if tc.wantStatus != http.StatusOK {
				if _, ok := m["detail"]; !ok {
					t.Errorf("expected detail body, got %v", m)
				}
				return
			}
			if m["priority"] != tc.wantLevel {
				t.Errorf("expected priority %s, got %v", tc.wantLevel, m["priority"])
			}
			if !strings.Contains(m["reasoning"].(string), tc.reasoning) {
				t.Errorf("reasoning %q missing %q", m["reasoning"], tc.reasoning)
			}
		})
	}
}

func TestClassifyLabels(t *testing.T) {
	uc := &mockUseCase{rules: classifier.DefaultRuleSet()}
	r := setupRouter(uc, 0)

	tcs := map[string]struct {
		body       string
		wantStatus int
		category   string
	}{
		"match": {
			body:       `{"labels":[{"description":"Pothole","score":0.98},{"description":"Road","score":0.9}]}`,
			wantStatus: http.StatusOK, category: "Pothole",
		},
		"empty list": {
			body:       `{"labels":[]}`,
			wantStatus: http.StatusOK, category: "Uncategorized",
		},
		"score out of range": {
			body:       `{"labels":[{"description":"Pothole","score":2}]}`,
			wantStatus: http.StatusBadRequest,
		},
		"missing labels": {
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		"label without description": {
			body:       `{"labels":[{"score":0.5}]}`,
			wantStatus: http.StatusBadRequest,
		},
		"blank description": {
			body:       `{"labels":[{"description":"   ","score":0.9}]}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/internal/ai/classify-labels", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
			if tc.wantStatus == http.StatusOK && decode(t, w)["category"] != tc.category {
				t.Errorf("expected %s, got %s", tc.category, w.Body.String())
			}
		})
	}
}
