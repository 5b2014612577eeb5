package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	server, err := NewServer(Config{DisablePrecheck: true})
	if err != nil {
		t.Fatalf("server: %v", err)
	}
	router, err := server.Router()
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	return router
}

const validDraft = `{
	"request_type": "OPPORTUNITY",
	"project_type": "OFFLINE",
	"idea": "Химчистка",
	"goal": "Выйти на прибыль за 3 месяца",
	"context": "Рост спроса в районе",
	"region": {"country": "Россия", "region": "Крым", "city": "Ялта"},
	"capital": 150000,
	"responsibility_confirmed": true,
	"production_related": false
}`

func TestHandleEvaluateAdmits(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(validDraft))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	var resp EvaluateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Decision != "ADMITTED" {
		t.Fatalf("expected ADMITTED got %s (%v)", resp.Decision, resp.Notes)
	}
}

func TestHandleEvaluateReturnsQuestions(t *testing.T) {
	router := newTestRouter(t)

	body := strings.Replace(validDraft, `"idea": "Химчистка"`, `"idea": ""`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/evaluate?lang=ru", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp EvaluateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Decision != "RETURN_WITH_CONDITIONS" || resp.Stage != "IDEA" {
		t.Fatalf("expected RETURN/IDEA got %s/%s", resp.Decision, resp.Stage)
	}
	if len(resp.Questions) == 0 || len(resp.QuestionKeys) != len(resp.Questions) {
		t.Fatalf("expected translated questions, got keys=%v questions=%v", resp.QuestionKeys, resp.Questions)
	}
}

func TestHandleEvaluateRejectsUnknownLang(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/evaluate?lang=fr", strings.NewReader(validDraft))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestHandlePrecheckWithoutCollaborator(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/precheck", strings.NewReader(validDraft))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	var resp PrecheckResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.AI.Verdict != "OK" {
		t.Fatalf("absent collaborator must degrade to OK, got %s", resp.AI.Verdict)
	}
	if resp.UIState != "ADMITTED_CLEAN" || resp.Decision != "ADMITTED" {
		t.Fatalf("expected clean admission, got state=%s decision=%s", resp.UIState, resp.Decision)
	}
	if resp.Fingerprint == "" {
		t.Fatalf("admission must expose the snapshot fingerprint")
	}
}

func TestHandleConfig(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp ConfigResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.PrecheckEnabled {
		t.Fatalf("precheck must report disabled")
	}
	if resp.CapitalThreshold != 100_000 {
		t.Fatalf("expected default threshold, got %d", resp.CapitalThreshold)
	}
	if resp.RealityMarkers == 0 || resp.LegalityMarkers == 0 {
		t.Fatalf("default marker lists must not be empty")
	}
}
