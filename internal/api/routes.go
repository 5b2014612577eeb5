package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"idea-gatekeeper/internal/admission"
	"idea-gatekeeper/internal/clarify"
	"idea-gatekeeper/internal/gatekeeper"
	"idea-gatekeeper/internal/i18n"
	"idea-gatekeeper/internal/precheck"
)

// Config defines server dependencies.
type Config struct {
	RealityMarkersPath  string
	LegalityMarkersPath string
	CapitalThreshold    int64
	AllowedOrigins      []string
	PrecheckConfig      precheck.Config
	DisablePrecheck     bool
}

// Server wires HTTP handlers with the gatekeeper engine and the optional
// precheck collaborator. The server is stateless: every request carries its
// own draft and the engine holds only immutable policy data.
type Server struct {
	engine         *gatekeeper.Engine
	prechecker     precheck.Prechecker
	allowedOrigins []string
}

// NewServer constructs the API server.
func NewServer(cfg Config) (*Server, error) {
	engine, err := gatekeeper.NewEngine(gatekeeper.Config{
		RealityMarkersPath:  cfg.RealityMarkersPath,
		LegalityMarkersPath: cfg.LegalityMarkersPath,
		CapitalThreshold:    cfg.CapitalThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("gatekeeper engine: %w", err)
	}

	var prechecker precheck.Prechecker
	if cfg.DisablePrecheck {
		logrus.Info("AI precheck disabled via configuration")
	} else {
		client, err := precheck.NewClient(cfg.PrecheckConfig)
		switch {
		case err == nil:
			prechecker = client
		case errors.Is(err, precheck.ErrDisabled):
			logrus.Info("AI precheck disabled - no API key configured")
		default:
			return nil, fmt.Errorf("precheck client: %w", err)
		}
	}

	return &Server{
		engine:         engine,
		prechecker:     prechecker,
		allowedOrigins: cfg.AllowedOrigins,
	}, nil
}

// Router configures gin routes.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsCfg))
	r.Use(requestID())

	r.GET("/api/healthz", s.handleHealth)
	r.GET("/api/config", s.handleConfig)

	api := r.Group("/api")
	{
		api.POST("/evaluate", s.handleEvaluate)
		api.POST("/precheck", s.handlePrecheck)
	}

	return r, nil
}

// requestID tags each request with an identifier for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		}).Info("request completed")
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		PrecheckEnabled:  s.prechecker != nil && s.prechecker.Enabled(),
		CapitalThreshold: s.engine.CapitalThreshold(),
		RealityMarkers:   s.engine.RealityMarkerCount(),
		LegalityMarkers:  s.engine.LegalityMarkerCount(),
		Languages:        []string{string(i18n.EN), string(i18n.RU)},
	})
}

// handleEvaluate runs the deterministic engine only. Malformed field values
// never 400 here: the engine is total over loose input and reports problems
// through its own decision.
func (s *Server) handleEvaluate(c *gin.Context) {
	var q langQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var input gatekeeper.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := s.engine.Evaluate(input)
	keys := clarify.QuestionKeys(result)
	c.JSON(http.StatusOK, evaluateResponse(result, keys, q.lang()))
}

// handlePrecheck runs the full admission cycle: collaborator first, then the
// deterministic engine against the canonical draft, with the merge applied
// through the admission reducer.
func (s *Server) handlePrecheck(c *gin.Context) {
	var q langQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var input gatekeeper.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	lang := q.lang()

	vm := admission.NewViewModel(input)
	vm = admission.Reduce(vm, admission.EventPrecheckStarted{})
	cycle := vm.PendingFingerprint

	ai := precheck.Run(c.Request.Context(), s.prechecker, input)
	vm = admission.Reduce(vm, admission.EventAIVerdict{Fingerprint: cycle, AI: ai})

	resp := PrecheckResponse{
		AI:           ai,
		QuestionKeys: []string{},
		Questions:    []string{},
	}

	if vm.State == admission.StateAIHardStop {
		resp.UIState = string(vm.State)
		resp.Decision = string(gatekeeper.HardFail)
		resp.QuestionKeys = ai.Clarification.QuestionKeys
		resp.Questions = i18n.Translate(lang, resp.QuestionKeys)
		resp.ProcessingTimeMs = time.Since(start).Milliseconds()
		c.JSON(http.StatusOK, resp)
		return
	}

	result := s.engine.Evaluate(admission.CanonicalDraft(vm.Draft, vm.AI))
	vm = admission.Reduce(vm, admission.EventGatekeeperResult{Fingerprint: cycle, Result: result})

	resp.UIState = string(vm.State)
	resp.Decision = string(admission.MergeDecision(result, ai.Verdict))
	resp.Gatekeeper = vm.Result
	resp.Fingerprint = vm.AdmittedFingerprint
	if vm.StatusKey != "" {
		resp.StatusMessage = i18n.Lookup(lang, vm.StatusKey)
	}

	keys := clarify.QuestionKeys(result)
	keys = append(keys, ai.Clarification.QuestionKeys...)
	resp.QuestionKeys = dedupe(keys)
	resp.Questions = i18n.Translate(lang, resp.QuestionKeys)
	resp.ProcessingTimeMs = time.Since(start).Milliseconds()

	c.JSON(http.StatusOK, resp)
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
