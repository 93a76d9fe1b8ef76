package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/talentscout/talentscout/internal/config"
	"github.com/talentscout/talentscout/internal/core"
	"github.com/talentscout/talentscout/internal/core/model"
	"github.com/talentscout/talentscout/internal/core/scoring"
	"github.com/talentscout/talentscout/internal/llm"
	"github.com/talentscout/talentscout/internal/search"
)

type Server struct {
	Pipeline *core.Pipeline
	log      *zap.Logger
}

// NewServer wires the pipeline from configuration. Absent credentials are not
// an error: the corresponding stage runs in fallback mode.
func NewServer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, error) {
	var llmClient llm.LLMClient
	if cfg.LLM.APIKey != "" || cfg.LLM.Provider == "ollama" {
		c, err := llm.NewClient(ctx, cfg.LLM)
		if err != nil {
			return nil, err
		}
		llmClient = c
	} else {
		log.Warn("no LLM API key configured, extraction and outreach will use fallbacks")
	}

	var searchClient search.Client
	if cfg.Search.APIKey != "" && cfg.Search.EngineID != "" {
		c, err := search.NewGoogleClient(ctx, cfg.Search.APIKey, cfg.Search.EngineID)
		if err != nil {
			return nil, err
		}
		searchClient = c
	} else {
		log.Warn("no search credentials configured, retrieval will use static sample data")
	}

	return &Server{
		Pipeline: core.NewPipeline(llmClient, searchClient, cfg, log),
		log:      log,
	}, nil
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/", s.Root)
	r.GET("/health", s.Health)
	r.POST("/search", s.Search)
	r.POST("/score", s.Score)
	r.POST("/outreach", s.Outreach)
	r.POST("/full-pipeline", s.FullPipeline)

	return r
}

// JobRequest describes the position to source for.
type JobRequest struct {
	Description   string `json:"description"`
	NumCandidates int    `json:"num_candidates"`
}

type ScoreRequest struct {
	Job        JobRequest               `json:"job"`
	Candidates []model.CandidateProfile `json:"candidates"`
}

type OutreachRequest struct {
	Job              JobRequest              `json:"job"`
	ScoredCandidates []model.ScoredCandidate `json:"scored_candidates"`
}

func (s *Server) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Talent Scout sourcing API"})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) Search(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	candidates, err := s.Pipeline.SearchCandidates(c.Request.Context(), req.Description, req.NumCandidates)
	if err != nil {
		s.fail(c, core.StageSearch, err)
		return
	}

	c.JSON(http.StatusOK, candidates)
}

func (s *Server) Score(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	scored, err := s.Pipeline.ScoreCandidates(c.Request.Context(), req.Job.Description, req.Candidates)
	if err != nil {
		var missing *scoring.MissingFieldError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": missing.Error()})
			return
		}
		s.fail(c, core.StageScoring, err)
		return
	}

	c.JSON(http.StatusOK, scored)
}

func (s *Server) Outreach(c *gin.Context) {
	var req OutreachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	messages := s.Pipeline.Outreach(c.Request.Context(), req.Job.Description, req.ScoredCandidates)
	c.JSON(http.StatusOK, messages)
}

func (s *Server) FullPipeline(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := s.Pipeline.Run(c.Request.Context(), req.Description, req.NumCandidates)
	if err != nil {
		s.fail(c, "pipeline", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// fail surfaces a caught internal error as a single stage-labeled message.
func (s *Server) fail(c *gin.Context, stage string, err error) {
	s.log.Error("request failed", zap.String("stage", stage), zap.Error(err))

	var stageErr *core.StageError
	if !errors.As(err, &stageErr) {
		err = &core.StageError{Stage: stage, Err: err}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
