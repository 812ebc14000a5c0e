package horoscope

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/astroplan/internal/astro"
	"github.com/alexanderramin/astroplan/internal/llm"
)

// ErrNoModel is returned by Generate when no language model is configured.
// Daily degrades to the fallback texts instead.
var ErrNoModel = errors.New("no language model configured")

// Source names where a reading came from.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Request identifies the person and date a reading is generated for.
type Request struct {
	Sign string
	Name string
	Date time.Time
	// PlanetaryInfluence overrides the weekday's ruling planet when set.
	PlanetaryInfluence string
}

// Reading is one generated daily horoscope.
type Reading struct {
	Text   string
	Source Source
	Model  string
}

// Service generates daily horoscope readings.
type Service interface {
	// Daily returns a reading for the request, degrading to a canned
	// fallback text when no language model is reachable. It never fails.
	Daily(ctx context.Context, req Request) *Reading

	// Generate returns a model-written reading or an error. It does not
	// fall back; callers that need a guaranteed answer use Daily.
	Generate(ctx context.Context, req Request) (*Reading, error)
}

type service struct {
	client llm.Client
	cfg    llm.Config
}

// NewService creates a Service backed by an LLM client. A nil client means
// every reading comes from the fallback texts.
func NewService(client llm.Client, cfg llm.Config) Service {
	return &service{client: client, cfg: cfg}
}

func (s *service) influence(req Request) string {
	if req.PlanetaryInfluence != "" {
		return req.PlanetaryInfluence
	}
	return astro.RulingPlanet(req.Date)
}

func (s *service) Daily(ctx context.Context, req Request) *Reading {
	if reading, err := s.Generate(ctx, req); err == nil {
		return reading
	}
	return &Reading{
		Text:   Fallback(req.Sign, req.Name, s.influence(req), req.Date),
		Source: SourceFallback,
	}
}

func (s *service) Generate(ctx context.Context, req Request) (*Reading, error) {
	if s.client == nil || !s.cfg.Enabled {
		return nil, ErrNoModel
	}
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskHoroscope,
		UserPrompt: buildPrompt(req.Sign, req.Name, s.influence(req), req.Date),
	})
	if err != nil {
		return nil, err
	}
	return &Reading{
		Text:   strings.TrimSpace(resp.Text),
		Source: SourceLLM,
		Model:  resp.Model,
	}, nil
}
