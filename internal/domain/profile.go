package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const ContextProfileKey = "runProfile"

// RunProfile records how long each stage of a simulation run took
// (load, estimate, simulate, aggregate, persist). Stages are recorded
// per ticker so slow tickers stand out in the run report.
type RunProfile struct {
	StartTime time.Time       `json:"-"`
	Stages    []RunStageEvent `json:"stages"`
	TotalMs   int64           `json:"totalMs"`
}

type RunStageEvent struct {
	Ticker    string    `json:"ticker,omitempty"`
	Stage     string    `json:"stage"`
	ElapsedMs int64     `json:"elapsedMs"`
	Time      time.Time `json:"time"`
}

func NewRunProfile() *RunProfile {
	return &RunProfile{
		StartTime: time.Now(),
	}
}

// GetRunProfile pulls the profile off the context, or returns a fresh
// one so callers never need a nil check.
func GetRunProfile(ctx context.Context) *RunProfile {
	if p, ok := ctx.Value(ContextProfileKey).(*RunProfile); ok {
		return p
	}
	return NewRunProfile()
}

// MarkStage records completion of a stage, measured from the previous
// mark (or the profile start for the first one).
func (p *RunProfile) MarkStage(ticker, stage string) {
	last := p.StartTime
	if len(p.Stages) > 0 {
		last = p.Stages[len(p.Stages)-1].Time
	}
	now := time.Now()
	p.Stages = append(p.Stages, RunStageEvent{
		Ticker:    ticker,
		Stage:     stage,
		ElapsedMs: now.Sub(last).Milliseconds(),
		Time:      now,
	})
}

func (p *RunProfile) End() {
	p.TotalMs = time.Since(p.StartTime).Milliseconds()
}

func (p *RunProfile) ToJsonBytes() ([]byte, error) {
	bytes, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run profile: %w", err)
	}
	return bytes, nil
}
