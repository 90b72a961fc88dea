package assistant

import (
	"context"
	"fmt"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/intent"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/kb"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/metrics"
)

// Plan sources
const (
	PlanSourceRemote = "remote"
	PlanSourceStatic = "static"
)

// PlanProvider supplies live pricing plans; errors mean "use static plans"
type PlanProvider interface {
	ActivePlans(ctx context.Context) ([]kb.PricingPlan, error)
}

type Reply struct {
	Intent     intent.Intent
	Content    string
	PlanSource string // set for pricing replies only
}

// Engine answers one utterance at a time and keeps no conversation state
type Engine struct {
	kb         *kb.KnowledgeBase
	classifier *intent.Classifier
	plans      PlanProvider
	metrics    *metrics.Metrics
}

// NewEngine creates an engine. A nil plan provider always uses static plans.
func NewEngine(k *kb.KnowledgeBase, plans PlanProvider, m *metrics.Metrics) *Engine {
	return &Engine{
		kb:         k,
		classifier: intent.NewClassifier(k),
		plans:      plans,
		metrics:    m,
	}
}

func (e *Engine) KnowledgeBase() *kb.KnowledgeBase {
	return e.kb
}

func (e *Engine) Reply(ctx context.Context, utterance string) (*Reply, error) {
	in := e.classifier.Classify(utterance)
	e.metrics.ObserveIntent(in.String())

	reply := &Reply{Intent: in}

	var remote []kb.PricingPlan
	if in.Kind == intent.Pricing {
		remote = e.remotePlans(ctx)
		reply.PlanSource = PlanSourceStatic
		if len(remote) > 0 {
			reply.PlanSource = PlanSourceRemote
		}
	}

	content, err := Synthesize(in, e.kb, remote)
	if err != nil {
		return nil, fmt.Errorf("synthesize %s reply: %w", in, err)
	}
	reply.Content = content
	return reply, nil
}

// remotePlans never fails; the source has already logged any upstream error
func (e *Engine) remotePlans(ctx context.Context) []kb.PricingPlan {
	if e.plans == nil {
		return nil
	}
	plans, err := e.plans.ActivePlans(ctx)
	if err != nil {
		return nil
	}
	return plans
}
