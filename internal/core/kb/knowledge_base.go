package kb

import (
	"errors"
	"fmt"
)

// KnowledgeBase is the read-only company knowledge the assistant answers from.
// It is built once at startup and never mutated afterwards.
type KnowledgeBase struct {
	Company  Company   `json:"company" yaml:"company"`
	Services []Service `json:"services" yaml:"services"`
	Pricing  Pricing   `json:"pricing" yaml:"pricing"`
	FAQs     []FAQ     `json:"faqs" yaml:"faqs"`
}

type Company struct {
	Name        string  `json:"name" yaml:"name"`
	Mission     string  `json:"mission" yaml:"mission"`
	Description string  `json:"description" yaml:"description"`
	Contact     Contact `json:"contact" yaml:"contact"`
	Values      []Value `json:"values" yaml:"values"`
}

type Contact struct {
	Email   string `json:"email" yaml:"email"`
	Phone   string `json:"phone" yaml:"phone"`
	Address string `json:"address" yaml:"address"`
	Hours   string `json:"hours" yaml:"hours"`
}

type Value struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type Service struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
}

type Pricing struct {
	Plans   []PricingPlan `json:"plans" yaml:"plans"`
	Details string        `json:"details" yaml:"details"`
}

// PricingPlan carries a pre-formatted price label, e.g. "$499/mo"
type PricingPlan struct {
	Name     string   `json:"name" yaml:"name"`
	Price    string   `json:"price" yaml:"price"`
	Features []string `json:"features" yaml:"features"`
}

type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

var ErrInvalidKnowledgeBase = errors.New("invalid knowledge base")

// Validate checks the fields every reply template depends on
func (k *KnowledgeBase) Validate() error {
	if k == nil {
		return fmt.Errorf("%w: knowledge base is nil", ErrInvalidKnowledgeBase)
	}
	if k.Company.Name == "" {
		return fmt.Errorf("%w: company name is required", ErrInvalidKnowledgeBase)
	}
	if k.Company.Contact.Email == "" {
		return fmt.Errorf("%w: contact email is required", ErrInvalidKnowledgeBase)
	}
	if len(k.Pricing.Plans) == 0 {
		return fmt.Errorf("%w: at least one pricing plan is required", ErrInvalidKnowledgeBase)
	}
	for i, s := range k.Services {
		if s.Title == "" {
			return fmt.Errorf("%w: service %d has no title", ErrInvalidKnowledgeBase, i)
		}
	}
	for i, f := range k.FAQs {
		if f.Question == "" || f.Answer == "" {
			return fmt.Errorf("%w: faq %d needs a question and an answer", ErrInvalidKnowledgeBase, i)
		}
	}
	return nil
}
