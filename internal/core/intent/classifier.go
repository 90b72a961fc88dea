// Package intent maps a user utterance to one intent using ordered keyword rules.
//
// Rules are evaluated in priority order and the first match wins:
// greeting, service inquiry, pricing, contact, about, FAQ, services overview.
package intent

import (
	"regexp"
	"strings"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/kb"
)

type Kind int

const (
	Unknown Kind = iota
	Greeting
	ServiceInquiry
	Pricing
	Contact
	About
	FAQMatch
	ServicesOverview
)

func (k Kind) String() string {
	switch k {
	case Greeting:
		return "GREETING"
	case ServiceInquiry:
		return "SERVICE_INQUIRY"
	case Pricing:
		return "PRICING"
	case Contact:
		return "CONTACT"
	case About:
		return "ABOUT"
	case FAQMatch:
		return "FAQ_MATCH"
	case ServicesOverview:
		return "SERVICES_OVERVIEW"
	default:
		return "UNKNOWN"
	}
}

// Intent is the classification result. Index is the service or FAQ position
// in the knowledge base for ServiceInquiry and FAQMatch, and -1 otherwise.
type Intent struct {
	Kind  Kind
	Index int
}

func (i Intent) String() string {
	return i.Kind.String()
}

const (
	minKeywordLen      = 4 // words of 3 chars or fewer never count
	serviceMinMatches  = 2
	faqMinMatches      = 3
	serviceHintKeyword = "service"
	unmatchedIndex     = -1
)

var (
	greetingPattern = regexp.MustCompile(`\b(hi|hello|hey|greetings)\b`)
	pricingPattern  = regexp.MustCompile(`price|cost|plan|subscription|how much`)
	contactPattern  = regexp.MustCompile(`contact|email|phone|address|located|location|hours|support`)
	aboutPattern    = regexp.MustCompile(`about|who are you|company|mission|vision`)
	titleSeparators = regexp.MustCompile(`[\s&]+`)

	overviewKeywords = []string{"service", "offer", "do for me"}
)

// rule returns the matched intent and true, or false to fall through
type rule func(text string) (Intent, bool)

// Classifier holds rules precomputed from one knowledge base
type Classifier struct {
	rules []rule
}

func NewClassifier(k *kb.KnowledgeBase) *Classifier {
	serviceKeywords := make([][]string, len(k.Services))
	for i, s := range k.Services {
		serviceKeywords[i] = keywords(titleSeparators.Split(strings.ToLower(s.Title), -1))
	}

	faqKeywords := make([][]string, len(k.FAQs))
	for i, f := range k.FAQs {
		faqKeywords[i] = keywords(strings.Fields(strings.ToLower(f.Question)))
	}

	c := &Classifier{}
	c.rules = []rule{
		patternRule(greetingPattern, Greeting),
		func(text string) (Intent, bool) {
			hasHint := strings.Contains(text, serviceHintKeyword)
			for i, words := range serviceKeywords {
				n := countContained(text, words)
				if n >= serviceMinMatches || (n >= 1 && hasHint) {
					return Intent{Kind: ServiceInquiry, Index: i}, true
				}
			}
			return Intent{}, false
		},
		patternRule(pricingPattern, Pricing),
		patternRule(contactPattern, Contact),
		patternRule(aboutPattern, About),
		func(text string) (Intent, bool) {
			for i, words := range faqKeywords {
				if countContained(text, words) >= faqMinMatches {
					return Intent{Kind: FAQMatch, Index: i}, true
				}
			}
			return Intent{}, false
		},
		func(text string) (Intent, bool) {
			for _, kw := range overviewKeywords {
				if strings.Contains(text, kw) {
					return Intent{Kind: ServicesOverview, Index: unmatchedIndex}, true
				}
			}
			return Intent{}, false
		},
	}
	return c
}

// Classify is pure and case-insensitive
func (c *Classifier) Classify(utterance string) Intent {
	text := strings.ToLower(utterance)
	for _, r := range c.rules {
		if in, ok := r(text); ok {
			return in
		}
	}
	return Intent{Kind: Unknown, Index: unmatchedIndex}
}

func patternRule(re *regexp.Regexp, kind Kind) rule {
	return func(text string) (Intent, bool) {
		if re.MatchString(text) {
			return Intent{Kind: kind, Index: unmatchedIndex}, true
		}
		return Intent{}, false
	}
}

func keywords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) >= minKeywordLen {
			out = append(out, w)
		}
	}
	return out
}

// countContained uses plain substring containment, so "serviceable" contains "service"
func countContained(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}
