package kb

import (
	"encoding/json"
	"fmt"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/models"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/repositories"
)

type Retriever struct {
	repo repositories.KBRepo
}

func NewRetriever(repo repositories.KBRepo) *Retriever {
	return &Retriever{repo: repo}
}

// GetKnowledgeBase assembles the knowledge base from the active profile and entries
func (r *Retriever) GetKnowledgeBase() (*KnowledgeBase, error) {
	profile, err := r.repo.GetActiveProfile()
	if err != nil {
		return nil, fmt.Errorf("load company profile: %w", err)
	}

	entries, err := r.repo.ListActiveEntries()
	if err != nil {
		return nil, fmt.Errorf("load knowledge base entries: %w", err)
	}

	k, err := buildKnowledgeBase(profile, entries)
	if err != nil {
		return nil, err
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return k, nil
}

// buildKnowledgeBase expects entries already ordered by position
func buildKnowledgeBase(profile *models.CompanyProfile, entries []models.KnowledgeBaseEntry) (*KnowledgeBase, error) {
	k := &KnowledgeBase{
		Company: Company{
			Name:        profile.Name,
			Mission:     profile.Mission,
			Description: profile.Description,
			Contact: Contact{
				Email:   profile.Email,
				Phone:   profile.Phone,
				Address: profile.Address,
				Hours:   profile.Hours,
			},
		},
		Pricing: Pricing{Details: profile.PricingDetails},
	}

	if len(profile.Values) > 0 {
		if err := json.Unmarshal(profile.Values, &k.Company.Values); err != nil {
			return nil, fmt.Errorf("decode company values: %w", err)
		}
	}

	for _, entry := range entries {
		features := []string(entry.Features)
		switch entry.Type {
		case models.EntryTypeService:
			k.Services = append(k.Services, Service{
				Title:       entry.Title,
				Description: entry.Body,
				Features:    features,
			})
		case models.EntryTypePlan:
			k.Pricing.Plans = append(k.Pricing.Plans, PricingPlan{
				Name:     entry.Title,
				Price:    entry.Body,
				Features: features,
			})
		case models.EntryTypeFAQ:
			k.FAQs = append(k.FAQs, FAQ{
				Question: entry.Title,
				Answer:   entry.Body,
			})
		}
	}

	return k, nil
}
