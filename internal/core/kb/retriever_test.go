package kb

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/models"
)

type fakeKBRepo struct {
	profile    *models.CompanyProfile
	entries    []models.KnowledgeBaseEntry
	profileErr error
	entriesErr error
}

func (f *fakeKBRepo) GetActiveProfile() (*models.CompanyProfile, error) {
	return f.profile, f.profileErr
}

func (f *fakeKBRepo) ListActiveEntries() ([]models.KnowledgeBaseEntry, error) {
	return f.entries, f.entriesErr
}

func testProfile() *models.CompanyProfile {
	return &models.CompanyProfile{
		Name:           "Db Studio",
		Mission:        "Serve from the database",
		Description:    "Loaded from Postgres",
		Email:          "db@studio.test",
		Phone:          "555-0100",
		Address:        "2 Row Street",
		Hours:          "9-5",
		Values:         datatypes.JSON(`[{"title":"Care","description":"We care"}]`),
		PricingDetails: "Billed monthly.",
	}
}

func TestRetriever_GetKnowledgeBase(t *testing.T) {
	repo := &fakeKBRepo{
		profile: testProfile(),
		entries: []models.KnowledgeBaseEntry{
			{Type: models.EntryTypeFAQ, Title: "Do you travel?", Body: "Yes."},
			{Type: models.EntryTypePlan, Title: "Basic", Body: "$10/mo", Features: pq.StringArray{"A", "B"}},
			{Type: models.EntryTypeService, Title: "Web Development", Body: "Sites", Features: pq.StringArray{"Fast"}},
			{Type: models.EntryTypeService, Title: "IT Consulting", Body: "Advice"},
			{Type: "policy", Title: "ignored"},
		},
	}

	k, err := NewRetriever(repo).GetKnowledgeBase()
	require.NoError(t, err)

	assert.Equal(t, "Db Studio", k.Company.Name)
	assert.Equal(t, "555-0100", k.Company.Contact.Phone)
	assert.Equal(t, []Value{{Title: "Care", Description: "We care"}}, k.Company.Values)
	assert.Equal(t, "Billed monthly.", k.Pricing.Details)

	require.Len(t, k.Services, 2)
	assert.Equal(t, "Web Development", k.Services[0].Title)
	assert.Equal(t, []string{"Fast"}, k.Services[0].Features)
	assert.Equal(t, "IT Consulting", k.Services[1].Title)

	require.Len(t, k.Pricing.Plans, 1)
	assert.Equal(t, PricingPlan{Name: "Basic", Price: "$10/mo", Features: []string{"A", "B"}}, k.Pricing.Plans[0])

	require.Len(t, k.FAQs, 1)
	assert.Equal(t, "Yes.", k.FAQs[0].Answer)
}

func TestRetriever_Errors(t *testing.T) {
	boom := errors.New("connection refused")

	_, err := NewRetriever(&fakeKBRepo{profileErr: boom}).GetKnowledgeBase()
	assert.ErrorIs(t, err, boom)

	_, err = NewRetriever(&fakeKBRepo{profile: testProfile(), entriesErr: boom}).GetKnowledgeBase()
	assert.ErrorIs(t, err, boom)

	// no plans
	_, err = NewRetriever(&fakeKBRepo{profile: testProfile()}).GetKnowledgeBase()
	assert.ErrorIs(t, err, ErrInvalidKnowledgeBase)

	bad := testProfile()
	bad.Values = datatypes.JSON(`{"not":"a list"}`)
	_, err = NewRetriever(&fakeKBRepo{profile: bad}).GetKnowledgeBase()
	assert.Error(t, err)
}
