package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/kb"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(kb.Default())

	tests := []struct {
		name      string
		utterance string
		want      Intent
	}{
		// greeting
		{"greeting word", "hi there", Intent{Greeting, -1}},
		{"greeting wins over services", "Hello! What services do you offer?", Intent{Greeting, -1}},
		{"greeting wins over pricing", "greetings, how much is it", Intent{Greeting, -1}},
		{"greeting needs whole word", "this is a thing", Intent{Unknown, -1}},

		// service inquiry
		{"one keyword plus service", "I need web development services", Intent{ServiceInquiry, 0}},
		{"one keyword without service falls through", "mobile app development", Intent{ServiceInquiry, 1}},
		{"two keywords", "digital marketing", Intent{ServiceInquiry, 4}},
		{"service beats pricing", "what does your cloud devops work cost", Intent{ServiceInquiry, 2}},
		{"design plus service", "design service", Intent{ServiceInquiry, 3}},

		// pricing
		{"single keyword is not a service inquiry", "how much does web development cost", Intent{Pricing, -1}},
		{"subscription", "do you have a subscription", Intent{Pricing, -1}},
		{"pricing beats contact", "what is your pricing plan and your email", Intent{Pricing, -1}},
		{"upper case", "HOW MUCH IS IT", Intent{Pricing, -1}},

		// contact
		{"hours", "what are your hours", Intent{Contact, -1}},
		{"located", "where are you located", Intent{Contact, -1}},
		{"contact beats about", "can you email me about the company", Intent{Contact, -1}},

		// about
		{"company", "tell me about your company", Intent{About, -1}},
		{"who are you", "who are you", Intent{About, -1}},

		// faq
		{"faq four words", "how long does a typical project take", Intent{FAQMatch, 0}},
		{"faq three words", "will you provide ongoing maintenance", Intent{FAQMatch, 1}},
		{"faq third entry", "what technologies do you work with", Intent{FAQMatch, 2}},
		{"faq two words is not enough", "what technologies", Intent{Unknown, -1}},

		// overview
		{"offer", "what do you offer", Intent{ServicesOverview, -1}},
		{"do for me", "what can you do for me", Intent{ServicesOverview, -1}},
		{"faq below threshold then overview", "what technologies do you offer", Intent{ServicesOverview, -1}},
		{"substring containment", "any serviceable options", Intent{ServicesOverview, -1}},

		// unknown
		{"empty", "", Intent{Unknown, -1}},
		{"gibberish", "asdf qwer", Intent{Unknown, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.utterance))
		})
	}
}

func TestClassify_FirstServiceInKBOrderWins(t *testing.T) {
	k := &kb.KnowledgeBase{
		Services: []kb.Service{
			{Title: "Brand Strategy"},
			{Title: "Brand Identity & Strategy"},
		},
	}
	c := NewClassifier(k)

	assert.Equal(t, Intent{ServiceInquiry, 0}, c.Classify("brand identity strategy"))
	assert.Equal(t, Intent{ServiceInquiry, 1}, c.Classify("brand identity"))
}

func TestClassify_EmptyKnowledgeBase(t *testing.T) {
	c := NewClassifier(&kb.KnowledgeBase{})

	assert.Equal(t, Intent{Greeting, -1}, c.Classify("hey"))
	assert.Equal(t, Intent{ServicesOverview, -1}, c.Classify("any service"))
	assert.Equal(t, Intent{Unknown, -1}, c.Classify("development"))
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier(kb.Default())
	first := c.Classify("Do you provide ongoing maintenance after launch?")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify("Do you provide ongoing maintenance after launch?"))
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "GREETING", Greeting.String())
	assert.Equal(t, "SERVICE_INQUIRY", ServiceInquiry.String())
	assert.Equal(t, "PRICING", Pricing.String())
	assert.Equal(t, "CONTACT", Contact.String())
	assert.Equal(t, "ABOUT", About.String())
	assert.Equal(t, "FAQ_MATCH", FAQMatch.String())
	assert.Equal(t, "SERVICES_OVERVIEW", ServicesOverview.String())
	assert.Equal(t, "UNKNOWN", Unknown.String())
	assert.Equal(t, "PRICING", Intent{Kind: Pricing, Index: -1}.String())
}
