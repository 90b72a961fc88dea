package assistant

import (
	"fmt"
	"strings"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/intent"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/kb"
)

const maxPlanFeatures = 3

// Synthesize renders the reply for one intent. Remote plans replace the
// static pricing plans when non-empty. Knowledge base text is used verbatim.
func Synthesize(in intent.Intent, k *kb.KnowledgeBase, remotePlans []kb.PricingPlan) (string, error) {
	if k == nil {
		return "", fmt.Errorf("knowledge base is nil")
	}

	switch in.Kind {
	case intent.Greeting:
		return greetingReply(k), nil
	case intent.ServiceInquiry:
		if in.Index < 0 || in.Index >= len(k.Services) {
			return "", fmt.Errorf("service index %d out of range (%d services)", in.Index, len(k.Services))
		}
		return serviceReply(k.Services[in.Index]), nil
	case intent.Pricing:
		plans := k.Pricing.Plans
		if len(remotePlans) > 0 {
			plans = remotePlans
		}
		return pricingReply(plans, k.Pricing.Details), nil
	case intent.Contact:
		return contactReply(k.Company.Contact), nil
	case intent.About:
		return aboutReply(k.Company), nil
	case intent.FAQMatch:
		if in.Index < 0 || in.Index >= len(k.FAQs) {
			return "", fmt.Errorf("faq index %d out of range (%d faqs)", in.Index, len(k.FAQs))
		}
		return faqReply(k.FAQs[in.Index]), nil
	case intent.ServicesOverview:
		return overviewReply(k), nil
	default:
		return fallbackReply(k), nil
	}
}

func greetingReply(k *kb.KnowledgeBase) string {
	return fmt.Sprintf("Hello! 👋 Welcome to %s. I can tell you about our services, pricing plans, or how to get in touch. What would you like to know?", k.Company.Name)
}

func serviceReply(s kb.Service) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%s**\n\n%s\n\n", s.Title, s.Description))
	if len(s.Features) > 0 {
		sb.WriteString("Key features:\n")
		for _, f := range s.Features {
			sb.WriteString(fmt.Sprintf("• %s\n", f))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Would you like a quote?")
	return sb.String()
}

func pricingReply(plans []kb.PricingPlan, details string) string {
	var sb strings.Builder
	sb.WriteString("Here are our pricing plans:\n\n")
	for _, p := range plans {
		sb.WriteString(fmt.Sprintf("**%s** - %s\n", p.Name, p.Price))
		features := p.Features
		if len(features) > maxPlanFeatures {
			features = features[:maxPlanFeatures]
		}
		for _, f := range features {
			sb.WriteString(fmt.Sprintf("• %s\n", f))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(details)
	return sb.String()
}

func contactReply(c kb.Contact) string {
	var sb strings.Builder
	sb.WriteString("You can reach us here:\n\n")
	sb.WriteString(fmt.Sprintf("📧 Email: [%s](mailto:%s)\n", c.Email, c.Email))
	sb.WriteString(fmt.Sprintf("📞 Phone: [%s](tel:%s)\n", c.Phone, c.Phone))
	sb.WriteString(fmt.Sprintf("📍 Address: %s\n", c.Address))
	sb.WriteString(fmt.Sprintf("🕒 Hours: %s", c.Hours))
	return sb.String()
}

func aboutReply(c kb.Company) string {
	return fmt.Sprintf("%s\n\nOur mission: %s", c.Description, c.Mission)
}

func faqReply(f kb.FAQ) string {
	return fmt.Sprintf("Did you know? %s", f.Answer)
}

func overviewReply(k *kb.KnowledgeBase) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Here's what %s offers:\n\n", k.Company.Name))
	for _, s := range k.Services {
		sb.WriteString(fmt.Sprintf("• %s\n", s.Title))
	}
	sb.WriteString("\nAsk me about any of them for details!")
	return sb.String()
}

func fallbackReply(k *kb.KnowledgeBase) string {
	return fmt.Sprintf("I'm not sure I understood that. I can help with our **Services**, **Pricing**, or **Contact** details. You can also email us at %s.", k.Company.Contact.Email)
}
