package kb

// Default returns the built-in company knowledge base. Each call builds a fresh value.
func Default() *KnowledgeBase {
	return &KnowledgeBase{
		Company: Company{
			Name:        "Arkana Digital",
			Mission:     "To help growing businesses ship reliable, beautiful software without the enterprise overhead.",
			Description: "Arkana Digital is a full-service software studio building websites, mobile apps and cloud platforms for startups and established companies alike.",
			Contact: Contact{
				Email:   "hello@arkanadigital.com",
				Phone:   "+1 (555) 014-2290",
				Address: "88 Harbor View Road, Suite 210, Seattle, WA 98101",
				Hours:   "Monday - Friday, 9:00 AM - 6:00 PM PST",
			},
			Values: []Value{
				{Title: "Craftsmanship", Description: "We sweat the details so our clients don't have to."},
				{Title: "Transparency", Description: "Clear estimates, weekly demos and no surprise invoices."},
				{Title: "Partnership", Description: "We measure success by the outcomes of the people we build for."},
			},
		},
		Services: []Service{
			{
				Title:       "Web Development",
				Description: "Fast, accessible websites and web applications built on modern frameworks.",
				Features:    []string{"Responsive design", "Headless CMS integration", "Performance optimization", "Accessibility audits"},
			},
			{
				Title:       "Mobile App Development",
				Description: "Native and cross-platform apps for iOS and Android.",
				Features:    []string{"Flutter and React Native", "App Store submission", "Push notifications", "Offline-first sync"},
			},
			{
				Title:       "Cloud & DevOps Solutions",
				Description: "Infrastructure that scales with your business and deploys on every commit.",
				Features:    []string{"AWS, GCP and Azure", "CI/CD pipelines", "Infrastructure as code", "Monitoring and alerting"},
			},
			{
				Title:       "UI/UX Design",
				Description: "Research-driven interfaces that users understand at first glance.",
				Features:    []string{"User research", "Wireframes and prototypes", "Design systems", "Usability testing"},
			},
			{
				Title:       "Digital Marketing & SEO",
				Description: "Campaigns and search optimization that turn visitors into customers.",
				Features:    []string{"Technical SEO", "Content strategy", "Paid campaigns", "Conversion tracking"},
			},
			{
				Title:       "IT Consulting",
				Description: "Senior guidance on architecture, vendors and technology roadmaps.",
				Features:    []string{"Architecture reviews", "Technology roadmaps", "Vendor selection", "Security assessments"},
			},
		},
		Pricing: Pricing{
			Plans: []PricingPlan{
				{
					Name:     "Starter",
					Price:    "$499/mo",
					Features: []string{"Single-page website", "Responsive design", "Basic SEO setup", "Email support"},
				},
				{
					Name:     "Professional",
					Price:    "$1,299/mo",
					Features: []string{"Up to 10 pages", "Custom CMS integration", "Advanced SEO & analytics", "Priority support"},
				},
				{
					Name:     "Enterprise",
					Price:    "Custom Quote",
					Features: []string{"Unlimited pages", "Dedicated project manager", "Custom integrations", "24/7 support"},
				},
			},
			Details: "All plans include hosting setup and SSL. Prices are billed monthly and exclude applicable taxes. Annual billing saves 15%.",
		},
		FAQs: []FAQ{
			{
				Question: "How long does a typical project take?",
				Answer:   "Most projects take between 6 and 12 weeks depending on scope. We share a detailed timeline after the discovery call.",
			},
			{
				Question: "Do you provide ongoing maintenance after launch?",
				Answer:   "Yes. Every engagement includes 30 days of post-launch maintenance, and we offer monthly retainers after that.",
			},
			{
				Question: "What technologies do you work with?",
				Answer:   "We work with React, Next.js, Node.js, Go, Flutter and the major cloud providers (AWS, GCP, Azure).",
			},
			{
				Question: "Can you sign a non-disclosure agreement?",
				Answer:   "Absolutely. We are happy to sign an NDA before any project details are shared.",
			},
		},
	}
}
