package content

// Default catalog served (and seeded) when no database is configured or a
// collection is empty on startup. Compiled in, never mutated at runtime.

var DefaultServices = []Service{
	{
		Name:    "Web Development",
		Slug:    "web-development",
		Summary: "High-performance websites using modern stacks.",
		Features: []string{
			"Responsive UI",
			"SEO-friendly",
			"CMS integration",
			"Performance optimized",
		},
		Icon: "Globe",
	},
	{
		Name:     "App Development",
		Slug:     "app-development",
		Summary:  "iOS/Android apps with native performance.",
		Features: []string{"React Native / Flutter", "App Store / Play Store", "Analytics"},
		Icon:     "Smartphone",
	},
	{
		Name:     "Digital Marketing",
		Slug:     "digital-marketing",
		Summary:  "Growth-focused SEO, SEM and social campaigns.",
		Features: []string{"SEO Audits", "Paid Ads", "Content Strategy"},
		Icon:     "Megaphone",
	},
	{
		Name:     "Software Development",
		Slug:     "software-development",
		Summary:  "Custom software and integrations for your business.",
		Features: []string{"APIs", "Internal tools", "Automation"},
		Icon:     "Code2",
	},
	{
		Name:     "Cloud & DevOps",
		Slug:     "cloud-devops",
		Summary:  "Infra, CI/CD, scaling and reliability.",
		Features: []string{"AWS/GCP", "Docker/K8s", "Monitoring"},
		Icon:     "Cloud",
	},
	{
		Name:     "AI & Automation",
		Slug:     "ai-automation",
		Summary:  "AI copilots, data pipelines and process automation.",
		Features: []string{"LLM apps", "RAG", "Workflow automation"},
		Icon:     "Bot",
	},
}

var DefaultTestimonials = []Testimonial{
	{
		Author:  "Alex Morgan",
		Role:    "CTO",
		Company: "FinEdge",
		Quote:   "They delivered a blazing-fast product ahead of schedule.",
		Rating:  5,
	},
	{
		Author:  "Priya Sharma",
		Role:    "Founder",
		Company: "Wellnest",
		Quote:   "Our growth doubled after the new website and campaigns.",
		Rating:  5,
	},
}

var DefaultProjects = []Project{
	{
		Title:   "E‑commerce Revamp",
		Slug:    "ecommerce-revamp",
		Summary: "+38% conversion with headless storefront",
		Results: "+38% conversion | 1.8s LCP",
		Tags:    []string{"Next.js", "Stripe", "Headless"},
	},
	{
		Title:   "AI Support Copilot",
		Slug:    "ai-support-copilot",
		Summary: "Reduced ticket time by 42%",
		Results: "42% faster responses",
		Tags:    []string{"Python", "LLM", "RAG"},
	},
}

var DefaultBlogposts = []Blogpost{
	{
		Title:   "Choosing the Right Web Stack in 2025",
		Slug:    "choosing-the-right-web-stack-2025",
		Excerpt: "SPA vs. MPA, SSR vs. SSG — what actually matters.",
		Content: "Long-form content...",
		Tags:    []string{"Web", "Architecture"},
		Author:  "Team",
	},
}

var DefaultOpenings = []Opening{
	{
		Title:        "Frontend Engineer",
		Department:   "Engineering",
		Location:     "Remote",
		Type:         "Full-time",
		Description:  "React, TypeScript, Tailwind",
		Requirements: []string{"3+ years experience", "Strong UX sense"},
	},
}
