package catalog

// Profile is the owner information shown in the hero, about and contact sections.
type Profile struct {
	Name    string `yaml:"name" json:"name"`
	Tagline string `yaml:"tagline" json:"tagline"`
	About   string `yaml:"about" json:"about"`
	Email   string `yaml:"email" json:"email"`
}

// DefaultProfile returns the compiled-in owner profile.
func DefaultProfile() Profile {
	return Profile{
		Name:    "Ruhi Chopda",
		Tagline: "I build end-to-end systems across AI/ML, Web3, and Full-Stack Web.",
		About: "I'm a developer focused on building clean, scalable, and impactful " +
			"products across AI, blockchain, backend systems, and full-stack web development.",
		Email: "chopdaruhi9@gmail.com",
	}
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return MustNew(defaultProjects())
}

func defaultProjects() []Project {
	return []Project{
		{
			ID:       "defi",
			Title:    "Decentralized Finance (DeFi) Application",
			Domain:   "Blockchain",
			Featured: true,
			Short:    "Full-stack Web3 platform for lending, borrowing, and trading.",
			Tech:     []string{"Solidity", "Web3.js", "React", "IPFS"},
			Highlights: []string{
				"Smart contracts for lending pools",
				"Collateral management and interest logic",
				"Wallet authentication & event listeners",
			},
			Repo: Link("#"),
		},
		{
			ID:       "plant-disease",
			Title:    "AI-Powered Plant Disease Detection System",
			Domain:   "AI/ML",
			Featured: true,
			Short:    "Upload leaf images, the model predicts disease and risk level.",
			Tech:     []string{"Python", "Flask", "TensorFlow", "OpenCV"},
			Highlights: []string{
				"Custom CNN model",
				"Image preprocessing & pipeline",
				"Risk-level generation",
			},
			Repo: Link("#"),
		},
		{
			ID:     "steg-det",
			Title:  "Steganography Detection System",
			Domain: "AI/ML",
			Short:  "Detect hidden information in images with ML models.",
			Tech:   []string{"Python", "Scikit-learn", "CNNs"},
			Highlights: []string{
				"Research paper & college report",
				"Multiple experiment versions",
			},
			Repo: Link("#"),
		},
		{
			ID:     "java-chatbot",
			Title:  "AI-Based Java Chatbot",
			Domain: "AI/ML",
			Short:  "DJL/OpenNLP chatbot with GUI & memory persistence.",
			Tech:   []string{"Java", "DJL", "OpenNLP", "SQLite"},
			Highlights: []string{
				"GUI client",
				"Database-backed conversation memory",
			},
			Repo: Link("#"),
		},
		{
			ID:     "code-editor",
			Title:  "AI Auto-Completion Code Editor",
			Domain: "AI/ML",
			Short:  "Multi-language editor with AI suggestions & real-time collaboration.",
			Tech:   []string{"WebSockets", "Monaco", "Node.js", "REST APIs"},
			Highlights: []string{
				"Real-time collaboration",
				"AI-assisted code suggestions",
			},
			Repo: Link("#"),
		},
		{
			ID:     "finance-tracker",
			Title:  "Personal Finance Tracker with AI Insights",
			Domain: "AI/ML",
			Short:  "ML-based spending insights and pattern detection.",
			Tech:   []string{"Python", "Pandas", "React", "MySQL"},
			Highlights: []string{
				"Spending predictions",
				"Interactive dashboard visualizations",
			},
			Repo: Link("#"),
		},
		{
			ID:     "portfolio",
			Title:  "Portfolio Website",
			Domain: "Web",
			Short:  "React + Tailwind portfolio showcasing projects and skills.",
			Tech:   []string{"React", "Tailwind", "Vite"},
			Highlights: []string{
				"Responsive design",
				"Project filtering & modals",
			},
			Repo: Link("#"),
		},
	}
}
