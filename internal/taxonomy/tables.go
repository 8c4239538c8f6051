package taxonomy

// entry pairs a table key with its expansion keywords.
type entry struct {
	key      string
	keywords []string
}

// jobTitles maps job titles to template keywords. Order matters: partial
// matching walks the table top to bottom and stops at the first hit.
// "product manager" sits in the tech block but carries the management keywords.
var jobTitles = []entry{
	// Software & Technology
	{"software engineer", []string{"technology", "tech", "developer", "programming", "coding"}},
	{"software developer", []string{"technology", "tech", "developer", "programming", "coding"}},
	{"full stack developer", []string{"technology", "tech", "developer", "programming", "full-stack"}},
	{"frontend developer", []string{"technology", "tech", "developer", "frontend", "web"}},
	{"backend developer", []string{"technology", "tech", "developer", "backend", "server"}},
	{"web developer", []string{"technology", "tech", "developer", "web", "frontend"}},
	{"mobile developer", []string{"technology", "tech", "developer", "mobile", "app"}},
	{"devops engineer", []string{"technology", "tech", "devops", "infrastructure", "cloud"}},
	{"data scientist", []string{"technology", "tech", "data", "analytics", "machine learning"}},
	{"data analyst", []string{"technology", "tech", "data", "analytics", "business intelligence"}},
	{"data engineer", []string{"technology", "tech", "data", "engineering", "pipeline"}},
	{"machine learning engineer", []string{"technology", "tech", "ml", "ai", "machine learning"}},
	{"ai engineer", []string{"technology", "tech", "ai", "artificial intelligence", "machine learning"}},
	{"cybersecurity", []string{"technology", "tech", "security", "cyber", "information security"}},
	{"cloud engineer", []string{"technology", "tech", "cloud", "aws", "azure", "gcp"}},
	{"system administrator", []string{"technology", "tech", "system", "admin", "infrastructure"}},
	{"database administrator", []string{"technology", "tech", "database", "dba", "sql"}},
	{"qa engineer", []string{"technology", "tech", "testing", "qa", "quality assurance"}},
	{"test engineer", []string{"technology", "tech", "testing", "qa", "quality assurance"}},
	{"product manager", []string{"management", "product", "strategy", "business", "marketing"}},
	{"technical lead", []string{"technology", "tech", "lead", "senior", "architect"}},
	{"tech lead", []string{"technology", "tech", "lead", "senior", "architect"}},
	{"solution architect", []string{"technology", "tech", "architect", "solution", "design"}},
	{"software architect", []string{"technology", "tech", "architect", "software", "design"}},

	// Business & Management
	{"business analyst", []string{"business", "analyst", "strategy", "consulting", "finance"}},
	{"project manager", []string{"management", "project", "pm", "leadership", "strategy"}},
	{"operations manager", []string{"management", "operations", "ops", "business", "strategy"}},
	{"general manager", []string{"management", "executive", "leadership", "strategy", "business"}},
	{"ceo", []string{"executive", "leadership", "strategy", "business", "management"}},
	{"cto", []string{"executive", "technology", "tech", "leadership", "strategy"}},
	{"cfo", []string{"executive", "finance", "financial", "leadership", "strategy"}},
	{"coo", []string{"executive", "operations", "leadership", "strategy", "business"}},
	{"vp", []string{"executive", "vice president", "leadership", "strategy", "management"}},
	{"director", []string{"executive", "director", "leadership", "strategy", "management"}},
	{"senior manager", []string{"management", "senior", "leadership", "strategy", "business"}},
	{"manager", []string{"management", "leadership", "strategy", "business", "team"}},
	{"team lead", []string{"management", "lead", "leadership", "team", "supervision"}},
	{"team leader", []string{"management", "lead", "leadership", "team", "supervision"}},

	// Marketing & Sales
	{"marketing manager", []string{"marketing", "creative", "brand", "digital", "strategy"}},
	{"digital marketing", []string{"marketing", "digital", "online", "social media", "seo"}},
	{"social media manager", []string{"marketing", "social media", "digital", "content", "creative"}},
	{"content manager", []string{"marketing", "content", "creative", "digital", "writing"}},
	{"brand manager", []string{"marketing", "brand", "creative", "strategy", "business"}},
	{"sales manager", []string{"sales", "business", "revenue", "client", "relationship"}},
	{"sales executive", []string{"sales", "business", "client", "relationship", "revenue"}},
	{"account manager", []string{"sales", "client", "relationship", "business", "account"}},
	{"business development", []string{"business", "development", "strategy", "growth", "sales"}},
	{"partnership manager", []string{"business", "partnership", "relationship", "strategy", "collaboration"}},
	{"customer success", []string{"customer", "success", "support", "relationship", "retention"}},
	{"account executive", []string{"sales", "account", "client", "relationship", "business"}},

	// Finance & Accounting
	{"financial analyst", []string{"finance", "financial", "analyst", "accounting", "business"}},
	{"accountant", []string{"finance", "accounting", "financial", "bookkeeping", "tax"}},
	{"financial advisor", []string{"finance", "financial", "advisor", "investment", "wealth"}},
	{"investment banker", []string{"finance", "investment", "banking", "financial", "capital"}},
	{"risk manager", []string{"finance", "risk", "management", "compliance", "financial"}},
	{"treasury manager", []string{"finance", "treasury", "cash", "financial", "management"}},
	{"audit manager", []string{"finance", "audit", "compliance", "accounting", "financial"}},
	{"tax manager", []string{"finance", "tax", "accounting", "compliance", "financial"}},
	{"controller", []string{"finance", "controller", "accounting", "financial", "management"}},
	{"finance manager", []string{"finance", "financial", "management", "accounting", "business"}},

	// Healthcare & Medical
	{"doctor", []string{"healthcare", "medical", "physician", "clinical", "health"}},
	{"nurse", []string{"healthcare", "medical", "nursing", "clinical", "health"}},
	{"pharmacist", []string{"healthcare", "medical", "pharmacy", "clinical", "health"}},
	{"therapist", []string{"healthcare", "medical", "therapy", "clinical", "health"}},
	{"dentist", []string{"healthcare", "medical", "dental", "clinical", "health"}},
	{"veterinarian", []string{"healthcare", "medical", "veterinary", "animal", "health"}},
	{"medical researcher", []string{"healthcare", "medical", "research", "clinical", "health"}},
	{"healthcare administrator", []string{"healthcare", "medical", "administration", "management", "health"}},

	// Education & Training
	{"teacher", []string{"education", "teaching", "academic", "learning", "training"}},
	{"professor", []string{"education", "academic", "teaching", "research", "university"}},
	{"trainer", []string{"education", "training", "learning", "development", "teaching"}},
	{"education coordinator", []string{"education", "coordination", "academic", "learning", "management"}},
	{"curriculum developer", []string{"education", "curriculum", "development", "academic", "learning"}},
	{"academic advisor", []string{"education", "academic", "advising", "student", "guidance"}},

	// Creative & Design
	{"graphic designer", []string{"creative", "design", "graphic", "visual", "art"}},
	{"ui designer", []string{"creative", "design", "ui", "ux", "user interface"}},
	{"ux designer", []string{"creative", "design", "ux", "user experience", "interface"}},
	{"web designer", []string{"creative", "design", "web", "frontend", "visual"}},
	{"interior designer", []string{"creative", "design", "interior", "space", "architecture"}},
	{"fashion designer", []string{"creative", "design", "fashion", "style", "clothing"}},
	{"photographer", []string{"creative", "photography", "visual", "art", "media"}},
	{"video editor", []string{"creative", "video", "editing", "media", "production"}},
	{"content creator", []string{"creative", "content", "writing", "media", "digital"}},
	{"copywriter", []string{"creative", "writing", "content", "marketing", "advertising"}},

	// Human Resources
	{"hr manager", []string{"hr", "human resources", "management", "recruitment", "employee"}},
	{"recruiter", []string{"hr", "human resources", "recruitment", "talent", "hiring"}},
	{"talent acquisition", []string{"hr", "human resources", "recruitment", "talent", "hiring"}},
	{"hr business partner", []string{"hr", "human resources", "business", "strategy", "employee"}},
	{"compensation analyst", []string{"hr", "human resources", "compensation", "payroll", "benefits"}},
	{"training manager", []string{"hr", "human resources", "training", "development", "learning"}},

	// Operations & Supply Chain
	{"operations analyst", []string{"operations", "supply chain", "logistics", "business", "process"}},
	{"supply chain manager", []string{"operations", "supply chain", "logistics", "procurement", "management"}},
	{"logistics coordinator", []string{"operations", "logistics", "supply chain", "coordination", "transport"}},
	{"procurement manager", []string{"operations", "procurement", "purchasing", "supply chain", "management"}},
	{"warehouse manager", []string{"operations", "warehouse", "logistics", "inventory", "management"}},
	{"quality manager", []string{"operations", "quality", "assurance", "compliance", "management"}},

	// Legal & Compliance
	{"lawyer", []string{"legal", "law", "attorney", "counsel", "litigation"}},
	{"attorney", []string{"legal", "law", "lawyer", "counsel", "litigation"}},
	{"legal counsel", []string{"legal", "law", "counsel", "compliance", "advisory"}},
	{"compliance officer", []string{"legal", "compliance", "regulatory", "risk", "governance"}},
	{"paralegal", []string{"legal", "law", "paralegal", "support", "assistance"}},
	{"legal assistant", []string{"legal", "law", "assistant", "support", "administrative"}},

	// Consulting & Advisory
	{"consultant", []string{"consulting", "advisory", "strategy", "business", "expert"}},
	{"management consultant", []string{"consulting", "management", "strategy", "business", "advisory"}},
	{"strategy consultant", []string{"consulting", "strategy", "business", "advisory", "planning"}},
	{"business consultant", []string{"consulting", "business", "strategy", "advisory", "expert"}},
	{"financial consultant", []string{"consulting", "finance", "financial", "advisory", "investment"}},

	// Customer Service & Support
	{"customer service", []string{"customer service", "support", "client", "help", "assistance"}},
	{"customer support", []string{"customer service", "support", "client", "help", "assistance"}},
	{"help desk", []string{"customer service", "support", "technical", "help", "it"}},
	{"technical support", []string{"customer service", "support", "technical", "it", "help"}},
	{"call center", []string{"customer service", "support", "call center", "phone", "client"}},

	// Research & Development
	{"research scientist", []string{"research", "science", "development", "innovation", "laboratory"}},
	{"research analyst", []string{"research", "analyst", "data", "market", "business"}},
	{"market researcher", []string{"research", "market", "analyst", "data", "business"}},
	{"lab technician", []string{"research", "laboratory", "technical", "science", "testing"}},
	{"research coordinator", []string{"research", "coordination", "management", "academic", "science"}},

	// Real Estate & Construction
	{"real estate agent", []string{"real estate", "property", "sales", "client", "business"}},
	{"property manager", []string{"real estate", "property", "management", "leasing", "maintenance"}},
	{"construction manager", []string{"construction", "project", "management", "building", "engineering"}},
	{"architect", []string{"architecture", "design", "construction", "building", "planning"}},
	{"civil engineer", []string{"engineering", "civil", "construction", "infrastructure", "project"}},

	// Hospitality & Tourism
	{"hotel manager", []string{"hospitality", "hotel", "management", "service", "tourism"}},
	{"restaurant manager", []string{"hospitality", "restaurant", "food service", "management", "service"}},
	{"event coordinator", []string{"hospitality", "events", "coordination", "planning", "management"}},
	{"travel agent", []string{"hospitality", "travel", "tourism", "booking", "service"}},
	{"tour guide", []string{"hospitality", "tourism", "guide", "service", "travel"}},

	// Media & Communications
	{"journalist", []string{"media", "journalism", "writing", "news", "communication"}},
	{"reporter", []string{"media", "journalism", "news", "writing", "communication"}},
	{"editor", []string{"media", "writing", "editing", "content", "publishing"}},
	{"public relations", []string{"media", "pr", "communication", "marketing", "brand"}},
	{"communications manager", []string{"media", "communication", "pr", "marketing", "brand"}},

	// Non-profit & Social Work
	{"social worker", []string{"non-profit", "social work", "community", "help", "support"}},
	{"program coordinator", []string{"non-profit", "program", "coordination", "community", "management"}},
	{"fundraising", []string{"non-profit", "fundraising", "development", "charity", "community"}},
	{"volunteer coordinator", []string{"non-profit", "volunteer", "coordination", "community", "management"}},
	{"community organizer", []string{"non-profit", "community", "organizing", "activism", "social"}},

	// Government & Public Service
	{"government official", []string{"government", "public service", "policy", "administration", "civic"}},
	{"policy analyst", []string{"government", "policy", "analysis", "research", "public service"}},
	{"public administrator", []string{"government", "administration", "public service", "management", "policy"}},
	{"diplomat", []string{"government", "diplomacy", "international", "foreign service", "policy"}},
	{"military officer", []string{"government", "military", "defense", "leadership", "service"}},

	// Freelance & Entrepreneurship
	{"freelancer", []string{"freelance", "independent", "contractor", "consultant", "entrepreneur"}},
	{"entrepreneur", []string{"entrepreneur", "startup", "business", "founder", "innovation"}},
	{"startup founder", []string{"entrepreneur", "startup", "founder", "business", "innovation"}},
	{"business owner", []string{"entrepreneur", "business", "owner", "management", "leadership"}},
	{"contractor", []string{"freelance", "contractor", "independent", "project", "consulting"}},
}

// industries maps industry names to keywords.
var industries = []entry{
	{"technology", []string{"tech", "software", "it", "digital", "computer", "programming", "coding", "development"}},
	{"finance", []string{"financial", "banking", "investment", "accounting", "trading", "wealth", "capital"}},
	{"healthcare", []string{"medical", "health", "clinical", "hospital", "pharmacy", "therapy", "nursing"}},
	{"education", []string{"academic", "teaching", "learning", "university", "school", "training", "research"}},
	{"marketing", []string{"brand", "advertising", "promotion", "digital", "social media", "content", "creative"}},
	{"sales", []string{"revenue", "client", "customer", "business development", "account", "relationship"}},
	{"operations", []string{"logistics", "supply chain", "procurement", "warehouse", "quality", "process"}},
	{"legal", []string{"law", "attorney", "counsel", "litigation", "compliance", "regulatory", "legal"}},
	{"consulting", []string{"advisory", "strategy", "business", "management", "expert", "professional"}},
	{"creative", []string{"design", "art", "visual", "graphic", "creative", "media", "content"}},
	{"hr", []string{"human resources", "recruitment", "talent", "employee", "workforce", "benefits"}},
	{"government", []string{"public service", "policy", "administration", "civic", "public sector"}},
	{"non-profit", []string{"charity", "community", "social work", "volunteer", "fundraising", "advocacy"}},
}

// jobTitleIndex supports exact lookups without walking the table.
var jobTitleIndex = func() map[string]int {
	index := make(map[string]int, len(jobTitles))
	for i, e := range jobTitles {
		if _, exists := index[e.key]; !exists {
			index[e.key] = i
		}
	}
	return index
}()
