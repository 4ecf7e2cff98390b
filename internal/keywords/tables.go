// Package keywords holds the fixed keyword tables that drive categorization,
// relevance scoring, and tailoring. The tables are versioned and injected
// into the parser and scorer so behavior differences are explicit
// configuration rather than divergent code paths.
package keywords

// Category is a coarse job-domain label used for relevance matching.
type Category string

// The fixed category enumeration, in priority order. Categorization tests
// each category's keyword list in this order and returns the first hit;
// CategoryGeneral is the default when nothing matches.
const (
	CategoryRetail          Category = "retail"
	CategoryCustomerService Category = "customer_service"
	CategoryAdministrative  Category = "administrative"
	CategoryConstruction    Category = "construction"
	CategoryManagement      Category = "management"
	CategoryRealEstate      Category = "real_estate"
	CategoryFoodService     Category = "food_service"
	CategoryHealthcare      Category = "healthcare"
	CategoryEducation       Category = "education"
	CategoryFinance         Category = "finance"
	CategoryTechnology      Category = "technology"
	CategoryManufacturing   Category = "manufacturing"
	CategoryEntertainment   Category = "entertainment"
	CategoryGeneral         Category = "general"
)

// CategoryKeywords pairs a category with the keywords that signal it.
type CategoryKeywords struct {
	Category Category
	Keywords []string
}

// SkillGroup is a transferable skill group whose relevance crosses
// category boundaries.
type SkillGroup struct {
	Name     string
	Keywords []string
}

// IndustryBucket groups company-name words that indicate a shared industry.
type IndustryBucket struct {
	Name     string
	Keywords []string
}

// DefaultTitle maps a company-name keyword to the job title substituted
// when the experience scanner finds no title line for an entry.
type DefaultTitle struct {
	CompanyKeyword string
	Title          string
}

// SummaryPhrase maps a keyword family found in job keywords to the
// experience-area phrase appended to a tailored summary.
type SummaryPhrase struct {
	Trigger string
	Phrase  string
}

// Tables is the single versioned keyword table set consumed by the parser,
// categorizer, scorer, and tailoring engine.
type Tables struct {
	Version string

	// Categories is ordered; order is the categorization priority.
	Categories []CategoryKeywords
	// RelatedGroups lists sets of mutually related categories.
	RelatedGroups [][]Category
	// TitleKeywords are role words scored when shared by both titles.
	TitleKeywords []string
	// TransferableSkills are scored only across differing categories.
	TransferableSkills []SkillGroup
	// IndustryBuckets are scored when both company names share a bucket.
	IndustryBuckets []IndustryBucket
	// SkillVocabulary feeds the whole-document skill fallback scan.
	SkillVocabulary []string
	// SpecialSkillPhrases are multi-word domain phrases the fallback scan
	// also checks for.
	SpecialSkillPhrases []string
	// CommonJobKeywords are generic posting words collected as job keywords
	// when present in the job text.
	CommonJobKeywords []string
	// DefaultTitles substitutes a title when none can be extracted.
	DefaultTitles []DefaultTitle
	// FallbackTitle is used when no DefaultTitles keyword matches.
	FallbackTitle string
	// CertificationDenylist lists known-fabricated certification strings
	// that must never appear in output (matched case-insensitively).
	CertificationDenylist []string
	// SummaryPhrases are the experience-area phrases a tailored summary may
	// append, at most one per entry and capped overall.
	SummaryPhrases []SummaryPhrase
}

// Default returns the current table set.
func Default() *Tables {
	return &Tables{
		Version: "2025-06",

		Categories: []CategoryKeywords{
			{CategoryRetail, []string{"retail", "cashier", "store", "merchandis", "stock", "checkout", "pos system", "inventory"}},
			{CategoryCustomerService, []string{"customer service", "customer support", "call center", "client relations", "front desk", "receptionist", "help desk"}},
			{CategoryAdministrative, []string{"administrative", "admin", "data entry", "clerical", "office assistant", "filing", "scheduling", "secretary", "clerk"}},
			{CategoryConstruction, []string{"construction", "carpenter", "laborer", "contractor", "electrician", "plumber", "foreman", "job site"}},
			{CategoryManagement, []string{"manager", "management", "supervisor", "team lead", "director", "operations lead"}},
			{CategoryRealEstate, []string{"real estate", "realtor", "property", "leasing", "broker", "tenant"}},
			{CategoryFoodService, []string{"restaurant", "food service", "server", "barista", "cook", "kitchen", "waiter", "waitress", "dishwasher", "catering"}},
			{CategoryHealthcare, []string{"healthcare", "medical", "nurse", "patient", "clinic", "hospital", "caregiver", "pharmacy"}},
			{CategoryEducation, []string{"teacher", "tutor", "instructor", "classroom", "curriculum", "school district", "education program"}},
			{CategoryFinance, []string{"finance", "accounting", "bookkeep", "accounts payable", "accounts receivable", "payroll", "bank teller", "auditor"}},
			{CategoryTechnology, []string{"software", "developer", "engineer", "technical support", "it support", "programmer", "systems admin", "network"}},
			{CategoryManufacturing, []string{"manufacturing", "assembly", "production line", "warehouse", "machine operator", "forklift", "fabrication"}},
			{CategoryEntertainment, []string{"entertainment", "event staff", "usher", "theater", "venue", "box office", "promoter"}},
		},

		RelatedGroups: [][]Category{
			{CategoryRetail, CategoryCustomerService, CategoryFoodService},
			{CategoryAdministrative, CategoryCustomerService, CategoryFinance},
			{CategoryManagement, CategoryRetail, CategoryFoodService},
			{CategoryConstruction, CategoryManufacturing},
			{CategoryHealthcare, CategoryEducation},
			{CategoryTechnology, CategoryAdministrative},
			{CategoryRealEstate, CategoryManagement},
		},

		TitleKeywords: []string{
			"customer", "service", "assistant", "associate", "representative",
			"specialist", "manager", "coordinator", "clerk", "admin", "data",
			"entry", "retail", "sales", "cashier", "support", "agent",
			"supervisor", "technician", "operator", "receptionist", "server",
		},

		TransferableSkills: []SkillGroup{
			{"communication", []string{"communicat", "phone", "email", "correspond", "presented", "liaison"}},
			{"leadership", []string{"lead", "trained", "mentored", "supervised", "managed", "directed"}},
			{"problem-solving", []string{"resolved", "troubleshoot", "solved", "improved", "streamlined"}},
			{"organization", []string{"organized", "scheduled", "coordinated", "filed", "maintained records", "prioritized"}},
			{"sales", []string{"sales", "sold", "upsell", "revenue", "quota", "closed"}},
			{"technical", []string{"computer", "software", "microsoft", "excel", "pos", "database", "system"}},
		},

		IndustryBuckets: []IndustryBucket{
			{"retail-brands", []string{"walmart", "target", "costco", "kroger", "store", "market", "mart", "shop", "outlet"}},
			{"service", []string{"restaurant", "grill", "cafe", "diner", "hotel", "inn", "service", "salon"}},
			{"office", []string{"office", "solutions", "group", "associates", "consulting", "agency", "llc", "inc", "corp"}},
		},

		SkillVocabulary: []string{
			"Customer Service", "Data Entry", "Microsoft Office", "Excel",
			"Outlook", "Scheduling", "Filing", "Inventory",
			"Cash Handling", "POS Systems", "Phone Etiquette", "Typing",
			"Record Keeping", "QuickBooks", "Billing", "Invoicing",
			"Multitasking", "Time Management", "Team Collaboration",
			"Problem Solving", "Communication", "Organization", "Sales",
			"Merchandising", "Order Processing", "Conflict Resolution",
			"Documentation", "Spreadsheets", "Email Correspondence",
		},
		SpecialSkillPhrases: []string{
			"10-Key", "CRM Software", "Front Desk Operations",
			"Medical Terminology", "Food Safety", "OSHA Compliance",
		},

		CommonJobKeywords: []string{
			"customer", "service", "data", "entry", "admin", "office",
			"retail", "sales", "support", "team", "communication",
			"organization", "scheduling", "inventory", "detail-oriented",
			"fast-paced", "multitask", "reliable", "computer",
		},

		DefaultTitles: []DefaultTitle{
			{"restaurant", "Team Member"},
			{"grill", "Team Member"},
			{"cafe", "Team Member"},
			{"market", "Sales Associate"},
			{"store", "Sales Associate"},
			{"mart", "Sales Associate"},
			{"school", "Program Assistant"},
			{"office", "Office Assistant"},
			{"clinic", "Office Assistant"},
			{"construction", "Laborer"},
		},
		FallbackTitle: "Professional",

		CertificationDenylist: []string{
			"microsoft office specialist (mos) - excel",
			"microsoft office specialist (mos) - word",
			"google analytics certified",
			"certified administrative professional (cap)",
			"six sigma green belt",
		},

		SummaryPhrases: []SummaryPhrase{
			{"customer", "customer service"},
			{"data", "data entry and accuracy"},
			{"admin", "administrative support"},
			{"retail", "retail operations"},
		},
	}
}
