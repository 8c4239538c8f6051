package ranking

// Field weights applied to fuzzy match scores (0-1).
const (
	jobTitleWeight    = 50.0
	nameWeight        = 40.0
	categoryWeight    = 30.0
	tagWeight         = 20.0
	keywordWeight     = 15.0
	descriptionWeight = 10.0
	multiWordWeight   = 5.0
)

// Flat bonuses added after field scoring.
const (
	popularBonus     = 3.0
	highATSBonus     = 2.0
	highATSThreshold = 90.0
)

// scorePrecision rounds relevance scores to two decimals.
const scorePrecision = 100.0

// Match detail field names.
const (
	fieldJobTitle    = "job_title"
	fieldName        = "name"
	fieldCategory    = "category"
	fieldTags        = "tags"
	fieldKeywords    = "keywords"
	fieldDescription = "description"
)
