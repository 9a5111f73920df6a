package model

// Seniority tiers of the firm, most senior first. A profile's category is
// free text and is not checked against this list.
var SeniorityTiers = []string{
	"Managing Partner",
	"Senior Partner",
	"Partner",
	"Of Counsel",
	"Senior Associate",
	"Associate",
	"Junior Associate",
	"Paralegal",
}

// SeniorityRank returns the index of category in SeniorityTiers, or
// len(SeniorityTiers) for anything not in the catalog.
func SeniorityRank(category string) int {
	for i, tier := range SeniorityTiers {
		if tier == category {
			return i
		}
	}
	return len(SeniorityTiers)
}

type Profile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Title          string `json:"title"`
	Category       string `json:"category"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Education      string `json:"education"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	Photo          string `json:"photo"`
	Order          int    `json:"order"`
}

type ProfileCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type Founder struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
	Order       int    `json:"order"`
}
