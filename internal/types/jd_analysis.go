// Package types provides type definitions for structured data used throughout the ats-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// UnknownTitle is the sentinel returned when no job title pattern matches.
const UnknownTitle = "Unknown Title"

// JDAnalysis represents the structured analysis of a job description.
// It is produced once per job description and is read-only thereafter.
// All collection fields are always non-nil; extraction steps that find
// nothing leave the field empty rather than failing.
type JDAnalysis struct {
	JobTitle               string         `json:"job_title"`
	TechnicalSkills        []string       `json:"technical_skills"`
	RequiredSkills         []string       `json:"required_skills"`
	PreferredSkills        []string       `json:"preferred_skills"`
	VerbatimPhrases        []string       `json:"verbatim_phrases"`
	CompanyValues          []string       `json:"company_values"`
	Structure              JDStructure    `json:"structure"`
	KeywordDensity         []KeywordCount `json:"keyword_density"`
	ExperienceRequirements []string       `json:"experience_requirements"`
}

// JDStructure holds the section layout discovered in a job description.
// Order of discovery is preserved; nothing is re-sorted.
type JDStructure struct {
	Sections         []string `json:"sections"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
}

// KeywordCount is a single (word, frequency) entry in the keyword density list.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// NewJDAnalysis returns a JDAnalysis with every collection initialized empty,
// so JSON output never contains null for a list field.
func NewJDAnalysis() *JDAnalysis {
	return &JDAnalysis{
		JobTitle:        UnknownTitle,
		TechnicalSkills: []string{},
		RequiredSkills:  []string{},
		PreferredSkills: []string{},
		VerbatimPhrases: []string{},
		CompanyValues:   []string{},
		Structure: JDStructure{
			Sections:         []string{},
			Responsibilities: []string{},
			Requirements:     []string{},
		},
		KeywordDensity:         []KeywordCount{},
		ExperienceRequirements: []string{},
	}
}
