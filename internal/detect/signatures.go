// Package detect identifies which applicant-tracking system serves a job
// posting, from the application URL or page HTML, and surfaces
// system-specific optimization tips.
package detect

// Signature describes how one ATS presents itself and what to optimize for.
type Signature struct {
	URLPatterns    []string `json:"url_patterns"`
	HTMLSignatures []string `json:"html_signatures"`
	Focus          string   `json:"focus"`
	Tips           []string `json:"tips"`
}

// builtinOrder fixes the iteration order over the built-in table so
// detection is deterministic when multiple signatures would match.
var builtinOrder = []string{"greenhouse", "workable", "lever", "ashby", "taleo", "workday"}

func builtinSignatures() map[string]Signature {
	return map[string]Signature{
		"greenhouse": {
			URLPatterns:    []string{"greenhouse.io", "boards.greenhouse.io"},
			HTMLSignatures: []string{"data-greenhouse", "greenhouse"},
			Focus:          "Keyword matching + scorecard alignment",
			Tips: []string{
				"Role title matches highly weighted",
				"Answer knockout questions carefully",
				"Keywords are heavily weighted",
			},
		},
		"workable": {
			URLPatterns:    []string{"workable.com", "apply.workable.com"},
			HTMLSignatures: []string{"workable-app", "workable"},
			Focus:          "Skills matching + disqualification questions",
			Tips: []string{
				"Watch for disqualification questions",
				"Parses .docx very well",
				"Skills matching is primary scoring",
			},
		},
		"lever": {
			URLPatterns:    []string{"lever.co", "jobs.lever.co"},
			HTMLSignatures: []string{"lever-form", "lever"},
			Focus:          "Experience duration + cover letters",
			Tips: []string{
				"State years of experience clearly",
				"Cover letters surfaced to recruiters",
				"Write detailed cover letter",
			},
		},
		"ashby": {
			URLPatterns:    []string{"ashbyhq.com", "jobs.ashbyhq.com"},
			HTMLSignatures: []string{"ashby-job", "ashby"},
			Focus:          "Modern, similar to Greenhouse",
			Tips: []string{
				"Treat similar to Greenhouse",
				"Strong keyword matching",
			},
		},
		"taleo": {
			URLPatterns:    []string{"taleo.net", "taleo.com"},
			HTMLSignatures: []string{"taleo"},
			Focus:          "Strict keyword matching",
			Tips: []string{
				"Older system, very keyword-focused",
				"Use exact terminology",
				"Be thorough with all fields",
			},
		},
		"workday": {
			URLPatterns:    []string{"myworkday.com", "workday.com"},
			HTMLSignatures: []string{"workday"},
			Focus:          "Enterprise, keyword-focused",
			Tips: []string{
				"Very keyword-driven",
				"Complete all optional fields",
				"Use exact matches",
			},
		},
	}
}

// genericTips is the fallback guidance for unrecognized systems.
func genericTips() Tips {
	return Tips{
		Focus: "General ATS optimization",
		Tips: []string{
			"Use exact keywords from job description",
			"Ensure .docx format",
			"Single column layout",
			"No graphics or tables",
		},
	}
}
