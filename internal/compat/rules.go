// Package compat scores a document snapshot against ATS formatting rules.
// Checks are independent deductions from a starting score of 100; the
// result carries the issue list, a letter grade, and fix recommendations.
package compat

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ats-optimizer/internal/schemas"
)

// Fixed deductions not covered by configurable weights.
const (
	tableDeduction        = 15
	multiColumnDeduction  = 10
	fontSizeDeduction     = 5
	headerDeduction       = 8
	footerDeduction       = 7
	specialCharsDeduction = 5
)

// Rules holds the ATS formatting rules the checker enforces.
type Rules struct {
	AllowedExtensions []string `json:"allowed_extensions" validate:"min=1"`
	AllowedFonts      []string `json:"allowed_fonts" validate:"min=1"`
	MinFontSizePt     float64  `json:"min_font_size_pt" validate:"gt=0"`
	MaxFontSizePt     float64  `json:"max_font_size_pt" validate:"gtfield=MinFontSizePt"`
	FileFormatWeight  int      `json:"file_format_weight" validate:"gte=0,lte=100"`
	FontWeight        int      `json:"font_weight" validate:"gte=0,lte=100"`
	GraphicsWeight    int      `json:"graphics_weight" validate:"gte=0,lte=100"`
}

// rulesFile is the on-disk shape of a rules override file.
type rulesFile struct {
	Formatting struct {
		FileFormats struct {
			Allowed []string `json:"allowed"`
		} `json:"file_formats"`
		Fonts struct {
			Allowed   []string `json:"allowed"`
			SizeRange struct {
				Min float64 `json:"min"`
				Max float64 `json:"max"`
			} `json:"size_range"`
		} `json:"fonts"`
	} `json:"formatting"`
	Scoring struct {
		FileFormatWeight int `json:"file_format_weight"`
		FontWeight       int `json:"font_weight"`
		GraphicsWeight   int `json:"graphics_weight"`
	} `json:"scoring"`
}

// DefaultRules returns the built-in rules table.
func DefaultRules() *Rules {
	return &Rules{
		AllowedExtensions: []string{".docx"},
		AllowedFonts:      []string{"Calibri", "Arial", "Times New Roman"},
		MinFontSizePt:     10,
		MaxFontSizePt:     12,
		FileFormatWeight:  30,
		FontWeight:        10,
		GraphicsWeight:    20,
	}
}

// LoadRules reads a rules override file and merges it onto the defaults.
// A missing, unparsable, or invalid file falls back to the built-in rules;
// the returned error describes why the fallback was taken so callers can
// warn and continue.
func LoadRules(path string) (*Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, &RulesLoadError{Path: path, Message: "could not read rules file", Cause: err}
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/ats_rules.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSONBytes(schemaPath, data); err != nil {
			return rules, &RulesLoadError{Path: path, Message: "rules file failed schema validation", Cause: err}
		}
	}

	var file rulesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return rules, &RulesLoadError{Path: path, Message: "could not parse rules file", Cause: err}
	}

	merged := *rules
	if len(file.Formatting.FileFormats.Allowed) > 0 {
		merged.AllowedExtensions = file.Formatting.FileFormats.Allowed
	}
	if len(file.Formatting.Fonts.Allowed) > 0 {
		merged.AllowedFonts = file.Formatting.Fonts.Allowed
	}
	if file.Formatting.Fonts.SizeRange.Min > 0 {
		merged.MinFontSizePt = file.Formatting.Fonts.SizeRange.Min
	}
	if file.Formatting.Fonts.SizeRange.Max > 0 {
		merged.MaxFontSizePt = file.Formatting.Fonts.SizeRange.Max
	}
	if file.Scoring.FileFormatWeight > 0 {
		merged.FileFormatWeight = file.Scoring.FileFormatWeight
	}
	if file.Scoring.FontWeight > 0 {
		merged.FontWeight = file.Scoring.FontWeight
	}
	if file.Scoring.GraphicsWeight > 0 {
		merged.GraphicsWeight = file.Scoring.GraphicsWeight
	}

	if err := validator.New().Struct(&merged); err != nil {
		return rules, &RulesLoadError{Path: path, Message: "merged rules are invalid", Cause: err}
	}

	return &merged, nil
}
