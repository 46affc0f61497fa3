package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/ats-optimizer/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"jd_analysis.schema.json",
	"ats_rules.schema.json",
	"ats_signatures.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			// Check for required JSON Schema fields
			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]

			assert.True(t, hasType || hasSchema || hasProps,
				"schema should have at least type, $schema, or properties")
		})
	}
}

func TestJDAnalysisSchema_AcceptsCompleteDocument(t *testing.T) {
	testJSON := `{
		"job_title": "Senior Data Analyst",
		"technical_skills": ["python", "sql"],
		"required_skills": ["5+ years of analytics experience"],
		"preferred_skills": [],
		"verbatim_phrases": ["data-driven decision making"],
		"company_values": ["collaboration"],
		"structure": {
			"sections": ["REQUIREMENTS"],
			"responsibilities": [],
			"requirements": ["5+ years of analytics experience"]
		},
		"keyword_density": [{"word": "data", "count": 7}],
		"experience_requirements": ["5+ years"]
	}`

	err := schemas.ValidateJSONBytes("jd_analysis.schema.json", []byte(testJSON))
	assert.NoError(t, err)
}

func TestJDAnalysisSchema_RejectsMissingField(t *testing.T) {
	testJSON := `{"job_title": "Senior Data Analyst"}`

	err := schemas.ValidateJSONBytes("jd_analysis.schema.json", []byte(testJSON))
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestATSRulesSchema_AcceptsOverrides(t *testing.T) {
	testJSON := `{
		"formatting": {
			"file_formats": {"allowed": [".docx"]},
			"fonts": {
				"allowed": ["Calibri", "Arial"],
				"size_range": {"min": 10, "max": 12}
			}
		},
		"scoring": {
			"file_format_weight": 30,
			"font_weight": 10,
			"graphics_weight": 20
		}
	}`

	err := schemas.ValidateJSONBytes("ats_rules.schema.json", []byte(testJSON))
	assert.NoError(t, err)
}

func TestATSRulesSchema_RejectsBadExtension(t *testing.T) {
	testJSON := `{
		"formatting": {
			"file_formats": {"allowed": ["docx"]}
		}
	}`

	err := schemas.ValidateJSONBytes("ats_rules.schema.json", []byte(testJSON))
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestATSSignaturesSchema_AcceptsSystemMap(t *testing.T) {
	testJSON := `{
		"smartrecruiters": {
			"url_patterns": ["smartrecruiters.com"],
			"html_signatures": ["smartrecruiters"],
			"focus": "Keyword matching",
			"tips": ["Use exact keywords"]
		}
	}`

	err := schemas.ValidateJSONBytes("ats_signatures.schema.json", []byte(testJSON))
	assert.NoError(t, err)
}

func TestATSSignaturesSchema_RejectsUnknownField(t *testing.T) {
	testJSON := `{
		"smartrecruiters": {
			"url_patterns": ["smartrecruiters.com"],
			"ranking": "high"
		}
	}`

	err := schemas.ValidateJSONBytes("ats_signatures.schema.json", []byte(testJSON))
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}
