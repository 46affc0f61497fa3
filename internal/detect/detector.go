package detect

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/schemas"
)

// Tips carries the optimization guidance for one ATS.
type Tips struct {
	System string   `json:"system,omitempty"`
	Focus  string   `json:"focus"`
	Tips   []string `json:"tips"`
}

// Detector matches URLs and HTML content against a signature table. The
// table is fixed at construction; Detector is safe for concurrent use.
type Detector struct {
	signatures map[string]Signature
	order      []string
}

// NewDetector builds a detector over the built-in signature table, with
// optional external entries merged in. External entries override fields of
// built-in systems where set and add entirely new systems; new systems are
// checked after the built-in ones, in name order.
func NewDetector(external map[string]Signature) *Detector {
	d := &Detector{
		signatures: builtinSignatures(),
		order:      append([]string(nil), builtinOrder...),
	}

	var added []string
	for name, override := range external {
		base, known := d.signatures[name]
		if !known {
			d.signatures[name] = override
			added = append(added, name)
			continue
		}
		if len(override.URLPatterns) > 0 {
			base.URLPatterns = override.URLPatterns
		}
		if len(override.HTMLSignatures) > 0 {
			base.HTMLSignatures = override.HTMLSignatures
		}
		if override.Focus != "" {
			base.Focus = override.Focus
		}
		if len(override.Tips) > 0 {
			base.Tips = override.Tips
		}
		d.signatures[name] = base
	}
	sort.Strings(added)
	d.order = append(d.order, added...)

	return d
}

// LoadSignatures reads external signature entries from a JSON file. The
// file maps system name to signature fields and is schema-validated when
// the schema file can be located.
func LoadSignatures(path string) (map[string]Signature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read signatures file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/ats_signatures.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSONBytes(schemaPath, data); err != nil {
			return nil, fmt.Errorf("signatures file %s failed schema validation: %w", path, err)
		}
	}

	var external map[string]Signature
	if err := json.Unmarshal(data, &external); err != nil {
		return nil, fmt.Errorf("could not parse signatures file %s: %w", path, err)
	}
	return external, nil
}

// Detect returns the name of the first system whose URL patterns match the
// application URL, then the first whose HTML signatures match the page
// content. Both checks are case-insensitive substring matches. An empty
// string means no system was recognized.
func (d *Detector) Detect(applicationURL, htmlContent string) string {
	if applicationURL != "" {
		urlLower := strings.ToLower(applicationURL)
		for _, name := range d.order {
			for _, pattern := range d.signatures[name].URLPatterns {
				if strings.Contains(urlLower, pattern) {
					return name
				}
			}
		}
	}

	if htmlContent != "" {
		htmlLower := strings.ToLower(htmlContent)
		for _, name := range d.order {
			for _, signature := range d.signatures[name].HTMLSignatures {
				if strings.Contains(htmlLower, signature) {
					return name
				}
			}
		}
	}

	return ""
}

// OptimizationTips returns the focus and tip list for a detected system, or
// the generic fallback when the name is not in the table.
func (d *Detector) OptimizationTips(system string) Tips {
	sig, ok := d.signatures[system]
	if !ok {
		return genericTips()
	}
	return Tips{System: system, Focus: sig.Focus, Tips: sig.Tips}
}

// Systems lists every known system name in detection order.
func (d *Detector) Systems() []string {
	return append([]string(nil), d.order...)
}
