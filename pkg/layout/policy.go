// Package layout renders mapped field sets into paginated documents: ordered
// pages of positioned draw operations with a court-standard header and a
// page-number footer on every page.
package layout

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Policy fixes the page geometry and type sizes. Units are millimetres on an
// A4 page; court formatting rules pin these values, so overrides are rare.
type Policy struct {
	PageWidth  float64 `yaml:"pageWidth"`
	PageHeight float64 `yaml:"pageHeight"`
	Margin     float64 `yaml:"margin"`
	HeaderY    float64 `yaml:"headerY"`
	MaxY       float64 `yaml:"maxY"`
	FooterY    float64 `yaml:"footerY"`
	LineHeight float64 `yaml:"lineHeight"`

	// CharWidth approximates glyph width per point of font size, used to
	// decide where wrapped text breaks.
	CharWidth float64 `yaml:"charWidth"`

	HeaderFontSize  float64 `yaml:"headerFontSize"`
	SectionFontSize float64 `yaml:"sectionFontSize"`
	LabelFontSize   float64 `yaml:"labelFontSize"`
	ValueFontSize   float64 `yaml:"valueFontSize"`
	FooterFontSize  float64 `yaml:"footerFontSize"`
}

// Default returns the standard New Brunswick court-form geometry.
func Default() Policy {
	return Policy{
		PageWidth:       210,
		PageHeight:      297,
		Margin:          15,
		HeaderY:         60,
		MaxY:            270,
		FooterY:         285,
		LineHeight:      5,
		CharWidth:       0.18,
		HeaderFontSize:  16,
		SectionFontSize: 14,
		LabelFontSize:   12,
		ValueFontSize:   10,
		FooterFontSize:  10,
	}
}

// FromYAML overlays YAML overrides onto the default policy. Omitted keys keep
// their defaults.
func FromYAML(raw []byte) (Policy, error) {
	policy := Default()
	if err := yaml.Unmarshal(raw, &policy); err != nil {
		return Policy{}, fmt.Errorf("layout: parse policy: %w", err)
	}
	if policy.HeaderY >= policy.MaxY || policy.LineHeight <= 0 {
		return Policy{}, fmt.Errorf("layout: policy leaves no room for content")
	}
	return policy, nil
}

// ContentWidth is the horizontal space available to body text.
func (p Policy) ContentWidth() float64 {
	return p.PageWidth - 2*p.Margin
}
