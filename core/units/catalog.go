package units

import (
	"io"
	"math/big"
	"strconv"
	"strings"

	"quantkit/core/ui"
)

// UnitInfo describes one unit in the catalog
type UnitInfo struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Scale       string `json:"scale"`
	Offset      string `json:"offset,omitempty"`
}

// CategoryInfo describes one category in the catalog
type CategoryInfo struct {
	Name  string     `json:"name"`
	Base  string     `json:"base"`
	Units []UnitInfo `json:"units"`
}

// Catalog lists every category and unit in table order
func (c *Converter) Catalog() []CategoryInfo {
	categories := c.table.Categories()
	out := make([]CategoryInfo, 0, len(categories))
	for _, cat := range categories {
		info := CategoryInfo{Name: cat.Name, Base: cat.Base}
		for _, u := range cat.units {
			entry := UnitInfo{
				Symbol:      u.Symbol,
				Description: u.Description,
				Scale:       ratString(u.scale),
			}
			if u.Affine() {
				entry.Offset = ratString(u.offset)
			}
			info.Units = append(info.Units, entry)
		}
		out = append(out, info)
	}
	return out
}

// ReportOptions controls the catalog report
type ReportOptions struct {
	// Detailed adds a description table per category
	Detailed bool

	// Color emits ANSI styling for terminals
	Color bool
}

// ShowAvailableConversions writes the plain catalog report. The compact form
// lists unit symbols per category; the detailed form adds a description table.
func (c *Converter) ShowAvailableConversions(w io.Writer, detailed bool) error {
	return c.WriteCatalog(w, ReportOptions{Detailed: detailed})
}

// WriteCatalog writes the catalog report with explicit options
func (c *Converter) WriteCatalog(w io.Writer, opts ReportOptions) error {
	out := ui.NewWriter(w, !opts.Color)
	catalog := c.Catalog()

	if !opts.Detailed {
		out.Header("AVAILABLE UNIT CONVERSIONS")
		out.Note("NOTE: You can convert from ANY unit to ANY other unit within the same category")
		out.Println("")
		for _, cat := range catalog {
			symbols := make([]string, len(cat.Units))
			for i, u := range cat.Units {
				symbols[i] = u.Symbol
			}
			out.SubHeader(strings.ToUpper(cat.Name) + " (convert between any of these):")
			out.List("All units", symbols)
			out.Println("")
		}
		return out.Err()
	}

	out.Header("DETAILED UNIT CONVERSIONS WITH DESCRIPTIONS")
	out.Println("")
	for _, cat := range catalog {
		out.SubHeader(strings.ToUpper(cat.Name) + " UNITS:")
		table := out.NewTable("Unit", "Description", "In "+cat.Base)
		for _, u := range cat.Units {
			desc := u.Description
			if desc == "" {
				desc = cat.Name + " measurement unit"
			}
			factor := u.Scale
			if u.Offset != "" {
				factor = "(x + " + u.Offset + ") × " + u.Scale
			}
			table.AddRow(u.Symbol, desc, factor)
		}
		table.Render()
		out.Println("")
	}
	out.Note("NOTE: You can convert from ANY unit to ANY other unit within the same category!")
	return out.Err()
}

// ratString renders a rational for display with twelve significant digits
func ratString(r *big.Rat) string {
	f, _ := r.Float64()
	return strconv.FormatFloat(f, 'g', 12, 64)
}
