package units

import (
	"math/big"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"quantkit/internal/errors"
	"quantkit/internal/logging"
)

// Custom unit tables are HCL files of the form
//
//	category "data" {
//	  base = "B"
//	  unit "B"   { scale = 1 }
//	  unit "KiB" {
//	    scale       = 1024
//	    description = "kibibyte"
//	  }
//	}
//
// Scale and offset are numbers or rational strings such as "5/9".

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "category", LabelNames: []string{"name"}},
	},
}

var categorySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "base"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "unit", LabelNames: []string{"symbol"}},
	},
}

var unitSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "scale", Required: true},
		{Name: "offset"},
		{Name: "description"},
	},
}

// LoadTable reads categories from an HCL file
func LoadTable(path string) ([]*Category, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("failed to read unit table", err).WithContext("path", path)
	}

	categories, err := ParseTable(src, path)
	if err != nil {
		return nil, err
	}

	logging.Info("loaded unit table",
		zap.String("path", path),
		zap.Int("categories", len(categories)))
	return categories, nil
}

// ParseTable decodes HCL source; filename is only used in diagnostics
func ParseTable(src []byte, filename string) ([]*Category, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	categories := make([]*Category, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		c, err := decodeCategory(filename, block)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func decodeCategory(filename string, block *hcl.Block) (*Category, error) {
	name := block.Labels[0]
	content, diags := block.Body.Content(categorySchema)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	base := ""
	if attr, ok := content.Attributes["base"]; ok {
		s, err := stringAttr(filename, attr)
		if err != nil {
			return nil, err
		}
		base = s
	}

	units := make([]Unit, 0, len(content.Blocks))
	for _, ub := range content.Blocks {
		u, err := decodeUnit(filename, ub)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	c, err := NewCategory(name, base, units...)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.WithContext("path", filename).WithContext("line", block.DefRange.Start.Line)
		}
		return nil, err
	}
	return c, nil
}

func decodeUnit(filename string, block *hcl.Block) (Unit, error) {
	symbol := block.Labels[0]
	content, diags := block.Body.Content(unitSchema)
	if diags.HasErrors() {
		return Unit{}, diagError(filename, diags)
	}

	scale, err := ratAttr(filename, content.Attributes["scale"])
	if err != nil {
		return Unit{}, err
	}

	offset := new(big.Rat)
	if attr, ok := content.Attributes["offset"]; ok {
		if offset, err = ratAttr(filename, attr); err != nil {
			return Unit{}, err
		}
	}

	description := ""
	if attr, ok := content.Attributes["description"]; ok {
		if description, err = stringAttr(filename, attr); err != nil {
			return Unit{}, err
		}
	}

	u, err := newUnit(symbol, description, scale, offset)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.WithContext("path", filename).WithContext("line", block.DefRange.Start.Line)
		}
		return Unit{}, err
	}
	return u, nil
}

// ratAttr reads a number or a rational string exactly. Number literals are
// parsed by HCL at 512 bits, so the shortest decimal form recovers the
// literal as written.
func ratAttr(filename string, attr *hcl.Attribute) (*big.Rat, error) {
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}
	if v.IsNull() || !v.IsKnown() {
		return nil, attrError(filename, attr, "must be set")
	}

	switch {
	case v.Type().Equals(cty.Number):
		d, err := decimal.NewFromString(v.AsBigFloat().Text('g', -1))
		if err != nil {
			return nil, attrError(filename, attr, "is not a finite number")
		}
		return d.Rat(), nil
	case v.Type().Equals(cty.String):
		r, ok := new(big.Rat).SetString(v.AsString())
		if !ok {
			return nil, attrError(filename, attr, "is not a rational number")
		}
		return r, nil
	default:
		return nil, attrError(filename, attr, "must be a number, got "+v.Type().FriendlyName())
	}
}

func stringAttr(filename string, attr *hcl.Attribute) (string, error) {
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", diagError(filename, diags)
	}
	if v.IsNull() || !v.IsKnown() || !v.Type().Equals(cty.String) {
		return "", attrError(filename, attr, "must be a string")
	}
	return v.AsString(), nil
}

func diagError(filename string, diags hcl.Diagnostics) error {
	err := errors.Config("invalid unit table", diags).WithContext("path", filename)
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			err.WithContext("line", d.Subject.Start.Line)
			break
		}
	}
	return err
}

func attrError(filename string, attr *hcl.Attribute, problem string) error {
	return errors.Newf(errors.TypeConfig, "attribute %s %s", attr.Name, problem).
		WithContext("path", filename).
		WithContext("line", attr.Range.Start.Line)
}
