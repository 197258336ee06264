// Package units converts measurements between units of the same physical
// quantity.
//
// Every category defines its units relative to one base unit through an
// exact rational map base = (value + offset) × scale. Linear units have a
// zero offset; temperature scales use the offset.
package units

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"quantkit/internal/errors"
)

// Unit is a single convertible unit
type Unit struct {
	Symbol      string
	Description string
	scale       *big.Rat
	offset      *big.Rat
}

// NewUnit creates a unit from decimal scale and offset
func NewUnit(symbol, description string, scale, offset decimal.Decimal) (Unit, error) {
	return newUnit(symbol, description, scale.Rat(), offset.Rat())
}

func newUnit(symbol, description string, scale, offset *big.Rat) (Unit, error) {
	if strings.TrimSpace(symbol) == "" {
		return Unit{}, errors.Validation("unit symbol must not be empty")
	}
	if scale == nil || scale.Sign() <= 0 {
		return Unit{}, errors.Validation("unit %q needs a positive scale", symbol).WithContext("unit", symbol)
	}
	if offset == nil {
		offset = new(big.Rat)
	}
	return Unit{
		Symbol:      symbol,
		Description: description,
		scale:       new(big.Rat).Set(scale),
		offset:      new(big.Rat).Set(offset),
	}, nil
}

// Scale returns a copy of the factor to the base unit
func (u Unit) Scale() *big.Rat { return new(big.Rat).Set(u.scale) }

// Offset returns a copy of the offset added before scaling
func (u Unit) Offset() *big.Rat { return new(big.Rat).Set(u.offset) }

// Affine reports whether the unit has a non-zero offset
func (u Unit) Affine() bool { return u.offset.Sign() != 0 }

func (u Unit) toBase(v *big.Rat) *big.Rat {
	r := new(big.Rat).Add(v, u.offset)
	return r.Mul(r, u.scale)
}

func (u Unit) fromBase(b *big.Rat) *big.Rat {
	r := new(big.Rat).Quo(b, u.scale)
	return r.Sub(r, u.offset)
}

// Category groups the units of one physical quantity. It is read-only
// after construction.
type Category struct {
	Name  string
	Base  string
	units []Unit
	index map[string]int
}

// NewCategory builds a category. When base is set it must name one of the
// units, with scale 1 and no offset. An empty base is only valid for
// categories that extend an existing one.
func NewCategory(name, base string, units ...Unit) (*Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, errors.Validation("category name must not be empty")
	}

	c := &Category{
		Name:  name,
		Base:  base,
		units: make([]Unit, 0, len(units)),
		index: make(map[string]int, len(units)),
	}
	for _, u := range units {
		if err := c.add(u); err != nil {
			return nil, err
		}
	}

	if base != "" {
		u, ok := c.Unit(base)
		if !ok {
			return nil, errors.Validation("base unit %q is not part of category %s", base, name).
				WithContext("category", name)
		}
		if u.scale.Cmp(big.NewRat(1, 1)) != 0 || u.Affine() {
			return nil, errors.Validation("base unit %q of %s must have scale 1 and no offset", base, name).
				WithContext("category", name)
		}
	}
	return c, nil
}

func (c *Category) add(u Unit) error {
	if u.scale == nil {
		return errors.Validation("unit %q was not built with NewUnit", u.Symbol)
	}
	if _, dup := c.index[u.Symbol]; dup {
		return errors.Validation("duplicate unit %q in category %s", u.Symbol, c.Name).
			WithContext("category", c.Name).
			WithContext("unit", u.Symbol)
	}
	c.index[u.Symbol] = len(c.units)
	c.units = append(c.units, u)
	return nil
}

// Unit looks up a unit by symbol
func (c *Category) Unit(symbol string) (Unit, bool) {
	i, ok := c.index[symbol]
	if !ok {
		return Unit{}, false
	}
	return c.units[i], true
}

// Units returns the units in definition order
func (c *Category) Units() []Unit {
	return append([]Unit(nil), c.units...)
}

// Symbols returns the unit symbols in definition order
func (c *Category) Symbols() []string {
	out := make([]string, len(c.units))
	for i, u := range c.units {
		out[i] = u.Symbol
	}
	return out
}

// Len returns the number of units
func (c *Category) Len() int { return len(c.units) }

func (c *Category) clone() *Category {
	cp := &Category{
		Name:  c.Name,
		Base:  c.Base,
		units: append([]Unit(nil), c.units...),
		index: make(map[string]int, len(c.index)),
	}
	for k, v := range c.index {
		cp.index[k] = v
	}
	return cp
}

// Table is an ordered set of categories
type Table struct {
	categories []*Category
	index      map[string]int
}

// NewTable builds a table; category names must be unique and every
// category needs a base unit.
func NewTable(categories ...*Category) (*Table, error) {
	return (&Table{index: map[string]int{}}).Extend(categories...)
}

// Extend returns a new table with categories merged in. A category whose
// name already exists contributes its units to the existing one and may
// leave its base empty.
func (t *Table) Extend(categories ...*Category) (*Table, error) {
	next := &Table{
		categories: make([]*Category, len(t.categories), len(t.categories)+len(categories)),
		index:      make(map[string]int, len(t.index)+len(categories)),
	}
	copy(next.categories, t.categories)
	for k, v := range t.index {
		next.index[k] = v
	}

	for _, c := range categories {
		i, exists := next.index[c.Name]
		if !exists {
			if c.Base == "" {
				return nil, errors.Validation("new category %s needs a base unit", c.Name).
					WithContext("category", c.Name)
			}
			next.index[c.Name] = len(next.categories)
			next.categories = append(next.categories, c.clone())
			continue
		}

		merged := next.categories[i].clone()
		if c.Base != "" && c.Base != merged.Base {
			return nil, errors.Validation("category %s has base %q, not %q", c.Name, merged.Base, c.Base).
				WithContext("category", c.Name)
		}
		for _, u := range c.units {
			if err := merged.add(u); err != nil {
				return nil, err
			}
		}
		next.categories[i] = merged
	}
	return next, nil
}

// Category looks up a category by name, case-insensitively
func (t *Table) Category(name string) (*Category, bool) {
	i, ok := t.index[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return t.categories[i], true
}

// Categories returns the categories in definition order
func (t *Table) Categories() []*Category {
	return append([]*Category(nil), t.categories...)
}

// containing returns every category that knows both symbols
func (t *Table) containing(from, to string) []*Category {
	var out []*Category
	for _, c := range t.categories {
		_, okFrom := c.index[from]
		_, okTo := c.index[to]
		if okFrom && okTo {
			out = append(out, c)
		}
	}
	return out
}
