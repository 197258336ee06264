package units

import (
	"bytes"
	"strings"
	"testing"

	"quantkit/core/ui"
)

func TestCatalog(t *testing.T) {
	catalog := New().Catalog()

	want := []string{Length, Mass, Area, Volume, Speed, Energy, Pressure, Power, Temperature}
	if len(catalog) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(catalog))
	}
	for i, name := range want {
		if catalog[i].Name != name {
			t.Errorf("category %d: expected %s, got %s", i, name, catalog[i].Name)
		}
	}

	temp := catalog[len(catalog)-1]
	if temp.Base != "K" {
		t.Errorf("temperature base = %q", temp.Base)
	}
	for _, u := range temp.Units {
		if u.Symbol == "C" && u.Offset != "273.15" {
			t.Errorf("Celsius offset = %q", u.Offset)
		}
		if u.Symbol == "K" && u.Offset != "" {
			t.Errorf("Kelvin should be linear, got offset %q", u.Offset)
		}
	}
}

func TestShowAvailableConversionsCompact(t *testing.T) {
	var buf bytes.Buffer
	if err := New().ShowAvailableConversions(&buf, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"=== AVAILABLE UNIT CONVERSIONS ===",
		"LENGTH (convert between any of these):",
		"  All units: pm, nm, um, mm, cm, dm, m, dam, hm, km, inch,",
		"  All units: C, F, K, R",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report lacks %q", want)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("report should not contain escape codes")
	}
}

func TestShowAvailableConversionsDetailed(t *testing.T) {
	var buf bytes.Buffer
	if err := New().ShowAvailableConversions(&buf, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"=== DETAILED UNIT CONVERSIONS WITH DESCRIPTIONS ===",
		"SPEED UNITS:",
		"Unit | Description",
		"kilometers per hour - vehicle speeds",
		"(x + 273.15) × 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detailed report lacks %q", want)
		}
	}
}

func TestWriteCatalogColor(t *testing.T) {
	var plain, colored bytes.Buffer
	c := New()
	if err := c.WriteCatalog(&plain, ReportOptions{Detailed: true}); err != nil {
		t.Fatal(err)
	}
	if err := c.WriteCatalog(&colored, ReportOptions{Detailed: true, Color: true}); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(plain.String(), "\033[") {
		t.Error("plain report should not contain escape codes")
	}
	out := colored.String()
	for _, want := range []string{ui.Bold + ui.Cyan, ui.Dim + "NOTE:", ui.Reset} {
		if !strings.Contains(out, want) {
			t.Errorf("colored report lacks %q", want)
		}
	}
	if !strings.Contains(out, "kilometers per hour - vehicle speeds") {
		t.Error("colored report lost its content")
	}
}
