package instant

import (
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"quantkit/core/ui"
	"quantkit/internal/errors"
)

//go:embed zones.txt
var zoneData string

var zoneNames = sync.OnceValue(func() []string {
	names := strings.Fields(zoneData)
	sort.Strings(names)
	return names
})

var commonZones = []string{
	"UTC",
	"Chile/Continental",
	"Chile/EasterIsland",
	"America/Santiago",
	"America/Punta_Arenas",
	"America/Mexico_City",
	"America/Buenos_Aires",
	"America/Lima",
	"US/Eastern",
	"US/Central",
	"US/Mountain",
	"US/Pacific",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Europe/Madrid",
	"Europe/Rome",
	"Asia/Tokyo",
	"Asia/Shanghai",
	"Asia/Dubai",
	"Australia/Sydney",
	"Australia/Melbourne",
	"America/New_York",
	"America/Denver",
	"America/Los_Angeles",
}

var (
	zoneCache = make(map[string]*time.Location)
	zoneMu    sync.RWMutex
)

// LoadZone resolves an IANA identifier. The empty string and "UTC" are UTC.
func LoadZone(name string) (*time.Location, error) {
	if name == "" || name == "UTC" {
		return time.UTC, nil
	}

	zoneMu.RLock()
	loc, ok := zoneCache[name]
	zoneMu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Timezone(name, err)
	}

	zoneMu.Lock()
	zoneCache[name] = loc
	zoneMu.Unlock()
	return loc, nil
}

// ListOptions selects zones for ListZones and PrintZones
type ListOptions struct {
	// Filter keeps names containing it, ignoring case
	Filter string

	// Limit caps the result; zero or less means no cap
	Limit int

	// CommonOnly restricts the search to a short list of frequently used zones
	CommonOnly bool

	// Color styles PrintZones headers for terminals
	Color bool
}

// ZoneInfo describes a zone at a moment in time
type ZoneInfo struct {
	Name         string `json:"timezone"`
	Offset       string `json:"offset"`
	Abbreviation string `json:"abbreviation"`
	CurrentTime  string `json:"current_time"`
}

// ListZones returns sorted zone names matching opts
func ListZones(opts ListOptions) []string {
	source := zoneNames()
	if opts.CommonOnly {
		source = commonZones
	}

	filter := strings.ToLower(opts.Filter)
	var out []string
	for _, name := range source {
		if filter == "" || strings.Contains(strings.ToLower(name), filter) {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}

// SearchZones describes every zone whose name contains term, at the current
// time. Zones the runtime cannot load are skipped.
func SearchZones(term string, limit int) []ZoneInfo {
	return describe(ListZones(ListOptions{Filter: term}), limit)
}

// Describe reports the offset, abbreviation and local time of a zone at i
func Describe(name string, i Instant) (ZoneInfo, error) {
	t, err := i.In(name)
	if err != nil {
		return ZoneInfo{}, err
	}
	abbr, _ := t.Zone()
	return ZoneInfo{
		Name:         name,
		Offset:       t.Format("-07:00"),
		Abbreviation: abbr,
		CurrentTime:  t.Format(plainLayout),
	}, nil
}

func describe(names []string, limit int) []ZoneInfo {
	at := Now()
	var out []ZoneInfo
	for _, name := range names {
		if limit > 0 && len(out) == limit {
			break
		}
		info, err := Describe(name, at)
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	return out
}

// PrintZones writes a zone listing. The simple form numbers the names; the
// detailed form adds offset, abbreviation and current local time.
func PrintZones(w io.Writer, opts ListOptions, detailed bool) error {
	out := ui.NewWriter(w, !opts.Color)
	names := ListZones(ListOptions{Filter: opts.Filter, CommonOnly: opts.CommonOnly})

	if len(names) == 0 {
		out.Println("No timezones found matching '%s'", opts.Filter)
		return out.Err()
	}

	scope := "all"
	if opts.CommonOnly {
		scope = "common"
	}

	if detailed {
		infos := describe(names, opts.Limit)
		if opts.Filter != "" {
			out.Header(fmt.Sprintf("Found %d %s matching '%s'", len(infos), noun(len(infos)), opts.Filter))
		} else {
			out.Header("Showing detailed info for " + scope + " timezones")
		}
		table := out.NewTable("Timezone", "Offset", "Abbr", "Current Time")
		for _, info := range infos {
			table.AddRow(info.Name, info.Offset, info.Abbreviation, info.CurrentTime)
		}
		table.Render()
		return out.Err()
	}

	if opts.Limit > 0 && len(names) > opts.Limit {
		names = names[:opts.Limit]
	}
	title := fmt.Sprintf("Showing %d %s %s", len(names), scope, noun(len(names)))
	if opts.Filter != "" {
		title += fmt.Sprintf(" matching '%s'", opts.Filter)
	}
	out.Println("%s:", title)
	out.Println("%s", strings.Repeat("-", 50))
	for n, name := range names {
		out.Println("%3d. %s", n+1, name)
	}
	return out.Err()
}

func noun(n int) string {
	if n == 1 {
		return "timezone"
	}
	return "timezones"
}
