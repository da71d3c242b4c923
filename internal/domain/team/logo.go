package team

import (
	"sort"
	"strings"

	"github.com/riskibarqy/football-scouting/internal/platform/textnorm"
)

// PlaceholderLogo is rendered when a name resolves to no asset.
const PlaceholderLogo = "placeholder.png"

// DefaultLogos maps normalized club and country names to asset filenames.
var DefaultLogos = map[string]string{
	"alnassr":        "alnassr.png",
	"alhilal":        "alhilal.png",
	"alittihad":      "alittihad.png",
	"alahli":         "alahli.png",
	"alshabab":       "alshabab.png",
	"alettifaq":      "alettifaq.png",
	"alfateh":        "alfateh.png",
	"alfayha":        "alfayha.png",
	"altaawoun":      "altaawoun.png",
	"alraed":         "alraed.png",
	"alkhaleej":      "alkhaleej.png",
	"alwehda":        "alwehda.png",
	"alriyadh":       "alriyadh.png",
	"alokhdood":      "alokhdood.png",
	"alqadsiah":      "alqadsiah.png",
	"alorobah":       "alorobah.png",
	"damac":          "damac.png",
	"abha":           "abha.png",
	"alhazem":        "alhazem.png",
	"alnassru21":     "alnassr.png",
	"saudiarabia":    "saudiarabia.png",
	"spain":          "spain.png",
	"espana":         "spain.png",
	"morocco":        "morocco.png",
	"egypt":          "egypt.png",
	"brazil":         "brazil.png",
	"argentina":      "argentina.png",
	"portugal":       "portugal.png",
	"france":         "france.png",
	"unitedarabemir": "uae.png",
}

// LogoResolver turns display names into asset filenames. It is read-only
// after construction and safe for concurrent use.
type LogoResolver struct {
	table map[string]string
	// keys sorted longest first, then alphabetically, so partial matches
	// are deterministic.
	keys []string
}

func NewLogoResolver(table map[string]string) *LogoResolver {
	r := &LogoResolver{table: make(map[string]string, len(table))}
	for name, file := range table {
		key := textnorm.Key(name)
		if key == "" || strings.TrimSpace(file) == "" {
			continue
		}
		r.table[key] = file
		r.keys = append(r.keys, key)
	}
	sort.Slice(r.keys, func(i, j int) bool {
		if len(r.keys[i]) != len(r.keys[j]) {
			return len(r.keys[i]) > len(r.keys[j])
		}
		return r.keys[i] < r.keys[j]
	})
	return r
}

// Resolve returns the asset for name, or "" when nothing matches. An exact
// normalized match wins over any substring match.
func (r *LogoResolver) Resolve(name string) string {
	if r == nil {
		return ""
	}
	key := textnorm.Key(name)
	if key == "" {
		return ""
	}
	if file, ok := r.table[key]; ok {
		return file
	}
	for _, k := range r.keys {
		if strings.Contains(key, k) || strings.Contains(k, key) {
			return r.table[k]
		}
	}
	return ""
}

// ResolveOrPlaceholder never returns an empty filename.
func (r *LogoResolver) ResolveOrPlaceholder(name string) string {
	if file := r.Resolve(name); file != "" {
		return file
	}
	return PlaceholderLogo
}
