// Package i18n loads locale bundles and resolves the active locale for a
// render pass.
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/AlphaHasher/churchlink-go/models"
)

// Bundle holds per-locale translation tables. Keys are the base-locale
// strings as authored in the page builder; values are their translations.
type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported map[string]struct{}
}

// Load reads <locale>.json files from dir for each supported locale. The
// fallback locale's file must exist; other locales may be missing.
func Load(dir string, fallback string, supported []string) (*Bundle, error) {
	b := &Bundle{
		dict:      map[string]map[string]string{},
		fallback:  fallback,
		supported: map[string]struct{}{},
	}
	if len(supported) == 0 {
		supported = []string{fallback}
	}
	for _, l := range supported {
		b.supported[l] = struct{}{}
		raw, err := os.ReadFile(filepath.Join(dir, l+".json"))
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", l, err)
		}
		b.dict[l] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	return b, nil
}

// Fallback returns the configured fallback locale.
func (b *Bundle) Fallback() string { return b.fallback }

// Supported returns the supported locales, sorted.
func (b *Bundle) Supported() []string {
	out := make([]string, 0, len(b.supported))
	for k := range b.supported {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (b *Bundle) isSupported(lang string) bool {
	_, ok := b.supported[lang]
	return ok
}

// T translates base text for lang, falling back to the fallback locale and
// finally to the base text itself.
func (b *Bundle) T(lang, base string) string {
	if lang != "" && lang != b.fallback {
		if m, ok := b.dict[lang]; ok {
			if v, ok := m[base]; ok {
				return v
			}
		}
	}
	if lang != b.fallback {
		if m, ok := b.dict[b.fallback]; ok {
			if v, ok := m[base]; ok {
				return v
			}
		}
	}
	return base
}

// Localizer returns the renderer-facing translation hook for one locale.
func (b *Bundle) Localizer(lang string) models.Localizer {
	return func(base string) string {
		return b.T(lang, base)
	}
}

// Resolve picks the best supported locale from an Accept-Language header,
// honoring q-values. Unmatched headers resolve to the fallback.
func (b *Bundle) Resolve(acceptLang string) string {
	type pref struct {
		base string
		q    float64
		pos  int
	}
	var prefs []pref
	for i, raw := range strings.Split(acceptLang, ",") {
		p := strings.TrimSpace(raw)
		if p == "" {
			continue
		}
		q := 1.0
		if sc := strings.IndexByte(p, ';'); sc != -1 {
			params := strings.TrimSpace(p[sc+1:])
			p = strings.TrimSpace(p[:sc])
			if strings.HasPrefix(params, "q=") {
				if v, err := strconv.ParseFloat(strings.TrimPrefix(params, "q="), 64); err == nil {
					q = v
				}
			}
		}
		base := p
		if dash := strings.IndexByte(p, '-'); dash != -1 {
			base = p[:dash]
		}
		prefs = append(prefs, pref{base: strings.ToLower(base), q: q, pos: i})
	}
	sort.SliceStable(prefs, func(i, j int) bool {
		if prefs[i].q == prefs[j].q {
			return prefs[i].pos < prefs[j].pos
		}
		return prefs[i].q > prefs[j].q
	})
	for _, p := range prefs {
		if b.isSupported(p.base) {
			return p.base
		}
	}
	return b.fallback
}
