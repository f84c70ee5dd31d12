// Package i18n renders narrations into human-readable sentences for the
// supported locale set. One renderer serves both call shapes: rendering the
// requesting user's locale on reads and pre-rendering every locale at write
// time, so both always produce identical text.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"chronicle/internal/changelog"
	"chronicle/internal/changelog/narrate"
)

// Locales is the fixed supported set, in catalog order.
var Locales = []string{
	"da", "de", "en", "es", "fi", "fr", "it", "ja",
	"nl-BE", "nl-NL", "no", "pt", "sv",
}

const fallbackLocale = "en"

// Renderer looks up sentence templates by (locale, kind, action) and
// interpolates narration parameters. Missing templates fall back through
// the English catalog down to the raw value, so rendering never fails and
// never yields empty text for a non-empty change.
type Renderer struct {
	matcher language.Matcher
	tags    []language.Tag
}

func NewRenderer() *Renderer {
	tags := make([]language.Tag, len(Locales))
	for i, l := range Locales {
		tags[i] = language.MustParse(l)
	}
	return &Renderer{matcher: language.NewMatcher(tags), tags: tags}
}

// Resolve maps an arbitrary BCP 47 tag (e.g. "nl", "es-MX", "en-GB") to the
// closest supported locale. Unknown input resolves to English.
func (r *Renderer) Resolve(tag string) string {
	if tag == "" {
		return fallbackLocale
	}
	if _, ok := catalog[tag]; ok {
		return tag
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return fallbackLocale
	}
	_, idx, conf := r.matcher.Match(parsed)
	if conf == language.No {
		return fallbackLocale
	}
	return Locales[idx]
}

// Render produces the sentence for one locale. locale must be a member of
// Locales; use Resolve first for user-supplied tags.
func (r *Renderer) Render(locale string, kind changelog.Kind, n narrate.Narration) string {
	tmpl := r.template(locale, kind, n)
	if tmpl == "" {
		// No template anywhere, not even English: degrade to the raw value.
		return rawFallback(n)
	}
	return interpolate(tmpl, r.params(locale, kind, n))
}

// RenderAll produces the sentence for every supported locale, keyed by
// locale code. This is the write path; the broadcast payload then needs no
// knowledge of recipient locales.
func (r *Renderer) RenderAll(kind changelog.Kind, n narrate.Narration) map[string]string {
	out := make(map[string]string, len(Locales))
	for _, locale := range Locales {
		out[locale] = r.Render(locale, kind, n)
	}
	return out
}

// template resolves the most specific template available: column-scoped,
// then kind-scoped, then the bare action, first in the target locale and
// then in English.
func (r *Renderer) template(locale string, kind changelog.Kind, n narrate.Narration) string {
	keys := []string{
		kind.String() + "." + n.Column + "." + string(n.Action),
		kind.String() + "." + string(n.Action),
		string(n.Action),
	}
	for _, loc := range []string{locale, fallbackLocale} {
		table := catalog[loc]
		for _, key := range keys {
			if tmpl, ok := table[key]; ok {
				return tmpl
			}
		}
	}
	return ""
}

func (r *Renderer) params(locale string, kind changelog.Kind, n narrate.Narration) map[string]string {
	p := map[string]string{
		"column": r.columnLabel(locale, kind, n.Column),
		"old":    changelog.StrOrEmpty(n.Old),
		"new":    changelog.StrOrEmpty(n.New),
	}
	for k, v := range n.Params {
		p[k] = v
	}
	for k, key := range n.LabelParams {
		p[k] = r.label(locale, key, p[k])
	}
	return p
}

// label resolves a catalog key (e.g. "incident.status.dispatched") in the
// given locale, falling back to English and finally to the raw value.
func (r *Renderer) label(locale, key, raw string) string {
	if v, ok := catalog[locale][key]; ok {
		return v
	}
	if v, ok := catalog[fallbackLocale][key]; ok {
		return v
	}
	return raw
}

func (r *Renderer) columnLabel(locale string, kind changelog.Kind, column string) string {
	keys := []string{
		"column." + kind.String() + "." + column,
		"column." + column,
	}
	for _, loc := range []string{locale, fallbackLocale} {
		for _, key := range keys {
			if v, ok := catalog[loc][key]; ok {
				return v
			}
		}
	}
	return humanize(column)
}

// humanize turns a snake_case column name into a display label.
func humanize(column string) string {
	words := strings.ReplaceAll(column, "_", " ")
	if words == "" {
		return words
	}
	return strings.ToUpper(words[:1]) + words[1:]
}

// interpolate substitutes {name} placeholders. Unknown placeholders are
// left in place so broken templates stay diagnosable in output.
func interpolate(tmpl string, params map[string]string) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(tmpl, '{')
		if start < 0 {
			b.WriteString(tmpl)
			break
		}
		end := strings.IndexByte(tmpl[start:], '}')
		if end < 0 {
			b.WriteString(tmpl)
			break
		}
		b.WriteString(tmpl[:start])
		name := tmpl[start+1 : start+end]
		if v, ok := params[name]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(tmpl[start : start+end+1])
		}
		tmpl = tmpl[start+end+1:]
	}
	return b.String()
}

func rawFallback(n narrate.Narration) string {
	if n.New != nil {
		return *n.New
	}
	if n.Old != nil {
		return *n.Old
	}
	return humanize(n.Column)
}
