package matching

import "strings"

func normalizeRunes(raw string) string {
	lower := strings.ToLower(raw)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == '#':
			// keep language names like c++ and c# intact
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// Tokenize lower-cases the input, strips punctuation, collapses whitespace
// and drops English stop words. Empty input yields an empty slice.
func Tokenize(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	fields := strings.Fields(normalizeRunes(raw))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := stopwords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}

// SplitSkills treats a comma-or-semicolon-separated skills string as one
// token per skill, so "JavaScript, Python" yields {javascript, python}.
// Multi-word skills keep their inner spaces collapsed to a single space.
func SplitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		norm := strings.Join(strings.Fields(normalizeRunes(p)), " ")
		if norm == "" {
			continue
		}
		out = append(out, norm)
	}
	return out
}

// SkillTokens combines the per-skill shortcut with generic tokenization so
// both whole skills ("machine learning") and their words are comparable.
func SkillTokens(raw string) []string {
	skills := SplitSkills(raw)
	out := make([]string, 0, len(skills)*2)
	seen := make(map[string]bool, len(skills)*2)

	add := func(tok string) {
		if tok == "" || seen[tok] {
			return
		}
		seen[tok] = true
		out = append(out, tok)
	}

	for _, s := range skills {
		add(s)
	}
	for _, t := range Tokenize(raw) {
		add(t)
	}
	return out
}
