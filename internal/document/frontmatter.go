package document

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

type frontmatterEnvelope struct {
	Aliases []string `yaml:"aliases"`
}

var aliasSectionPattern = regexp.MustCompile(`(?is)##\s*1\.\s*Aliases\s*\n(.*?)(?:\n##|\z)`)

// ExtractAliases collects alias names from both the YAML frontmatter
// (`aliases: [a, b]` or block-list form) and the Aliases section body
// (bullet lines and italic comma lists). The two sources are unioned,
// preserving first-seen order.
func ExtractAliases(content string) []string {
	var aliases []string
	seen := make(map[string]struct{})
	add := func(raw string) {
		alias := strings.Trim(strings.TrimSpace(raw), `"'`)
		if alias == "" {
			return
		}
		if _, ok := seen[alias]; ok {
			return
		}
		seen[alias] = struct{}{}
		aliases = append(aliases, alias)
	}

	for _, alias := range frontmatterAliases(content) {
		add(alias)
	}
	for _, alias := range sectionAliases(content) {
		add(alias)
	}
	return aliases
}

func frontmatterAliases(content string) []string {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, "---\n") {
		return nil
	}
	rest := normalized[4:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil
	}
	var envelope frontmatterEnvelope
	if err := yaml.Unmarshal([]byte(rest[:end]), &envelope); err != nil {
		// Malformed frontmatter is not fatal; the section scan still runs.
		return looseFrontmatterAliases(rest[:end])
	}
	return envelope.Aliases
}

// looseFrontmatterAliases recovers `aliases: [a, b]` from frontmatter that is
// not strictly valid YAML, which is common in hand-edited vaults.
func looseFrontmatterAliases(frontmatter string) []string {
	match := regexp.MustCompile(`aliases:\s*\[(.*?)\]`).FindStringSubmatch(frontmatter)
	if match == nil {
		return nil
	}
	var aliases []string
	for _, part := range strings.Split(match[1], ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			aliases = append(aliases, trimmed)
		}
	}
	return aliases
}

func sectionAliases(content string) []string {
	match := aliasSectionPattern.FindStringSubmatch(content)
	if match == nil {
		return nil
	}
	var aliases []string
	for _, line := range strings.Split(match[1], "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "<!--"):
		case strings.HasPrefix(trimmed, "[W]") || strings.HasPrefix(trimmed, "[A]"):
		case strings.HasPrefix(trimmed, "*") && strings.HasSuffix(trimmed, "*"):
			inner := strings.Trim(trimmed, "*")
			for _, part := range strings.Split(inner, ",") {
				if alias := strings.TrimSpace(part); alias != "" {
					aliases = append(aliases, alias)
				}
			}
		case strings.HasPrefix(trimmed, "-"):
			aliases = append(aliases, strings.TrimSpace(trimmed[1:]))
		}
	}
	return aliases
}
