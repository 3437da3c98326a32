package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"quill/internal/document"
	"quill/internal/fileutil"
	"quill/internal/textutil"
)

// Scaffold actions.
const (
	ScaffoldInjected = "injected"
	ScaffoldSkipped  = "skipped"
	ScaffoldError    = "error"
)

// ScaffoldResult records the outcome of injecting the section template into
// one file.
type ScaffoldResult struct {
	FilePath string
	Action   string
	Reason   string
	Term     string
}

var (
	inlineTagPattern = regexp.MustCompile(`#(\w+)`)
	wikiLinkPattern  = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
)

const scaffoldTemplate = `
## 1. Aliases
<!-- Other names, symbols, abbreviations -->

## 2. Core Definition
<!-- ONE SENTENCE. What the term IS. -->
%s

## 3. Operational Definition
<!-- How this term FUNCTIONS in the framework -->

## 4. Ontological Context
<!-- Triad position, domain, layer -->

## 5. Relationships
<!-- Related terms, prerequisites, contrasts -->
| Relation | Term |
|----------|------|
| Parent | |
| Children | |
| See Also | %s |
| Contrasts | |

## 6. Scientific Definition
<!-- Standard physics/science definition -->

## 7. Narrative Definition
<!-- Simple, intuitive explanation -->

---
## Metadata
**Tags:** %s
**Links:** %s
**Papers:**
`

// ScaffoldFile injects the seven-section template into a file that lacks it,
// preserving what is already there: existing frontmatter is kept, a leading
// prose paragraph is promoted into Core, and any remaining original text is
// appended under an "Original Content" heading.
func (e *Engine) ScaffoldFile(path string, dryRun bool) ScaffoldResult {
	result := ScaffoldResult{FilePath: path, Action: ScaffoldSkipped}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Action = ScaffoldError
		result.Reason = err.Error()
		return result
	}
	content := string(data)

	if strings.Contains(content, document.CanonicalHeaders[document.KeyCore]) ||
		strings.Contains(content, document.CanonicalHeaders[document.KeyAliases]) {
		result.Reason = "already has template structure"
		return result
	}

	term := textutil.TermFromName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") {
			term = strings.TrimSpace(strings.TrimLeft(line, "#"))
			break
		}
	}
	result.Term = term

	frontmatter, body := splitFrontmatter(content)

	tags := collectMatches(inlineTagPattern, content, 10)
	tagText := "#glossary #theophysics"
	if len(tags) > 0 {
		prefixed := make([]string, len(tags))
		for i, tag := range tags {
			prefixed[i] = "#" + tag
		}
		tagText = strings.Join(prefixed, " ")
	}

	links := collectMatches(wikiLinkPattern, content, 10)
	var linkText, seeAlso string
	if len(links) > 0 {
		wrapped := make([]string, len(links))
		for i, link := range links {
			wrapped[i] = "[[" + link + "]]"
		}
		linkText = strings.Join(wrapped, ", ")
		if len(wrapped) > 5 {
			wrapped = wrapped[:5]
		}
		seeAlso = strings.Join(wrapped, ", ")
	}

	core := leadingParagraph(body)

	var b strings.Builder
	if frontmatter != "" {
		b.WriteString(frontmatter)
	} else {
		fmTags := "glossary, theophysics"
		if len(tags) > 0 {
			limited := tags
			if len(limited) > 5 {
				limited = limited[:5]
			}
			fmTags = strings.Join(limited, ", ")
		}
		fmt.Fprintf(&b, "---\naliases: []\ntitle: %s\ntype: definition\nstatus: draft\ntags: [%s]\n---\n", term, fmTags)
	}
	fmt.Fprintf(&b, "\n# %s\n", term)
	fmt.Fprintf(&b, scaffoldTemplate, core, seeAlso, tagText, linkText)

	remaining := strings.TrimSpace(strings.Replace(body, core, "", 1))
	if remaining != "" {
		fmt.Fprintf(&b, "\n\n---\n## Original Content\n\n%s\n", remaining)
	}

	if !dryRun {
		if err := fileutil.WriteFileAtomic(path, []byte(b.String()), 0o644); err != nil {
			result.Action = ScaffoldError
			result.Reason = err.Error()
			return result
		}
	}
	result.Action = ScaffoldInjected
	result.Reason = "added section template"
	return result
}

// ScaffoldFolder applies ScaffoldFile to every markdown file under folder.
func (e *Engine) ScaffoldFolder(ctx context.Context, folder string, opts Options, progress ProgressFunc) ([]ScaffoldResult, error) {
	info, err := os.Stat(folder)
	if err != nil {
		return nil, fmt.Errorf("stat folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", folder)
	}

	files, err := enumerateMarkdown(folder, opts.Recursive)
	if err != nil {
		return nil, err
	}

	results := make([]ScaffoldResult, 0, len(files))
	total := len(files)
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if progress != nil {
			progress(i*100/max(total, 1), fmt.Sprintf("Checking %s...", filepath.Base(file)))
		}
		results = append(results, e.ScaffoldFile(file, opts.DryRun))
	}
	if progress != nil {
		progress(100, "Complete")
	}
	return results, nil
}

// splitFrontmatter separates a leading YAML fence block (returned verbatim,
// fences included) from the rest of the document.
func splitFrontmatter(content string) (frontmatter, body string) {
	if !strings.HasPrefix(content, "---") {
		return "", content
	}
	end := strings.Index(content[3:], "---")
	if end < 0 {
		return "", content
	}
	cut := 3 + end + 3
	return content[:cut], strings.TrimSpace(content[cut:])
}

// leadingParagraph returns the first paragraph of body when it reads like a
// definition: plain prose, neither trivially short nor essay-length.
func leadingParagraph(body string) string {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}
	first := strings.TrimSpace(strings.SplitN(trimmed, "\n\n", 2)[0])
	if len(first) > 20 && len(first) < 500 {
		return first
	}
	return ""
}

func collectMatches(pattern *regexp.Regexp, content string, limit int) []string {
	matches := pattern.FindAllStringSubmatch(content, -1)
	var values []string
	for _, match := range matches {
		values = append(values, match[1])
		if len(values) == limit {
			break
		}
	}
	return values
}
