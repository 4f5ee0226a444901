package service

import (
	"fmt"
	"regexp"
	"strings"
)

// Display styles accepted for generated item lists.
const (
	StyleBullets  = "bullets"
	StyleNumbered = "numbered"
	StylePlain    = "plain"
)

// Export formats accepted for the assembled document.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// maxListItems caps how many menu or drink lines are kept per response.
const maxListItems = 6

var linePrefixPattern = regexp.MustCompile(`^\s*(?:[•\-\*–—]+|\d+[.)\-•]*)?\s*`)

const quoteChars = "\"'“”‘’` "

// NormalizeLines splits raw model output into clean list items: bullet and
// numbering prefixes are stripped, blanks dropped, duplicates removed
// preserving order, and the list capped at maxListItems.
func NormalizeLines(text string) []string {
	if text == "" {
		return nil
	}

	var cleaned []string
	seen := make(map[string]bool)
	for _, rawLine := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(rawLine)
		if stripped == "" {
			continue
		}
		normalized := strings.TrimSpace(linePrefixPattern.ReplaceAllString(stripped, ""))
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		cleaned = append(cleaned, normalized)
		if len(cleaned) == maxListItems {
			break
		}
	}
	return cleaned
}

// CleanName trims whitespace and surrounding quote characters from a
// generated restaurant name or slogan.
func CleanName(name string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(name), quoteChars))
}

// FormatList renders items in the requested display style. Unknown styles
// fall back to plain lines.
func FormatList(items []string, style string) string {
	switch style {
	case StyleBullets:
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = "- " + item
		}
		return strings.Join(lines, "\n")
	case StyleNumbered:
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = fmt.Sprintf("%d. %s", i+1, item)
		}
		return strings.Join(lines, "\n")
	default:
		return strings.Join(items, "\n")
	}
}

// ExportConcept renders the concept as a text or markdown document for the
// UI's copy/download surface.
func ExportConcept(c *RestaurantConcept, format, style string) string {
	if format == FormatMarkdown {
		var parts []string
		parts = append(parts, "## "+c.Name)
		if c.Slogan != "" {
			parts = append(parts, "*"+c.Slogan+"*")
		}
		if c.Description != "" {
			parts = append(parts, c.Description)
		}

		parts = append(parts, "\n### Menu Items")
		parts = append(parts, FormatList(c.MenuItems, StyleBullets))

		parts = append(parts, "\n### Drinks")
		if len(c.DrinkItems) > 0 {
			parts = append(parts, FormatList(c.DrinkItems, StyleBullets))
		} else {
			parts = append(parts, "_(none)_")
		}
		return strings.TrimSpace(strings.Join(parts, "\n\n"))
	}

	parts := []string{c.Name}
	if c.Slogan != "" {
		parts = append(parts, c.Slogan)
	}
	if c.Description != "" {
		parts = append(parts, c.Description)
	}
	parts = append(parts, "\nMenu Items")
	parts = append(parts, FormatList(c.MenuItems, style))
	parts = append(parts, "\nDrinks")
	if len(c.DrinkItems) > 0 {
		parts = append(parts, FormatList(c.DrinkItems, style))
	} else {
		parts = append(parts, "(none)")
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
