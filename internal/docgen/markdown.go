package docgen

import (
	"fmt"
	"regexp"
	"strings"

	"planning-assistant/internal/model"
)

var taskLineRe = regexp.MustCompile(`^\s*(\d+)[.)]\s+(.*)$`)

// bulletsUnderHeading collects "- " bullets from the section following
// the first heading whose text contains the given title.
func bulletsUnderHeading(markdown, title string) []string {
	var bullets []string
	inSection := false

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "#") {
			heading := strings.TrimLeft(trimmed, "# ")
			inSection = strings.Contains(heading, title)
			continue
		}
		if !inSection {
			continue
		}
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			bullets = append(bullets, strings.TrimSpace(trimmed[2:]))
		}
	}
	return bullets
}

// parseTaskItems extracts numbered task lines into TaskItems. A line
// like "3. Build the API — wire handlers" yields ID "task-3", title
// before the dash, description after it.
func parseTaskItems(markdown string) []model.TaskItem {
	var items []model.TaskItem

	for _, line := range strings.Split(markdown, "\n") {
		match := taskLineRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		title := strings.TrimSpace(match[2])
		description := ""
		for _, sep := range []string{" — ", " - ", ": "} {
			if idx := strings.Index(title, sep); idx > 0 {
				description = strings.TrimSpace(title[idx+len(sep):])
				title = strings.TrimSpace(title[:idx])
				break
			}
		}
		if title == "" {
			continue
		}

		items = append(items, model.TaskItem{
			ID:          fmt.Sprintf("task-%s", match[1]),
			Title:       title,
			Description: description,
		})
	}
	return items
}
