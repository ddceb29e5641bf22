package docgen

import (
	"fmt"
	"regexp"
	"strings"

	"planning-assistant/internal/model"
)

var unsafeFilenameRe = regexp.MustCompile(`[^a-z0-9-]+`)

// Filename derives the download filename for a document from the
// project name, e.g. "My Task App" → "my-task-app-requirements.md".
func Filename(projectName string, docType model.DocumentType) string {
	name := strings.ToLower(strings.TrimSpace(projectName))
	name = unsafeFilenameRe.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if name == "" {
		name = "project"
	}
	return fmt.Sprintf("%s-%s.md", name, docType)
}
