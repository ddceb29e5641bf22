package docgen

import (
	"context"

	"planning-assistant/internal/model"
)

// Generator turns accumulated session data into phase documents. The
// text-generation call is the opaque part; its markdown output is
// stored verbatim on the returned payload.
type Generator interface {
	GenerateRequirements(ctx context.Context, input Input) (*model.RequirementsDocument, error)
	GenerateDesign(ctx context.Context, input Input) (*model.DesignDocument, error)
	GenerateTasks(ctx context.Context, input Input) (*model.TasksDocument, error)
}
