package sweep

import (
	"context"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/project"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/scan"
)

// List walks root and returns every detected project in walk order
// without prompting or cleaning.
func List(ctx context.Context, root string) ([]project.Target, error) {
	var targets []project.Target
	err := scan.Walk(ctx, root, func(dir string) error {
		if t := project.NewTarget(dir); t.Type.IsProject() {
			targets = append(targets, t)
		}
		return nil
	})
	return targets, err
}
