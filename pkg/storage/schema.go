package storage

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/hr"
	"github.com/amalfoundation/foundation-cms/identity"
)

// Bootstrap creates every table the CMS persists. Creation is idempotent;
// schema evolution beyond this belongs to the host's migration tooling.
func Bootstrap(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*content.Category)(nil),
		(*content.Program)(nil),
		(*content.Project)(nil),
		(*content.Activity)(nil),
		(*content.NewsArticle)(nil),
		(*content.Publication)(nil),
		(*content.Report)(nil),
		(*content.GalleryImage)(nil),
		(*content.Video)(nil),
		(*content.SuccessStory)(nil),
		(*content.HeroSlide)(nil),
		(*hr.JobApplication)(nil),
		(*hr.VolunteerRequest)(nil),
		(*identity.User)(nil),
		(*identity.Session)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table for %T: %w", model, err)
		}
	}
	return nil
}
