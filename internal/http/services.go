package http

import (
	"reflect"

	"github.com/amalfoundation/foundation-cms/content"
)

// ContentServices bundles the per-resource content services handed to the
// public and admin APIs. A nil entry leaves its routes unregistered.
type ContentServices struct {
	Categories   content.Service[*content.Category]
	Programs     content.Service[*content.Program]
	Projects     content.Service[*content.Project]
	Activities   content.Service[*content.Activity]
	News         content.Service[*content.NewsArticle]
	Publications content.Service[*content.Publication]
	Reports      content.Service[*content.Report]
	Images       content.Service[*content.GalleryImage]
	Videos       content.Service[*content.Video]
	Stories      content.Service[*content.SuccessStory]
	HeroSlides   content.Service[*content.HeroSlide]
}

func newRecord[T content.Entry]() T {
	var zero T
	return reflect.New(reflect.TypeOf(zero).Elem()).Interface().(T)
}
