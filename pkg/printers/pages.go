package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/sojourn/pkg/paginate"
	"tableflip.dev/sojourn/pkg/scope"
)

// Pages prints the page layout outline for a density, one block per page.
func (pp *PrettyPrint) Pages(pages []paginate.Page) {
	if len(pages) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no pages")
		return
	}

	h := color.New(color.Bold)
	f := color.New(color.Faint)

	for _, page := range pages {
		_, _ = h.Println(page.Header())
		if page.Section == scope.SectionItinerary {
			for _, it := range page.Items {
				fmt.Printf("    %s\n", it.Name)
			}
		}
		_, _ = f.Printf("    [%s]\n\n", page.Footer())
	}
}
