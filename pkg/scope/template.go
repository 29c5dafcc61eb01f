package scope

import (
	"fmt"
	"strings"
)

// Template is a purely visual rendering variant. It never changes which
// sections render or in what order.
type Template struct {
	Name string
	// Accent is the RGB header/accent color for the print target.
	Accent [3]int
	// HeaderRule draws a rule under day headers.
	HeaderRule bool
	// CardOutline draws a border around each item card.
	CardOutline bool
	// DenseDates flows consecutive days onto shared sheets in the print
	// target instead of starting every logical page on a fresh sheet.
	DenseDates bool
}

// Templates returns the supported rendering variants.
func Templates() []Template {
	return []Template{
		{Name: "journey", Accent: [3]int{31, 78, 121}, HeaderRule: true, CardOutline: true},
		{Name: "compact", Accent: [3]int{64, 64, 64}, DenseDates: true},
		{Name: "ledger", Accent: [3]int{102, 51, 0}, HeaderRule: true},
	}
}

// DefaultTemplate is used when the caller names none.
func DefaultTemplate() Template { return Templates()[0] }

// ParseTemplate resolves a template by name.
func ParseTemplate(name string) (Template, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultTemplate(), nil
	}
	for _, t := range Templates() {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("scope: unknown template %q", name)
}
