package navigation

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Item represents a navigation link that can be rendered in shared layouts.
// Path is always site-relative; the brand link uses "/" itself.
type Item struct {
	Label string `validate:"required"`
	Path  string `validate:"required,startswith=/"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks every item and rejects two items sharing a path.
func Validate(items ...Item) error {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		if err := validatorInstance().Struct(item); err != nil {
			return fmt.Errorf("navigation item %d (%q): %w", i, item.Label, err)
		}
		if prev, ok := seen[item.Path]; ok {
			return fmt.Errorf("navigation item %d (%q) duplicates path %s of item %d", i, item.Label, item.Path, prev)
		}
		seen[item.Path] = i
	}
	return nil
}
