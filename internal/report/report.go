package report

import (
	"fmt"

	"github.com/alexiusacademia/gocfs/internal/effective"
	"github.com/alexiusacademia/gocfs/internal/section"
)

// Item is one evaluated section: the analysis with the results of every
// load case, or the error that stopped it
type Item struct {
	Name     string
	Analysis *effective.Analysis
	Results  []*effective.Result
	Err      error
}

// Evaluate runs every load case of one section
func Evaluate(s *section.LippedChannel) Item {
	item := Item{Name: s.Name}
	a, err := effective.NewAnalysis(s)
	if err != nil {
		item.Err = err
		return item
	}
	item.Analysis = a
	item.Results, item.Err = a.EvaluateAll()
	return item
}

// EvaluateBatch evaluates sections one after another. A failing section
// does not stop the batch; its error is kept in the item.
func EvaluateBatch(sections []section.LippedChannel) []Item {
	items := make([]Item, 0, len(sections))
	for i := range sections {
		item := Evaluate(&sections[i])
		if item.Name == "" {
			item.Name = fmt.Sprintf("section %d", i+1)
		}
		items = append(items, item)
	}
	return items
}
