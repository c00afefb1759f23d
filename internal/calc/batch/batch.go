// Package batch runs many assessments in one request, either from a
// JSON list or an uploaded spreadsheet.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Davidson1997/bridge-calculator/internal/calc/assess"
)

type Input struct {
	Items []assess.Input `json:"items"`
}

type Output struct {
	Count   int             `json:"count"`
	Results []assess.Result `json:"results"`
}

// Calculate evaluates every item, fanning the work out over a small
// worker pool. Results keep the order of the inputs.
func Calculate(ctx context.Context, items []assess.Input) ([]assess.Result, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no items")
	}
	results := make([]assess.Result, len(items))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			res, err := assess.Calculate(item)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
