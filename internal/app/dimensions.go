package service

import (
	"fmt"
	"strings"

	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/weighting"
)

// Weighting dimensions of an association. Absent counts weigh as zero.
var associationDimensions = map[string]func(model.Association) float64{ //nolint:gochecknoglobals // read-only registry
	"clubs":        func(a model.Association) float64 { return float64(model.CountOf(a.ClubCount)) },
	"teams":        func(a model.Association) float64 { return float64(model.CountOf(a.TeamCount)) },
	"grades":       func(a model.Association) float64 { return float64(model.CountOf(a.GradeCount)) },
	"competitions": func(a model.Association) float64 { return float64(model.CountOf(a.CompetitionCount)) },
}

// DefaultDimensions returns the dimensions weighted when none are configured.
func DefaultDimensions() []string {
	return []string{"grades", "competitions"}
}

// resolveDimensions maps names to dimensions in order, dropping repeats.
func resolveDimensions(names []string) ([]weighting.Dimension[model.Association], error) {
	out := make([]weighting.Dimension[model.Association], 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		value, ok := associationDimensions[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, raw)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, weighting.Dimension[model.Association]{Name: name, Value: value})
	}
	return out, nil
}

func dimensionNames(dims []weighting.Dimension[model.Association]) []string {
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.Name
	}
	return names
}

// weigh annotates ordered associations, keeping their order.
func weigh(ordered []model.Association, dims []weighting.Dimension[model.Association]) []model.AssociationView {
	weighted := weighting.Weigh(ordered, dims...)
	out := make([]model.AssociationView, len(weighted))
	for i, w := range weighted {
		out[i] = model.AssociationView{
			Association:       w.Item,
			Percentiles:       w.Percentiles,
			CombinedWeighting: w.CombinedWeighting,
		}
	}
	return out
}
