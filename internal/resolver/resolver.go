// Package resolver turns names into ages using the local dataset first and
// the remote prediction service as a fallback.
package resolver

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"agelookup/internal/dataset"
	"agelookup/internal/metrics"
	"agelookup/internal/models"
)

// Dataset looks names up in local records.
type Dataset interface {
	Lookup(name string) dataset.Result
}

// Predictor fetches an age from a remote service.
type Predictor interface {
	Predict(ctx context.Context, name string) (string, error)
}

// NameLister lists the names that have been requested so far.
type NameLister interface {
	Names() []string
}

// Resolver resolves names to ages.
type Resolver struct {
	dataset   Dataset
	predictor Predictor
	names     NameLister
}

// New creates a resolver.
func New(ds Dataset, p Predictor, names NameLister) *Resolver {
	return &Resolver{dataset: ds, predictor: p, names: names}
}

// Resolve returns the age for name. A local record wins without any network
// call; otherwise the predictor is asked exactly once. Local read errors are
// logged and treated as a miss.
func (r *Resolver) Resolve(ctx context.Context, name string) (models.Resolution, error) {
	res := r.dataset.Lookup(name)
	switch res.Outcome {
	case dataset.Found:
		metrics.RecordResolution(models.SourceLocal)
		return models.Resolution{Name: name, Age: res.Age, Source: models.SourceLocal}, nil
	case dataset.Unreadable:
		slog.Warn("local dataset unavailable, falling back to predictor", "name", name, "error", res.Err)
	}

	age, err := r.predictor.Predict(ctx, name)
	if err != nil {
		metrics.RecordResolution(models.OutcomeFailed)
		return models.Resolution{}, err
	}

	metrics.RecordResolution(models.SourceRemote)
	return models.Resolution{Name: name, Age: age, Source: models.SourceRemote}, nil
}

// MaxAge resolves every tracked name and returns the highest age.
// Names that fail to resolve or whose age is not an integer are skipped.
// On a tie the name that sorts first wins.
func (r *Resolver) MaxAge(ctx context.Context) models.MaxAgeResult {
	var best models.MaxAgeResult

	for _, name := range r.names.Names() {
		if ctx.Err() != nil {
			break
		}

		res, err := r.Resolve(ctx, name)
		if err != nil {
			slog.Debug("skipping name for max age", "name", name, "error", err)
			continue
		}

		age, err := strconv.Atoi(strings.TrimSpace(res.Age))
		if err != nil {
			slog.Warn("skipping non-numeric age", "name", name, "age", res.Age)
			continue
		}

		if !best.Found || age > best.Age {
			best = models.MaxAgeResult{Name: name, Age: age, Found: true}
		}
	}

	return best
}
