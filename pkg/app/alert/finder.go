package alert

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ufobeep/quarantine/pkg/domain"
	domainAlert "github.com/ufobeep/quarantine/pkg/domain/alert"
	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
)

// Finder reads alerts on behalf of a viewer. All visibility decisions go
// through the domain predicate; rendering layers never re-derive them.
type Finder interface {
	Find(ctx context.Context, id uuid.UUID, v quarantine.Viewer) (domainAlert.EnrichedAlert, error)
	List(ctx context.Context, f domainAlert.Filter) ([]domainAlert.EnrichedAlert, error)
}

type finder struct {
	logger *logrus.Logger
	alerts domainAlert.Repository
}

func NewFinder(logger *logrus.Logger, alerts domainAlert.Repository) Finder {
	return &finder{
		logger: logger,
		alerts: alerts,
	}
}

func (f *finder) Find(ctx context.Context, id uuid.UUID, v quarantine.Viewer) (domainAlert.EnrichedAlert, error) {
	a, err := f.alerts.Get(ctx, id)
	if err != nil {
		return domainAlert.EnrichedAlert{}, err
	}
	if !a.IsVisibleTo(v) {
		return domainAlert.EnrichedAlert{}, domain.ErrAccessDenied
	}
	return a, nil
}

func (f *finder) List(ctx context.Context, filter domainAlert.Filter) ([]domainAlert.EnrichedAlert, error) {
	all, err := f.alerts.List(ctx)
	if err != nil {
		f.logger.WithError(err).Error("failed to list working set")
		return nil, err
	}
	out := make([]domainAlert.EnrichedAlert, 0, len(all))
	for _, a := range all {
		if a.MatchesFilter(filter) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Sighting.CreatedAt.After(out[j].Sighting.CreatedAt)
	})
	return out, nil
}
