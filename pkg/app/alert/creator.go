package alert

import (
	"context"

	"github.com/sirupsen/logrus"

	domainAlert "github.com/ufobeep/quarantine/pkg/domain/alert"
)

// Creator admits a sighting from the upstream feed into the working set with
// the unrestricted default quarantine state.
type Creator interface {
	Create(ctx context.Context, s domainAlert.Sighting) (domainAlert.EnrichedAlert, error)
}

type creator struct {
	logger *logrus.Logger
	alerts domainAlert.Repository
}

func NewCreator(logger *logrus.Logger, alerts domainAlert.Repository) Creator {
	return &creator{
		logger: logger,
		alerts: alerts,
	}
}

func (c *creator) Create(ctx context.Context, s domainAlert.Sighting) (domainAlert.EnrichedAlert, error) {
	a := domainAlert.New(s)
	if err := c.alerts.Put(ctx, a); err != nil {
		c.logger.WithError(err).Error("failed to admit alert into working set")
		return domainAlert.EnrichedAlert{}, err
	}
	return a, nil
}
