package groundstation

import (
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/DeBrosOfficial/groundstation/pkg/errors"
	"github.com/DeBrosOfficial/groundstation/pkg/observer"
	"github.com/DeBrosOfficial/groundstation/pkg/satellite"
)

// GroundStation publishes messages to satellites keyed by their id.
type GroundStation struct {
	*observer.Registry[*satellite.Satellite]
	logger *zap.Logger
}

var _ observer.Publisher[*satellite.Satellite] = (*GroundStation)(nil)

// New creates a ground station with no satellites. A nil logger discards
// all output.
func New(logger *zap.Logger) *GroundStation {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroundStation{
		Registry: observer.NewRegistry[*satellite.Satellite](observer.WithLogger(logger)),
		logger:   logger,
	}
}

// Launch builds one satellite per id, in order. Duplicate ids produce
// distinct satellites; it is Subscribe that rejects the second one.
func Launch(ids []uint64, opts ...satellite.Option) []*satellite.Satellite {
	sats := make([]*satellite.Satellite, 0, len(ids))
	for _, id := range ids {
		sats = append(sats, satellite.New(id, opts...))
	}
	return sats
}

// SubscribeAll subscribes each satellite in order and returns every
// subscription error encountered. Failures do not stop later subscriptions.
func (g *GroundStation) SubscribeAll(sats []*satellite.Satellite) []error {
	var errs []error
	for _, sat := range sats {
		if err := g.Subscribe(sat); err != nil {
			g.logger.Warn("Satellite subscription failed",
				zap.Uint64("satellite_id", sat.ID()),
				zap.String("code", errors.GetErrorCode(err)),
				zap.Error(err))
			errs = append(errs, err)
			continue
		}
		g.logger.Info("Satellite subscribed", zap.Uint64("satellite_id", sat.ID()))
	}
	return errs
}

// Report folds errs into a single error, or nil if errs is empty.
func Report(errs []error) error {
	var result *multierror.Error
	for _, err := range errs {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
