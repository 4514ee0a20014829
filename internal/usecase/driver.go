package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/metrics"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/storage"
	"gitlab.com/fleetops/api/pipeline-admin/internal/validator"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// DriverService implements the recruiting commands. Every save re-derives
// the driver's day counts and applies the status rules: the compliance
// auto-transition, the status audit triple, and reason-field cleanup.
type DriverService struct {
	drivers storage.DriverRepo
	routes  storage.RouteRepo
	now     func() time.Time
}

// NewDriverService creates a DriverService.
func NewDriverService(drivers storage.DriverRepo, routes storage.RouteRepo) *DriverService {
	return &DriverService{drivers: drivers, routes: routes, now: utils.Now}
}

// List returns every driver.
func (s *DriverService) List(ctx context.Context) ([]model.RouteDriver, error) {
	return s.drivers.List(ctx)
}

// Get returns one driver by id.
func (s *DriverService) Get(ctx context.Context, id int64) (*model.RouteDriver, error) {
	return s.drivers.Get(ctx, id)
}

// Save creates or updates a driver from its edit form, applying the status
// rules against the persisted row before anything is written.
func (s *DriverService) Save(ctx context.Context, form model.DriverForm) (*model.RouteDriver, error) {
	user, err := requireWrite(ctx)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(form); err != nil {
		return nil, err
	}

	record := form.ToRecord()
	var existing *model.RouteDriver
	if record.ID > 0 {
		existing, err = s.drivers.Get(ctx, record.ID)
		if err != nil {
			return nil, err
		}
	}

	applyComplianceTransition(existing, &record)
	applyStatusAudit(existing, &record, utils.FormatDate(s.now()))
	clearStaleReasons(&record)
	record.DaysToFill = metrics.DriverDaysToFill(record.DateAdded, record.DateOnboarded)
	record.Retention = metrics.Retention(record.DateOnboarded, record.DateTerminated, s.now())

	if record.ID > 0 {
		if err := s.drivers.Update(ctx, record); err != nil {
			return nil, err
		}
	} else {
		if err := s.drivers.Insert(ctx, &record); err != nil {
			return nil, err
		}
	}

	logger.FromContext(ctx).Info("Saved driver",
		zap.Int64("driver_id", record.ID),
		zap.String("status", record.Status),
		zap.String("user_id", user.ID))
	return &record, nil
}

// Assign links a driver to a route and forces its status to Assigned. The
// force is unconditional: assignment always implies the Assigned state even
// when it hides an incomplete compliance state.
func (s *DriverService) Assign(ctx context.Context, driverID, routeID int64) (*model.RouteDriver, error) {
	user, err := requireWrite(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.routes.Get(ctx, routeID); err != nil {
		return nil, err
	}
	existing, err := s.drivers.Get(ctx, driverID)
	if err != nil {
		return nil, err
	}

	record := *existing
	record.ProspectRouteID = &routeID
	record.Status = model.DriverStatusAssigned
	applyStatusAudit(existing, &record, utils.FormatDate(s.now()))
	record.Retention = metrics.Retention(record.DateOnboarded, record.DateTerminated, s.now())

	if err := s.drivers.Update(ctx, record); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Assigned driver to route",
		zap.Int64("driver_id", driverID), zap.Int64("route_id", routeID), zap.String("user_id", user.ID))
	return &record, nil
}

// Unassign moves a driver to the data set's sentinel Unassigned route and
// forces its status to Onboarded. A driver with no route link keeps the nil
// link and only takes the status change.
func (s *DriverService) Unassign(ctx context.Context, driverID int64) (*model.RouteDriver, error) {
	user, err := requireWrite(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.drivers.Get(ctx, driverID)
	if err != nil {
		return nil, err
	}

	record := *existing
	if existing.ProspectRouteID != nil {
		route, err := s.routes.Get(ctx, *existing.ProspectRouteID)
		if err != nil {
			return nil, err
		}
		sentinelID, err := s.routes.EnsureUnassigned(ctx, route.ProspectID)
		if err != nil {
			return nil, err
		}
		record.ProspectRouteID = &sentinelID
	}
	record.Status = model.DriverStatusOnboarded
	applyStatusAudit(existing, &record, utils.FormatDate(s.now()))
	record.Retention = metrics.Retention(record.DateOnboarded, record.DateTerminated, s.now())

	if err := s.drivers.Update(ctx, record); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Unassigned driver",
		zap.Int64("driver_id", driverID), zap.String("user_id", user.ID))
	return &record, nil
}

// Delete removes a driver record.
func (s *DriverService) Delete(ctx context.Context, id int64) error {
	if _, err := requireDelete(ctx); err != nil {
		return err
	}
	return s.drivers.Delete(ctx, id)
}

// applyComplianceTransition auto-sets status from the two compliance flags
// when either flag changed against the persisted row. Both Yes yields
// Compliant, anything else Verifications. On a create only a Yes flag
// counts as a change; the form's No defaults leave the chosen status
// alone. The transition never fires while the driver is Assigned;
// assignment overrides compliance state.
func applyComplianceTransition(existing *model.RouteDriver, record *model.RouteDriver) {
	var changed bool
	if existing == nil {
		changed = flagIsYes(record.PaperworkIn) || flagIsYes(record.DrugBgCheck)
	} else {
		changed = !strPtrEqual(existing.PaperworkIn, record.PaperworkIn) ||
			!strPtrEqual(existing.DrugBgCheck, record.DrugBgCheck)
	}
	if !changed || record.Status == model.DriverStatusAssigned {
		return
	}
	if record.PaperworkComplete() {
		record.Status = model.DriverStatusCompliant
	} else {
		record.Status = model.DriverStatusVerifications
	}
}

// applyStatusAudit fills the status audit triple. A status differing from
// the persisted one records a fresh from/to/date, with an empty prior
// status recorded as Recruiting; a status equal to the persisted one
// restores the persisted triple, so an edit that reverts the status leaves
// the audit untouched.
func applyStatusAudit(existing *model.RouteDriver, record *model.RouteDriver, today string) {
	if existing == nil {
		return
	}
	if record.Status == existing.Status {
		record.StatusChangedFrom = existing.StatusChangedFrom
		record.StatusChangedTo = existing.StatusChangedTo
		record.StatusChangeDate = existing.StatusChangeDate
		return
	}
	from := existing.Status
	if from == "" {
		from = model.DriverStatusRecruiting
	}
	to := record.Status
	record.StatusChangedFrom = &from
	record.StatusChangedTo = &to
	record.StatusChangeDate = &today
}

func flagIsYes(flag *string) bool {
	return flag != nil && *flag == model.FlagYes
}

// clearStaleReasons nulls the termination and rejection reasons unless the
// matching status is in effect.
func clearStaleReasons(record *model.RouteDriver) {
	if record.Status != model.DriverStatusTerminated {
		record.ReasonTerminated = nil
	}
	if record.Status != model.DriverStatusRejected {
		record.ReasonRejected = nil
	}
}
