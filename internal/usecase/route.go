package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/storage"
	"gitlab.com/fleetops/api/pipeline-admin/internal/validator"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// Batch step actions.
const (
	StepCreate   = "create"
	StepUpdate   = "update"
	StepDelete   = "delete"
	StepUnassign = "unassign_driver"
)

// RouteBatchStep is one applied or failed operation inside a batch save.
type RouteBatchStep struct {
	Action   string `json:"action"`
	RouteID  int64  `json:"route_id,omitempty"`
	Name     string `json:"name,omitempty"`
	DriverID int64  `json:"driver_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// RouteBatchResult reports the outcome of every step of a batch save.
// Partial failure is an expected outcome, not an exception: steps that
// succeeded stay committed and the caller re-diffs against refreshed state
// on retry.
type RouteBatchResult struct {
	Steps   []RouteBatchStep `json:"steps"`
	Applied int              `json:"applied"`
	Failed  int              `json:"failed"`
}

func (r *RouteBatchResult) add(step RouteBatchStep, err error) {
	if err != nil {
		step.Error = err.Error()
		r.Failed++
	} else {
		r.Applied++
	}
	r.Steps = append(r.Steps, step)
}

// RouteService implements the route commands, chiefly the batch save that
// applies a prospect's edited route set as creates, updates, and deletes.
type RouteService struct {
	routes  storage.RouteRepo
	drivers storage.DriverRepo
	now     func() time.Time
}

// NewRouteService creates a RouteService.
func NewRouteService(routes storage.RouteRepo, drivers storage.DriverRepo) *RouteService {
	return &RouteService{routes: routes, drivers: drivers, now: utils.Now}
}

// List returns every route.
func (s *RouteService) List(ctx context.Context) ([]model.ProspectRoute, error) {
	return s.routes.List(ctx)
}

// ListByProspect returns one prospect's routes.
func (s *RouteService) ListByProspect(ctx context.Context, prospectID int64) ([]model.ProspectRoute, error) {
	return s.routes.ListByProspect(ctx, prospectID)
}

// BatchSave applies an edited route set for one prospect. Forms with a zero
// or negative id are creates, forms with a positive id are updates, and
// stored routes absent from the submitted set are deletes, diffed here
// against the persisted rows. Every driver still linked to a deleted route
// is unassigned to the sentinel route first so no driver is left pointing
// at a vanished route. Steps run independently; a failed step is recorded
// and the batch continues, except that a route whose drivers could not all
// be unassigned is not deleted.
func (s *RouteService) BatchSave(ctx context.Context, prospectID int64, forms []model.RouteForm) (*RouteBatchResult, error) {
	user, err := requireWrite(ctx)
	if err != nil {
		return nil, err
	}

	stored, err := s.routes.ListByProspect(ctx, prospectID)
	if err != nil {
		return nil, err
	}
	submitted := make(map[int64]bool, len(forms))
	for _, form := range forms {
		if form.ID > 0 {
			submitted[form.ID] = true
		}
	}

	result := &RouteBatchResult{}
	for _, form := range forms {
		form.ProspectID = prospectID
		if err := validator.Validate(form); err != nil {
			result.add(RouteBatchStep{Action: stepForID(form.ID), RouteID: form.ID, Name: form.RouteIDName}, err)
			continue
		}
		record := form.ToRecord()
		if record.ID > 0 {
			result.add(RouteBatchStep{Action: StepUpdate, RouteID: record.ID, Name: record.RouteIDName},
				s.routes.Update(ctx, record))
		} else {
			record.ID = 0
			err := s.routes.Insert(ctx, &record)
			result.add(RouteBatchStep{Action: StepCreate, RouteID: record.ID, Name: record.RouteIDName}, err)
		}
	}

	// The sentinel route is infrastructure, never part of the edited set,
	// and survives every batch.
	for _, route := range stored {
		if submitted[route.ID] || route.IsUnassignedSentinel() {
			continue
		}
		s.deleteRoute(ctx, prospectID, route.ID, result)
	}

	logger.FromContext(ctx).Info("Applied route batch",
		zap.Int64("prospect_id", prospectID),
		zap.Int("applied", result.Applied),
		zap.Int("failed", result.Failed),
		zap.String("user_id", user.ID))
	return result, nil
}

func (s *RouteService) deleteRoute(ctx context.Context, prospectID, routeID int64, result *RouteBatchResult) {
	route, err := s.routes.Get(ctx, routeID)
	if err != nil {
		result.add(RouteBatchStep{Action: StepDelete, RouteID: routeID}, err)
		return
	}
	drivers, err := s.drivers.ListByRoute(ctx, routeID)
	if err != nil {
		result.add(RouteBatchStep{Action: StepDelete, RouteID: routeID, Name: route.RouteIDName}, err)
		return
	}

	if len(drivers) > 0 {
		sentinelID, err := s.routes.EnsureUnassigned(ctx, prospectID)
		if err != nil {
			result.add(RouteBatchStep{Action: StepDelete, RouteID: routeID, Name: route.RouteIDName}, err)
			return
		}

		today := utils.FormatDate(s.now())
		unassignFailed := false
		for i := range drivers {
			record := drivers[i]
			record.Status = model.DriverStatusOnboarded
			applyStatusAudit(&drivers[i], &record, today)
			err := s.drivers.Update(ctx, record)
			result.add(RouteBatchStep{Action: StepUnassign, RouteID: routeID, DriverID: record.ID}, err)
			if err != nil {
				unassignFailed = true
			}
		}
		if unassignFailed {
			result.add(RouteBatchStep{Action: StepDelete, RouteID: routeID, Name: route.RouteIDName},
				fmt.Errorf("%w: route still has drivers that could not be unassigned", apperrors.ErrBadRequest))
			return
		}

		if _, err := s.drivers.Reassign(ctx, routeID, sentinelID); err != nil {
			result.add(RouteBatchStep{Action: StepDelete, RouteID: routeID, Name: route.RouteIDName}, err)
			return
		}
	}

	result.add(RouteBatchStep{Action: StepDelete, RouteID: routeID, Name: route.RouteIDName},
		s.routes.Delete(ctx, routeID))
}

func stepForID(id int64) string {
	if id > 0 {
		return StepUpdate
	}
	return StepCreate
}
