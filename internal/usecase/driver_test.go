package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/session"
	storagemock "gitlab.com/fleetops/api/pipeline-admin/internal/storage/mock"
)

func newDriverService(drivers *storagemock.DriverRepoMock, routes *storagemock.RouteRepoMock) *DriverService {
	svc := NewDriverService(drivers, routes)
	svc.now = fixedNow
	return svc
}

func TestDriverSaveComplianceTransitionToCompliant(t *testing.T) {
	drivers := new(storagemock.DriverRepoMock)
	routes := new(storagemock.RouteRepoMock)
	svc := newDriverService(drivers, routes)

	drivers.On("Get", mock.Anything, int64(3)).Return(&model.RouteDriver{
		ID:          3,
		Status:      model.DriverStatusVerifications,
		PaperworkIn: strPtr(model.FlagNo),
	}, nil)

	var saved model.RouteDriver
	drivers.On("Update", mock.Anything, mock.AnythingOfType("model.RouteDriver")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(model.RouteDriver) }).
		Return(nil)

	_, err := svc.Save(ctxAs(session.RoleEditor), model.DriverForm{
		ID:          3,
		Status:      model.DriverStatusVerifications,
		PaperworkIn: model.FlagYes,
		DrugBgCheck: model.FlagYes,
	})
	require.NoError(t, err)
	assert.Equal(t, model.DriverStatusCompliant, saved.Status)
	require.NotNil(t, saved.StatusChangedFrom)
	assert.Equal(t, model.DriverStatusVerifications, *saved.StatusChangedFrom)
	assert.Equal(t, model.DriverStatusCompliant, *saved.StatusChangedTo)
	assert.Equal(t, "2024-05-20", *saved.StatusChangeDate)
}

func TestDriverSaveComplianceSkippedWhileAssigned(t *testing.T) {
	drivers := new(storagemock.DriverRepoMock)
	routes := new(storagemock.RouteRepoMock)
	svc := newDriverService(drivers, routes)

	drivers.On("Get", mock.Anything, int64(3)).Return(&model.RouteDriver{
		ID:     3,
		Status: model.DriverStatusAssigned,
	}, nil)

	var saved model.RouteDriver
	drivers.On("Update", mock.Anything, mock.AnythingOfType("model.RouteDriver")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(model.RouteDriver) }).
		Return(nil)

	_, err := svc.Save(ctxAs(session.RoleEditor), model.DriverForm{
		ID:          3,
		Status:      model.DriverStatusAssigned,
		PaperworkIn: model.FlagYes,
		DrugBgCheck: model.FlagYes,
	})
	require.NoError(t, err)
	assert.Equal(t, model.DriverStatusAssigned, saved.Status)
	assert.Nil(t, saved.StatusChangedFrom)
}

func TestDriverSaveCreateWithDefaultFlagsKeepsChosenStatus(t *testing.T) {
	drivers := new(storagemock.DriverRepoMock)
	routes := new(storagemock.RouteRepoMock)
	svc := newDriverService(drivers, routes)

	var saved model.RouteDriver
	drivers.On("Insert", mock.Anything, mock.AnythingOfType("*model.RouteDriver")).
		Run(func(args mock.Arguments) { saved = *args.Get(1).(*model.RouteDriver) }).
		Return(nil)

	_, err := svc.Save(ctxAs(session.RoleEditor), model.DriverForm{
		Status:      model.DriverStatusRecruiting,
		PaperworkIn: model.FlagNo,
		DrugBgCheck: model.FlagNo,
	})
	require.NoError(t, err)
	assert.Equal(t, model.DriverStatusRecruiting, saved.Status)
}

func TestDriverSaveCreateWithBothFlagsYesIsCompliant(t *testing.T) {
	drivers := new(storagemock.DriverRepoMock)
	routes := new(storagemock.RouteRepoMock)
	svc := newDriverService(drivers, routes)

	var saved model.RouteDriver
	drivers.On("Insert", mock.Anything, mock.AnythingOfType("*model.RouteDriver")).
		Run(func(args mock.Arguments) { saved = *args.Get(1).(*model.RouteDriver) }).
		Return(nil)

	_, err := svc.Save(ctxAs(session.RoleEditor), model.DriverForm{
		Status:      model.DriverStatusRecruiting,
		PaperworkIn: model.FlagYes,
		DrugBgCheck: model.FlagYes,
	})
	require.NoError(t, err)
	assert.Equal(t, model.DriverStatusCompliant, saved.Status)
}

func TestDriverSaveDefaultsEmptyPriorStatusToRecruiting(t *testing.T) {
	drivers := new(storagemock.DriverRepoMock)
	routes := new(storagemock.RouteRepoMock)
	svc := newDriverService(drivers, routes)

	drivers.On("Get", mock.Anything, int64(8)).Return(&model.RouteDriver{ID: 8}, nil)

	var saved model.RouteDriver
	drivers.On("Update", mock.Anything, mock.AnythingOfType("model.RouteDriver")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(model.RouteDriver) }).
		Return(nil)

	_, err := svc.Save(ctxAs(session.RoleEditor), model.DriverForm{
		ID:     8,
		Status: model.DriverStatusOnboarded,
	})
	require.NoError(t, err)
	require.NotNil(t, saved.StatusChangedFrom)
	assert.Equal(t, model.DriverStatusRecruiting, *saved.StatusChangedFrom)
	assert.Equal(t, model.DriverStatusOnboarded, *saved.StatusChangedTo)
}

func TestDriverSaveRestoresAuditTripleOnRevert(t *testing.T) {
	drivers := new(storagemock.DriverRepoMock)
	routes := new(storagemock.RouteRepoMock)
	svc := newDriverService(drivers, routes)

	drivers.On("Get", mock.Anything, int64(5)).Return(&model.RouteDriver{
		ID:                5,
		Status:            model.DriverStatusRecruiting,
		StatusChangedFrom: strPtr(model.DriverStatusVerifications),
		StatusChangedTo:   strPtr(model.DriverStatusRecruiting),
		StatusChangeDate:  strPtr("2024-01-15"),
	}, nil)

	var saved model.RouteDriver
	drivers.On("Update", mock.Anything, mock.AnythingOfType("model.RouteDriver")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(model.RouteDriver) }).
		Return(nil)

	_, err := svc.Save(ctxAs(session.RoleEditor), model.DriverForm{
		ID:     5,
		Status: model.DriverStatusRecruiting,
	})
	require.NoError(t, err)
	require.NotNil(t, saved.StatusChangedFrom)
	assert.Equal(t, model.DriverStatusVerifications, *saved.StatusChangedFrom)
	assert.Equal(t, "2024-01-15", *saved.StatusChangeDate)
}

func TestDriverSaveClearsStaleReasonsAndDerivesDayCounts(t *testing.T) {
	drivers := new(storagemock.DriverRepoMock)
	routes := new(storagemock.RouteRepoMock)
	svc := newDriverService(drivers, routes)

	var saved model.RouteDriver
	drivers.On("Insert", mock.Anything, mock.AnythingOfType("*model.RouteDriver")).
		Run(func(args mock.Arguments) { saved = *args.Get(1).(*model.RouteDriver) }).
		Return(nil)

	_, err := svc.Save(ctxAs(session.RoleEditor), model.DriverForm{
		Status:           model.DriverStatusTerminated,
		DateAdded:        "2024-01-01",
		DateOnboarded:    "2024-01-11",
		DateTerminated:   "2024-02-01",
		ReasonTerminated: "No show",
		ReasonRejected:   "stale value",
	})
	require.NoError(t, err)
	require.NotNil(t, saved.ReasonTerminated)
	assert.Equal(t, "No show", *saved.ReasonTerminated)
	assert.Nil(t, saved.ReasonRejected)
	require.NotNil(t, saved.DaysToFill)
	assert.Equal(t, 10, *saved.DaysToFill)
	require.NotNil(t, saved.Retention)
	assert.Equal(t, 21, *saved.Retention)
}

func TestDriverSaveNullsDayCountsWithoutOnboardDate(t *testing.T) {
	drivers := new(storagemock.DriverRepoMock)
	routes := new(storagemock.RouteRepoMock)
	svc := newDriverService(drivers, routes)

	var saved model.RouteDriver
	drivers.On("Insert", mock.Anything, mock.AnythingOfType("*model.RouteDriver")).
		Run(func(args mock.Arguments) { saved = *args.Get(1).(*model.RouteDriver) }).
		Return(nil)

	_, err := svc.Save(ctxAs(session.RoleEditor), model.DriverForm{
		Status:    model.DriverStatusRecruiting,
		DateAdded: "2024-01-01",
	})
	require.NoError(t, err)
	assert.Nil(t, saved.DaysToFill)
	assert.Nil(t, saved.Retention)
}

func TestAssignForcesAssignedStatus(t *testing.T) {
	drivers := new(storagemock.DriverRepoMock)
	routes := new(storagemock.RouteRepoMock)
	svc := newDriverService(drivers, routes)

	routes.On("Get", mock.Anything, int64(11)).Return(&model.ProspectRoute{ID: 11, ProspectID: 2, RouteIDName: "RT-11"}, nil)
	drivers.On("Get", mock.Anything, int64(3)).Return(&model.RouteDriver{
		ID:     3,
		Status: model.DriverStatusVerifications,
	}, nil)

	var saved model.RouteDriver
	drivers.On("Update", mock.Anything, mock.AnythingOfType("model.RouteDriver")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(model.RouteDriver) }).
		Return(nil)

	_, err := svc.Assign(ctxAs(session.RoleDispatcher), 3, 11)
	require.NoError(t, err)
	assert.Equal(t, model.DriverStatusAssigned, saved.Status)
	require.NotNil(t, saved.ProspectRouteID)
	assert.Equal(t, int64(11), *saved.ProspectRouteID)
	require.NotNil(t, saved.StatusChangedFrom)
	assert.Equal(t, model.DriverStatusVerifications, *saved.StatusChangedFrom)
}

func TestUnassignMovesDriverToSentinelAndOnboarded(t *testing.T) {
	drivers := new(storagemock.DriverRepoMock)
	routes := new(storagemock.RouteRepoMock)
	svc := newDriverService(drivers, routes)

	routeID := int64(11)
	drivers.On("Get", mock.Anything, int64(3)).Return(&model.RouteDriver{
		ID:              3,
		ProspectRouteID: &routeID,
		Status:          model.DriverStatusAssigned,
	}, nil)
	routes.On("Get", mock.Anything, routeID).Return(&model.ProspectRoute{ID: routeID, ProspectID: 2, RouteIDName: "RT-11"}, nil)
	routes.On("EnsureUnassigned", mock.Anything, int64(2)).Return(int64(99), nil)

	var saved model.RouteDriver
	drivers.On("Update", mock.Anything, mock.AnythingOfType("model.RouteDriver")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(model.RouteDriver) }).
		Return(nil)

	_, err := svc.Unassign(ctxAs(session.RoleDispatcher), 3)
	require.NoError(t, err)
	assert.Equal(t, model.DriverStatusOnboarded, saved.Status)
	require.NotNil(t, saved.ProspectRouteID)
	assert.Equal(t, int64(99), *saved.ProspectRouteID)
}
