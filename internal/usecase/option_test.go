package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/session"
	storagemock "gitlab.com/fleetops/api/pipeline-admin/internal/storage/mock"
)

func TestOptionAddAppendsAfterHighestRank(t *testing.T) {
	options := new(storagemock.OptionRepoMock)
	svc := NewOptionService(options)

	options.On("MaxSortOrder", mock.Anything, model.TaxonomyStatus).Return(4, nil)
	options.On("Insert", mock.Anything, model.TaxonomyStatus, mock.AnythingOfType("*model.Option")).
		Run(func(args mock.Arguments) { args.Get(2).(*model.Option).ID = 10 }).
		Return(nil)

	option, err := svc.Add(ctxAs(session.RoleAdmin), model.TaxonomyStatus, "  Negotiation ")
	require.NoError(t, err)
	assert.Equal(t, "Negotiation", option.Name)
	assert.Equal(t, 5, option.SortOrder)
	assert.Equal(t, int64(10), option.ID)
}

func TestOptionAddIsAdminOnly(t *testing.T) {
	options := new(storagemock.OptionRepoMock)
	svc := NewOptionService(options)

	_, err := svc.Add(ctxAs(session.RoleEditor), model.TaxonomyStatus, "New")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestOptionReorderRenumbersSequentially(t *testing.T) {
	options := new(storagemock.OptionRepoMock)
	svc := NewOptionService(options)

	current := []model.Option{
		{ID: 1, Name: "New", SortOrder: 1},
		{ID: 2, Name: "Quoted", SortOrder: 2},
		{ID: 3, Name: "Won", SortOrder: 3},
	}
	options.On("List", mock.Anything, model.TaxonomyStatus).Return(current, nil)

	var persisted []model.Option
	options.On("UpdateSortOrders", mock.Anything, model.TaxonomyStatus, mock.AnythingOfType("[]model.Option")).
		Run(func(args mock.Arguments) { persisted = args.Get(2).([]model.Option) }).
		Return(nil)

	reordered, err := svc.Reorder(ctxAs(session.RoleAdmin), model.TaxonomyStatus, []int64{2, 1, 3})
	require.NoError(t, err)
	require.Len(t, persisted, 3)
	assert.Equal(t, "Quoted", persisted[0].Name)
	assert.Equal(t, 1, persisted[0].SortOrder)
	assert.Equal(t, "New", persisted[1].Name)
	assert.Equal(t, 2, persisted[1].SortOrder)
	assert.Equal(t, 3, persisted[2].SortOrder)
	assert.Equal(t, persisted, reordered)
}

func TestOptionReorderUpThenDownRestoresOriginalRanks(t *testing.T) {
	options := new(storagemock.OptionRepoMock)
	svc := NewOptionService(options)

	current := []model.Option{
		{ID: 1, Name: "A", SortOrder: 1},
		{ID: 2, Name: "B", SortOrder: 2},
		{ID: 3, Name: "C", SortOrder: 3},
		{ID: 4, Name: "D", SortOrder: 4},
		{ID: 5, Name: "E", SortOrder: 5},
	}
	options.On("List", mock.Anything, model.TaxonomyStatus).Return(current, nil)
	options.On("UpdateSortOrders", mock.Anything, model.TaxonomyStatus, mock.Anything).Return(nil)

	// Swap 3 up, then back down.
	swapped, err := svc.Reorder(ctxAs(session.RoleAdmin), model.TaxonomyStatus, []int64{1, 3, 2, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, "C", swapped[1].Name)

	restored, err := svc.Reorder(ctxAs(session.RoleAdmin), model.TaxonomyStatus, []int64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	for i, opt := range restored {
		assert.Equal(t, current[i].ID, opt.ID)
		assert.Equal(t, i+1, opt.SortOrder)
	}
}

func TestOptionReorderRejectsPartialList(t *testing.T) {
	options := new(storagemock.OptionRepoMock)
	svc := NewOptionService(options)

	options.On("List", mock.Anything, model.TaxonomyStatus).Return([]model.Option{
		{ID: 1, Name: "A", SortOrder: 1},
		{ID: 2, Name: "B", SortOrder: 2},
	}, nil)

	_, err := svc.Reorder(ctxAs(session.RoleAdmin), model.TaxonomyStatus, []int64{1})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	options.AssertNotCalled(t, "UpdateSortOrders", mock.Anything, mock.Anything, mock.Anything)
}

func TestOptionReorderRejectsUnknownID(t *testing.T) {
	options := new(storagemock.OptionRepoMock)
	svc := NewOptionService(options)

	options.On("List", mock.Anything, model.TaxonomyStatus).Return([]model.Option{
		{ID: 1, Name: "A", SortOrder: 1},
		{ID: 2, Name: "B", SortOrder: 2},
	}, nil)

	_, err := svc.Reorder(ctxAs(session.RoleAdmin), model.TaxonomyStatus, []int64{1, 77})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestOptionListAllCoversEveryTaxonomy(t *testing.T) {
	options := new(storagemock.OptionRepoMock)
	svc := NewOptionService(options)

	for _, tax := range model.Taxonomies() {
		options.On("List", mock.Anything, tax).Return([]model.Option{}, nil)
	}

	all, err := svc.ListAll(ctxAs(session.RoleViewer))
	require.NoError(t, err)
	assert.Len(t, all, len(model.Taxonomies()))
}
