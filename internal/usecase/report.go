package usecase

import (
	"context"
	"time"

	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/observer"
	"gitlab.com/fleetops/api/pipeline-admin/internal/report"
	"gitlab.com/fleetops/api/pipeline-admin/internal/storage"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// ReportService builds the dashboards. Each report fetches the rows it
// needs and hands them to the pure aggregation functions in the report
// package; nothing is cached, every request aggregates from scratch.
type ReportService struct {
	prospects storage.ProspectRepo
	contacts  storage.ContactRepo
	routes    storage.RouteRepo
	drivers   storage.DriverRepo
	options   storage.OptionRepo
	now       func() time.Time
}

// NewReportService creates a ReportService.
func NewReportService(
	prospects storage.ProspectRepo,
	contacts storage.ContactRepo,
	routes storage.RouteRepo,
	drivers storage.DriverRepo,
	options storage.OptionRepo,
) *ReportService {
	return &ReportService{
		prospects: prospects,
		contacts:  contacts,
		routes:    routes,
		drivers:   drivers,
		options:   options,
		now:       utils.Now,
	}
}

// SalesDashboard builds the sales KPI and funnel view.
func (s *ReportService) SalesDashboard(ctx context.Context) (*report.SalesDashboard, error) {
	prospects, contacts, err := s.loadPipeline(ctx)
	if err != nil {
		return nil, err
	}
	statusOptions, err := s.options.List(ctx, model.TaxonomyStatus)
	if err != nil {
		return nil, err
	}

	startTime := s.now()
	dashboard := report.BuildSalesDashboard(prospects, contacts, statusOptions, s.now())
	observer.ObserveReportBuildDuration("sales", time.Since(startTime))
	return &dashboard, nil
}

// ManagementReport builds the executive forecast and rankings view.
func (s *ReportService) ManagementReport(ctx context.Context) (*report.ManagementReport, error) {
	prospects, contacts, err := s.loadPipeline(ctx)
	if err != nil {
		return nil, err
	}

	startTime := s.now()
	result := report.BuildManagementReport(prospects, contacts, s.now())
	observer.ObserveReportBuildDuration("management", time.Since(startTime))
	return &result, nil
}

// MonthlyPerformance builds the trailing-12-month grid.
func (s *ReportService) MonthlyPerformance(ctx context.Context) (*report.MonthlyPerformance, error) {
	prospects, contacts, err := s.loadPipeline(ctx)
	if err != nil {
		return nil, err
	}

	startTime := s.now()
	result := report.BuildMonthlyPerformance(prospects, contacts, s.now())
	observer.ObserveReportBuildDuration("monthly", time.Since(startTime))
	return &result, nil
}

// RecruitingDashboard builds the driver pipeline view.
func (s *ReportService) RecruitingDashboard(ctx context.Context) (*report.RecruitingDashboard, error) {
	drivers, err := s.drivers.List(ctx)
	if err != nil {
		return nil, err
	}
	statusOptions, err := s.options.List(ctx, model.TaxonomyDriverStatus)
	if err != nil {
		return nil, err
	}

	startTime := s.now()
	dashboard := report.BuildRecruitingDashboard(drivers, statusOptions, s.now())
	observer.ObserveReportBuildDuration("recruiting", time.Since(startTime))
	return &dashboard, nil
}

// RouteCards builds the staffing board: one card per real route with its
// fill state and the owning prospect's pipeline state.
func (s *ReportService) RouteCards(ctx context.Context) ([]report.RouteCard, error) {
	routes, err := s.routes.List(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := s.drivers.List(ctx)
	if err != nil {
		return nil, err
	}
	prospects, contacts, err := s.loadPipeline(ctx)
	if err != nil {
		return nil, err
	}

	startTime := s.now()
	cards := report.BuildRouteCards(routes, drivers, prospects, contacts)
	observer.ObserveReportBuildDuration("routes", time.Since(startTime))
	return cards, nil
}

func (s *ReportService) loadPipeline(ctx context.Context) ([]model.Prospect, []model.Contact, error) {
	prospects, err := s.prospects.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return prospects, contacts, nil
}
