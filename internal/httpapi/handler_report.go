package httpapi

import (
	"fmt"
	"net/http"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/export"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

func (s *Server) handleSalesReport(w http.ResponseWriter, r *http.Request) {
	dashboard, err := s.reports.SalesDashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dashboard)
}

func (s *Server) handleManagementReport(w http.ResponseWriter, r *http.Request) {
	result, err := s.reports.ManagementReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, result)
}

func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	result, err := s.reports.MonthlyPerformance(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, result)
}

func (s *Server) handleRecruitingReport(w http.ResponseWriter, r *http.Request) {
	dashboard, err := s.reports.RecruitingDashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dashboard)
}

func (s *Server) handleRouteCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.reports.RouteCards(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, cards)
}

func (s *Server) handleExportOpportunities(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		writeError(w, fmt.Errorf("%w: unsupported export format %q", apperrors.ErrBadRequest, format))
		return
	}
	// The export carries the financial columns a viewer never sees.
	if isViewer(r.Context()) {
		writeError(w, fmt.Errorf("%w: viewers cannot export financial data", apperrors.ErrForbidden))
		return
	}

	prospects, err := s.prospects.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	contacts, err := s.contacts.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	rows := export.BuildOpportunityRows(prospects, contacts, utils.Now())
	header := export.OpportunityHeader()

	if format == "xlsx" {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="opportunities_export.xlsx"`)
		if err := export.WriteXLSX(w, header, rows); err != nil {
			writeError(w, err)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="opportunities_export.csv"`)
	if err := export.WriteCSV(w, header, rows); err != nil {
		writeError(w, err)
	}
}
