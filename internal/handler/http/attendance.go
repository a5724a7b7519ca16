package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/report"
	"github.com/accelor-hrms/hrms-backend-go/internal/handler/http/response"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/xlsx"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	reportService     report.ReportService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, reportService report.ReportService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

// parseFilter reads the shared query parameters; empty values count as absent.
func parseFilter(r *http.Request) attendance.AttendanceFilter {
	query := r.URL.Query()
	filter := attendance.AttendanceFilter{}

	// Employee ID filter
	if employeeID := query.Get("employeeId"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	// Department filter
	if departmentID := query.Get("departmentId"); departmentID != "" {
		filter.DepartmentID = &departmentID
	}

	// Date range filters
	if fromDate := query.Get("fromDate"); fromDate != "" {
		filter.FromDate = &fromDate
	}

	if toDate := query.Get("toDate"); toDate != "" {
		filter.ToDate = &toDate
	}

	return filter
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := parseFilter(r)

	// Validate filter
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Get data from service
	results, err := h.attendanceService.ListAttendance(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Download implements AttendanceHandler.
func (h *attendanceHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := parseFilter(r)

	// Status filter, download only
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	// Validate filter
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateAttendanceReport(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows := make([][]any, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, row.Values())
	}

	// Render fully before writing headers so a failure can still become JSON.
	var buf bytes.Buffer
	if err := xlsx.Write(&buf, report.SheetName, report.Columns, rows); err != nil {
		slog.ErrorContext(ctx, "failed to serialize attendance report", "filter", filter, "error", err)
		response.HandleError(w, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err))
		return
	}

	w.Header().Set("Content-Type", xlsx.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.WarnContext(ctx, "failed to stream attendance report", "file", result.FileName, "error", err)
	}
}
