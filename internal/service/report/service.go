package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/access"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	resolver          access.ScopeResolver
	fetcher           *Fetcher
	expandLeaveRanges bool
	now               func() time.Time
}

func NewReportService(resolver access.ScopeResolver, fetcher *Fetcher, expandLeaveRanges bool) report.ReportService {
	return &ReportServiceImpl{
		resolver:          resolver,
		fetcher:           fetcher,
		expandLeaveRanges: expandLeaveRanges,
		now:               time.Now,
	}
}

// GenerateAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, filter attendance.AttendanceFilter) (report.AttendanceReport, error) {
	// Validate request
	if err := filter.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	caller, err := access.CallerFromContext(ctx)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	scope, err := s.resolver.Resolve(ctx, caller, filter.AccessFilter())
	if err != nil {
		return report.AttendanceReport{}, err
	}

	records, err := s.fetcher.Fetch(ctx, FetchRequest{
		Scope:  scope,
		Window: filter.Window(),
		Status: filter.StatusFilter(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch attendance report records",
			"filter", filter,
			"role", caller.Role,
			"error", err,
		)
		return report.AttendanceReport{}, err
	}

	slog.InfoContext(ctx, "fetched attendance report records",
		"filter", filter,
		"role", caller.Role,
		"attendance", len(records.Attendance),
		"leaves", len(records.Leaves),
		"ods", len(records.ODs),
	)

	overlays := BuildOverlays(records.Leaves, records.ODs, s.expandLeaveRanges)

	return report.AttendanceReport{
		FileName:    report.FileName(filter),
		GeneratedAt: s.now(),
		Rows:        Compile(records, overlays),
	}, nil
}
