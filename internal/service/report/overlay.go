package report

import (
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/leave"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/od"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/report"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/calendar"
)

// BuildOverlays indexes approved leaves and ODs by employee and day.
// With expandLeaveRanges off a full-day leave marks only its first day.
func BuildOverlays(leaves []leave.Leave, ods []od.OD, expandLeaveRanges bool) report.Overlays {
	return report.Overlays{
		Leave: buildLeaveOverlay(leaves, expandLeaveRanges),
		OD:    buildODOverlay(ods),
	}
}

func buildLeaveOverlay(leaves []leave.Leave, expandRanges bool) report.Overlay {
	overlay := report.Overlay{}
	for _, l := range leaves {
		if !l.Status.IsApproved() {
			continue
		}

		switch {
		case l.HalfDay != nil:
			overlay.Set(l.EmployeeID, l.HalfDay.Date, halfDayAnnotation(l.HalfDay.Session))
		case l.FullDay != nil && expandRanges:
			for _, day := range calendar.Days(l.FullDay.From, l.FullDay.To) {
				overlay.Set(l.EmployeeID, day, report.AnnotationLeave)
			}
		case l.FullDay != nil:
			overlay.Set(l.EmployeeID, l.FullDay.From, report.AnnotationLeave)
		}
	}
	return overlay
}

// Any session other than forenoon is treated as the second half.
func halfDayAnnotation(session leave.Session) string {
	if session == leave.SessionForenoon {
		return report.AnnotationLeaveFirstHalf
	}
	return report.AnnotationLeaveSecondHalf
}

func buildODOverlay(ods []od.OD) report.Overlay {
	overlay := report.Overlay{}
	for _, o := range ods {
		if !o.Status.IsApproved() {
			continue
		}
		for _, day := range calendar.Days(o.DateOut, o.DateIn) {
			overlay.Set(o.EmployeeID, day, report.AnnotationOD)
		}
	}
	return overlay
}
