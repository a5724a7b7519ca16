package report

import (
	"testing"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/approval"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/leave"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/od"
	"github.com/stretchr/testify/assert"
)

func TestBuildOverlays_ODCoversRangeInclusive(t *testing.T) {
	overlays := BuildOverlays(nil, []od.OD{onDuty("E2", "2024-05-01", "2024-05-03", approved)}, true)

	for _, d := range []string{"2024-05-01", "2024-05-02", "2024-05-03"} {
		got, ok := overlays.OD.Lookup("E2", day(d))
		assert.True(t, ok, d)
		assert.Equal(t, "(OD)", got)
	}
	for _, d := range []string{"2024-04-30", "2024-05-04"} {
		_, ok := overlays.OD.Lookup("E2", day(d))
		assert.False(t, ok, d)
	}
	assert.Len(t, overlays.OD["E2"], 3)
}

func TestBuildOverlays_ODAcrossMonthBoundary(t *testing.T) {
	overlays := BuildOverlays(nil, []od.OD{onDuty("E2", "2024-02-28", "2024-03-01", approved)}, true)

	_, ok := overlays.OD.Lookup("E2", day("2024-02-29"))
	assert.True(t, ok)
	assert.Len(t, overlays.OD["E2"], 3)
}

func TestBuildOverlays_ReversedODIsEmpty(t *testing.T) {
	overlays := BuildOverlays(nil, []od.OD{onDuty("E2", "2024-05-03", "2024-05-01", approved)}, true)
	assert.Empty(t, overlays.OD)
}

func TestBuildOverlays_SkipsUnapproved(t *testing.T) {
	pending := approval.Status{HOD: approval.Approved, Admin: approval.AdminAcknowledged, CEO: approval.Pending}
	rejected := approval.Status{HOD: approval.Approved, CEO: approval.Rejected}

	overlays := BuildOverlays(
		[]leave.Leave{
			fullDayLeave("E1", "2024-05-10", "2024-05-10", pending),
			fullDayLeave("E1", "2024-05-11", "2024-05-11", rejected),
		},
		[]od.OD{onDuty("E2", "2024-05-01", "2024-05-03", pending)},
		true,
	)

	assert.Empty(t, overlays.Leave)
	assert.Empty(t, overlays.OD)
}

func TestBuildOverlays_CEOApprovalAloneIsEnough(t *testing.T) {
	ceoOnly := approval.Status{HOD: approval.Pending, Admin: approval.AdminPending, CEO: approval.Approved}
	overlays := BuildOverlays([]leave.Leave{fullDayLeave("E1", "2024-05-10", "2024-05-10", ceoOnly)}, nil, true)

	got, ok := overlays.Leave.Lookup("E1", day("2024-05-10"))
	assert.True(t, ok)
	assert.Equal(t, "(L)", got)
}

func TestBuildOverlays_HalfDaySessions(t *testing.T) {
	overlays := BuildOverlays([]leave.Leave{
		halfDayLeave("E1", "2024-05-06", leave.SessionForenoon),
		halfDayLeave("E1", "2024-05-07", leave.SessionAfternoon),
	}, nil, true)

	first, _ := overlays.Leave.Lookup("E1", day("2024-05-06"))
	second, _ := overlays.Leave.Lookup("E1", day("2024-05-07"))
	assert.Equal(t, "(L) First Half", first)
	assert.Equal(t, "(L) Second Half", second)
}

func TestBuildOverlays_FullDayLeaveExpansion(t *testing.T) {
	leaves := []leave.Leave{fullDayLeave("E1", "2024-05-10", "2024-05-12", approved)}

	expanded := BuildOverlays(leaves, nil, true)
	assert.Len(t, expanded.Leave["E1"], 3)
	got, ok := expanded.Leave.Lookup("E1", day("2024-05-12"))
	assert.True(t, ok)
	assert.Equal(t, "(L)", got)

	anchored := BuildOverlays(leaves, nil, false)
	assert.Len(t, anchored.Leave["E1"], 1)
	_, ok = anchored.Leave.Lookup("E1", day("2024-05-10"))
	assert.True(t, ok)
	_, ok = anchored.Leave.Lookup("E1", day("2024-05-11"))
	assert.False(t, ok)
}

func TestBuildOverlays_LeaveAndODStaySeparate(t *testing.T) {
	overlays := BuildOverlays(
		[]leave.Leave{fullDayLeave("E1", "2024-05-02", "2024-05-02", approved)},
		[]od.OD{onDuty("E1", "2024-05-01", "2024-05-03", approved)},
		true,
	)

	l, _ := overlays.Leave.Lookup("E1", day("2024-05-02"))
	o, _ := overlays.OD.Lookup("E1", day("2024-05-02"))
	assert.Equal(t, "(L)", l)
	assert.Equal(t, "(OD)", o)
}
