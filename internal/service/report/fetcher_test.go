package report

import (
	"context"
	"errors"
	"testing"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/access"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/leave"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/od"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetcherFixture struct {
	attendance *fakeAttendanceRepo
	leaves     *fakeLeaveRepo
	ods        *fakeODRepo
	employees  *fakeEmployeeRepo
}

func newFetcherFixture() *fetcherFixture {
	return &fetcherFixture{
		attendance: &fakeAttendanceRepo{listFn: func(ctx context.Context, query attendance.Query) ([]attendance.Attendance, error) {
			return []attendance.Attendance{
				punch("E1", "2024-05-10", attendance.StatusAbsent),
				punch("E2", "2024-05-10", attendance.StatusPresent),
				punch("E1", "2024-05-09", attendance.StatusPresent),
			}, nil
		}},
		leaves: &fakeLeaveRepo{listApprovedFn: func(ctx context.Context, query leave.Query) ([]leave.Leave, error) {
			return []leave.Leave{fullDayLeave("E1", "2024-05-10", "2024-05-10", approved)}, nil
		}},
		ods: &fakeODRepo{listApprovedFn: func(ctx context.Context, query od.Query) ([]od.OD, error) {
			return []od.OD{onDuty("E2", "2024-05-01", "2024-05-03", approved)}, nil
		}},
		employees: &fakeEmployeeRepo{getDepartmentNamesFn: func(ctx context.Context, employeeIDs []string) (map[string]string, error) {
			return map[string]string{"E1": "Finance"}, nil
		}},
	}
}

func (f *fetcherFixture) fetcher(spanning bool) *Fetcher {
	return NewFetcher(f.attendance, f.leaves, f.ods, f.employees, spanning)
}

func TestFetch_LoadsEverything(t *testing.T) {
	fx := newFetcherFixture()
	var departmentLookup []string
	fx.employees.getDepartmentNamesFn = func(ctx context.Context, employeeIDs []string) (map[string]string, error) {
		departmentLookup = employeeIDs
		return map[string]string{"E1": "Finance"}, nil
	}

	records, err := fx.fetcher(true).Fetch(context.Background(), FetchRequest{Scope: access.Unrestricted()})

	require.NoError(t, err)
	assert.Len(t, records.Attendance, 3)
	assert.Len(t, records.Leaves, 1)
	assert.Len(t, records.ODs, 1)
	assert.Equal(t, map[string]string{"E1": "Finance"}, records.Departments)
	assert.Equal(t, []string{"E1", "E2"}, departmentLookup)
}

func TestFetch_PassesQueryThrough(t *testing.T) {
	fx := newFetcherFixture()
	window := calendar.NewWindow(day("2024-05-01"), nil)
	status := attendance.StatusAbsent
	scope := access.Only("E1")

	var gotAttendance attendance.Query
	var gotLeave leave.Query
	var gotOD od.Query
	fx.attendance.listFn = func(ctx context.Context, query attendance.Query) ([]attendance.Attendance, error) {
		gotAttendance = query
		return nil, nil
	}
	fx.leaves.listApprovedFn = func(ctx context.Context, query leave.Query) ([]leave.Leave, error) {
		gotLeave = query
		return nil, nil
	}
	fx.ods.listApprovedFn = func(ctx context.Context, query od.Query) ([]od.OD, error) {
		gotOD = query
		return nil, nil
	}

	_, err := fx.fetcher(true).Fetch(context.Background(), FetchRequest{Scope: scope, Window: &window, Status: &status})

	require.NoError(t, err)
	assert.Equal(t, attendance.Query{Scope: scope, Window: &window, Status: &status}, gotAttendance)
	assert.Equal(t, leave.Query{Scope: scope, Window: &window, SpanningRanges: true}, gotLeave)
	assert.Equal(t, od.Query{Scope: scope, Window: &window}, gotOD)
}

func TestFetch_EmptyScopeSkipsStorage(t *testing.T) {
	fx := newFetcherFixture()

	records, err := fx.fetcher(true).Fetch(context.Background(), FetchRequest{Scope: access.Only()})

	require.NoError(t, err)
	assert.Empty(t, records.Attendance)
	assert.NotNil(t, records.Departments)
	assert.Zero(t, fx.attendance.calls)
	assert.Zero(t, fx.leaves.calls)
	assert.Zero(t, fx.ods.calls)
}

func TestFetch_NoAttendanceSkipsDepartmentLookup(t *testing.T) {
	fx := newFetcherFixture()
	fx.attendance.listFn = func(ctx context.Context, query attendance.Query) ([]attendance.Attendance, error) {
		return nil, nil
	}
	fx.employees.getDepartmentNamesFn = func(ctx context.Context, employeeIDs []string) (map[string]string, error) {
		t.Error("department lookup must not run without attendance")
		return nil, nil
	}

	records, err := fx.fetcher(true).Fetch(context.Background(), FetchRequest{Scope: access.Unrestricted()})

	require.NoError(t, err)
	assert.Empty(t, records.Departments)
}

func TestFetch_StorageFailureAborts(t *testing.T) {
	cases := []struct {
		name   string
		fail   func(fx *fetcherFixture, cause error)
		target error
	}{
		{"attendance", func(fx *fetcherFixture, cause error) {
			fx.attendance.listFn = func(ctx context.Context, query attendance.Query) ([]attendance.Attendance, error) {
				return nil, cause
			}
		}, attendance.ErrFetchAttendance},
		{"leave", func(fx *fetcherFixture, cause error) {
			fx.leaves.listApprovedFn = func(ctx context.Context, query leave.Query) ([]leave.Leave, error) {
				return nil, cause
			}
		}, leave.ErrFetchLeaves},
		{"od", func(fx *fetcherFixture, cause error) {
			fx.ods.listApprovedFn = func(ctx context.Context, query od.Query) ([]od.OD, error) {
				return nil, cause
			}
		}, od.ErrFetchODs},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fx := newFetcherFixture()
			cause := errors.New("connection reset by peer")
			c.fail(fx, cause)

			records, err := fx.fetcher(true).Fetch(context.Background(), FetchRequest{Scope: access.Unrestricted()})

			require.Error(t, err)
			assert.ErrorIs(t, err, c.target)
			assert.ErrorIs(t, err, cause)
			assert.Empty(t, records.Attendance)
		})
	}
}
