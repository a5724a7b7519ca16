package postgresql_test

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/accelor-hrms/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// schema mirrors the columns the repositories read. It is created inside the
// test transaction and disappears on rollback.
const schema = `
	CREATE TABLE departments (
		id   UUID PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE employees (
		id            UUID PRIMARY KEY,
		employee_id   TEXT NOT NULL UNIQUE,
		name          TEXT NOT NULL,
		department_id UUID REFERENCES departments (id)
	);

	CREATE TABLE attendances (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		employee_id TEXT NOT NULL,
		user_id     UUID,
		name        TEXT NOT NULL,
		log_date    DATE NOT NULL,
		time_in     TEXT,
		time_out    TEXT,
		status      TEXT NOT NULL,
		half_day    TEXT,
		ot          INTEGER NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (employee_id, log_date)
	);

	CREATE TABLE leaves (
		id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		employee_id      TEXT NOT NULL,
		name             TEXT NOT NULL,
		leave_type       TEXT NOT NULL,
		full_day_from    DATE,
		full_day_to      DATE,
		half_day_date    DATE,
		half_day_session TEXT,
		reason           TEXT,
		status_hod       TEXT NOT NULL DEFAULT 'Pending',
		status_admin     TEXT NOT NULL DEFAULT 'Pending',
		status_ceo       TEXT NOT NULL DEFAULT 'Pending',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE ods (
		id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		employee_id  TEXT NOT NULL,
		name         TEXT NOT NULL,
		date_out     DATE NOT NULL,
		date_in      DATE NOT NULL,
		purpose      TEXT,
		status_hod   TEXT NOT NULL DEFAULT 'Pending',
		status_admin TEXT NOT NULL DEFAULT 'Pending',
		status_ceo   TEXT NOT NULL DEFAULT 'Pending',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

const (
	salesDeptID   = "0190a1b2-0000-7000-8000-000000000001"
	financeDeptID = "0190a1b2-0000-7000-8000-000000000002"
	hodUserID     = "0190a1b2-0000-7000-8000-0000000000a1"
	e1UserID      = "0190a1b2-0000-7000-8000-0000000000b1"
	e2UserID      = "0190a1b2-0000-7000-8000-0000000000b2"
	e3UserID      = "0190a1b2-0000-7000-8000-0000000000b3"
)

// fixtures seeds two departments, a HOD and three employees (E3 has no department).
const fixtures = `
	INSERT INTO departments (id, name) VALUES
		('` + salesDeptID + `', 'Sales'),
		('` + financeDeptID + `', 'Finance');

	INSERT INTO employees (id, employee_id, name, department_id) VALUES
		('` + hodUserID + `', 'HOD1', 'Head of Sales', '` + salesDeptID + `'),
		('` + e1UserID + `', 'E1', 'Asha', '` + salesDeptID + `'),
		('` + e2UserID + `', 'E2', 'Ravi', '` + financeDeptID + `'),
		('` + e3UserID + `', 'E3', 'Meera', NULL);
`

// testEnv is one test's database handle and a context bound to its transaction.
type testEnv struct {
	DB  *database.DB
	Ctx context.Context
}

// newTestEnv connects to TEST_DATABASE_URL, opens a transaction holding the
// schema and fixtures, and rolls it back on cleanup. Skips without a database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 2, MinConns: 1})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	tx, err := db.Begin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })

	for _, stmt := range []string{schema, fixtures} {
		_, err := tx.Exec(ctx, stmt)
		require.NoError(t, err)
	}

	return &testEnv{DB: db, Ctx: postgresql.WithTx(ctx, tx)}
}

// exec runs a seed statement inside the test transaction.
func (e *testEnv) exec(t *testing.T, sql string, args ...interface{}) {
	t.Helper()
	_, err := postgresql.GetQuerier(e.Ctx, e.DB).Exec(e.Ctx, sql, args...)
	require.NoError(t, err)
}

func mustDate(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	require.NoError(t, err)
	return d
}
