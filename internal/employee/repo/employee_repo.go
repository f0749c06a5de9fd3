package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mealflow/takeout-admin/internal/employee/entity"
)

// EmployeeRepo provides data access for the employee table using sqlx.
type EmployeeRepo struct {
	db *sqlx.DB
}

func NewEmployeeRepo(db *sqlx.DB) *EmployeeRepo { return &EmployeeRepo{db: db} }

// EnsureTable creates the employee table if not exists (idempotent).
// This is a convenience for early development; prefer migrations in production.
func (r *EmployeeRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS employee (
  id BIGINT PRIMARY KEY,
  username TEXT UNIQUE NOT NULL,
  name TEXT NOT NULL,
  password TEXT NOT NULL,
  phone varchar(16) NOT NULL DEFAULT '',
  sex varchar(2) NOT NULL DEFAULT '',
  id_number varchar(18) NOT NULL DEFAULT '',
  status SMALLINT NOT NULL DEFAULT 1,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  created_by BIGINT NOT NULL DEFAULT 0,
  updated_by BIGINT NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_employee_name ON employee(name);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

const employeeColumns = `id, username, name, password, phone, sex, id_number, status, created_at, updated_at, created_by, updated_by`

// Insert persists a fully-populated employee row.
func (r *EmployeeRepo) Insert(ctx context.Context, e *entity.Employee) error {
	const q = `INSERT INTO employee (id, username, name, password, phone, sex, id_number, status, created_at, updated_at, created_by, updated_by)
		VALUES (:id, :username, :name, :password, :phone, :sex, :id_number, :status, :created_at, :updated_at, :created_by, :updated_by)`
	_, err := r.db.NamedExecContext(ctx, q, e)
	return err
}

// GetByUsername fetches by exact, case-sensitive username or sql.ErrNoRows.
func (r *EmployeeRepo) GetByUsername(ctx context.Context, username string) (*entity.Employee, error) {
	q := `SELECT ` + employeeColumns + ` FROM employee WHERE username=$1`
	var row entity.Employee
	if err := r.db.GetContext(ctx, &row, q, username); err != nil {
		return nil, err
	}
	return &row, nil
}

// GetByID fetches a full employee row or sql.ErrNoRows.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	q := `SELECT ` + employeeColumns + ` FROM employee WHERE id=$1`
	var row entity.Employee
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies a partial patch: only non-nil fields are written, plus the
// audit columns which refresh on every call. Returns sql.ErrNoRows when the
// id matches nothing.
func (r *EmployeeRepo) Update(ctx context.Context, p *entity.UpdatePatch, updatedAt time.Time, updatedBy int64) error {
	q, args := buildUpdate(p, updatedAt, updatedBy)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// buildUpdate assembles the dynamic SET clause for a partial update.
func buildUpdate(p *entity.UpdatePatch, updatedAt time.Time, updatedBy int64) (string, []any) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Phone != nil {
		add("phone", *p.Phone)
	}
	if p.Sex != nil {
		add("sex", *p.Sex)
	}
	if p.IDNumber != nil {
		add("id_number", *p.IDNumber)
	}
	add("updated_at", updatedAt)
	add("updated_by", updatedBy)
	args = append(args, p.ID)
	q := fmt.Sprintf("UPDATE employee SET %s WHERE id=$%d", strings.Join(sets, ", "), len(args))
	return q, args
}

// UpdateStatus writes the status column only; no other field is touched.
// Returns sql.ErrNoRows when the id matches nothing.
func (r *EmployeeRepo) UpdateStatus(ctx context.Context, id int64, status entity.Status) error {
	const q = `UPDATE employee SET status=$2 WHERE id=$1`
	res, err := r.db.ExecContext(ctx, q, id, status)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// List returns the total count matching the query filters plus the rows of
// the requested page, ordered by id ascending.
func (r *EmployeeRepo) List(ctx context.Context, q entity.PageQuery) (int64, []*entity.Employee, error) {
	where, args := buildListFilter(q)

	var total int64
	countQ := `SELECT count(*) FROM employee` + where
	if err := r.db.GetContext(ctx, &total, countQ, args...); err != nil {
		return 0, nil, err
	}

	offset := (q.Page - 1) * q.PageSize
	pageQ := fmt.Sprintf("SELECT %s FROM employee%s ORDER BY id ASC LIMIT $%d OFFSET $%d",
		employeeColumns, where, len(args)+1, len(args)+2)
	rows := []*entity.Employee{}
	if err := r.db.SelectContext(ctx, &rows, pageQ, append(args, q.PageSize, offset)...); err != nil {
		return 0, nil, err
	}
	return total, rows, nil
}

// buildListFilter assembles the WHERE clause shared by the count and page
// queries. Absent filters are simply not applied.
func buildListFilter(q entity.PageQuery) (string, []any) {
	conds := []string{}
	args := []any{}
	if q.Name != "" {
		args = append(args, q.Name)
		conds = append(conds, fmt.Sprintf("name LIKE '%%' || $%d || '%%'", len(args)))
	}
	if q.Status != nil {
		args = append(args, *q.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
