package entity

import (
	"fmt"
	"time"
)

// Status is the account state of an employee. The wire format keeps the
// legacy integers: 1 enabled, 0 disabled.
type Status int16

const (
	StatusDisabled Status = 0
	StatusEnabled  Status = 1
)

// ParseStatus converts a wire integer into a Status, rejecting anything
// outside the two known states.
func ParseStatus(v int) (Status, error) {
	switch Status(v) {
	case StatusDisabled:
		return StatusDisabled, nil
	case StatusEnabled:
		return StatusEnabled, nil
	default:
		return 0, fmt.Errorf("invalid status %d", v)
	}
}

// Valid reports whether s is one of the two known states.
func (s Status) Valid() bool {
	return s == StatusDisabled || s == StatusEnabled
}

// PasswordMask replaces the stored digest on every read-path response.
const PasswordMask = "******"

// Employee represents a row in the `employee` table. Password holds the
// stored digest and is never serialized; read paths go through View.
type Employee struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Name      string    `db:"name" json:"name"`
	Password  string    `db:"password" json:"-"`
	Phone     string    `db:"phone" json:"phone"`
	Sex       string    `db:"sex" json:"sex"`
	IDNumber  string    `db:"id_number" json:"id_number"`
	Status    Status    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	CreatedBy int64     `db:"created_by" json:"created_by"`
	UpdatedBy int64     `db:"updated_by" json:"updated_by"`
}

// View is the read-path projection of an Employee. It carries no digest
// field at all; Password is always the fixed mask.
type View struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Password  string    `json:"password"`
	Phone     string    `json:"phone"`
	Sex       string    `json:"sex"`
	IDNumber  string    `json:"id_number"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy int64     `json:"created_by"`
	UpdatedBy int64     `json:"updated_by"`
}

// NewView projects an Employee for a read response, masking the password.
func NewView(e *Employee) *View {
	return &View{
		ID:        e.ID,
		Username:  e.Username,
		Name:      e.Name,
		Password:  PasswordMask,
		Phone:     e.Phone,
		Sex:       e.Sex,
		IDNumber:  e.IDNumber,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		CreatedBy: e.CreatedBy,
		UpdatedBy: e.UpdatedBy,
	}
}

// UpdatePatch is a partial update keyed by ID. A nil field leaves the stored
// value untouched. Username and password are deliberately absent: the
// username is immutable after creation and passwords change through their
// own flow.
type UpdatePatch struct {
	ID       int64
	Name     *string
	Phone    *string
	Sex      *string
	IDNumber *string
}

// PageQuery selects a 1-indexed page. Name filters by substring when
// non-empty; Status filters by exact state when non-nil.
type PageQuery struct {
	Page     int
	PageSize int
	Name     string
	Status   *Status
}

// PageResult carries the total match count across all pages plus the
// records of the requested page.
type PageResult struct {
	Total   int64   `json:"total"`
	Records []*View `json:"records"`
}
