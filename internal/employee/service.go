package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mealflow/takeout-admin/internal/auth"
	"github.com/mealflow/takeout-admin/internal/employee/entity"
	"github.com/mealflow/takeout-admin/pkg/utilities"
)

// Repository is the persistence contract the service depends on.
// Lookups that match no row return sql.ErrNoRows.
type Repository interface {
	Insert(ctx context.Context, e *entity.Employee) error
	GetByUsername(ctx context.Context, username string) (*entity.Employee, error)
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	Update(ctx context.Context, p *entity.UpdatePatch, updatedAt time.Time, updatedBy int64) error
	UpdateStatus(ctx context.Context, id int64, status entity.Status) error
	List(ctx context.Context, q entity.PageQuery) (int64, []*entity.Employee, error)
}

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrPasswordIncorrect = errors.New("password incorrect")
	ErrAccountLocked     = errors.New("account locked")
	ErrNotFound          = errors.New("employee not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrActorRequired     = errors.New("actor id missing from context")
)

// CreateInput carries the client-supplied fields for a new account. Any
// password the client sends is ignored; accounts start with the default.
type CreateInput struct {
	Username string
	Name     string
	Phone    string
	Sex      string
	IDNumber string
}

// EmployeeService implements the employee account flows: login, create,
// partial update, status toggle, fetch and paging.
type EmployeeService struct {
	repo   Repository
	hasher PasswordHasher
	now    func() time.Time
	newID  func() int64
}

func NewEmployeeService(r Repository, hasher PasswordHasher) *EmployeeService {
	if hasher == nil {
		hasher = MD5Hasher{}
	}
	return &EmployeeService{
		repo:   r,
		hasher: hasher,
		now:    time.Now,
		newID:  utilities.NewSnowflakeInt64,
	}
}

// Login authenticates by username and plaintext password. The checks run in
// a fixed order so each failure mode is distinguishable: unknown account,
// wrong password, then disabled account.
func (s *EmployeeService) Login(ctx context.Context, username, password string) (*entity.Employee, error) {
	e, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get by username: %w", err)
	}
	if !s.hasher.Verify(e.Password, password) {
		return nil, ErrPasswordIncorrect
	}
	if e.Status == entity.StatusDisabled {
		return nil, ErrAccountLocked
	}
	return e, nil
}

// Create persists a new enabled account with the default password digest.
// Audit fields come from the actor in ctx, never from the client.
func (s *EmployeeService) Create(ctx context.Context, in CreateInput) error {
	if in.Username == "" || in.Name == "" {
		return fmt.Errorf("%w: username and name are required", ErrInvalidInput)
	}
	actor, ok := auth.ActorID(ctx)
	if !ok {
		return ErrActorRequired
	}
	now := s.now()
	e := &entity.Employee{
		ID:        s.newID(),
		Username:  in.Username,
		Name:      in.Name,
		Password:  s.hasher.Hash(DefaultPassword),
		Phone:     in.Phone,
		Sex:       in.Sex,
		IDNumber:  in.IDNumber,
		Status:    entity.StatusEnabled,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: actor,
		UpdatedBy: actor,
	}
	if err := s.repo.Insert(ctx, e); err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// Update applies a partial merge: only non-nil patch fields overwrite the
// stored row. The updated-at timestamp and updated-by actor are refreshed
// on every call, even when the patch is otherwise empty.
func (s *EmployeeService) Update(ctx context.Context, p *entity.UpdatePatch) error {
	if p.ID == 0 {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	actor, ok := auth.ActorID(ctx)
	if !ok {
		return ErrActorRequired
	}
	if err := s.repo.Update(ctx, p, s.now(), actor); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// SetStatus enables or disables one account. Only the status column is
// written; every other field is left untouched.
func (s *EmployeeService) SetStatus(ctx context.Context, status entity.Status, id int64) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status", ErrInvalidInput)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

// GetByID fetches one account as a redacted view.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*entity.View, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get by id: %w", err)
	}
	return entity.NewView(e), nil
}

// PageQuery returns the total count of matching accounts plus the redacted
// records of the requested page. Pages are 1-indexed and ordered by id
// ascending.
func (s *EmployeeService) PageQuery(ctx context.Context, q entity.PageQuery) (*entity.PageResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	total, rows, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	records := make([]*entity.View, 0, len(rows))
	for _, e := range rows {
		records = append(records, entity.NewView(e))
	}
	return &entity.PageResult{Total: total, Records: records}, nil
}
