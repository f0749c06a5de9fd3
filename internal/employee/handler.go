package employee

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/mealflow/takeout-admin/internal/auth"
	"github.com/mealflow/takeout-admin/internal/employee/entity"
	"github.com/mealflow/takeout-admin/pkg/result"
)

// Handler exposes the /admin/employee HTTP surface.
type Handler struct {
	svc    *EmployeeService
	tokens *auth.TokenIssuer
	logger *zap.SugaredLogger
}

func NewHandler(svc *EmployeeService, tokens *auth.TokenIssuer, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, tokens: tokens, logger: logger}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the login payload returned on success.
type LoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid login payload", "err", err)
		result.Fail(w, "invalid payload")
		return
	}
	e, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountNotFound),
			errors.Is(err, ErrPasswordIncorrect),
			errors.Is(err, ErrAccountLocked):
			h.logger.Debugw("login rejected", "username", req.Username, "reason", err)
			result.Fail(w, err.Error())
		default:
			h.logger.Warnw("login failed", "err", err)
			result.Fail(w, "login failed")
		}
		return
	}
	token, err := h.tokens.Issue(e.ID)
	if err != nil {
		h.logger.Errorw("token issue failed", "err", err)
		result.Fail(w, "login failed")
		return
	}
	result.OK(w, LoginResponse{ID: e.ID, Username: e.Username, Name: e.Name, Token: token})
}

// Logout acknowledges the request. Session state lives upstream; there is
// nothing to tear down here.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	result.OK(w, nil)
}

// CreateRequest carries the fields for a new account. A password field, if
// sent, is ignored.
type CreateRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Sex      string `json:"sex"`
	IDNumber string `json:"id_number"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid create payload", "err", err)
		result.Fail(w, "invalid payload")
		return
	}
	in := CreateInput{
		Username: req.Username,
		Name:     req.Name,
		Phone:    req.Phone,
		Sex:      req.Sex,
		IDNumber: req.IDNumber,
	}
	if err := h.svc.Create(r.Context(), in); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			result.Fail(w, err.Error())
			return
		}
		h.logger.Warnw("create employee failed", "err", err)
		result.Fail(w, "create failed")
		return
	}
	result.OK(w, nil)
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	q := entity.PageQuery{Name: r.URL.Query().Get("name")}
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			result.Fail(w, "invalid page")
			return
		}
		q.Page = n
	}
	if v := r.URL.Query().Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			result.Fail(w, "invalid pageSize")
			return
		}
		q.PageSize = n
	}
	if v := r.URL.Query().Get("status"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			result.Fail(w, "invalid status")
			return
		}
		st, err := entity.ParseStatus(n)
		if err != nil {
			result.Fail(w, "invalid status")
			return
		}
		q.Status = &st
	}
	pr, err := h.svc.PageQuery(r.Context(), q)
	if err != nil {
		h.logger.Warnw("page query failed", "err", err)
		result.Fail(w, "query failed")
		return
	}
	result.OK(w, pr)
}

func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("status"))
	if err != nil {
		result.Fail(w, "invalid status")
		return
	}
	status, err := entity.ParseStatus(n)
	if err != nil {
		result.Fail(w, "invalid status")
		return
	}
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		result.Fail(w, "invalid id")
		return
	}
	if err := h.svc.SetStatus(r.Context(), status, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			result.Fail(w, err.Error())
			return
		}
		h.logger.Warnw("status toggle failed", "id", id, "err", err)
		result.Fail(w, "update failed")
		return
	}
	result.OK(w, nil)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		result.Fail(w, "invalid id")
		return
	}
	view, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			result.Fail(w, err.Error())
			return
		}
		h.logger.Warnw("get employee failed", "id", id, "err", err)
		result.Fail(w, "query failed")
		return
	}
	result.OK(w, view)
}

// UpdateRequest is the partial-update payload. Absent fields leave the
// stored values untouched.
type UpdateRequest struct {
	ID       int64   `json:"id"`
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Sex      *string `json:"sex"`
	IDNumber *string `json:"id_number"`
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid update payload", "err", err)
		result.Fail(w, "invalid payload")
		return
	}
	patch := &entity.UpdatePatch{
		ID:       req.ID,
		Name:     req.Name,
		Phone:    req.Phone,
		Sex:      req.Sex,
		IDNumber: req.IDNumber,
	}
	if err := h.svc.Update(r.Context(), patch); err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
			result.Fail(w, err.Error())
		default:
			h.logger.Warnw("update employee failed", "id", req.ID, "err", err)
			result.Fail(w, "update failed")
		}
		return
	}
	result.OK(w, nil)
}
