package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/employee-api/internal/core/domain"
	"github.com/peoplehub/employee-api/internal/core/ports"
)

// stubEmployeeService records inputs and returns canned results. Handlers
// return service errors unmapped, so failure paths are asserted on the error
// itself; status mapping is covered by the API error handler tests.
type stubEmployeeService struct {
	employee *domain.Employee
	items    []*domain.Employee
	meta     *ports.PaginationMeta
	rows     []ports.DepartmentAverage
	err      error

	gotCreate ports.CreateEmployeeInput
	gotPatch  ports.EmployeePatch
	gotList   ports.ListEmployeesInput
	gotSearch ports.SearchBySkillInput
	gotID     string
}

func (s *stubEmployeeService) Create(_ context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	s.gotCreate = input
	return s.employee, s.err
}

func (s *stubEmployeeService) Get(_ context.Context, employeeID string) (*domain.Employee, error) {
	s.gotID = employeeID
	return s.employee, s.err
}

func (s *stubEmployeeService) Update(_ context.Context, employeeID string, patch ports.EmployeePatch) (*domain.Employee, error) {
	s.gotID = employeeID
	s.gotPatch = patch
	return s.employee, s.err
}

func (s *stubEmployeeService) Delete(_ context.Context, employeeID string) error {
	s.gotID = employeeID
	return s.err
}

func (s *stubEmployeeService) List(_ context.Context, input ports.ListEmployeesInput) ([]*domain.Employee, *ports.PaginationMeta, error) {
	s.gotList = input
	return s.items, s.meta, s.err
}

func (s *stubEmployeeService) SearchBySkill(_ context.Context, input ports.SearchBySkillInput) ([]*domain.Employee, *ports.PaginationMeta, error) {
	s.gotSearch = input
	return s.items, s.meta, s.err
}

func (s *stubEmployeeService) AverageSalaryByDepartment(_ context.Context) ([]ports.DepartmentAverage, error) {
	return s.rows, s.err
}

func sampleEmployee() *domain.Employee {
	return &domain.Employee{
		EmployeeID:  "E001",
		Name:        "John Doe",
		Department:  "Engineering",
		Salary:      75000,
		JoiningDate: "2023-01-15",
		Skills:      []string{"Python", "MongoDB"},
	}
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestEmployeeHandler_Create(t *testing.T) {
	svc := &stubEmployeeService{employee: sampleEmployee()}
	h := NewEmployeeHandler(svc)

	body := `{"name":"John Doe","department":"Engineering","salary":75000,"joining_date":"2023-01-15","skills":["Python","MongoDB"]}`
	c, rec := newContext(t, http.MethodPost, "/employees", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotCreate.Name != "John Doe" || svc.gotCreate.Salary != 75000 {
		t.Fatalf("input not forwarded: %+v", svc.gotCreate)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["id"] != "E001" {
		t.Fatalf("expected id E001, got %v", resp["id"])
	}
	if _, present := resp["_id"]; present {
		t.Fatalf("internal object id leaked into response")
	}
}

func TestEmployeeHandler_Create_InvalidJSON(t *testing.T) {
	h := NewEmployeeHandler(&stubEmployeeService{})
	c, _ := newContext(t, http.MethodPost, "/employees", `{not json`)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestEmployeeHandler_Create_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"department":"Engineering","salary":75000,"joining_date":"2023-01-15","skills":["Go"]}`},
		{"zero salary", `{"name":"John","department":"Engineering","salary":0,"joining_date":"2023-01-15","skills":["Go"]}`},
		{"bad date", `{"name":"John","department":"Engineering","salary":75000,"joining_date":"15/01/2023","skills":["Go"]}`},
		{"empty skills", `{"name":"John","department":"Engineering","salary":75000,"joining_date":"2023-01-15","skills":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubEmployeeService{}
			h := NewEmployeeHandler(svc)
			c, _ := newContext(t, http.MethodPost, "/employees", tc.body)

			err := h.Create(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %v", err)
			}
		})
	}
}

func TestEmployeeHandler_Get(t *testing.T) {
	svc := &stubEmployeeService{employee: sampleEmployee()}
	h := NewEmployeeHandler(svc)

	c, rec := newContext(t, http.MethodGet, "/employees/E001", "")
	c.SetParamNames("employee_id")
	c.SetParamValues("E001")

	if err := h.Get(c); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotID != "E001" {
		t.Fatalf("employee id not forwarded: %q", svc.gotID)
	}
}

func TestEmployeeHandler_Get_NotFound(t *testing.T) {
	svc := &stubEmployeeService{err: domain.ErrEmployeeNotFound}
	h := NewEmployeeHandler(svc)

	c, _ := newContext(t, http.MethodGet, "/employees/E404", "")
	c.SetParamNames("employee_id")
	c.SetParamValues("E404")

	if err := h.Get(c); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeHandler_Update(t *testing.T) {
	svc := &stubEmployeeService{employee: sampleEmployee()}
	h := NewEmployeeHandler(svc)

	c, rec := newContext(t, http.MethodPut, "/employees/E001", `{"salary":80000}`)
	c.SetParamNames("employee_id")
	c.SetParamValues("E001")

	if err := h.Update(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotPatch.Salary == nil || *svc.gotPatch.Salary != 80000 {
		t.Fatalf("salary patch not forwarded: %+v", svc.gotPatch)
	}
	if svc.gotPatch.Name != nil || svc.gotPatch.Department != nil {
		t.Fatalf("absent fields must stay nil in the patch: %+v", svc.gotPatch)
	}
}

func TestEmployeeHandler_Delete(t *testing.T) {
	svc := &stubEmployeeService{}
	h := NewEmployeeHandler(svc)

	c, rec := newContext(t, http.MethodDelete, "/employees/E001", "")
	c.SetParamNames("employee_id")
	c.SetParamValues("E001")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "E001 deleted successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestEmployeeHandler_List_BareArrayWithoutPagination(t *testing.T) {
	svc := &stubEmployeeService{items: []*domain.Employee{sampleEmployee()}}
	h := NewEmployeeHandler(svc)

	c, rec := newContext(t, http.MethodGet, "/employees?department=Engineering", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if svc.gotList.Department != "Engineering" || svc.gotList.Page != nil {
		t.Fatalf("unexpected input: %+v", svc.gotList)
	}

	body := strings.TrimSpace(rec.Body.String())
	if !strings.HasPrefix(body, "[") {
		t.Fatalf("expected bare array without pagination, got: %s", body)
	}
}

func TestEmployeeHandler_List_EnvelopeWithPagination(t *testing.T) {
	meta := &ports.PaginationMeta{Page: 2, PageSize: 10, TotalItems: 25, TotalPages: 3, HasNext: true, HasPrevious: true}
	svc := &stubEmployeeService{items: []*domain.Employee{sampleEmployee()}, meta: meta}
	h := NewEmployeeHandler(svc)

	c, rec := newContext(t, http.MethodGet, "/employees?page=2&page_size=10", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if svc.gotList.Page == nil || svc.gotList.Page.Page != 2 || svc.gotList.Page.PageSize != 10 {
		t.Fatalf("page request not forwarded: %+v", svc.gotList.Page)
	}

	var resp struct {
		Items []json.RawMessage `json:"items"`
		Meta  struct {
			TotalPages int `json:"total_pages"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if resp.Meta.TotalPages != 3 {
		t.Fatalf("unexpected meta: %+v", resp.Meta)
	}
}

func TestEmployeeHandler_List_PageDefaults(t *testing.T) {
	svc := &stubEmployeeService{meta: &ports.PaginationMeta{}}
	h := NewEmployeeHandler(svc)

	// Supplying only page turns pagination on and defaults page_size.
	c, _ := newContext(t, http.MethodGet, "/employees?page=2", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if svc.gotList.Page == nil || svc.gotList.Page.Page != 2 || svc.gotList.Page.PageSize != defaultPageSize {
		t.Fatalf("unexpected page request: %+v", svc.gotList.Page)
	}

	c, _ = newContext(t, http.MethodGet, "/employees?page_size=25", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if svc.gotList.Page == nil || svc.gotList.Page.Page != defaultPage || svc.gotList.Page.PageSize != 25 {
		t.Fatalf("unexpected page request: %+v", svc.gotList.Page)
	}
}

func TestEmployeeHandler_List_RejectsBadPagination(t *testing.T) {
	cases := []string{
		"/employees?page=0",
		"/employees?page=-1",
		"/employees?page=abc",
		"/employees?page_size=0",
		"/employees?page_size=101",
	}
	for _, target := range cases {
		t.Run(target, func(t *testing.T) {
			h := NewEmployeeHandler(&stubEmployeeService{})
			c, _ := newContext(t, http.MethodGet, target, "")

			err := h.List(c)
			if _, ok := err.(*domain.ValidationError); !ok {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
		})
	}
}

func TestEmployeeHandler_Search(t *testing.T) {
	svc := &stubEmployeeService{items: []*domain.Employee{sampleEmployee()}}
	h := NewEmployeeHandler(svc)

	c, rec := newContext(t, http.MethodGet, "/employees/search?skill="+url.QueryEscape("mongo"), "")
	if err := h.Search(c); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotSearch.Skill != "mongo" {
		t.Fatalf("skill not forwarded: %q", svc.gotSearch.Skill)
	}
}

func TestEmployeeHandler_Search_MissingSkill(t *testing.T) {
	h := NewEmployeeHandler(&stubEmployeeService{})
	c, _ := newContext(t, http.MethodGet, "/employees/search", "")

	err := h.Search(c)
	if _, ok := err.(*domain.ValidationError); !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestEmployeeHandler_AverageSalary(t *testing.T) {
	svc := &stubEmployeeService{rows: []ports.DepartmentAverage{
		{Department: "Engineering", AvgSalary: 83333.33},
		{Department: "HR", AvgSalary: 60000},
	}}
	h := NewEmployeeHandler(svc)

	c, rec := newContext(t, http.MethodGet, "/employees/avg-salary", "")
	if err := h.AverageSalary(c); err != nil {
		t.Fatalf("average salary failed: %v", err)
	}

	var rows []struct {
		Department string  `json:"department"`
		AvgSalary  float64 `json:"avg_salary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(rows) != 2 || rows[0].Department != "Engineering" || rows[0].AvgSalary != 83333.33 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
