package care

import (
	"strings"

	"github.com/hackgods/care-console/internal/store"
)

const (
	ShiftMorning   = "Morning"
	ShiftAfternoon = "Afternoon"
	ShiftNight     = "Night"
	ShiftFullDay   = "Full day"
)

type EmployeeFields struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Shift string `json:"shift"`
}

type Employee struct {
	ID int64 `json:"id"`
	EmployeeFields
	Active bool `json:"active"`
}

type EmployeeStore = store.Store[Employee, EmployeeFields]

var EmployeeKind = store.Kind[Employee, EmployeeFields]{
	Name: "employee",
	New: func(id int64, f EmployeeFields) Employee {
		return Employee{ID: id, EmployeeFields: f, Active: true}
	},
	Replace: func(e *Employee, f EmployeeFields) { e.EmployeeFields = f },
	ID:      func(e Employee) int64 { return e.ID },
	SetID:   func(e *Employee, id int64) { e.ID = id },
}

func NewEmployeeStore(opts ...store.Option) *EmployeeStore {
	return store.New(EmployeeKind, opts...)
}

// ToggleActive flips the employee's active flag.
func ToggleActive(s *EmployeeStore, id int64) (Employee, bool) {
	return s.Apply(id, store.ActionStatusChanged, func(e *Employee) {
		e.Active = !e.Active
	})
}

type EmployeePatch struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	Shift *string `json:"shift"`
}

func (p EmployeePatch) Validate() error { return nil }

func (p EmployeePatch) Apply(e *Employee) {
	setIf(&e.Name, p.Name)
	setIf(&e.Role, p.Role)
	setIf(&e.Phone, p.Phone)
	setIf(&e.Email, p.Email)
	setIf(&e.Shift, p.Shift)
}

type EmployeeCodec struct{}

func (EmployeeCodec) Defaults() map[string]string {
	return map[string]string{"shift": ShiftMorning}
}

func (EmployeeCodec) Encode(f EmployeeFields) map[string]string {
	return map[string]string{
		"name":  f.Name,
		"role":  f.Role,
		"phone": f.Phone,
		"email": f.Email,
		"shift": f.Shift,
	}
}

func (EmployeeCodec) Decode(d map[string]string) (EmployeeFields, error) {
	return EmployeeFields{
		Name:  strings.TrimSpace(d["name"]),
		Role:  strings.TrimSpace(d["role"]),
		Phone: strings.TrimSpace(d["phone"]),
		Email: strings.TrimSpace(d["email"]),
		Shift: strings.TrimSpace(d["shift"]),
	}, nil
}

func setIf[V any](dst *V, v *V) {
	if v != nil {
		*dst = *v
	}
}
