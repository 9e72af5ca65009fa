package care

import (
	"strconv"
	"strings"

	"github.com/hackgods/care-console/internal/store"
)

type ResidentFields struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Phone         string `json:"phone"`
	Guardian      string `json:"guardian"`
	Condition     string `json:"condition"`
	AdmissionDate string `json:"admissionDate"`
	Room          string `json:"room"`
}

// Resident has no status; its lifecycle is create, edit, delete.
type Resident struct {
	ID int64 `json:"id"`
	ResidentFields
}

type ResidentStore = store.Store[Resident, ResidentFields]

var ResidentKind = store.Kind[Resident, ResidentFields]{
	Name: "resident",
	New: func(id int64, f ResidentFields) Resident {
		return Resident{ID: id, ResidentFields: f}
	},
	Replace: func(r *Resident, f ResidentFields) { r.ResidentFields = f },
	ID:      func(r Resident) int64 { return r.ID },
	SetID:   func(r *Resident, id int64) { r.ID = id },
}

func NewResidentStore(opts ...store.Option) *ResidentStore {
	return store.New(ResidentKind, opts...)
}

type ResidentPatch struct {
	Name          *string `json:"name"`
	Age           *int    `json:"age"`
	Phone         *string `json:"phone"`
	Guardian      *string `json:"guardian"`
	Condition     *string `json:"condition"`
	AdmissionDate *string `json:"admissionDate"`
	Room          *string `json:"room"`
}

func (p ResidentPatch) Validate() error {
	if p.Age != nil && *p.Age < 0 {
		return ErrInvalidAge
	}
	if p.AdmissionDate != nil {
		if _, err := checkDate("admissionDate", *p.AdmissionDate); err != nil {
			return err
		}
	}
	return nil
}

func (p ResidentPatch) Apply(r *Resident) {
	setIf(&r.Name, p.Name)
	setIf(&r.Age, p.Age)
	setIf(&r.Phone, p.Phone)
	setIf(&r.Guardian, p.Guardian)
	setIf(&r.Condition, p.Condition)
	setIf(&r.AdmissionDate, p.AdmissionDate)
	setIf(&r.Room, p.Room)
}

type ResidentCodec struct{}

func (ResidentCodec) Defaults() map[string]string {
	return map[string]string{}
}

func (ResidentCodec) Encode(f ResidentFields) map[string]string {
	return map[string]string{
		"name":          f.Name,
		"age":           strconv.Itoa(f.Age),
		"phone":         f.Phone,
		"guardian":      f.Guardian,
		"condition":     f.Condition,
		"admissionDate": f.AdmissionDate,
		"room":          f.Room,
	}
}

func (ResidentCodec) Decode(d map[string]string) (ResidentFields, error) {
	age, err := parseAge(d["age"])
	if err != nil {
		return ResidentFields{}, err
	}
	admitted, err := checkDate("admissionDate", d["admissionDate"])
	if err != nil {
		return ResidentFields{}, err
	}
	return ResidentFields{
		Name:          strings.TrimSpace(d["name"]),
		Age:           age,
		Phone:         strings.TrimSpace(d["phone"]),
		Guardian:      strings.TrimSpace(d["guardian"]),
		Condition:     strings.TrimSpace(d["condition"]),
		AdmissionDate: admitted,
		Room:          strings.TrimSpace(d["room"]),
	}, nil
}
