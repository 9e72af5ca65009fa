package care

import (
	"strings"

	"github.com/hackgods/care-console/internal/store"
)

type MedicationStatus string

const (
	MedicationActive    MedicationStatus = "active"
	MedicationPaused    MedicationStatus = "paused"
	MedicationCompleted MedicationStatus = "completed"
)

var MedicationStatuses = []MedicationStatus{
	MedicationActive,
	MedicationPaused,
	MedicationCompleted,
}

type MedicationFields struct {
	Name           string   `json:"name"`
	Dosage         string   `json:"dosage"`
	PatientName    string   `json:"patientName"`
	PrescriberName string   `json:"prescriberName"`
	TimesOfDay     []string `json:"timesOfDay"` // zero-padded HH:MM, in entry order
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	Notes          string   `json:"notes"`
}

type Medication struct {
	ID int64 `json:"id"`
	MedicationFields
	Status MedicationStatus `json:"status"`
}

type MedicationStore = store.Store[Medication, MedicationFields]

var MedicationKind = store.Kind[Medication, MedicationFields]{
	Name: "medication",
	New: func(id int64, f MedicationFields) Medication {
		f.TimesOfDay = cloneStrings(f.TimesOfDay)
		return Medication{ID: id, MedicationFields: f, Status: MedicationActive}
	},
	Replace: func(m *Medication, f MedicationFields) {
		f.TimesOfDay = cloneStrings(f.TimesOfDay)
		m.MedicationFields = f
	},
	ID:    func(m Medication) int64 { return m.ID },
	SetID: func(m *Medication, id int64) { m.ID = id },
	Clone: func(m Medication) Medication {
		m.TimesOfDay = cloneStrings(m.TimesOfDay)
		return m
	},
}

func NewMedicationStore(opts ...store.Option) *MedicationStore {
	return store.New(MedicationKind, opts...)
}

type MedicationPatch struct {
	Name           *string   `json:"name"`
	Dosage         *string   `json:"dosage"`
	PatientName    *string   `json:"patientName"`
	PrescriberName *string   `json:"prescriberName"`
	TimesOfDay     *[]string `json:"timesOfDay"`
	StartDate      *string   `json:"startDate"`
	EndDate        *string   `json:"endDate"`
	Notes          *string   `json:"notes"`
}

// Validate normalizes TimesOfDay in place and checks date fields.
func (p *MedicationPatch) Validate() error {
	if p.TimesOfDay != nil {
		times, err := SplitTimesOfDay(strings.Join(*p.TimesOfDay, ","))
		if err != nil {
			return err
		}
		p.TimesOfDay = &times
	}
	if p.StartDate != nil {
		if _, err := checkDate("startDate", *p.StartDate); err != nil {
			return err
		}
	}
	if p.EndDate != nil {
		if _, err := checkDate("endDate", *p.EndDate); err != nil {
			return err
		}
	}
	return nil
}

func (p *MedicationPatch) Apply(m *Medication) {
	setIf(&m.Name, p.Name)
	setIf(&m.Dosage, p.Dosage)
	setIf(&m.PatientName, p.PatientName)
	setIf(&m.PrescriberName, p.PrescriberName)
	if p.TimesOfDay != nil {
		m.TimesOfDay = cloneStrings(*p.TimesOfDay)
	}
	setIf(&m.StartDate, p.StartDate)
	setIf(&m.EndDate, p.EndDate)
	setIf(&m.Notes, p.Notes)
}

// MedicationCodec edits TimesOfDay as one comma-separated text field; the
// text is only split when the draft is decoded on commit.
type MedicationCodec struct{}

func (MedicationCodec) Defaults() map[string]string {
	return map[string]string{}
}

func (MedicationCodec) Encode(f MedicationFields) map[string]string {
	return map[string]string{
		"name":           f.Name,
		"dosage":         f.Dosage,
		"patientName":    f.PatientName,
		"prescriberName": f.PrescriberName,
		"timesOfDay":     JoinTimesOfDay(f.TimesOfDay),
		"startDate":      f.StartDate,
		"endDate":        f.EndDate,
		"notes":          f.Notes,
	}
}

func (MedicationCodec) Decode(d map[string]string) (MedicationFields, error) {
	times, err := SplitTimesOfDay(d["timesOfDay"])
	if err != nil {
		return MedicationFields{}, err
	}
	start, err := checkDate("startDate", d["startDate"])
	if err != nil {
		return MedicationFields{}, err
	}
	end, err := checkDate("endDate", d["endDate"])
	if err != nil {
		return MedicationFields{}, err
	}
	return MedicationFields{
		Name:           strings.TrimSpace(d["name"]),
		Dosage:         strings.TrimSpace(d["dosage"]),
		PatientName:    strings.TrimSpace(d["patientName"]),
		PrescriberName: strings.TrimSpace(d["prescriberName"]),
		TimesOfDay:     times,
		StartDate:      start,
		EndDate:        end,
		Notes:          strings.TrimSpace(d["notes"]),
	}, nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
