package care

import (
	"strings"

	"github.com/hackgods/care-console/internal/store"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

var AppointmentStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

const DefaultAppointmentType = "Geriatric Consultation"

type AppointmentFields struct {
	PatientName string `json:"patientName"`
	StaffName   string `json:"staffName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
}

type Appointment struct {
	ID int64 `json:"id"`
	AppointmentFields
	Status AppointmentStatus `json:"status"`
}

type AppointmentStore = store.Store[Appointment, AppointmentFields]

var AppointmentKind = store.Kind[Appointment, AppointmentFields]{
	Name: "appointment",
	New: func(id int64, f AppointmentFields) Appointment {
		return Appointment{ID: id, AppointmentFields: f, Status: StatusScheduled}
	},
	Replace: func(a *Appointment, f AppointmentFields) { a.AppointmentFields = f },
	ID:      func(a Appointment) int64 { return a.ID },
	SetID:   func(a *Appointment, id int64) { a.ID = id },
}

func NewAppointmentStore(opts ...store.Option) *AppointmentStore {
	return store.New(AppointmentKind, opts...)
}

type AppointmentPatch struct {
	PatientName *string `json:"patientName"`
	StaffName   *string `json:"staffName"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Type        *string `json:"type"`
}

func (p AppointmentPatch) Validate() error {
	if p.Date != nil {
		if _, err := checkDate("date", *p.Date); err != nil {
			return err
		}
	}
	if p.Time != nil && strings.TrimSpace(*p.Time) != "" {
		if _, err := NormalizeTimeOfDay(*p.Time); err != nil {
			return err
		}
	}
	return nil
}

func (p AppointmentPatch) Apply(a *Appointment) {
	setIf(&a.PatientName, p.PatientName)
	setIf(&a.StaffName, p.StaffName)
	setIf(&a.Date, p.Date)
	if p.Time != nil {
		t, err := NormalizeTimeOfDay(*p.Time)
		if err != nil {
			t = strings.TrimSpace(*p.Time)
		}
		a.Time = t
	}
	setIf(&a.Type, p.Type)
}

type AppointmentCodec struct{}

func (AppointmentCodec) Defaults() map[string]string {
	return map[string]string{"type": DefaultAppointmentType}
}

func (AppointmentCodec) Encode(f AppointmentFields) map[string]string {
	return map[string]string{
		"patientName": f.PatientName,
		"staffName":   f.StaffName,
		"date":        f.Date,
		"time":        f.Time,
		"type":        f.Type,
	}
}

func (AppointmentCodec) Decode(d map[string]string) (AppointmentFields, error) {
	date, err := checkDate("date", d["date"])
	if err != nil {
		return AppointmentFields{}, err
	}
	at := strings.TrimSpace(d["time"])
	if at != "" {
		if at, err = NormalizeTimeOfDay(at); err != nil {
			return AppointmentFields{}, err
		}
	}
	return AppointmentFields{
		PatientName: strings.TrimSpace(d["patientName"]),
		StaffName:   strings.TrimSpace(d["staffName"]),
		Date:        date,
		Time:        at,
		Type:        strings.TrimSpace(d["type"]),
	}, nil
}
