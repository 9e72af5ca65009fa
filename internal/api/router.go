package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hackgods/care-console/internal/care"
	"github.com/hackgods/care-console/internal/console"
)

type RouterConfig struct {
	Console *console.Console
	Now     func() time.Time // facility-local clock; defaults to time.Now
	Checks  map[string]DependencyCheck
	Logger  *zap.Logger
	Env     string
	Version string
}

func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	c := cfg.Console

	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(cfg.Logger))

	health := NewHealthHandler(cfg.Checks, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	employees := &resource[care.Employee, care.EmployeeFields]{
		store:  c.Employees,
		codec:  care.EmployeeCodec{},
		fields: func(e care.Employee) care.EmployeeFields { return e.EmployeeFields },
		patch:  decodePatch[care.Employee, care.EmployeePatch, *care.EmployeePatch],
	}
	r.Route("/employees", func(r chi.Router) {
		employees.routes(r)
		r.Post("/{id}/toggle-active", toggleActiveHandler(c.Employees))
	})

	residents := &resource[care.Resident, care.ResidentFields]{
		store:  c.Residents,
		codec:  care.ResidentCodec{},
		fields: func(res care.Resident) care.ResidentFields { return res.ResidentFields },
		patch:  decodePatch[care.Resident, care.ResidentPatch, *care.ResidentPatch],
	}
	r.Route("/residents", residents.routes)

	appointments := &resource[care.Appointment, care.AppointmentFields]{
		store:  c.Appointments,
		codec:  care.AppointmentCodec{},
		fields: func(a care.Appointment) care.AppointmentFields { return a.AppointmentFields },
		patch:  decodePatch[care.Appointment, care.AppointmentPatch, *care.AppointmentPatch],
	}
	r.Route("/appointments", func(r chi.Router) {
		r.Get("/agenda", agendaHandler(c.Appointments, cfg.Now))
		appointments.routes(r)
		r.Put("/{id}/status", appointmentStatusHandler(c.Appointments))
	})

	medications := &resource[care.Medication, care.MedicationFields]{
		store:  c.Medications,
		codec:  care.MedicationCodec{},
		fields: func(m care.Medication) care.MedicationFields { return m.MedicationFields },
		patch:  decodePatch[care.Medication, care.MedicationPatch, *care.MedicationPatch],
	}
	r.Route("/medications", func(r chi.Router) {
		r.Get("/upcoming", upcomingHandler(c.Medications, cfg.Now))
		medications.routes(r)
		r.Put("/{id}/status", medicationStatusHandler(c.Medications))
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/summary", summaryHandler(c, cfg.Now))
		r.Get("/export.xlsx", exportHandler(c, cfg.Now, cfg.Logger))
	})

	return r
}
