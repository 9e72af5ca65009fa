package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/hackgods/care-console/internal/care"
	"github.com/hackgods/care-console/internal/console"
)

// Sample loads the fixed demonstration records the console ships with.
func Sample(c *console.Console) {
	c.Employees.Create(care.EmployeeFields{Name: "Dr. Joao Santos", Role: "Geriatrician", Phone: "(11) 99999-9999", Email: "joao@clinic.example", Shift: care.ShiftMorning})
	c.Employees.Create(care.EmployeeFields{Name: "Nurse Maria Silva", Role: "Nurse", Phone: "(11) 88888-8888", Email: "maria@clinic.example", Shift: care.ShiftAfternoon})
	ana := c.Employees.Create(care.EmployeeFields{Name: "Ana Costa", Role: "Physiotherapist", Phone: "(11) 77777-7777", Email: "ana@clinic.example", Shift: care.ShiftFullDay})
	care.ToggleActive(c.Employees, ana.ID)

	c.Residents.Create(care.ResidentFields{Name: "Maria da Silva", Age: 78, Phone: "(11) 99999-1111", Guardian: "Joao Silva (son)", Condition: "Hypertension", AdmissionDate: "2024-01-15", Room: "101A"})
	c.Residents.Create(care.ResidentFields{Name: "Antonio Costa", Age: 82, Phone: "(11) 88888-2222", Guardian: "Ana Costa (daughter)", Condition: "Diabetes", AdmissionDate: "2024-02-20", Room: "102B"})
	c.Residents.Create(care.ResidentFields{Name: "Rosa Santos", Age: 75, Phone: "(11) 77777-3333", Guardian: "Carlos Santos (grandson)", Condition: "Alzheimer's", AdmissionDate: "2024-03-10", Room: "103A"})

	c.Appointments.Create(care.AppointmentFields{PatientName: "Maria Santos", StaffName: "Dr. Joao Santos", Date: "2024-06-25", Time: "09:00", Type: care.DefaultAppointmentType})
	ret := c.Appointments.Create(care.AppointmentFields{PatientName: "Antonio Silva", StaffName: "Dr. Joao Santos", Date: "2024-06-25", Time: "10:30", Type: "Follow-up"})
	_, _, _ = care.SetAppointmentStatus(c.Appointments, ret.ID, care.StatusConfirmed)
	c.Appointments.Create(care.AppointmentFields{PatientName: "Jose Costa", StaffName: "Nurse Maria Silva", Date: "2024-06-25", Time: "14:00", Type: "Physiotherapy"})

	c.Medications.Create(care.MedicationFields{Name: "Losartan", Dosage: "50mg", PatientName: "Maria Santos", PrescriberName: "Dr. Joao Santos", TimesOfDay: []string{"08:00", "20:00"}, StartDate: "2024-06-01", EndDate: "2024-06-30", Notes: "Take with water, away from meals"})
	c.Medications.Create(care.MedicationFields{Name: "Metformin", Dosage: "850mg", PatientName: "Antonio Silva", PrescriberName: "Dr. Joao Santos", TimesOfDay: []string{"12:00", "19:00"}, StartDate: "2024-06-10", EndDate: "2024-07-10", Notes: "Take with meals"})
	simva := c.Medications.Create(care.MedicationFields{Name: "Simvastatin", Dosage: "20mg", PatientName: "Jose Costa", PrescriberName: "Dr. Joao Santos", TimesOfDay: []string{"22:00"}, StartDate: "2024-05-15", EndDate: "2024-06-15", Notes: "Take at night"})
	_, _, _ = care.SetMedicationStatus(c.Medications, simva.ID, care.MedicationCompleted)
}

var (
	roles      = []string{"Geriatrician", "Nurse", "Nursing assistant", "Physiotherapist", "Nutritionist", "Caregiver"}
	shifts     = []string{care.ShiftMorning, care.ShiftAfternoon, care.ShiftNight, care.ShiftFullDay}
	conditions = []string{"Hypertension", "Diabetes", "Alzheimer's", "Parkinson's", "Osteoarthritis", "COPD"}
	visitTypes = []string{care.DefaultAppointmentType, "Follow-up", "Physiotherapy", "Cardiology", "Nutrition"}
	drugs      = []string{"Losartan", "Metformin", "Simvastatin", "Donepezil", "Levodopa", "Omeprazole", "Amlodipine"}
	dosages    = []string{"5mg", "10mg", "20mg", "50mg", "500mg", "850mg"}
	doseTimes  = [][]string{{"08:00"}, {"08:00", "20:00"}, {"12:00", "19:00"}, {"06:00", "14:00", "22:00"}, {"22:00"}}
)

// Fake fills every store with n generated records per kind, dated around
// today. The same seed produces the same data.
func Fake(c *console.Console, n int, seed uint64, today time.Time) {
	f := gofakeit.New(seed)

	staff := make([]string, 0, n)
	for i := 0; i < n; i++ {
		e := c.Employees.Create(care.EmployeeFields{
			Name:  f.Name(),
			Role:  f.RandomString(roles),
			Phone: f.Phone(),
			Email: f.Email(),
			Shift: f.RandomString(shifts),
		})
		staff = append(staff, e.Name)
		if f.Number(1, 10) == 1 {
			care.ToggleActive(c.Employees, e.ID)
		}
	}

	residents := make([]string, 0, n)
	for i := 0; i < n; i++ {
		r := c.Residents.Create(care.ResidentFields{
			Name:          f.Name(),
			Age:           f.Number(65, 101),
			Phone:         f.Phone(),
			Guardian:      fmt.Sprintf("%s (%s)", f.Name(), f.RandomString([]string{"son", "daughter", "grandchild", "spouse"})),
			Condition:     f.RandomString(conditions),
			AdmissionDate: today.AddDate(0, 0, -f.Number(1, 900)).Format(care.DateLayout),
			Room:          fmt.Sprintf("%d%s", f.Number(101, 130), f.RandomString([]string{"A", "B"})),
		})
		residents = append(residents, r.Name)
	}
	if len(residents) == 0 || len(staff) == 0 {
		return
	}

	for i := 0; i < n; i++ {
		a := c.Appointments.Create(care.AppointmentFields{
			PatientName: f.RandomString(residents),
			StaffName:   f.RandomString(staff),
			Date:        today.AddDate(0, 0, f.Number(-3, 7)).Format(care.DateLayout),
			Time:        fmt.Sprintf("%02d:%s", f.Number(7, 18), f.RandomString([]string{"00", "30"})),
			Type:        f.RandomString(visitTypes),
		})
		status := care.AppointmentStatuses[f.Number(0, len(care.AppointmentStatuses)-1)]
		if status != care.StatusScheduled {
			_, _, _ = care.SetAppointmentStatus(c.Appointments, a.ID, status)
		}
	}

	for i := 0; i < n; i++ {
		start := today.AddDate(0, 0, -f.Number(0, 60))
		times := doseTimes[f.Number(0, len(doseTimes)-1)]
		m := c.Medications.Create(care.MedicationFields{
			Name:           f.RandomString(drugs),
			Dosage:         f.RandomString(dosages),
			PatientName:    f.RandomString(residents),
			PrescriberName: f.RandomString(staff),
			TimesOfDay:     append([]string(nil), times...),
			StartDate:      start.Format(care.DateLayout),
			EndDate:        start.AddDate(0, 0, f.Number(7, 90)).Format(care.DateLayout),
			Notes:          f.Sentence(6),
		})
		if f.Number(1, 8) == 1 {
			_, _, _ = care.SetMedicationStatus(c.Medications, m.ID, care.MedicationPaused)
		}
	}
}
