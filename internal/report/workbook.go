package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hackgods/care-console/internal/care"
	"github.com/hackgods/care-console/internal/console"
)

const (
	SheetSummary      = "Summary"
	SheetEmployees    = "Employees"
	SheetResidents    = "Residents"
	SheetAppointments = "Appointments"
	SheetMedications  = "Medications"
)

// WriteWorkbook renders the snapshot as an xlsx workbook: a summary sheet
// followed by one sheet per entity kind.
func WriteWorkbook(w io.Writer, snap console.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("rename default sheet: %w", err)
	}
	if err := writeSheet(f, SheetSummary, headerStyle, []string{"Metric", "Value"}, summaryRows(Summarize(snap))); err != nil {
		return err
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{SheetEmployees, []string{"ID", "Name", "Role", "Phone", "Email", "Shift", "Active"}, employeeRows(snap.Employees)},
		{SheetResidents, []string{"ID", "Name", "Age", "Phone", "Guardian", "Condition", "Admission Date", "Room"}, residentRows(snap.Residents)},
		{SheetAppointments, []string{"ID", "Patient", "Staff", "Date", "Time", "Type", "Status"}, appointmentRows(snap.Appointments)},
		{SheetMedications, []string{"ID", "Name", "Dosage", "Patient", "Prescriber", "Times", "Start", "End", "Notes", "Status"}, medicationRows(snap.Medications)},
	}
	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s.name, headerStyle, s.header, s.rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, header []string, rows [][]any) error {
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return fmt.Errorf("size %s columns: %w", sheet, err)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func summaryRows(s Summary) [][]any {
	rows := [][]any{
		{"Generated at", s.GeneratedAt.Format("2006-01-02 15:04")},
		{"Employees", s.Employees.Total},
		{"Active employees", s.Employees.Active},
		{"Residents", s.Residents},
		{"Appointments", s.Appointments},
		{"Appointments today", s.AgendaToday},
		{"Medications", s.Medications},
		{"Upcoming medications", s.UpcomingMedications},
	}
	for _, st := range care.AppointmentStatuses {
		rows = append(rows, []any{"Appointments " + string(st), s.AppointmentsByStatus[st]})
	}
	for _, st := range care.MedicationStatuses {
		rows = append(rows, []any{"Medications " + string(st), s.MedicationsByStatus[st]})
	}
	for _, m := range s.AppointmentsByMonth {
		rows = append(rows, []any{"Appointments in " + m.Month, m.Count})
	}
	return rows
}

func employeeRows(list []care.Employee) [][]any {
	rows := make([][]any, 0, len(list))
	for _, e := range list {
		active := "no"
		if e.Active {
			active = "yes"
		}
		rows = append(rows, []any{e.ID, e.Name, e.Role, e.Phone, e.Email, e.Shift, active})
	}
	return rows
}

func residentRows(list []care.Resident) [][]any {
	rows := make([][]any, 0, len(list))
	for _, r := range list {
		rows = append(rows, []any{r.ID, r.Name, r.Age, r.Phone, r.Guardian, r.Condition, r.AdmissionDate, r.Room})
	}
	return rows
}

func appointmentRows(list []care.Appointment) [][]any {
	rows := make([][]any, 0, len(list))
	for _, a := range list {
		rows = append(rows, []any{a.ID, a.PatientName, a.StaffName, a.Date, a.Time, a.Type, string(a.Status)})
	}
	return rows
}

func medicationRows(list []care.Medication) [][]any {
	rows := make([][]any, 0, len(list))
	for _, m := range list {
		rows = append(rows, []any{
			m.ID, m.Name, m.Dosage, m.PatientName, m.PrescriberName,
			strings.Join(m.TimesOfDay, ", "), m.StartDate, m.EndDate, m.Notes, string(m.Status),
		})
	}
	return rows
}
