package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hackgods/care-console/internal/agenda"
	"github.com/hackgods/care-console/internal/care"
	"github.com/hackgods/care-console/internal/console"
	"github.com/hackgods/care-console/internal/report"
)

// agendaHandler lists appointments for ?date=YYYY-MM-DD, defaulting to today.
func agendaHandler(s *care.AppointmentStore, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			date = now().Format(care.DateLayout)
		} else if _, err := time.Parse(care.DateLayout, date); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_date", "date must be formatted YYYY-MM-DD")
			return
		}

		writeJSON(w, http.StatusOK, AgendaResponse{
			Date:  date,
			Items: agenda.ForDate(s.List(), date),
		})
	}
}

// upcomingHandler accepts ?limit=N and ?soonest=true.
func upcomingHandler(s *care.MedicationStore, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := agenda.UpcomingOptions{}

		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
				return
			}
			opts.Limit = n
		}
		if v := r.URL.Query().Get("soonest"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_soonest", "soonest must be true or false")
				return
			}
			opts.SoonestFirst = b
		}

		at := now()
		writeJSON(w, http.StatusOK, UpcomingResponse{
			At:    at.Format(care.TimeOfDayLayout),
			Items: agenda.Upcoming(s.List(), at, opts),
		})
	}
}

func summaryHandler(c *console.Console, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, report.Summarize(c.Snapshot(now())))
	}
}

func exportHandler(c *console.Console, now func() time.Time, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		at := now()

		var buf bytes.Buffer
		if err := report.WriteWorkbook(&buf, c.Snapshot(at)); err != nil {
			log.Error("failed to render workbook", zap.Error(err), zap.String("request_id", GetRequestID(r.Context())))
			writeError(w, http.StatusInternalServerError, "internal_error", "could not render workbook")
			return
		}

		filename := fmt.Sprintf("care-report-%s.xlsx", at.Format("20060102-1504"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}
