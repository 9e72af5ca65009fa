package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hackgods/care-console/internal/care"
	"github.com/hackgods/care-console/internal/form"
	"github.com/hackgods/care-console/internal/store"
)

// resource serves the CRUD surface shared by every entity kind. Create and
// update go through a form buffer exactly like an interactive form submit.
type resource[T, F any] struct {
	store  *store.Store[T, F]
	codec  form.Codec[F]
	fields func(T) F
	patch  func(r *http.Request) (func(*T), error)
}

func (h *resource[T, F]) routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Patch("/{id}", h.applyPatch)
	r.Delete("/{id}", h.delete)
}

func (h *resource[T, F]) list(w http.ResponseWriter, r *http.Request) {
	items := h.store.List()
	writeJSON(w, http.StatusOK, ListResponse[T]{Items: items, Count: len(items)})
}

func (h *resource[T, F]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	rec, found := h.store.Get(id)
	if !found {
		writeNotFound(w, h.store.Kind())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *resource[T, F]) create(w http.ResponseWriter, r *http.Request) {
	submitted, err := decodeFormFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", err.Error())
		return
	}

	b := form.NewBuffer[T, F](h.codec)
	for name, value := range submitted {
		b.SetField(name, value)
	}

	rec, _, err := b.Commit(h.store)
	if err != nil {
		handleFieldError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// update pre-fills the buffer from the stored record, so fields missing from
// the body keep their values.
func (h *resource[T, F]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	submitted, err := decodeFormFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", err.Error())
		return
	}

	existing, found := h.store.Get(id)
	if !found {
		writeNotFound(w, h.store.Kind())
		return
	}

	b := form.NewBuffer[T, F](h.codec)
	b.BeginEdit(id, h.fields(existing))
	for name, value := range submitted {
		b.SetField(name, value)
	}

	rec, found, err := b.Commit(h.store)
	if err != nil {
		handleFieldError(w, err)
		return
	}
	if !found {
		writeNotFound(w, h.store.Kind())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *resource[T, F]) applyPatch(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	fn, err := h.patch(r)
	if err != nil {
		handleFieldError(w, err)
		return
	}
	rec, found := h.store.Patch(id, fn)
	if !found {
		writeNotFound(w, h.store.Kind())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *resource[T, F]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if !h.store.Delete(id) {
		writeNotFound(w, h.store.Kind())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validatingPatch is implemented by patch types that check their own fields.
type validatingPatch[T any] interface {
	Validate() error
	Apply(*T)
}

func decodePatch[T any, P any, PP interface {
	*P
	validatingPatch[T]
}](r *http.Request) (func(*T), error) {
	var p P
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return nil, errBadBody{err}
	}
	pp := PP(&p)
	if err := pp.Validate(); err != nil {
		return nil, err
	}
	return pp.Apply, nil
}

func toggleActiveHandler(s *care.EmployeeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		e, found := care.ToggleActive(s, id)
		if !found {
			writeNotFound(w, s.Kind())
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

func appointmentStatusHandler(s *care.AppointmentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		var req StatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}
		a, found, err := care.SetAppointmentStatus(s, id, care.AppointmentStatus(req.Status))
		if err != nil {
			handleFieldError(w, err)
			return
		}
		if !found {
			writeNotFound(w, s.Kind())
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

func medicationStatusHandler(s *care.MedicationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		var req StatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}
		m, found, err := care.SetMedicationStatus(s, id, care.MedicationStatus(req.Status))
		if err != nil {
			handleFieldError(w, err)
			return
		}
		if !found {
			writeNotFound(w, s.Kind())
			return
		}
		writeJSON(w, http.StatusOK, m)
	}
}

type errBadBody struct{ err error }

func (e errBadBody) Error() string { return "could not parse JSON: " + e.err.Error() }
func (e errBadBody) Unwrap() error { return e.err }

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "id must be an integer")
		return 0, false
	}
	return id, true
}

func writeNotFound(w http.ResponseWriter, kind string) {
	writeError(w, http.StatusNotFound, kind+"_not_found", kind+" not found")
}

func handleFieldError(w http.ResponseWriter, err error) {
	var bad errBadBody
	switch {
	case errors.As(err, &bad):
		writeError(w, http.StatusBadRequest, "invalid_request_body", err.Error())
	case errors.Is(err, care.ErrUnknownStatus):
		writeError(w, http.StatusUnprocessableEntity, "unknown_status", err.Error())
	case errors.Is(err, care.ErrInvalidAge),
		errors.Is(err, care.ErrInvalidDate),
		errors.Is(err, care.ErrInvalidTimeOfDay),
		errors.Is(err, care.ErrNoTimesOfDay):
		writeError(w, http.StatusUnprocessableEntity, "invalid_field", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
