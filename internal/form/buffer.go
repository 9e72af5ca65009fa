package form

import "fmt"

// Codec converts between a kind's editable fields and the flat text draft a
// form collects.
type Codec[F any] interface {
	Defaults() map[string]string
	Encode(F) map[string]string
	Decode(map[string]string) (F, error)
}

// Target is the part of a store a buffer commits into.
type Target[T, F any] interface {
	Create(F) T
	Update(id int64, fields F) (T, bool)
}

// Buffer holds the draft of one create-or-edit interaction. Nothing reaches
// the store until Commit.
type Buffer[T, F any] struct {
	codec     Codec[F]
	draft     map[string]string
	editingID int64
	editing   bool
}

func NewBuffer[T, F any](codec Codec[F]) *Buffer[T, F] {
	b := &Buffer[T, F]{codec: codec}
	b.Begin()
	return b
}

// Begin starts a create-mode draft seeded with the kind's defaults.
func (b *Buffer[T, F]) Begin() {
	b.draft = copyMap(b.codec.Defaults())
	b.editingID = 0
	b.editing = false
}

// BeginEdit starts an edit-mode draft from an existing record's fields.
func (b *Buffer[T, F]) BeginEdit(id int64, fields F) {
	b.draft = copyMap(b.codec.Encode(fields))
	b.editingID = id
	b.editing = true
}

func (b *Buffer[T, F]) SetField(name, value string) {
	b.draft[name] = value
}

func (b *Buffer[T, F]) Field(name string) string {
	return b.draft[name]
}

func (b *Buffer[T, F]) Draft() map[string]string {
	return copyMap(b.draft)
}

func (b *Buffer[T, F]) Editing() (int64, bool) {
	return b.editingID, b.editing
}

// Reset discards the draft.
func (b *Buffer[T, F]) Reset() {
	b.Begin()
}

// Commit writes the draft into target: Update in edit mode, Create otherwise.
// It reports false when the record being edited no longer exists. On a decode
// error the buffer keeps its draft and target is not touched; on success it
// returns to an empty create-mode draft.
func (b *Buffer[T, F]) Commit(target Target[T, F]) (T, bool, error) {
	var zero T

	fields, err := b.codec.Decode(b.draft)
	if err != nil {
		return zero, false, fmt.Errorf("decode draft: %w", err)
	}

	var (
		rec T
		ok  = true
	)
	if b.editing {
		rec, ok = target.Update(b.editingID, fields)
	} else {
		rec = target.Create(fields)
	}

	b.Begin()
	return rec, ok, nil
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
