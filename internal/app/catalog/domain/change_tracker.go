package domain

// ChangeTracker records which aggregate fields were modified so
// repositories can emit mutations for only the dirty columns.
type ChangeTracker struct {
	dirtyFields map[string]bool
}

// NewChangeTracker creates an empty ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirtyFields: make(map[string]bool),
	}
}

// MarkDirty marks a field as modified.
func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirtyFields[field] = true
}

// Dirty reports whether a field has been modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	return ct.dirtyFields[field]
}

// Clear drops all markers.
func (ct *ChangeTracker) Clear() {
	ct.dirtyFields = make(map[string]bool)
}

// HasChanges reports whether any field has been modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirtyFields) > 0
}

// DirtyFields lists the modified field names.
func (ct *ChangeTracker) DirtyFields() []string {
	fields := make([]string, 0, len(ct.dirtyFields))
	for field := range ct.dirtyFields {
		fields = append(fields, field)
	}
	return fields
}
