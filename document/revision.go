package document

import "github.com/google/uuid"

// ResponsibleParty names the agent credited with a revision note.
type ResponsibleParty struct {
	value string
}

// NewResponsibleParty trims the input and rejects empty markers.
func NewResponsibleParty(value string) (ResponsibleParty, error) {
	text, err := requiredText(value, ErrResponsiblePartyEmpty)
	if err != nil {
		return ResponsibleParty{}, err
	}
	return ResponsibleParty{value: text}, nil
}

// String returns the normalized responsibility marker.
func (r ResponsibleParty) String() string {
	return r.value
}

// IsZero reports whether no responsible party was recorded.
func (r ResponsibleParty) IsZero() bool {
	return r.value == ""
}

// RevisionChange is an individual revision note captured in <revisionDesc>.
// Each change receives a generated identifier so revision history can be
// referenced from external tooling.
type RevisionChange struct {
	id          uuid.UUID
	description string
	resp        ResponsibleParty
}

// NewRevisionChange creates a revision note with an optional responsibility
// marker. The description is required; the marker is normalized and may be
// empty.
func NewRevisionChange(description, resp string) (RevisionChange, error) {
	text, err := requiredText(description, ErrRevisionNoteEmpty)
	if err != nil {
		return RevisionChange{}, err
	}
	change := RevisionChange{
		id:          uuid.New(),
		description: text,
	}
	if normalized := normalizeOptionalText(resp); normalized != "" {
		change.resp = ResponsibleParty{value: normalized}
	}
	return change, nil
}

// ID returns the generated identifier of the note.
func (c RevisionChange) ID() uuid.UUID {
	return c.id
}

// Description returns the note text.
func (c RevisionChange) Description() string {
	return c.description
}

// Resp returns the responsibility marker, zero when absent.
func (c RevisionChange) Resp() ResponsibleParty {
	return c.resp
}

// RevisionDesc is the ordered revision history recorded in the header.
type RevisionDesc struct {
	changes []RevisionChange
}

// NewRevisionDesc creates an empty revision log.
func NewRevisionDesc() RevisionDesc {
	return RevisionDesc{}
}

// AddChange appends a revision note.
func (r *RevisionDesc) AddChange(change RevisionChange) {
	r.changes = append(r.changes, change)
}

// Changes returns the recorded revision history in insertion order.
func (r RevisionDesc) Changes() []RevisionChange {
	return r.changes
}

// IsEmpty reports whether the revision log has entries.
func (r RevisionDesc) IsEmpty() bool {
	return len(r.changes) == 0
}
