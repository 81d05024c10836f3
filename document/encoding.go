package document

// AnnotationSystemID is the canonical identifier of an annotation toolkit
// referenced from <encodingDesc>.
type AnnotationSystemID struct {
	value string
}

// NewAnnotationSystemID trims the input and rejects empty identifiers.
func NewAnnotationSystemID(value string) (AnnotationSystemID, error) {
	text, err := requiredText(value, ErrAnnotationIDEmpty)
	if err != nil {
		return AnnotationSystemID{}, err
	}
	return AnnotationSystemID{value: text}, nil
}

// String returns the normalized identifier text.
func (id AnnotationSystemID) String() string {
	return id.value
}

// AnnotationSystem describes a toolkit whose output is embedded in the text.
type AnnotationSystem struct {
	id          AnnotationSystemID
	description string
}

// NewAnnotationSystem validates the identifier and normalizes the optional
// free-text description.
func NewAnnotationSystem(identifier, description string) (AnnotationSystem, error) {
	id, err := NewAnnotationSystemID(identifier)
	if err != nil {
		return AnnotationSystem{}, err
	}
	return AnnotationSystem{
		id:          id,
		description: normalizeOptionalText(description),
	}, nil
}

// ID returns the canonical identifier.
func (a AnnotationSystem) ID() AnnotationSystemID {
	return a.id
}

// Description returns the free-text description, empty when absent.
func (a AnnotationSystem) Description() string {
	return a.description
}

// EncodingDesc aggregates encoding metadata such as annotation systems.
type EncodingDesc struct {
	systems []AnnotationSystem
}

// NewEncodingDesc creates an empty encoding description.
func NewEncodingDesc() EncodingDesc {
	return EncodingDesc{}
}

// AddAnnotationSystem registers an annotation system.
func (e *EncodingDesc) AddAnnotationSystem(system AnnotationSystem) {
	e.systems = append(e.systems, system)
}

// AnnotationSystems returns the registered systems in insertion order.
func (e EncodingDesc) AnnotationSystems() []AnnotationSystem {
	return e.systems
}

// Find returns the annotation system matching the identifier text, nil when
// no system was registered under it.
func (e EncodingDesc) Find(identifier string) *AnnotationSystem {
	for i := range e.systems {
		if e.systems[i].id.value == identifier {
			return &e.systems[i]
		}
	}
	return nil
}

// IsEmpty reports whether any annotation systems were registered.
func (e EncodingDesc) IsEmpty() bool {
	return len(e.systems) == 0
}
