package document

// SpeakerName is a validated cast member recorded in the profile section.
type SpeakerName struct {
	value string
}

// NewSpeakerName trims the input and rejects names without visible characters.
func NewSpeakerName(value string) (SpeakerName, error) {
	text, err := requiredText(value, ErrSpeakerEmpty)
	if err != nil {
		return SpeakerName{}, err
	}
	return SpeakerName{value: text}, nil
}

// String returns the normalized speaker name.
func (s SpeakerName) String() string {
	return s.value
}

// LanguageTag is a validated language identifier (e.g. "en-GB").
type LanguageTag struct {
	value string
}

// NewLanguageTag trims the input and rejects tags without visible characters.
func NewLanguageTag(value string) (LanguageTag, error) {
	text, err := requiredText(value, ErrLanguageEmpty)
	if err != nil {
		return LanguageTag{}, err
	}
	return LanguageTag{value: text}, nil
}

// String returns the normalized language identifier.
func (l LanguageTag) String() string {
	return l.value
}

// ProfileDesc records audience and linguistic metadata for <profileDesc>.
type ProfileDesc struct {
	synopsis  string
	speakers  []SpeakerName
	languages []LanguageTag
}

// NewProfileDesc creates an empty profile description.
func NewProfileDesc() ProfileDesc {
	return ProfileDesc{}
}

// WithSynopsis returns a copy carrying the normalized synopsis.
func (p ProfileDesc) WithSynopsis(synopsis string) ProfileDesc {
	p.synopsis = normalizeOptionalText(synopsis)
	return p
}

// AddSpeaker validates and appends a speaker to the cast list.
func (p *ProfileDesc) AddSpeaker(speaker string) error {
	name, err := NewSpeakerName(speaker)
	if err != nil {
		return err
	}
	p.speakers = append(p.speakers, name)
	return nil
}

// AddLanguage validates and appends a language identifier.
func (p *ProfileDesc) AddLanguage(language string) error {
	tag, err := NewLanguageTag(language)
	if err != nil {
		return err
	}
	p.languages = append(p.languages, tag)
	return nil
}

// Synopsis returns the synopsis, empty when absent.
func (p ProfileDesc) Synopsis() string {
	return p.synopsis
}

// Speakers returns the registered cast list in insertion order.
func (p ProfileDesc) Speakers() []SpeakerName {
	return p.speakers
}

// Languages returns the recorded language identifiers in insertion order.
func (p ProfileDesc) Languages() []LanguageTag {
	return p.languages
}

// IsEmpty reports whether any metadata has been recorded.
func (p ProfileDesc) IsEmpty() bool {
	return p.synopsis == "" && len(p.speakers) == 0 && len(p.languages) == 0
}
