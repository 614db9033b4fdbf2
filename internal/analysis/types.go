package analysis

// Input carries the material a section analysis works from. Transcription is
// required; the remaining descriptive fields give the model non-verbal
// context for the sections that need it (visual/audio signs, technical
// aspects). The JSON names match the simulatedVideoData payload accepted by
// the /analyze endpoint.
type Input struct {
	Transcription string `json:"transcription"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	VisualNotes   string `json:"visualNotes,omitempty"`
	AudioNotes    string `json:"audioNotes,omitempty"`
}

// SectionResult is one section's two-part answer: facts extracted from the
// video (identificacao) and qualitative judgments about them (avaliacao).
// Values are strings or lists of strings, per the section's schema.
type SectionResult struct {
	Identificacao map[string]any `json:"identificacao"`
	Avaliacao     map[string]any `json:"avaliacao"`
}
