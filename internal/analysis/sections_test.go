package analysis

import (
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestSectionsTable(t *testing.T) {
	if len(Sections) != SectionCount {
		t.Fatalf("got %d sections, want %d", len(Sections), SectionCount)
	}

	in := Input{Transcription: "uma fala de teste"}

	for i, spec := range Sections {
		if spec.ID != i+1 {
			t.Errorf("Sections[%d].ID = %d, want %d", i, spec.ID, i+1)
		}
		if spec.Title == "" {
			t.Errorf("section %d has no title", spec.ID)
		}

		prompt := spec.Prompt(in)
		if !strings.Contains(prompt, in.Transcription) {
			t.Errorf("section %d prompt does not embed the transcription", spec.ID)
		}
		if !strings.Contains(prompt, "identificacao") || !strings.Contains(prompt, "avaliacao") {
			t.Errorf("section %d prompt does not ask for the two-part answer", spec.ID)
		}

		if spec.Schema == nil || spec.Schema.Type != genai.TypeObject {
			t.Fatalf("section %d schema is not an object", spec.ID)
		}
		for _, part := range []string{"identificacao", "avaliacao"} {
			sub, ok := spec.Schema.Properties[part]
			if !ok {
				t.Fatalf("section %d schema missing %q", spec.ID, part)
			}
			if sub.Type != genai.TypeObject || len(sub.Properties) == 0 {
				t.Errorf("section %d schema %q is not a non-empty object", spec.ID, part)
			}
		}
	}
}

func TestSectionEnums(t *testing.T) {
	tests := []struct {
		section int
		part    string
		field   string
		values  []string
	}{
		{1, "identificacao", "tipoDiscursivoPredominante", []string{"narrativo", "expositivo", "argumentativo", "injuntivo"}},
		{2, "identificacao", "tipoDeEntrega", []string{"ensaiada", "espontanea", "mista"}},
		{5, "avaliacao", "intensidadeEmocional", []string{"baixa", "media", "alta"}},
		{7, "identificacao", "nivelTecnicoPercebido", []string{"amador", "intermediario", "profissional"}},
	}

	for _, tt := range tests {
		field := Sections[tt.section-1].Schema.Properties[tt.part].Properties[tt.field]
		if field == nil {
			t.Errorf("section %d: field %s.%s missing", tt.section, tt.part, tt.field)
			continue
		}
		if len(field.Enum) != len(tt.values) {
			t.Errorf("section %d: field %s has %d enum values, want %d", tt.section, tt.field, len(field.Enum), len(tt.values))
			continue
		}
		for i, v := range tt.values {
			if field.Enum[i] != v {
				t.Errorf("section %d: field %s enum[%d] = %q, want %q", tt.section, tt.field, i, field.Enum[i], v)
			}
		}
	}
}

func TestAuxFieldsReachPrompts(t *testing.T) {
	in := Input{
		Transcription: "fala",
		Title:         "Meu Vídeo",
		VisualNotes:   "tomadas aéreas",
		AudioNotes:    "trilha instrumental",
	}

	if p := Sections[3].Prompt(in); !strings.Contains(p, in.VisualNotes) || !strings.Contains(p, in.AudioNotes) {
		t.Error("section 4 prompt does not include the non-verbal context")
	}
	if p := Sections[0].Prompt(in); !strings.Contains(p, in.Title) {
		t.Error("section 1 prompt does not include the title")
	}
}

func TestSectionKey(t *testing.T) {
	if got := SectionKey(1); got != "secao1" {
		t.Errorf("SectionKey(1) = %q", got)
	}
	if got := SectionKey(8); got != "secao8" {
		t.Errorf("SectionKey(8) = %q", got)
	}
}
