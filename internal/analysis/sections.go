package analysis

import (
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// SectionSpec pairs one analysis section's prompt builder with the response
// schema the model must satisfy. The specs are static configuration built
// once at package init, never derived per request.
type SectionSpec struct {
	ID     int
	Title  string
	Prompt func(Input) string
	Schema *genai.Schema
}

// SectionCount is the number of analysis sections in a complete report.
const SectionCount = 8

// SectionKey returns the wire-format key for a section number ("secao1".."secao8").
func SectionKey(n int) string {
	return fmt.Sprintf("secao%d", n)
}

// Enumerated value sets used by the section schemas.
var (
	discourseTypes    = []string{"narrativo", "expositivo", "argumentativo", "injuntivo"}
	deliveryTypes     = []string{"ensaiada", "espontanea", "mista"}
	emotionIntensity  = []string{"baixa", "media", "alta"}
	technicalLevels   = []string{"amador", "intermediario", "profissional"}
)

// Sections is the fixed table of the eight analysis dimensions. Reports are
// keyed by these IDs; AnalyzeAll visits them in order.
var Sections = [SectionCount]SectionSpec{
	{
		ID:    1,
		Title: "Conteúdo Verbal",
		Prompt: func(in Input) string {
			return fmt.Sprintf("Analise o seguinte conteúdo de vídeo para a Seção 1 (Conteúdo Verbal). "+
				"A transcrição é: '%s'.%s "+
				"Identifique a mensagem central explícita, possíveis mensagens implícitas/simbólicas. "+
				"Reconheça o tipo discursivo predominante, a natureza da fala. "+
				"Avalie a clareza, coerência e progressão temática, identificando pressupostos, "+
				"registros linguísticos e inferências. "+
				"Retorne um JSON com 'identificacao' e 'avaliacao'.", in.Transcription, titleContext(in))
		},
		Schema: resultSchema(
			map[string]*genai.Schema{
				"mensagemCentralExplicita":                 stringField(),
				"mensagensImplicitasSimbolicasSubversivas": stringListField(),
				"tipoDiscursivoPredominante":               enumField(discourseTypes),
				"naturezaDaFala":                           stringField(),
			},
			map[string]*genai.Schema{
				"clarezaCoerenciaProgressaoTematica": stringField(),
				"pressupostosNaoDitos":               stringListField(),
				"registrosLinguisticosMistos":        stringListField(),
				"inferencias":                        stringListField(),
			},
		),
	},
	{
		ID:    2,
		Title: "Estrutura Expressiva",
		Prompt: func(in Input) string {
			return fmt.Sprintf("Analise o seguinte conteúdo de vídeo para a Seção 2 (Estrutura Expressiva). "+
				"A transcrição é: '%s'. "+
				"Capture recursos expressivos como entonação e pausas. "+
				"Avalie o alinhamento desses elementos à intenção comunicativa. "+
				"Identifique se a entrega soa ensaiada ou espontânea. "+
				"Avalie se há amplificação da mensagem por figuras retóricas. "+
				"Aferir se o vídeo transmite credibilidade. "+
				"Retorne um JSON com 'identificacao' e 'avaliacao'.", in.Transcription)
		},
		Schema: resultSchema(
			map[string]*genai.Schema{
				"recursosExpressivos": stringListField(),
				"tipoDeEntrega":       enumField(deliveryTypes),
				"figurasRetoricas":    stringListField(),
			},
			map[string]*genai.Schema{
				"alinhamentoIntencaoComunicativa":        stringField(),
				"amplificacaoObscurecimentoMensagem":     stringField(),
				"transmiteCredibilidadeCarismaAutoridade": stringField(),
			},
		),
	},
	{
		ID:    3,
		Title: "Situação Comunicativa",
		Prompt: func(in Input) string {
			return fmt.Sprintf("Analise o seguinte conteúdo de vídeo para a Seção 3 (Situação Comunicativa). "+
				"A transcrição é: '%s'.%s "+
				"Identifique o emissor, o destinatário presumido, o contexto comunicativo e o "+
				"contrato comunicacional estabelecido entre as partes. "+
				"Avalie a adequação da mensagem ao contexto, as expectativas do público atendidas ou "+
				"frustradas, e a relação construída entre emissor e receptor. "+
				"Retorne um JSON com 'identificacao' e 'avaliacao'.", in.Transcription, titleContext(in))
		},
		Schema: resultSchema(
			map[string]*genai.Schema{
				"emissor":                stringField(),
				"destinatarioPresumido":  stringField(),
				"contextoComunicativo":   stringField(),
				"contratoComunicacional": stringField(),
			},
			map[string]*genai.Schema{
				"adequacaoAoContexto":     stringField(),
				"expectativasDoPublico":   stringListField(),
				"relacaoEmissorReceptor":  stringField(),
			},
		),
	},
	{
		ID:    4,
		Title: "Sistema de Signos Visuais e Sonoros",
		Prompt: func(in Input) string {
			return fmt.Sprintf("Analise o seguinte conteúdo de vídeo para a Seção 4 (Sistema de Signos Visuais e Sonoros). "+
				"A transcrição é: '%s'.%s "+
				"Detecte os elementos visuais e sonoros presentes ou inferíveis e o tipo de montagem. "+
				"Avalie a coerência entre os signos, se eles reforçam ou contradizem a mensagem verbal, "+
				"e o impacto estético-sensorial do conjunto. "+
				"Retorne um JSON com 'identificacao' e 'avaliacao'.", in.Transcription, mediaContext(in))
		},
		Schema: resultSchema(
			map[string]*genai.Schema{
				"elementosVisuais": stringListField(),
				"elementosSonoros": stringListField(),
				"tipoDeMontagem":   stringField(),
			},
			map[string]*genai.Schema{
				"coerenciaEntreSignos":          stringField(),
				"reforcoOuContradicaoDaMensagem": stringField(),
				"impactoEsteticoSensorial":      stringField(),
			},
		),
	},
	{
		ID:    5,
		Title: "Efeitos Cognitivos e Emocionais",
		Prompt: func(in Input) string {
			return fmt.Sprintf("Analise o seguinte conteúdo de vídeo para a Seção 5 (Efeitos Cognitivos e Emocionais). "+
				"A transcrição é: '%s'. "+
				"Identifique as emoções ativadas no espectador, os gatilhos cognitivos empregados e a "+
				"estratégia persuasiva predominante. "+
				"Avalie a intensidade emocional, a adequação ao público-alvo e possíveis riscos de "+
				"rejeição ou desconforto. "+
				"Retorne um JSON com 'identificacao' e 'avaliacao'.", in.Transcription)
		},
		Schema: resultSchema(
			map[string]*genai.Schema{
				"emocoesAtivadas":        stringListField(),
				"gatilhosCognitivos":     stringListField(),
				"estrategiaPersuasiva":   stringField(),
			},
			map[string]*genai.Schema{
				"intensidadeEmocional":  enumField(emotionIntensity),
				"adequacaoAoPublicoAlvo": stringField(),
				"riscosDeRejeicao":      stringListField(),
			},
		),
	},
	{
		ID:    6,
		Title: "Síntese e Coerência Global",
		Prompt: func(in Input) string {
			return fmt.Sprintf("Analise o seguinte conteúdo de vídeo para a Seção 6 (Síntese e Coerência Global). "+
				"A transcrição é: '%s'. "+
				"Identifique os elementos nucleares da mensagem e o fio condutor que os articula. "+
				"Avalie a integração multimodal, a consistência global do discurso e aponte lacunas ou "+
				"contradições entre as partes. "+
				"Retorne um JSON com 'identificacao' e 'avaliacao'.", in.Transcription)
		},
		Schema: resultSchema(
			map[string]*genai.Schema{
				"elementosNucleares": stringListField(),
				"fioCondutor":        stringField(),
			},
			map[string]*genai.Schema{
				"integracaoMultimodal": stringField(),
				"consistenciaGlobal":   stringField(),
				"lacunasOuContradicoes": stringListField(),
			},
		),
	},
	{
		ID:    7,
		Title: "Aspectos Técnicos",
		Prompt: func(in Input) string {
			return fmt.Sprintf("Analise o seguinte conteúdo de vídeo para a Seção 7 (Aspectos Técnicos). "+
				"A transcrição é: '%s'.%s "+
				"Identifique a qualidade de captação perceptível, os recursos de acessibilidade presentes "+
				"e o nível técnico percebido da produção. "+
				"Avalie a percepção de profissionalismo transmitida e liste pontos fortes e fracos técnicos. "+
				"Retorne um JSON com 'identificacao' e 'avaliacao'.", in.Transcription, mediaContext(in))
		},
		Schema: resultSchema(
			map[string]*genai.Schema{
				"qualidadeDeCaptacao":      stringField(),
				"recursosDeAcessibilidade": stringListField(),
				"nivelTecnicoPercebido":    enumField(technicalLevels),
			},
			map[string]*genai.Schema{
				"percepcaoDeProfissionalismo": stringField(),
				"pontosFortesTecnicos":        stringListField(),
				"pontosFracosTecnicos":        stringListField(),
			},
		),
	},
	{
		ID:    8,
		Title: "Potencial de Uso Estratégico",
		Prompt: func(in Input) string {
			return fmt.Sprintf("Analise o seguinte conteúdo de vídeo para a Seção 8 (Potencial de Uso Estratégico). "+
				"A transcrição é: '%s'.%s "+
				"Identifique aplicações de marketing possíveis, os canais de distribuição recomendados e o "+
				"público ideal para o conteúdo. "+
				"Avalie o potencial de alcance, as métricas de desempenho esperadas e recomende otimizações. "+
				"Retorne um JSON com 'identificacao' e 'avaliacao'.", in.Transcription, titleContext(in))
		},
		Schema: resultSchema(
			map[string]*genai.Schema{
				"aplicacoesDeMarketing": stringListField(),
				"canaisRecomendados":    stringListField(),
				"publicoIdeal":          stringField(),
			},
			map[string]*genai.Schema{
				"potencialDeAlcance":         stringField(),
				"metricasEsperadas":          stringListField(),
				"recomendacoesDeOtimizacao":  stringListField(),
			},
		),
	},
}

// titleContext renders the optional title/description fields as extra prompt
// context. Returns "" when neither is set.
func titleContext(in Input) string {
	var sb strings.Builder
	if in.Title != "" {
		fmt.Fprintf(&sb, " O título do vídeo é: '%s'.", in.Title)
	}
	if in.Description != "" {
		fmt.Fprintf(&sb, " A descrição do vídeo é: '%s'.", in.Description)
	}
	return sb.String()
}

// mediaContext renders the optional non-verbal descriptive fields for the
// sections that analyze visual/audio signs and technical aspects.
func mediaContext(in Input) string {
	var sb strings.Builder
	if in.VisualNotes != "" {
		fmt.Fprintf(&sb, " Elementos visuais descritos: '%s'.", in.VisualNotes)
	}
	if in.AudioNotes != "" {
		fmt.Fprintf(&sb, " Elementos sonoros descritos: '%s'.", in.AudioNotes)
	}
	return sb.String()
}

// --- Schema constructors ---

// resultSchema builds the two-part response schema every section shares:
// an object with 'identificacao' and 'avaliacao' sub-objects.
func resultSchema(identificacao, avaliacao map[string]*genai.Schema) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"identificacao": {Type: genai.TypeObject, Properties: identificacao},
			"avaliacao":     {Type: genai.TypeObject, Properties: avaliacao},
		},
		Required: []string{"identificacao", "avaliacao"},
	}
}

func stringField() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func stringListField() *genai.Schema {
	return &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}
}

func enumField(values []string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Format: "enum", Enum: values}
}
