package export

import (
	"errors"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// samplePayloads returns one realistic payload per activity type, shaped the
// way the content generator emits them.
func samplePayloads() map[ActivityType]string {
	return map[ActivityType]string{
		ActivityExam: `{"instructions":"Responde todas las preguntas","questions":[
			{"id":1,"type":"multiple_choice","question":"¿Cuál es la capital de Francia?","options":["París","Lyon","Marsella"],"correct_answer":"París","points":2},
			{"id":2,"type":"open","question":"Explica la fotosíntesis","points":5},
			{"id":3,"type":"true_false","question":"El sol es una estrella","correct_answer":"verdadero","points":1}]}`,
		ActivitySummary: `{"summary":"La fotosíntesis convierte luz en energía química.","key_points":["Ocurre en los cloroplastos","Produce oxígeno","Requiere luz solar"]}`,
		ActivityClassActivity: `{"objectives":["Identificar plantas locales"],"materials":["Lupa","Cuaderno"],"steps":[
			{"step":1,"duration_minutes":10,"description":"Salir al patio"},
			{"step":2,"duration_minutes":20,"description":"Observar y dibujar tres plantas"}]}`,
		ActivityRubric: `{"criteria":[
			{"name":"Claridad","weight":40,"levels":[{"level":"Excelente","points":4,"description":"Ideas muy claras"},{"level":"Bueno","points":3,"description":"Ideas claras"}]},
			{"name":"Ortografía","weight":60,"levels":[{"level":"Excelente","points":4,"description":"Sin errores"}]}]}`,
		ActivityWritingCorrection: `{"original_text":"Ayer fuí al parque.","corrected_text":"Ayer fui al parque.","errors":[
			{"type":"ortografía","original":"fuí","correction":"fui","explanation":"Los monosílabos no llevan tilde"}]}`,
		ActivitySlides: `{"slides":[
			{"slide_number":1,"title":"El Sistema Solar","content":["Un recorrido por los planetas"],"notes":"Dar la bienvenida"},
			{"slide_number":2,"title":"Planetas rocosos","content":["Mercurio","Venus","Tierra"],"notes":"Mencionar Marte aparte"},
			{"slide_number":3,"title":"Datos curiosos","content":["Júpiter es el mayor","Saturno tiene anillos","Urano rota de lado","Neptuno es el más ventoso","Plutón ya no cuenta"]}]}`,
		ActivityEmail:  `{"subject":"Reunión de padres","body":"Estimadas familias, les convocamos a la reunión del viernes.","closing":"Atentamente, la dirección"}`,
		ActivitySurvey: `{"description":"Encuesta de satisfacción del curso","questions":[{"id":1,"type":"scale","question":"¿Qué tan útil fue el curso?"},{"id":2,"type":"open","question":"¿Qué mejorarías?"}]}`,
		ActivityStory:  `{"story":"Había una vez una tortuga que desafió a una liebre...","moral":"La constancia vence al talento descuidado"}`,
		ActivityCrossword: `{"grid_size":{"rows":5,"cols":5},"clues":{
			"across":[{"number":1,"clue":"Estrella del sistema solar","answer":"SOL","position":{"row":0,"col":0}}],
			"down":[{"number":2,"clue":"Afirmación","answer":"SI","position":{"row":0,"col":0}}]}}`,
		ActivityWordSearch: `{"words":[{"word":"sol","hint":"Brilla de día"},{"word":"luna","hint":"Brilla de noche"}],"grid":[["S","O","L","X"],["L","U","N","A"],["Q","W","E","R"],["T","Y","U","I"]]}`,
	}
}

func TestExportWordAllTypes(t *testing.T) {
	service := NewExportService()
	payloads := samplePayloads()

	for _, activityType := range AllActivityTypes {
		payload, ok := payloads[activityType]
		if !ok {
			t.Fatalf("no sample payload for %s", activityType)
		}
		result, err := service.Export(ExportRequest{
			Title:        "Actividad de Prueba",
			Description:  "Generada para la clase de ciencias",
			ActivityType: activityType,
			Content:      payload,
			Format:       FormatWord,
		})
		if err != nil {
			t.Errorf("%s to word failed: %v", activityType, err)
			continue
		}
		if len(result.Bytes) == 0 {
			t.Errorf("%s to word produced empty document", activityType)
		}
		if !strings.HasPrefix(string(result.Bytes[:2]), "PK") {
			t.Errorf("%s to word did not produce a zip container", activityType)
		}
		if result.SuggestedFilename != "Actividad_de_Prueba.docx" {
			t.Errorf("%s filename = %q", activityType, result.SuggestedFilename)
		}
		if !strings.Contains(result.ContentType, "wordprocessingml") {
			t.Errorf("%s content type = %q", activityType, result.ContentType)
		}
		t.Logf("%s -> word: %d bytes", activityType, len(result.Bytes))
	}
}

func TestExportSpreadsheetAllowedTypes(t *testing.T) {
	service := NewExportService()
	payloads := samplePayloads()

	for _, activityType := range FormatSpreadsheet.Allowed() {
		result, err := service.Export(ExportRequest{
			Title:        "Tabla de Actividad",
			ActivityType: activityType,
			Content:      payloads[activityType],
			Format:       FormatSpreadsheet,
		})
		if err != nil {
			t.Errorf("%s to spreadsheet failed: %v", activityType, err)
			continue
		}
		if len(result.Bytes) == 0 {
			t.Errorf("%s to spreadsheet produced empty workbook", activityType)
		}
		if result.SuggestedFilename != "Tabla_de_Actividad.xlsx" {
			t.Errorf("%s filename = %q", activityType, result.SuggestedFilename)
		}
		t.Logf("%s -> spreadsheet: %d bytes", activityType, len(result.Bytes))
	}
}

func TestExportPresentation(t *testing.T) {
	service := NewExportService()

	result, err := service.Export(ExportRequest{
		Title:        "El Sistema Solar",
		ActivityType: ActivitySlides,
		Content:      samplePayloads()[ActivitySlides],
		Format:       FormatPresentation,
		Scheme:       SchemeOcean,
	})
	if err != nil {
		t.Fatalf("slides to presentation failed: %v", err)
	}
	if len(result.Bytes) == 0 {
		t.Fatal("presentation export produced empty document")
	}
	if result.SuggestedFilename != "El_Sistema_Solar.pptx" {
		t.Errorf("filename = %q", result.SuggestedFilename)
	}
	if !strings.Contains(result.ContentType, "presentationml") {
		t.Errorf("content type = %q", result.ContentType)
	}
}

func TestExportRejectsUnsupportedPairs(t *testing.T) {
	service := NewExportService()

	_, err := service.Export(ExportRequest{
		Title:        "Correo",
		ActivityType: ActivityEmail,
		Content:      samplePayloads()[ActivityEmail],
		Format:       FormatSpreadsheet,
	})
	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if len(unsupported.Allowed) != 5 {
		t.Errorf("spreadsheet allows %d types, want 5", len(unsupported.Allowed))
	}
	if !strings.Contains(err.Error(), "exam") {
		t.Errorf("error should list allowed types: %v", err)
	}

	// Every non-slides type is rejected for presentation.
	for _, activityType := range AllActivityTypes {
		if activityType == ActivitySlides {
			continue
		}
		_, err := service.Export(ExportRequest{
			Title:        "X",
			ActivityType: activityType,
			Content:      "{}",
			Format:       FormatPresentation,
		})
		if !errors.As(err, &unsupported) {
			t.Errorf("%s to presentation: expected UnsupportedFormatError, got %v", activityType, err)
		}
	}
}

func TestExportRejectsUnknownEnums(t *testing.T) {
	service := NewExportService()

	var unsupported *UnsupportedFormatError

	_, err := service.Export(ExportRequest{
		Title:        "X",
		ActivityType: "chatbot",
		Content:      "{}",
		Format:       FormatWord,
	})
	if !errors.As(err, &unsupported) {
		t.Errorf("unknown activity type: expected UnsupportedFormatError, got %v", err)
	}

	_, err = service.Export(ExportRequest{
		Title:        "X",
		ActivityType: ActivityExam,
		Content:      "{}",
		Format:       "pdf",
	})
	if !errors.As(err, &unsupported) {
		t.Errorf("unknown format: expected UnsupportedFormatError, got %v", err)
	}
}

func TestExportEnforcesResourceLimits(t *testing.T) {
	service := NewExportService()

	var sb strings.Builder
	sb.WriteString(`{"questions":[`)
	for i := 0; i < MaxQuestions+1; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"id":1,"type":"open","question":"q"}`)
	}
	sb.WriteString(`]}`)

	_, err := service.Export(ExportRequest{
		Title:        "Examen gigante",
		ActivityType: ActivityExam,
		Content:      sb.String(),
		Format:       FormatWord,
	})
	var limit *ResourceLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("expected ResourceLimitError, got %v", err)
	}
	if limit.Actual != MaxQuestions+1 {
		t.Errorf("limit error actual = %d, want %d", limit.Actual, MaxQuestions+1)
	}

	_, err = service.Export(ExportRequest{
		Title:        "Crucigrama gigante",
		ActivityType: ActivityCrossword,
		Content:      `{"grid_size":{"rows":5000,"cols":5},"clues":{"across":[],"down":[]}}`,
		Format:       FormatSpreadsheet,
	})
	if !errors.As(err, &limit) {
		t.Fatalf("expected ResourceLimitError for oversized grid, got %v", err)
	}

	// A small grid with an enormous clue list is still unbounded work.
	var clues strings.Builder
	clues.WriteString(`{"grid_size":{"rows":5,"cols":5},"clues":{"down":[],"across":[`)
	for i := 0; i < MaxQuestions+1; i++ {
		if i > 0 {
			clues.WriteString(",")
		}
		clues.WriteString(`{"number":1,"clue":"c","answer":"A","position":{"row":0,"col":0}}`)
	}
	clues.WriteString(`]}}`)

	_, err = service.Export(ExportRequest{
		Title:        "Crucigrama con mil pistas",
		ActivityType: ActivityCrossword,
		Content:      clues.String(),
		Format:       FormatWord,
	})
	if !errors.As(err, &limit) {
		t.Fatalf("expected ResourceLimitError for oversized clue list, got %v", err)
	}
	if limit.Actual != MaxQuestions+1 {
		t.Errorf("clue limit actual = %d, want %d", limit.Actual, MaxQuestions+1)
	}
}

func TestExportDegradedContentStillRenders(t *testing.T) {
	service := NewExportService()

	for _, raw := range []interface{}{nil, "", "no es JSON {{{"} {
		result, err := service.Export(ExportRequest{
			Title:        "Contenido Roto",
			ActivityType: ActivitySummary,
			Content:      raw,
			Format:       FormatWord,
		})
		if err != nil {
			t.Errorf("degraded export failed: %v", err)
			continue
		}
		if len(result.Bytes) == 0 {
			t.Error("degraded export produced empty document")
		}
	}
}

func TestExportNeverPanicsOnArbitraryContent(t *testing.T) {
	service := NewExportService()
	types := AllActivityTypes

	rapid.Check(t, func(t *rapid.T) {
		activityType := types[rapid.IntRange(0, len(types)-1).Draw(t, "type")]
		content := rapid.String().Draw(t, "content")

		result, err := service.Export(ExportRequest{
			Title:        rapid.String().Draw(t, "title"),
			ActivityType: activityType,
			Content:      content,
			Format:       FormatWord,
		})
		if err != nil {
			var renderErr *RenderError
			var limitErr *ResourceLimitError
			if !errors.As(err, &renderErr) && !errors.As(err, &limitErr) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}
		if len(result.Bytes) == 0 {
			t.Fatal("successful export returned empty bytes")
		}
	})
}
