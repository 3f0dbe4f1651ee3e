package i18n

var spanishTranslations = map[string]string{
	// Generic document strings
	"doc.default_title":       "Actividad Educativa",
	"doc.generated_by":        "Generado por EduExport",
	"doc.content_unavailable": "Contenido no disponible",

	// Exam / survey
	"exam.instructions":   "Instrucciones",
	"exam.questions":      "Preguntas",
	"exam.question_label": "Pregunta %d: ",
	"exam.col_number":     "No.",
	"exam.col_question":   "Pregunta",
	"exam.col_type":       "Tipo",
	"exam.col_answer":     "Respuesta Correcta",
	"exam.col_points":     "Puntos",

	// Summary
	"summary.heading":    "Resumen",
	"summary.key_points": "Puntos Clave",

	// Class activity
	"class.objectives": "Objetivos",
	"class.materials":  "Materiales",
	"class.steps":      "Pasos de la Actividad",
	"class.step_label": "Paso %d (%d min): ",

	// Rubric
	"rubric.heading":         "Rúbrica de Evaluación",
	"rubric.col_level":       "Nivel",
	"rubric.col_points":      "Puntos",
	"rubric.col_description": "Descripción",

	// Writing correction
	"correction.original":    "Texto Original",
	"correction.corrected":   "Texto Corregido",
	"correction.errors":      "Errores Detectados",
	"correction.explanation": "Explicación: %s",

	// Slides
	"slides.slide_label": "Diapositiva %d: %s",
	"slides.notes_label": "Notas: ",

	// Email
	"email.subject": "Asunto",
	"email.body":    "Cuerpo del Mensaje",

	// Story
	"story.moral": "Moraleja",

	// Crossword / word search
	"crossword.heading":       "Crucigrama",
	"crossword.across":        "Horizontal",
	"crossword.down":          "Vertical",
	"crossword.col_direction": "Dirección",
	"crossword.col_number":    "No.",
	"crossword.col_clue":      "Pista",
	"crossword.col_answer":    "Respuesta",
	"crossword.answer_key":    "Clave de Respuestas",
	"wordsearch.heading":      "Sopa de Letras",
	"wordsearch.words":        "Palabras a buscar",
	"wordsearch.col_hint":     "Pista",
}
