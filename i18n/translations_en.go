package i18n

var englishTranslations = map[string]string{
	// Generic document strings
	"doc.default_title":       "Educational Activity",
	"doc.generated_by":        "Generated by EduExport",
	"doc.content_unavailable": "Content unavailable",

	// Exam / survey
	"exam.instructions":   "Instructions",
	"exam.questions":      "Questions",
	"exam.question_label": "Question %d: ",
	"exam.col_number":     "No.",
	"exam.col_question":   "Question",
	"exam.col_type":       "Type",
	"exam.col_answer":     "Correct Answer",
	"exam.col_points":     "Points",

	// Summary
	"summary.heading":    "Summary",
	"summary.key_points": "Key Points",

	// Class activity
	"class.objectives": "Objectives",
	"class.materials":  "Materials",
	"class.steps":      "Activity Steps",
	"class.step_label": "Step %d (%d min): ",

	// Rubric
	"rubric.heading":         "Evaluation Rubric",
	"rubric.col_level":       "Level",
	"rubric.col_points":      "Points",
	"rubric.col_description": "Description",

	// Writing correction
	"correction.original":    "Original Text",
	"correction.corrected":   "Corrected Text",
	"correction.errors":      "Detected Errors",
	"correction.explanation": "Explanation: %s",

	// Slides
	"slides.slide_label": "Slide %d: %s",
	"slides.notes_label": "Notes: ",

	// Email
	"email.subject": "Subject",
	"email.body":    "Message Body",

	// Story
	"story.moral": "Moral",

	// Crossword / word search
	"crossword.heading":       "Crossword",
	"crossword.across":        "Across",
	"crossword.down":          "Down",
	"crossword.col_direction": "Direction",
	"crossword.col_number":    "No.",
	"crossword.col_clue":      "Clue",
	"crossword.col_answer":    "Answer",
	"crossword.answer_key":    "Answer Key",
	"wordsearch.heading":      "Word Search",
	"wordsearch.words":        "Words to find",
	"wordsearch.col_hint":     "Hint",
}
