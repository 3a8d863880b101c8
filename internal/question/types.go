package question

// Question is a single multiple-choice question as served by the backend.
// The correct answer is withheld while a quiz is active and present in
// review and result payloads. Immutable once decoded.
type Question struct {
	ID            int        `json:"id"`
	Prompt        string     `json:"question"`
	Options       OptionList `json:"options"`
	CorrectAnswer string     `json:"correct_answer,omitempty"`
	SetID         int        `json:"set_id"`
}

// Set is a named, server-owned collection of generated questions.
type Set struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
	CreatedAt     string `json:"created_at"`
}

// AnswerRecord is the per-question outcome inside a graded result.
type AnswerRecord struct {
	Question      string     `json:"question"`
	UserAnswer    string     `json:"user_answer"`
	CorrectAnswer string     `json:"correct_answer"`
	IsCorrect     bool       `json:"is_correct"`
	Options       OptionList `json:"options"`
}

// IncorrectAnswer describes a missed question keyed by question id.
type IncorrectAnswer struct {
	Question      string     `json:"question"`
	UserAnswer    string     `json:"user_answer"`
	CorrectAnswer string     `json:"correct_answer"`
	Options       OptionList `json:"options"`
}

// QuizResult is the server-graded outcome of a quiz submission.
type QuizResult struct {
	Score            int                        `json:"score"`
	Total            int                        `json:"total"`
	Results          []AnswerRecord             `json:"results"`
	IncorrectAnswers map[string]IncorrectAnswer `json:"incorrect_answers"`
	HasIncorrect     bool                       `json:"has_incorrect"`
}

// StillIncorrect is a question missed again during a review session.
type StillIncorrect struct {
	ID            int        `json:"id"`
	Question      string     `json:"question"`
	CorrectAnswer string     `json:"correct_answer"`
	Options       OptionList `json:"options"`
}

// ReviewResult is the server-graded outcome of a review submission.
type ReviewResult struct {
	Score          int              `json:"score"`
	Total          int              `json:"total"`
	Results        []AnswerRecord   `json:"results"`
	StillIncorrect []StillIncorrect `json:"still_incorrect"`
	HasIncorrect   bool             `json:"has_incorrect"`
}
