// Package quiz holds the quiz session state machine: a value-type
// Session advanced by pure transition functions, so UI code can apply
// events without sharing mutable state.
package quiz

import (
	"sort"

	"quizdeck/internal/api"
	"quizdeck/internal/question"
)

// Phase is the lifecycle state of a quiz session.
type Phase int

const (
	// PhaseIdle means no questions are loaded.
	PhaseIdle Phase = iota
	// PhaseInProgress means questions are loaded and answers accumulate.
	PhaseInProgress
	// PhaseSubmitting means a grading request is in flight.
	PhaseSubmitting
	// PhaseCompleted means a server result has been received.
	PhaseCompleted
)

// String names a phase for display and test output.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInProgress:
		return "in progress"
	case PhaseSubmitting:
		return "submitting"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Session is the full state of one quiz or review run. Once completed
// it holds exactly one of Result or ReviewOutcome, which fully replaces
// the interactive view.
type Session struct {
	Phase          Phase
	Review         bool
	Questions      []question.Question
	Answers        map[int]string
	Index          int
	ElapsedSeconds int
	Result         *question.QuizResult
	ReviewOutcome  *question.ReviewResult
	SubmitError    string
}

// Start begins a fresh session over a question list. Any prior answers,
// position, timer and result are discarded: a different question list
// is always a new session.
func Start(questions []question.Question, review bool) Session {
	if len(questions) == 0 {
		return Session{Phase: PhaseIdle}
	}
	return Session{
		Phase:     PhaseInProgress,
		Review:    review,
		Questions: questions,
		Answers:   map[int]string{},
	}
}

// Reset returns the session to idle, dropping all loaded state.
func Reset(Session) Session {
	return Session{Phase: PhaseIdle}
}

// SelectAnswer upserts the user's choice for a question. Ids not in the
// active list come from stale callbacks and are dropped, keeping the
// answer map a subset of the loaded questions.
func SelectAnswer(s Session, questionID int, value string) Session {
	if s.Phase != PhaseInProgress {
		return s
	}
	if !s.hasQuestion(questionID) {
		return s
	}
	answers := make(map[int]string, len(s.Answers)+1)
	for id, answer := range s.Answers {
		answers[id] = answer
	}
	answers[questionID] = value
	s.Answers = answers
	return s
}

// Next advances to the following question, clamped to the last one.
func Next(s Session) Session {
	return JumpTo(s, s.Index+1)
}

// Previous moves back one question, clamped to the first one.
func Previous(s Session) Session {
	return JumpTo(s, s.Index-1)
}

// JumpTo moves to an arbitrary question index, clamped to the list
// bounds. Navigation never touches answers.
func JumpTo(s Session, index int) Session {
	if len(s.Questions) == 0 {
		s.Index = 0
		return s
	}
	if index < 0 {
		index = 0
	}
	if index > len(s.Questions)-1 {
		index = len(s.Questions) - 1
	}
	s.Index = index
	return s
}

// BeginSubmit moves into the submitting phase. The answer map may be
// empty; the server decides what that means.
func BeginSubmit(s Session) Session {
	if s.Phase != PhaseInProgress {
		return s
	}
	s.Phase = PhaseSubmitting
	s.SubmitError = ""
	return s
}

// CompleteQuiz records a server quiz result and finishes the session.
func CompleteQuiz(s Session, result question.QuizResult) Session {
	if s.Phase != PhaseSubmitting {
		return s
	}
	s.Phase = PhaseCompleted
	s.Result = &result
	return s
}

// CompleteReview records a server review result and finishes the session.
func CompleteReview(s Session, result question.ReviewResult) Session {
	if s.Phase != PhaseSubmitting {
		return s
	}
	s.Phase = PhaseCompleted
	s.ReviewOutcome = &result
	return s
}

// FailSubmit returns to in-progress after a failed submission. Answers,
// position and timer are all preserved.
func FailSubmit(s Session, message string) Session {
	if s.Phase != PhaseSubmitting {
		return s
	}
	s.Phase = PhaseInProgress
	if message == "" {
		message = "failed to submit, please try again"
	}
	s.SubmitError = message
	return s
}

// Tick advances the elapsed-time counter by one second. Time only
// accrues while the session is active; it is cosmetic and never sent
// to the server.
func Tick(s Session) Session {
	if s.Phase == PhaseInProgress || s.Phase == PhaseSubmitting {
		s.ElapsedSeconds++
	}
	return s
}

// Current returns the question under the cursor.
func Current(s Session) (question.Question, bool) {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return question.Question{}, false
	}
	return s.Questions[s.Index], true
}

// AnsweredCount reports how many loaded questions have an answer.
func AnsweredCount(s Session) int {
	count := 0
	for _, q := range s.Questions {
		if _, ok := s.Answers[q.ID]; ok {
			count++
		}
	}
	return count
}

// ProgressPercent is the displayed completion percentage,
// answered/total*100. An empty session reads as zero.
func ProgressPercent(s Session) float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(AnsweredCount(s)) / float64(len(s.Questions)) * 100
}

// AnswerMap copies out the accumulated answers.
func AnswerMap(s Session) map[int]string {
	out := make(map[int]string, len(s.Answers))
	for id, answer := range s.Answers {
		out[id] = answer
	}
	return out
}

// AnswerPairs exports answers in the quiz submission wire shape,
// ordered by question id for a stable payload.
func AnswerPairs(s Session) []api.AnswerPair {
	pairs := make([]api.AnswerPair, 0, len(s.Answers))
	for id, answer := range s.Answers {
		pairs = append(pairs, api.AnswerPair{QuestionID: id, SelectedAnswer: answer})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].QuestionID < pairs[j].QuestionID })
	return pairs
}

// SetID reports the owning set of the loaded questions, taken from the
// first question. Zero when nothing is loaded.
func SetID(s Session) int {
	if len(s.Questions) == 0 {
		return 0
	}
	return s.Questions[0].SetID
}

// hasQuestion reports whether an id belongs to the loaded list.
func (s Session) hasQuestion(id int) bool {
	for _, q := range s.Questions {
		if q.ID == id {
			return true
		}
	}
	return false
}
