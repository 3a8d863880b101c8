//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
)

// loadedQuestions builds a question list with ids 1..n.
func loadedQuestions(n int) []question.Question {
	questions := make([]question.Question, n)
	for i := range questions {
		questions[i] = question.Question{
			ID:      i + 1,
			Prompt:  fmt.Sprintf("Question %d", i+1),
			Options: question.OptionList{"A", "B", "C", "D"},
			SetID:   7,
		}
	}
	return questions
}

func (s *featureState) aQuizWithQuestions(n int) error {
	s.session = quiz.Start(loadedQuestions(n), false)
	return nil
}

func (s *featureState) iAnswerEveryQuestion() error {
	for _, q := range s.session.Questions {
		s.session = quiz.SelectAnswer(s.session, q.ID, "A")
	}
	return nil
}

func (s *featureState) iAnswerQuestionWith(id int, answer string) error {
	s.session = quiz.SelectAnswer(s.session, id, answer)
	return nil
}

// iSubmitTheQuiz plays the role of a backend that grades every
// submitted answer as correct.
func (s *featureState) iSubmitTheQuiz() error {
	s.session = quiz.BeginSubmit(s.session)
	answered := quiz.AnsweredCount(s.session)
	s.session = quiz.CompleteQuiz(s.session, question.QuizResult{
		Score: answered,
		Total: len(s.session.Questions),
	})
	return nil
}

func (s *featureState) iSubmitAndBackendRejects() error {
	s.session = quiz.BeginSubmit(s.session)
	s.session = quiz.FailSubmit(s.session, "server error")
	return nil
}

func (s *featureState) aNewListIsLoaded(n int) error {
	s.session = quiz.Start(loadedQuestions(n), false)
	return nil
}

func (s *featureState) theSessionIsCompleted() error {
	if s.session.Phase != quiz.PhaseCompleted {
		return fmt.Errorf("expected completed session, got %s", s.session.Phase)
	}
	return nil
}

func (s *featureState) theSessionIsInProgress() error {
	if s.session.Phase != quiz.PhaseInProgress {
		return fmt.Errorf("expected in-progress session, got %s", s.session.Phase)
	}
	return nil
}

func (s *featureState) theRecordedScoreIs(score, total int) error {
	if s.session.Result == nil {
		return fmt.Errorf("no result recorded")
	}
	if s.session.Result.Score != score || s.session.Result.Total != total {
		return fmt.Errorf("expected %d/%d, got %d/%d", score, total, s.session.Result.Score, s.session.Result.Total)
	}
	return nil
}

func (s *featureState) noAnswersAreSelected() error {
	return s.answersAreSelected(0)
}

func (s *featureState) answersAreSelected(n int) error {
	if got := quiz.AnsweredCount(s.session); got != n {
		return fmt.Errorf("expected %d answers, got %d", n, got)
	}
	return nil
}
