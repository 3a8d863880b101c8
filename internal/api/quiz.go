package api

import (
	"context"
	"net/http"
	"strconv"

	"quizdeck/internal/question"
)

// AnswerPair is one submitted answer in a quiz submission.
type AnswerPair struct {
	QuestionID     int    `json:"question_id"`
	SelectedAnswer string `json:"selected_answer"`
}

// StartQuiz requests a fresh question list drawn from the selected sets.
// perQuiz is a requested upper bound; the backend may return fewer.
func (c *Client) StartQuiz(ctx context.Context, setIDs []int, perQuiz int) ([]question.Question, error) {
	payload := struct {
		SelectedSets     []int `json:"selected_sets"`
		QuestionsPerQuiz int   `json:"questions_per_quiz"`
	}{SelectedSets: setIDs, QuestionsPerQuiz: perQuiz}
	var questions []question.Question
	if err := c.sendJSON(ctx, http.MethodPost, "/api/get_quiz", payload, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// StartReview fetches the questions the user previously missed.
// The endpoint predates the /api prefix.
func (c *Client) StartReview(ctx context.Context) ([]question.Question, error) {
	var questions []question.Question
	if err := c.getJSON(ctx, "/review_incorrect", &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// SubmitQuiz grades an accumulated answer batch against a set.
func (c *Client) SubmitQuiz(ctx context.Context, setID int, answers []AnswerPair) (question.QuizResult, error) {
	if answers == nil {
		answers = []AnswerPair{}
	}
	payload := struct {
		SetID   int          `json:"set_id"`
		Answers []AnswerPair `json:"answers"`
	}{SetID: setID, Answers: answers}
	var result question.QuizResult
	if err := c.sendJSON(ctx, http.MethodPost, "/api/submit_quiz", payload, &result); err != nil {
		return question.QuizResult{}, err
	}
	return result, nil
}

// SubmitReview grades a review attempt. Unlike quiz submission the
// answers travel as a raw id-to-answer mapping.
func (c *Client) SubmitReview(ctx context.Context, answers map[int]string) (question.ReviewResult, error) {
	keyed := make(map[string]string, len(answers))
	for id, answer := range answers {
		keyed[strconv.Itoa(id)] = answer
	}
	payload := struct {
		Answers map[string]string `json:"answers"`
	}{Answers: keyed}
	var result question.ReviewResult
	if err := c.sendJSON(ctx, http.MethodPost, "/api/submit_review", payload, &result); err != nil {
		return question.ReviewResult{}, err
	}
	return result, nil
}
