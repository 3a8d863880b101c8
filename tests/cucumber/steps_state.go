//go:build cucumber
// +build cucumber

package cucumber

import (
	"context"

	"github.com/cucumber/godog"

	"quizdeck/internal/quiz"
	"quizdeck/internal/upload"
)

// featureState holds scenario state for the feature suite.
type featureState struct {
	backend    *scriptedBackend
	cache      *countingCache
	maxPolls   int
	finalEvent upload.Event
	immediate  bool

	session quiz.Session
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a backend whose progress session reports "([^"]+)"$`, state.aBackendReporting)
	ctx.Step(`^a backend whose progress session has expired$`, state.aBackendWithExpiredSession)
	ctx.Step(`^a backend whose progress session never finishes$`, state.aBackendThatNeverFinishes)
	ctx.Step(`^a backend that imports structured files immediately$`, state.aBackendWithImmediateImport)
	ctx.Step(`^the tracker polls at most (\d+) times$`, state.theTrackerPollsAtMost)
	ctx.Step(`^I upload a (?:lecture|structured question) file$`, state.iUploadAFile)
	ctx.Step(`^the tracker makes exactly (\d+) progress polls$`, state.theTrackerMakesExactlyPolls)
	ctx.Step(`^the upload finishes successfully$`, state.theUploadFinishesSuccessfully)
	ctx.Step(`^the upload fails with "([^"]+)"$`, state.theUploadFailsWith)
	ctx.Step(`^the question-set cache is invalidated once$`, state.theCacheIsInvalidatedOnce)
	ctx.Step(`^the question-set cache is not invalidated$`, state.theCacheIsNotInvalidated)

	ctx.Step(`^a quiz with (\d+) loaded questions$`, state.aQuizWithQuestions)
	ctx.Step(`^I answer every question$`, state.iAnswerEveryQuestion)
	ctx.Step(`^I answer question (\d+) with "([^"]+)"$`, state.iAnswerQuestionWith)
	ctx.Step(`^I submit the quiz$`, state.iSubmitTheQuiz)
	ctx.Step(`^I submit the quiz and the backend rejects it$`, state.iSubmitAndBackendRejects)
	ctx.Step(`^a new list of (\d+) questions is loaded$`, state.aNewListIsLoaded)
	ctx.Step(`^the session is completed$`, state.theSessionIsCompleted)
	ctx.Step(`^the session is still in progress$`, state.theSessionIsInProgress)
	ctx.Step(`^the recorded score is (\d+) out of (\d+)$`, state.theRecordedScoreIs)
	ctx.Step(`^no answers are selected$`, state.noAnswersAreSelected)
	ctx.Step(`^(\d+) answers are selected$`, state.answersAreSelected)
}

// reset clears state before each scenario.
func (s *featureState) reset() {
	s.backend = nil
	s.cache = &countingCache{}
	s.maxPolls = 0
	s.finalEvent = upload.Event{}
	s.immediate = false
	s.session = quiz.Session{}
}
