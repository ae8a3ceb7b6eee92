package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/sofatesting/Sofa-Driving-Test/internal/model"
)

// makeBank builds n questions whose correct choice text starts with
// "correct", so tests can answer deliberately right or wrong regardless of
// shuffle order.
func makeBank(n int) []model.Question {
	bank := make([]model.Question, n)
	for i := range bank {
		bank[i] = model.Question{
			Prompt: fmt.Sprintf("Q%d", i),
			Choices: []model.Choice{
				{Text: fmt.Sprintf("wrong %d a", i)},
				{Text: fmt.Sprintf("correct %d", i), Correct: true},
				{Text: fmt.Sprintf("wrong %d b", i)},
			},
		}
	}
	return bank
}

func newTestSession(bank []model.Question, timeLimit int, listener ScreenListener) *ExamSession {
	s := NewExamSession("test-session", "a@b.com", bank, SessionConfig{
		TimeLimitSeconds: timeLimit,
		PassingScorePct:  80,
		TickInterval:     0, // driven by explicit Tick calls
		Listener:         listener,
	})
	return s
}

func answer(t *testing.T, s *ExamSession, correctly bool) {
	t.Helper()
	snap := s.Snapshot()
	if snap.Question == nil {
		t.Fatal("no current question to answer")
	}
	for i, text := range snap.Question.Choices {
		if strings.HasPrefix(text, "correct") == correctly {
			if err := s.Answer(i); err != nil {
				t.Fatalf("Answer(%d): %v", i, err)
			}
			return
		}
	}
	t.Fatalf("no suitable choice found in %v", snap.Question.Choices)
}

func TestBeginShufflesAPermutation(t *testing.T) {
	bank := makeBank(20)
	s := newTestSession(bank, 900, nil)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}

	var prompts []string
	for range bank {
		snap := s.Snapshot()
		prompts = append(prompts, snap.Question.Prompt)
		answer(t, s, true)
	}

	var want []string
	for _, q := range bank {
		want = append(want, q.Prompt)
	}
	sort.Strings(prompts)
	sort.Strings(want)
	for i := range want {
		if prompts[i] != want[i] {
			t.Fatalf("shuffled order is not a permutation of the bank: %v vs %v", prompts, want)
		}
	}
}

func TestDealtChoicesAreAPermutation(t *testing.T) {
	bank := makeBank(5)
	s := newTestSession(bank, 900, nil)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}

	snap := s.Snapshot()
	if len(snap.Question.Choices) != 3 {
		t.Fatalf("got %d choices, want 3", len(snap.Question.Choices))
	}
	seen := map[string]bool{}
	for _, text := range snap.Question.Choices {
		seen[text] = true
	}
	if len(seen) != 3 {
		t.Fatalf("dealt choices contain duplicates: %v", snap.Question.Choices)
	}
}

func TestScoreEightOfTenPasses(t *testing.T) {
	s := newTestSession(makeBank(10), 900, nil)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		answer(t, s, true)
	}
	for i := 0; i < 2; i++ {
		answer(t, s, false)
	}

	snap := s.Snapshot()
	if snap.Screen != ScreenResult {
		t.Fatalf("screen = %s, want %s", snap.Screen, ScreenResult)
	}
	if snap.FinalScorePct != 80 || !snap.Passed {
		t.Fatalf("got %d%% passed=%v, want 80%% passed=true", snap.FinalScorePct, snap.Passed)
	}

	payload, err := s.GenerateCertificate("Jane Roe")
	if err != nil {
		t.Fatalf("GenerateCertificate: %v", err)
	}
	if payload.Name != "Jane Roe" || payload.FinalScorePct != 80 {
		t.Fatalf("unexpected certificate payload: %+v", payload)
	}
	if s.Snapshot().Screen != ScreenCertificate {
		t.Fatalf("screen = %s, want %s", s.Snapshot().Screen, ScreenCertificate)
	}
}

func TestScoreSevenOfTenFailsRegardlessOfName(t *testing.T) {
	s := newTestSession(makeBank(10), 900, nil)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 7; i++ {
		answer(t, s, true)
	}
	for i := 0; i < 3; i++ {
		answer(t, s, false)
	}

	snap := s.Snapshot()
	if snap.FinalScorePct != 70 || snap.Passed {
		t.Fatalf("got %d%% passed=%v, want 70%% passed=false", snap.FinalScorePct, snap.Passed)
	}
	if _, err := s.GenerateCertificate("Jane Roe"); !errors.Is(err, ErrNotPassed) {
		t.Fatalf("got %v, want ErrNotPassed", err)
	}
}

func TestCertificateRequiresName(t *testing.T) {
	s := newTestSession(makeBank(5), 900, nil)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		answer(t, s, true)
	}

	for _, name := range []string{"", "   "} {
		if _, err := s.GenerateCertificate(name); !errors.Is(err, ErrNameRequired) {
			t.Fatalf("GenerateCertificate(%q): got %v, want ErrNameRequired", name, err)
		}
	}
	// Rejection leaves the session re-promptable.
	if snap := s.Snapshot(); snap.Screen != ScreenResult {
		t.Fatalf("screen = %s after rejected certificate, want %s", snap.Screen, ScreenResult)
	}
	if _, err := s.GenerateCertificate("  Jane Roe  "); err != nil {
		t.Fatalf("got %v, want success after re-prompt", err)
	}
}

func TestScoreRounding(t *testing.T) {
	cases := []struct {
		total, right, wantPct int
	}{
		{3, 1, 33},
		{3, 2, 67},
		{6, 5, 83},
		{7, 5, 71},
	}
	for _, tc := range cases {
		s := newTestSession(makeBank(tc.total), 900, nil)
		if err := s.Begin(); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < tc.right; i++ {
			answer(t, s, true)
		}
		for i := 0; i < tc.total-tc.right; i++ {
			answer(t, s, false)
		}
		if got := s.Snapshot().FinalScorePct; got != tc.wantPct {
			t.Errorf("%d/%d: got %d%%, want %d%%", tc.right, tc.total, got, tc.wantPct)
		}
	}
}

func TestTimerExpiryScoresAnsweredOnly(t *testing.T) {
	s := newTestSession(makeBank(10), 5, nil)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		answer(t, s, true)
	}

	for i := 0; i < 5; i++ {
		s.Tick()
	}

	snap := s.Snapshot()
	if snap.Screen != ScreenResult {
		t.Fatalf("screen = %s after expiry, want %s", snap.Screen, ScreenResult)
	}
	if snap.RemainingSeconds != 0 {
		t.Fatalf("remaining = %d, want 0", snap.RemainingSeconds)
	}
	// Unanswered questions count as wrong: 3 of 10.
	if snap.FinalScorePct != 30 || snap.QuestionsAnswered != 3 {
		t.Fatalf("got %d%% with %d answered, want 30%% with 3", snap.FinalScorePct, snap.QuestionsAnswered)
	}
}

func TestLateTicksAreNoOps(t *testing.T) {
	s := newTestSession(makeBank(4), 3, nil)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	answer(t, s, true)

	for i := 0; i < 3; i++ {
		s.Tick()
	}
	before := s.Snapshot()

	// Extra ticks after the transition must not resurrect or mutate state.
	s.Tick()
	s.Tick()
	after := s.Snapshot()

	if after.Screen != before.Screen || after.RemainingSeconds != before.RemainingSeconds ||
		after.FinalScorePct != before.FinalScorePct || after.QuestionsAnswered != before.QuestionsAnswered {
		t.Fatalf("late tick changed state: before %+v, after %+v", before, after)
	}
}

func TestAnswerAfterResultRejected(t *testing.T) {
	s := newTestSession(makeBank(2), 900, nil)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	answer(t, s, true)
	answer(t, s, true)

	if err := s.Answer(0); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("got %v, want ErrInvalidTransition", err)
	}
}

func TestAnswerOutOfRange(t *testing.T) {
	s := newTestSession(makeBank(2), 900, nil)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	if err := s.Answer(-1); !errors.Is(err, ErrChoiceOutOfRange) {
		t.Fatalf("Answer(-1): got %v, want ErrChoiceOutOfRange", err)
	}
	if err := s.Answer(3); !errors.Is(err, ErrChoiceOutOfRange) {
		t.Fatalf("Answer(3): got %v, want ErrChoiceOutOfRange", err)
	}
}

func TestEmptyBankIsAutomaticFail(t *testing.T) {
	s := newTestSession(nil, 900, nil)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}

	snap := s.Snapshot()
	if snap.Screen != ScreenResult {
		t.Fatalf("screen = %s, want %s", snap.Screen, ScreenResult)
	}
	if snap.FinalScorePct != 0 || snap.Passed {
		t.Fatalf("got %d%% passed=%v, want 0%% passed=false", snap.FinalScorePct, snap.Passed)
	}
}

func TestRestartClearsEverything(t *testing.T) {
	s := newTestSession(makeBank(3), 900, nil)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		answer(t, s, true)
	}
	if _, err := s.GenerateCertificate("Jane Roe"); err != nil {
		t.Fatal(err)
	}

	s.Restart()

	snap := s.Snapshot()
	if snap.Screen != ScreenStart {
		t.Fatalf("screen = %s, want %s", snap.Screen, ScreenStart)
	}
	if snap.Score != 0 || snap.QuestionsTotal != 0 || snap.Name != "" || snap.Passed {
		t.Fatalf("restart did not clear session state: %+v", snap)
	}

	// A new run works from scratch.
	if err := s.Begin(); err != nil {
		t.Fatalf("Begin after restart: %v", err)
	}
	if got := s.Snapshot().Screen; got != ScreenQuiz {
		t.Fatalf("screen = %s, want %s", got, ScreenQuiz)
	}
}

func TestBeginRejectedOutsideStart(t *testing.T) {
	s := newTestSession(makeBank(3), 900, nil)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	if err := s.Begin(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second Begin: got %v, want ErrInvalidTransition", err)
	}
}

func TestScreenListenerSeesTransitions(t *testing.T) {
	var screens []Screen
	var resultPayload *ResultPayload
	listener := func(screen Screen, payload *ResultPayload) {
		screens = append(screens, screen)
		if screen == ScreenResult {
			resultPayload = payload
		}
	}

	s := newTestSession(makeBank(2), 900, listener)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	answer(t, s, true)
	answer(t, s, false)
	if _, err := s.GenerateCertificate("Jane Roe"); !errors.Is(err, ErrNotPassed) {
		t.Fatal("expected fail at 50%")
	}
	s.Restart()

	want := []Screen{ScreenQuiz, ScreenResult, ScreenStart}
	if len(screens) != len(want) {
		t.Fatalf("screens = %v, want %v", screens, want)
	}
	for i := range want {
		if screens[i] != want[i] {
			t.Fatalf("screens = %v, want %v", screens, want)
		}
	}
	if resultPayload == nil || resultPayload.FinalScorePct != 50 || resultPayload.QuestionsTotal != 2 {
		t.Fatalf("unexpected result payload: %+v", resultPayload)
	}
}

func TestResultBeforeFinishRejected(t *testing.T) {
	s := newTestSession(makeBank(2), 900, nil)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Result(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("got %v, want ErrInvalidTransition", err)
	}
}

func TestCompletionDateStamped(t *testing.T) {
	s := newTestSession(makeBank(1), 900, nil)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clock = func() time.Time { return fixed }

	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	answer(t, s, true)

	payload, err := s.Result()
	if err != nil {
		t.Fatal(err)
	}
	if !payload.CompletionDate.Equal(fixed) {
		t.Fatalf("completion date = %v, want %v", payload.CompletionDate, fixed)
	}
}
