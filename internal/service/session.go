package service

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sofatesting/Sofa-Driving-Test/internal/model"
)

// Screen identifies which view of the exam flow a session is on.
type Screen string

const (
	ScreenStart       Screen = "start"
	ScreenQuiz        Screen = "quiz"
	ScreenResult      Screen = "result"
	ScreenCertificate Screen = "certificate"
)

// ResultPayload is what the session hands outward to the certificate
// renderer and the notifier once an exam run has finished.
type ResultPayload struct {
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	FinalScorePct     int       `json:"final_score_pct"`
	Passed            bool      `json:"passed"`
	CompletionDate    time.Time `json:"completion_date"`
	QuestionsTotal    int       `json:"questions_total"`
	QuestionsAnswered int       `json:"questions_answered"`
}

// ScreenListener is notified after every screen transition. The payload is
// nil until the session has a final result. Listeners run outside the
// session lock and must not assume the session is still on that screen.
type ScreenListener func(screen Screen, payload *ResultPayload)

// QuestionView is the presentation-safe view of the current question: the
// choice texts in their dealt (shuffled) order, with correctness stripped.
type QuestionView struct {
	Index   int
	Total   int
	Prompt  string
	Choices []string
}

// Snapshot is a consistent copy of the observable session state.
type Snapshot struct {
	ID                string
	Screen            Screen
	Email             string
	Name              string
	RemainingSeconds  int
	Question          *QuestionView
	Score             int
	FinalScorePct     int
	Passed            bool
	QuestionsTotal    int
	QuestionsAnswered int
	CompletedAt       time.Time
}

// SessionConfig carries the policy knobs a session needs.
type SessionConfig struct {
	TimeLimitSeconds int
	PassingScorePct  int
	// TickInterval <= 0 disables the background ticker; the session is then
	// driven by explicit Tick calls. Production uses one second.
	TickInterval time.Duration
	Listener     ScreenListener
}

// ExamSession is the quiz lifecycle state machine:
//
//	Start -> Quiz -> Result -> Certificate
//
// with Restart returning to Start from Result or Certificate. All state is
// owned here and guarded by one mutex; timer ticks and answer events are
// serialized through it, and whichever ends the quiz first wins. A tick
// arriving after the quiz already ended is a no-op.
type ExamSession struct {
	ID string

	mu          sync.Mutex
	email       string
	name        string
	screen      Screen
	order       []model.Question
	current     int
	score       int
	remaining   int
	dealt       []int
	finalPct    int
	passed      bool
	completedAt time.Time
	timer       *Countdown

	bank     []model.Question
	cfg      SessionConfig
	rng      *rand.Rand
	listener ScreenListener
	clock    func() time.Time
}

// NewExamSession creates a session on the Start screen. The bank slice is
// treated as read-only; shuffling works on copies.
func NewExamSession(id, email string, bank []model.Question, cfg SessionConfig) *ExamSession {
	return &ExamSession{
		ID:       id,
		email:    email,
		screen:   ScreenStart,
		bank:     bank,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		listener: cfg.Listener,
		clock:    time.Now,
	}
}

// Begin performs Start -> Quiz: shuffles the bank into this run's question
// order, resets index, score and the clock, and starts the countdown. Any
// countdown left over from a previous run is cancelled first.
func (s *ExamSession) Begin() error {
	s.mu.Lock()
	if s.screen != ScreenStart {
		s.mu.Unlock()
		return ErrInvalidTransition
	}

	s.order = shuffleQuestions(s.bank, s.rng)
	s.current = 0
	s.score = 0
	s.remaining = s.cfg.TimeLimitSeconds
	s.finalPct = 0
	s.passed = false
	s.name = ""
	s.screen = ScreenQuiz
	s.dealChoicesLocked()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cfg.TickInterval > 0 {
		s.timer = NewCountdown(s.cfg.TickInterval, s.Tick)
	}

	var payload *ResultPayload
	if len(s.order) == 0 {
		// Degenerate bank: an exam with nothing to answer is an automatic
		// fail at 0%, never a divide by zero.
		payload = s.finishLocked()
	}
	s.mu.Unlock()

	s.emit(ScreenQuiz, nil)
	if payload != nil {
		s.emit(ScreenResult, payload)
	}
	return nil
}

// Answer records the choice at the displayed position for the current
// question and advances. Answering the last question ends the quiz.
func (s *ExamSession) Answer(displayed int) error {
	s.mu.Lock()
	if s.screen != ScreenQuiz {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	if displayed < 0 || displayed >= len(s.dealt) {
		s.mu.Unlock()
		return ErrChoiceOutOfRange
	}

	actual := s.dealt[displayed]
	if s.order[s.current].Choices[actual].Correct {
		s.score++
	}
	s.current++

	var payload *ResultPayload
	if s.current == len(s.order) {
		payload = s.finishLocked()
	} else {
		s.dealChoicesLocked()
	}
	s.mu.Unlock()

	if payload != nil {
		s.emit(ScreenResult, payload)
	}
	return nil
}

// Tick is one second elapsing. Outside the quiz screen it is a no-op, which
// makes a late tick after the quiz ended (or a double expiry) harmless.
func (s *ExamSession) Tick() {
	s.mu.Lock()
	if s.screen != ScreenQuiz {
		s.mu.Unlock()
		return
	}

	s.remaining--
	var payload *ResultPayload
	if s.remaining <= 0 {
		s.remaining = 0
		payload = s.finishLocked()
	}
	s.mu.Unlock()

	if payload != nil {
		s.emit(ScreenResult, payload)
	}
}

// GenerateCertificate performs Result -> Certificate. Only a passed run may
// proceed, and only with a non-empty display name; rejections leave the
// session untouched so the examinee can be re-prompted.
func (s *ExamSession) GenerateCertificate(name string) (*ResultPayload, error) {
	s.mu.Lock()
	if s.screen != ScreenResult {
		s.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	if !s.passed {
		s.mu.Unlock()
		return nil, ErrNotPassed
	}
	name = strings.TrimSpace(name)
	if name == "" {
		s.mu.Unlock()
		return nil, ErrNameRequired
	}

	s.name = name
	s.screen = ScreenCertificate
	payload := s.payloadLocked()
	s.mu.Unlock()

	s.emit(ScreenCertificate, payload)
	return payload, nil
}

// Restart unconditionally returns to Start with every session field
// cleared. Re-entering the quiz goes through the throttle again.
func (s *ExamSession) Restart() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.screen = ScreenStart
	s.order = nil
	s.dealt = nil
	s.current = 0
	s.score = 0
	s.remaining = 0
	s.finalPct = 0
	s.passed = false
	s.name = ""
	s.completedAt = time.Time{}
	s.mu.Unlock()

	s.emit(ScreenStart, nil)
}

// Snapshot returns a consistent copy of the observable state.
func (s *ExamSession) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:                s.ID,
		Screen:            s.screen,
		Email:             s.email,
		Name:              s.name,
		RemainingSeconds:  s.remaining,
		Score:             s.score,
		FinalScorePct:     s.finalPct,
		Passed:            s.passed,
		QuestionsTotal:    len(s.order),
		QuestionsAnswered: s.current,
		CompletedAt:       s.completedAt,
	}
	if s.screen == ScreenQuiz && s.current < len(s.order) {
		q := s.order[s.current]
		view := &QuestionView{
			Index:   s.current,
			Total:   len(s.order),
			Prompt:  q.Prompt,
			Choices: make([]string, len(s.dealt)),
		}
		for pos, idx := range s.dealt {
			view.Choices[pos] = q.Choices[idx].Text
		}
		snap.Question = view
	}
	return snap
}

// Result returns the final payload, or ErrInvalidTransition before the quiz
// has ended.
func (s *ExamSession) Result() (*ResultPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenResult && s.screen != ScreenCertificate {
		return nil, ErrInvalidTransition
	}
	return s.payloadLocked(), nil
}

// dealChoicesLocked draws a fresh permutation of the current question's
// choices. Each question gets its own dealt order, independent of the
// question shuffle.
func (s *ExamSession) dealChoicesLocked() {
	if s.current < len(s.order) {
		s.dealt = s.rng.Perm(len(s.order[s.current].Choices))
	} else {
		s.dealt = nil
	}
}

// finishLocked performs Quiz -> Result exactly once: stops the countdown,
// scores the run (unanswered questions count as wrong) and stamps the
// completion time. Callers emit the returned payload after unlocking.
func (s *ExamSession) finishLocked() *ResultPayload {
	if s.screen != ScreenQuiz {
		return nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if len(s.order) > 0 {
		s.finalPct = int(math.Round(100 * float64(s.score) / float64(len(s.order))))
	} else {
		s.finalPct = 0
	}
	s.passed = len(s.order) > 0 && s.finalPct >= s.cfg.PassingScorePct
	s.completedAt = s.clock()
	s.screen = ScreenResult
	s.dealt = nil
	return s.payloadLocked()
}

func (s *ExamSession) payloadLocked() *ResultPayload {
	return &ResultPayload{
		Name:              s.name,
		Email:             s.email,
		FinalScorePct:     s.finalPct,
		Passed:            s.passed,
		CompletionDate:    s.completedAt,
		QuestionsTotal:    len(s.order),
		QuestionsAnswered: s.current,
	}
}

func (s *ExamSession) emit(screen Screen, payload *ResultPayload) {
	if s.listener != nil {
		s.listener(screen, payload)
	}
}

// shuffleQuestions returns a Fisher-Yates shuffled copy; the source slice
// is never reordered in place.
func shuffleQuestions(questions []model.Question, r *rand.Rand) []model.Question {
	shuffled := make([]model.Question, len(questions))
	copy(shuffled, questions)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
