package model

// Choice is one selectable answer for a question.
type Choice struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question is a single multiple-choice question from the bank. The bank is
// loaded once at startup and never mutated afterwards; sessions only ever
// hold shuffled copies of the slice, not of the records themselves.
type Question struct {
	Prompt  string   `json:"question"`
	Choices []Choice `json:"answers"`
}

// CorrectIndex returns the position of the first correct choice, or -1.
// Bank data is expected to carry exactly one correct choice per question;
// violations are warned about at load time, not rejected.
func (q Question) CorrectIndex() int {
	for i, c := range q.Choices {
		if c.Correct {
			return i
		}
	}
	return -1
}
