package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sofatesting/Sofa-Driving-Test/config"
)

// Notifier turns a finished exam into an outbound results message. The
// session core hands over the payload and never builds transport strings
// itself.
type Notifier interface {
	// ComposeResultLink builds the mailto draft link the examinee opens to
	// send their result to the registration office.
	ComposeResultLink(payload ResultPayload) string
	// Notify announces the result on this side (log record). The actual
	// email is sent by the examinee through the composed draft.
	Notify(payload ResultPayload) error
}

type mailtoNotifier struct {
	recipient string
}

func NewNotifier(cfg *config.Config) Notifier {
	return &mailtoNotifier{recipient: cfg.Exam.ResultRecipient}
}

func (n *mailtoNotifier) ComposeResultLink(payload ResultPayload) string {
	status := "FAILED"
	if payload.Passed {
		status = "PASSED"
	}
	subject := fmt.Sprintf("SOFA Driver's Test Result for %s", payload.Name)

	var body strings.Builder
	body.WriteString("This email contains the test results for a SOFA Driver's License prerequisite exam.\n\n")
	body.WriteString("--- TEST TAKER INFORMATION ---\n")
	fmt.Fprintf(&body, "Name: %s\nEmail: %s\n\n", payload.Name, payload.Email)
	body.WriteString("--- TEST RESULT ---\n")
	fmt.Fprintf(&body, "Final Score: %d%%\nStatus: %s\n\n", payload.FinalScorePct, status)
	body.WriteString("--- CERTIFICATE OF COMPLETION ---\n")
	fmt.Fprintf(&body, "This certifies that %s has successfully completed the SOFA driver's license written examination.\n", payload.Name)
	fmt.Fprintf(&body, "Score: %d%%\nDate of Completion: %s\n", payload.FinalScorePct, payload.CompletionDate.Format("1/2/2006"))
	body.WriteString("------------------------------------\n\n")
	body.WriteString("This email was generated by the user from the SOFA testing service.")

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", n.recipient, mailtoEscape(subject), mailtoEscape(body.String()))
}

func (n *mailtoNotifier) Notify(payload ResultPayload) error {
	log.Info().
		Str("name", payload.Name).
		Str("email", payload.Email).
		Int("finalScorePct", payload.FinalScorePct).
		Bool("passed", payload.Passed).
		Time("completionDate", payload.CompletionDate).
		Msg("Exam result dispatched")
	return nil
}

// mailtoEscape percent-encodes for a mailto query component. QueryEscape's
// '+' for spaces is not understood by mail clients, so spaces become %20.
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
