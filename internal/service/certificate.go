package service

import (
	"fmt"
	"html/template"
	"strings"
)

// CertificateRenderer produces the printable certificate view for a passed
// exam. A collaborator of the session core: the core hands it the result
// payload and takes back opaque markup.
type CertificateRenderer interface {
	Render(payload ResultPayload) (string, error)
}

const certificateTemplate = `<div class="certificate">
  <div class="cert-header">
    <h1>Certificate of Completion</h1>
    <h2>SOFA Driver's License Training</h2>
  </div>
  <div class="cert-body">
    <p>This certifies that</p>
    <h2 class="cert-name">{{.Name}}</h2>
    <p>has successfully completed the SOFA driver's license written examination with a passing score of <strong>{{.FinalScorePct}}</strong>%.</p>
    <p>Date of Completion: <span>{{.Date}}</span></p>
  </div>
  <div class="cert-footer">
    <p>This certificate is required for the next step of the licensing process.</p>
  </div>
</div>`

type htmlCertificateRenderer struct {
	tmpl *template.Template
}

func NewCertificateRenderer() CertificateRenderer {
	return &htmlCertificateRenderer{
		tmpl: template.Must(template.New("certificate").Parse(certificateTemplate)),
	}
}

func (r *htmlCertificateRenderer) Render(payload ResultPayload) (string, error) {
	data := struct {
		Name          string
		FinalScorePct int
		Date          string
	}{
		Name:          payload.Name,
		FinalScorePct: payload.FinalScorePct,
		Date:          payload.CompletionDate.Format("January 2, 2006"),
	}

	var buf strings.Builder
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render certificate: %w", err)
	}
	return buf.String(), nil
}
