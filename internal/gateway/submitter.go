package gateway

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/entities"
	"github.com/SergeyBogomolovv/fee-payment-service/pkg/utils"
)

var redirectPage = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Redirecting to payment</title></head>
<body onload="document.forms[0].submit()">
<form method="POST" action="{{.Endpoint}}">
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

// Submitter writes a page that posts the form to the gateway as soon as it
// loads, taking the browser off this origin.
type Submitter struct {
	endpoint string
}

func NewSubmitter(endpoint string) *Submitter {
	return &Submitter{endpoint: endpoint}
}

// Render fails before anything is written, so callers can still answer with
// an error.
func (s *Submitter) Render(w http.ResponseWriter, form EsewaForm) error {
	var buf bytes.Buffer
	data := struct {
		Endpoint string
		Fields   []Field
	}{
		Endpoint: s.endpoint,
		Fields:   form.Fields(),
	}
	if err := redirectPage.Execute(&buf, data); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrSubmission, err)
	}

	return utils.WriteHTML(w, &buf, http.StatusOK)
}
