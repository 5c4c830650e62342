package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/fee-payment-service/pkg/utils"
)

var resultPage = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Message}}</p>
{{- if .TransactionUUID}}
<p>Transaction: <code>{{.TransactionUUID}}</code></p>
{{- end}}
{{- if .TotalAmount}}
<p>Amount: NPR {{.TotalAmount}}</p>
{{- end}}
{{- if .GatewayRef}}
<p>Reference: <code>{{.GatewayRef}}</code></p>
{{- end}}
{{- if .RetryURL}}
<p><a href="{{.RetryURL}}">Try again</a></p>
{{- end}}
<p><a href="{{.DashboardURL}}">Back to fees</a></p>
</body>
</html>
`))

type page struct {
	Title           string
	Message         string
	TransactionUUID string
	TotalAmount     string
	GatewayRef      string
	RetryURL        string
	DashboardURL    string
}

func (h *HTTPHandler) writePage(w http.ResponseWriter, p page, code int) {
	p.DashboardURL = h.dashboardURL

	var buf bytes.Buffer
	if err := resultPage.Execute(&buf, p); err != nil {
		h.logger.Error("failed to render page", slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteHTML(w, &buf, code)
}
