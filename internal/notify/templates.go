package notify

import (
	"bytes"
	"html/template"
	"time"
)

var receivedTmpl = template.Must(template.New("applicationReceived").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #2563eb; color: white; padding: 20px; text-align: center;">
      <h1>Debo Engineering</h1>
    </div>
    <div style="background: #f9fafb; padding: 20px;">
      <h2>Application Received</h2>
      <p>Dear <strong>{{.FirstName}}</strong>,</p>
      <p>Thank you for applying for the <strong>{{.JobTitle}}</strong> position at Debo Engineering.</p>
      <p>We have received your application and will review it carefully. Our team will contact you if your qualifications match our requirements.</p>
      <p><strong>Application Details:</strong></p>
      <ul>
        <li>Position: {{.JobTitle}}</li>
        <li>Applied on: {{.Date}}</li>
        <li>Reference ID: {{.ReferenceID}}</li>
      </ul>
      <p>You can check your application status anytime through your dashboard.</p>
    </div>
    <div style="background: #e5e7eb; padding: 15px; text-align: center; font-size: 12px;">
      <p>This is an automated message, please do not reply to this email.</p>
    </div>
  </div>
</body>
</html>`))

var statusTmpl = template.Must(template.New("applicationStatusUpdate").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #2563eb; color: white; padding: 20px; text-align: center;">
      <h1>Debo Engineering</h1>
    </div>
    <div style="background: #f9fafb; padding: 20px;">
      <h2>Application Status Update</h2>
      <p>Dear <strong>{{.FirstName}}</strong>,</p>
      <div style="padding: 10px; text-align: center; border-radius: 5px; margin: 15px 0; color: white; background: #f59e0b;">
        <h3>Status: {{.Status}}</h3>
      </div>
      <p>Your application for <strong>{{.JobTitle}}</strong> has been updated.</p>
      {{if .AdminNotes}}<p><strong>Notes from our team:</strong><br>{{.AdminNotes}}</p>{{end}}
      <p><strong>Application Details:</strong></p>
      <ul>
        <li>Position: {{.JobTitle}}</li>
        <li>Status: {{.Status}}</li>
        <li>Updated on: {{.Date}}</li>
      </ul>
    </div>
    <div style="background: #e5e7eb; padding: 15px; text-align: center; font-size: 12px;">
      <p>This is an automated message, please do not reply to this email.</p>
    </div>
  </div>
</body>
</html>`))

func renderReceived(msg ReceivedEmail) (string, error) {
	var buf bytes.Buffer
	err := receivedTmpl.Execute(&buf, struct {
		ReceivedEmail
		Date string
	}{msg, time.Now().Format("2006-01-02")})
	return buf.String(), err
}

func renderStatus(msg StatusEmail) (string, error) {
	var buf bytes.Buffer
	err := statusTmpl.Execute(&buf, struct {
		StatusEmail
		Date string
	}{msg, time.Now().Format("2006-01-02")})
	return buf.String(), err
}
