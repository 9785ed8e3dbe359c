package mailer

import (
	"fmt"
	"html/template"
	"strings"
)

var resetPasswordHTML = template.Must(template.New("reset_password").Parse(`<!doctype html>
<html>
  <body style="font-family: sans-serif;">
    <h2>Password reset requested</h2>
    <p>A password reset was requested for {{.Email}}.</p>
    <p><a href="{{.ResetURL}}">Reset your password</a></p>
    <p>If you did not request this, you can ignore this email; the link
    stops working as soon as a new reset is requested or the password is
    changed.</p>
  </body>
</html>`))

// Render renders a named template into subject, text and HTML bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "reset_password":
		var sb strings.Builder
		if err := resetPasswordHTML.Execute(&sb, data); err != nil {
			return "", "", "", err
		}
		subject = "Reset your password"
		text = fmt.Sprintf("A password reset was requested for %v. Open %v to choose a new password.", data["Email"], data["ResetURL"])
		return subject, text, sb.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
