package email

import (
	"bytes"
	"html/template"
)

// TemplateManager holds the parsed email templates.
type TemplateManager struct {
	activationTmpl *template.Template
	resetPassTmpl  *template.Template
}

// NewTemplateManager parses all email templates at startup so a broken
// template fails the boot instead of the first signup.
func NewTemplateManager() (*TemplateManager, error) {
	activationTmpl, err := template.New("activation").Parse(accountActivationTemplate)
	if err != nil {
		return nil, err
	}

	resetPassTmpl, err := template.New("resetPassword").Parse(passwordResetTemplate)
	if err != nil {
		return nil, err
	}

	return &TemplateManager{
		activationTmpl: activationTmpl,
		resetPassTmpl:  resetPassTmpl,
	}, nil
}

// TemplateData holds the dynamic data for an email template.
type TemplateData struct {
	Name string
	Link string
}

// GenerateActivateAccountEmailHTML executes the activation template.
func (tm *TemplateManager) GenerateActivateAccountEmailHTML(data TemplateData) (string, error) {
	var body bytes.Buffer
	if err := tm.activationTmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// GenerateResetPasswordEmailHTML executes the password reset template.
func (tm *TemplateManager) GenerateResetPasswordEmailHTML(data TemplateData) (string, error) {
	var body bytes.Buffer
	if err := tm.resetPassTmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

const accountActivationTemplate = `
<!DOCTYPE html>
<html>
<head>
	<title>Activate Your CommuteSync Account</title>
</head>
<body style="font-family: Arial, sans-serif;">
	<h2>Welcome aboard, {{.Name}}!</h2>
	<p>Thanks for signing up for CommuteSync. Click the link below to activate your account and start logging your commutes:</p>
	<p><a href="{{.Link}}">Activate Account</a></p>
	<p>This link will expire in 30 minutes.</p>
	<p>If you did not sign up, you can ignore this email.</p>
</body>
</html>
`

const passwordResetTemplate = `
<!DOCTYPE html>
<html>
<head>
	<title>Reset Your CommuteSync Password</title>
</head>
<body style="font-family: Arial, sans-serif;">
	<h2>Password Reset Request</h2>
	<p>Hello {{.Name}},</p>
	<p>We received a request to reset your CommuteSync password. Click the link below to set a new one:</p>
	<p><a href="{{.Link}}">Reset Password</a></p>
	<p>This link will expire in 15 minutes.</p>
	<p>If you did not request a reset, you can ignore this email.</p>
</body>
</html>
`
