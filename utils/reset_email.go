package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendPasswordResetEmail mails a reset link to an admin. When SMTP is not
// configured the message is logged instead so local setups keep working.
func SendPasswordResetEmail(recipientEmail, resetLink string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] password reset to:%s link:%s", recipientEmail, resetLink)
		return nil
	}

	resetLink = strings.ReplaceAll(strings.TrimSpace(resetLink), "\r\n", " ")
	if !(strings.HasPrefix(resetLink, "http://") || strings.HasPrefix(resetLink, "https://")) {
		resetLink = "https://" + strings.TrimLeft(resetLink, "/")
	}

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipientEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := "Reset your admin password"
	boundary := "----=_RESET_EMAIL_BOUNDARY"

	plainBody := fmt.Sprintf(
		"A password reset was requested for your admin account.\n\n"+
			"Use the link below within one hour to choose a new password:\n%s\n\n"+
			"If you did not request this, you can ignore this email.\n",
		resetLink,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Password reset</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.btn { display:inline-block; padding:12px 20px; background:#0b74ff; color:#fff; text-decoration:none; border-radius:6px; margin-top:16px; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Password reset</h2>
    <p>A password reset was requested for your admin account.</p>
    <p>The link is valid for one hour.</p>
    <a class="btn" href="%s" target="_blank">Choose a new password</a>
    <p>If you did not request this, you can ignore this email.</p>
  </div>
</div>
</body>
</html>`,
		resetLink,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("Failed to send reset email to %s: %v", recipientEmail, err)
		return err
	}

	log.Printf("Reset email sent to %s", recipientEmail)
	return nil
}
