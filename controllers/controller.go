package controllers

import (
	"os"

	"ministrysms/config"
	"ministrysms/tools"

	"github.com/gin-gonic/gin"
)

var conf config.Configuration

// SetConfiguration hands the loaded config to the handlers (same pattern as
// db.SetConfigurations).
func SetConfiguration(configuration config.Configuration) {
	conf = configuration
}

// Account endpoints answer in the {"success": ..., "message"|"error": ...,
// "redirect_url": ...} shape the frontend consumes.
func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"success": false, "error": msg})
}

func RespondSuccess(c *gin.Context, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = true
	c.JSON(200, payload)
}

func celcomClient() tools.CelcomClient {
	return tools.CelcomClient{
		PartnerID:  conf.Sms.PartnerID,
		ApiKey:     conf.Sms.ApiKey,
		SendURL:    conf.Sms.SendURL,
		BalanceURL: conf.Sms.BalanceURL,
	}
}

// MailSender is what the handlers need from the outgoing mail layer.
// tools.Mailer implements it; tests swap in a fake via SetMailSender.
type MailSender interface {
	SendPinCode(to, code string) error
}

var mailSender MailSender

// SetMailSender overrides the SMTP-backed sender. Passing nil restores the
// default built from the configuration.
func SetMailSender(m MailSender) {
	mailSender = m
}

func mailer() MailSender {
	if mailSender != nil {
		return mailSender
	}
	return tools.Mailer{
		Host:     conf.Email.Host,
		Port:     conf.Email.Port,
		Username: conf.Email.Username,
		Password: conf.Email.Password,
		From:     conf.Email.From,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
