package config

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
)

type Configuration struct {
	ApiPort string `json:"api_port"`

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Sms struct {
		PartnerID  string `json:"partner_id"`
		ApiKey     string `json:"api_key"`
		SendURL    string `json:"send_url"`
		BalanceURL string `json:"balance_url"`
		SenderID   string `json:"sender_id"`
	} `json:"sms"`

	Email struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"email"`
}

// Get loads the configuration file and applies env overrides for secrets,
// so credentials never have to live in config.json.
func Get(path string) Configuration {
	var c Configuration

	if b, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(b, &c); err != nil {
			log.Fatal(err)
		}
	} else {
		log.Printf("config file %s not found, using env + defaults", path)
	}

	// env overrides
	c.Sms.PartnerID = envOr("CELCOM_PARTNER_ID", c.Sms.PartnerID)
	c.Sms.ApiKey = envOr("CELCOM_API_KEY", c.Sms.ApiKey)
	c.Sms.SendURL = envOr("CELCOM_SMS_URL", c.Sms.SendURL)
	c.Sms.BalanceURL = envOr("CELCOM_BALANCE_URL", c.Sms.BalanceURL)
	c.Sms.SenderID = envOr("SMS_SENDER_ID", c.Sms.SenderID)
	c.Email.Host = envOr("SMTP_HOST", c.Email.Host)
	c.Email.Username = envOr("SMTP_USER", c.Email.Username)
	c.Email.Password = envOr("SMTP_PASS", c.Email.Password)
	c.Email.From = envOr("SMTP_FROM", c.Email.From)
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Email.Port = n
		}
	}

	// defaults
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Sms.SenderID == "" {
		c.Sms.SenderID = "BELOVEDCHKE"
	}
	if c.Email.Host == "" {
		c.Email.Host = "smtp.gmail.com"
	}
	if c.Email.Port <= 0 {
		c.Email.Port = 587
	}
	if c.Email.From == "" {
		c.Email.From = c.Email.Username
	}

	return c
}

func envOr(key, current string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return current
}
