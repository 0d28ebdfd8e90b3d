package email

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ferdiebergado/accountkit/internal/pkg/message"
)

const (
	envSMTPHost = "SMTP_HOST"
	envSMTPPort = "SMTP_PORT"
	envSMTPUser = "SMTP_USER"
	envSMTPPass = "SMTP_PASS"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

func NewSMTPConfig() (*SMTPConfig, error) {
	smtpHost, err := getEnv(envSMTPHost)
	if err != nil {
		return nil, err
	}

	smtpPortStr, err := getEnv(envSMTPPort)
	if err != nil {
		return nil, err
	}

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		return nil, fmt.Errorf("convert smtp port string to int: %w", err)
	}

	smtpUser, err := getEnv(envSMTPUser)
	if err != nil {
		return nil, err
	}

	smtpPass, err := getEnv(envSMTPPass)
	if err != nil {
		return nil, err
	}

	return &SMTPConfig{
		User:     smtpUser,
		Password: smtpPass,
		Host:     smtpHost,
		Port:     smtpPort,
	}, nil
}

func getEnv(envVar string) (string, error) {
	val, ok := os.LookupEnv(envVar)
	if !ok {
		return "", fmt.Errorf(message.EnvErrFmt, envVar)
	}
	return val, nil
}
