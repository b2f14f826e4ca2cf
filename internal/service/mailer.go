//go:generate mockery --name Mailer --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"go_5_pixel_ledger/internal/config"
	"go_5_pixel_ledger/internal/middleware"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// --- LogMailer ---

// LogMailer は送信せずに内容をログに出すだけの Mailer (開発用)
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", slog.String("to", to), slog.String("subject", subject), slog.String("body", body))
	return nil
}

// --- SmtpMailer ---

// SmtpMailer は認証なしの SMTP サーバー (mailhog など) に送信する Mailer
type SmtpMailer struct {
	cfg *config.SMTPConfig
}

func NewSmtpMailer(cfg *config.SMTPConfig) *SmtpMailer {
	return &SmtpMailer{cfg: cfg}
}

func (m *SmtpMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	logger.Debug("Attempting to send email via SMTP", slog.String("smtp_addr", addr), slog.String("to", to))

	c, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("SmtpMailer.Send: dial %s: %w", addr, err)
	}
	defer c.Close()

	if err = c.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("SmtpMailer.Send: MAIL FROM: %w", err)
	}
	if err = c.Rcpt(to); err != nil {
		return fmt.Errorf("SmtpMailer.Send: RCPT TO: %w", err)
	}

	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("SmtpMailer.Send: DATA: %w", err)
	}

	msg := "From: " + m.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n"

	if _, err = wc.Write([]byte(msg)); err != nil {
		wc.Close()
		return fmt.Errorf("SmtpMailer.Send: write: %w", err)
	}
	if err = wc.Close(); err != nil {
		return fmt.Errorf("SmtpMailer.Send: close data: %w", err)
	}

	logger.Info("Email sent successfully via SMTP", slog.String("to", to), slog.String("subject", subject))
	return c.Quit()
}

// NewMailer は mailer.type に応じた Mailer を返します。不明な種類は LogMailer
func NewMailer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Mailer, error) {
	switch cfg.Mailer.Type {
	case "smtp":
		logger.Info("Initializing SMTP mailer", slog.String("host", cfg.SMTP.Host))
		return NewSmtpMailer(&cfg.SMTP), nil
	case "ses":
		logger.Info("Initializing SES mailer", slog.String("region", cfg.SES.Region))
		return NewSESMailer(ctx, &cfg.SES, logger)
	case "log", "":
		logger.Info("Initializing Log mailer")
		return &LogMailer{}, nil
	default:
		logger.Warn("Unknown mailer type, defaulting to LogMailer", slog.String("type", cfg.Mailer.Type))
		return &LogMailer{}, nil
	}
}

// welcomeMail は登録完了メールの件名と本文を返します。
func welcomeMail(name string) (string, string) {
	subject := "PixelPlay へようこそ"
	body := fmt.Sprintf("%s さん\n\nPixelPlay へのご登録ありがとうございます。\n"+
		"初期アイテムと 100 コインをプレゼントしました。さっそくゲームで経験値を集めましょう！", name)
	return subject, body
}
