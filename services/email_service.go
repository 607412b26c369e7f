package services

import (
	"context"
	"fmt"
	"mesalink_server/database"
	"mesalink_server/lib"
	"mesalink_server/structs"
	"mesalink_server/structs/tables"
	"net/url"
	"strings"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	emailClient     *resend.Client
	emailClientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
	db     *database.DB
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		db:     db,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	emailClientOnce.Do(func() {
		emailClient = resend.NewClient(apiKey)
	})
	return emailClient
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// RelayDemoRequest forwards a demo enquiry to the sales inbox. The enquiry
// is persisted before the relay attempt, so nothing is lost when the relay
// is down; in that case the caller gets a prebuilt mailto link instead.
func (es *EmailService) RelayDemoRequest(ctx context.Context, input *structs.DemoRequestInput) (*structs.DemoRelayResult, error) {
	record := &tables.DemoRequest{
		BarName:     input.BarName,
		ContactName: input.ContactName,
		Email:       input.Email,
		Phone:       input.Phone,
		Location:    input.Location,
		Message:     input.Message,
		Relayed:     false,
	}

	record, err := database.Query[tables.DemoRequest](es.db).Insert(ctx, record)
	if err != nil {
		es.logger.Error("Failed to store demo request", gecho.Field("error", err), gecho.Field("email", input.Email))
		return nil, lib.MapDBError(err)
	}

	subject, body := es.demoEmailContent(input)

	if es.cfg.Email.ApiKey == "" {
		es.logger.Warn("Email relay not configured, falling back to mailto", gecho.Field("request_id", record.Id))
		return &structs.DemoRelayResult{
			Relayed:    false,
			MailtoLink: es.demoMailtoLink(input),
		}, nil
	}

	if err := es.SendEmail([]string{es.cfg.Email.DemoRecipient}, subject, body); err != nil {
		es.logger.Warn("Demo relay failed, falling back to mailto",
			gecho.Field("error", err),
			gecho.Field("request_id", record.Id),
		)
		return &structs.DemoRelayResult{
			Relayed:    false,
			MailtoLink: es.demoMailtoLink(input),
		}, nil
	}

	if _, err := database.UpdateByID[tables.DemoRequest](es.db, ctx, record.Id, map[string]any{
		"relayed": true,
	}); err != nil {
		es.logger.Warn("Failed to mark demo request as relayed", gecho.Field("error", err), gecho.Field("request_id", record.Id))
	}

	es.logger.Info("Demo request relayed",
		gecho.Field("request_id", record.Id),
		gecho.Field("bar_name", input.BarName),
	)
	return &structs.DemoRelayResult{Relayed: true}, nil
}

func (es *EmailService) demoEmailContent(input *structs.DemoRequestInput) (subject, body string) {
	subject = fmt.Sprintf("Demo request: %s", input.BarName)

	body = fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #1a1a2e; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.detail { padding: 5px 0; border-bottom: 1px solid #eee; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>New demo request</h1>
				</div>
				<div class="content">
					<p class="detail"><strong>Bar:</strong> %s</p>
					<p class="detail"><strong>Contact:</strong> %s</p>
					<p class="detail"><strong>Email:</strong> %s</p>
					<p class="detail"><strong>Phone:</strong> %s</p>
					<p class="detail"><strong>Location:</strong> %s</p>
					<p><strong>Message:</strong></p>
					<p>%s</p>
				</div>
			</div>
		</body>
		</html>
	`, input.BarName, input.ContactName, input.Email, input.Phone, input.Location, input.Message)

	return subject, body
}

// demoMailtoLink builds the fallback link the landing page opens when the
// relay is unreachable
func (es *EmailService) demoMailtoLink(input *structs.DemoRequestInput) string {
	subject := fmt.Sprintf("Demo request: %s", input.BarName)
	body := fmt.Sprintf("Bar: %s\nContact: %s\nEmail: %s\nPhone: %s\nLocation: %s\n\n%s",
		input.BarName, input.ContactName, input.Email, input.Phone, input.Location, input.Message)

	// mailto handlers expect %20, not the + form encoding produces
	query := fmt.Sprintf("subject=%s&body=%s",
		url.QueryEscape(subject), url.QueryEscape(body))
	query = strings.ReplaceAll(query, "+", "%20")

	return fmt.Sprintf("mailto:%s?%s", es.cfg.Email.DemoRecipient, query)
}
