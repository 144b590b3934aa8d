package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/config"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/integrations/ai"
	"outreachai_backend/internal/integrations/gmail"
	"outreachai_backend/internal/logger"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/pkg/email"
	"outreachai_backend/internal/repositories"
	"outreachai_backend/internal/storage"
	"outreachai_backend/internal/tracking"

	"github.com/google/uuid"
)

const (
	defaultMaxTokens     = 1200
	defaultBulkDelayMS   = 2000
	promptDocumentLimit  = 4000 // chars of extracted text per document fed to the model
	draftSubjectFallback = "Reaching out"
)

type EmailService interface {
	Generate(ctx context.Context, userID string, req *dto.GenerateEmailRequest) (*dto.EmailResponse, error)
	Get(id, userID string) (*dto.EmailResponse, error)
	List(userID string, status models.EmailStatus, page, size int) ([]dto.EmailResponse, int64, error)
	ListByRecipient(recipientID, userID string) ([]dto.EmailResponse, error)
	Update(id, userID string, req *dto.UpdateEmailRequest) (*dto.EmailResponse, error)
	Delete(id, userID string) error
	AddAttachment(ctx context.Context, emailID, userID, filename, contentType string, reader io.Reader) (*dto.EmailResponse, error)
	Send(ctx context.Context, id, userID string) (*dto.EmailResponse, error)
	Reply(ctx context.Context, id, userID string, req *dto.ReplyEmailRequest) (*dto.EmailResponse, error)
	Thread(ctx context.Context, id, userID string) ([]dto.ThreadMessageResponse, error)
	BulkSend(ctx context.Context, userID string, req *dto.BulkSendRequest) (*dto.BulkSendResult, error)
}

type emailService struct {
	emails     repositories.EmailRepository
	recipients repositories.RecipientRepository
	documents  repositories.DocumentRepository
	profiles   repositories.ProfileRepository
	users      repositories.UserRepository
	settings   SettingsService
	store      storage.Storage
	aiClient   *ai.Client
	oauth      *gmail.OAuthProvider
	cfg        *config.Config
}

func NewEmailService(
	emails repositories.EmailRepository,
	recipients repositories.RecipientRepository,
	documents repositories.DocumentRepository,
	profiles repositories.ProfileRepository,
	users repositories.UserRepository,
	settings SettingsService,
	store storage.Storage,
	aiClient *ai.Client,
	oauth *gmail.OAuthProvider,
	cfg *config.Config,
) EmailService {
	return &emailService{
		emails:     emails,
		recipients: recipients,
		documents:  documents,
		profiles:   profiles,
		users:      users,
		settings:   settings,
		store:      store,
		aiClient:   aiClient,
		oauth:      oauth,
		cfg:        cfg,
	}
}

func (s *emailService) Generate(ctx context.Context, userID string, req *dto.GenerateEmailRequest) (*dto.EmailResponse, error) {
	recipient, err := s.recipients.FindByIDForUser(req.RecipientID, userID)
	if err != nil {
		return nil, apperrors.NotFound("Recipient")
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	var docs []models.Document
	if len(req.DocumentIDs) > 0 {
		docs, err = s.documents.FindByIDsForUser(req.DocumentIDs, userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if len(docs) != len(req.DocumentIDs) {
			return nil, apperrors.NotFound("Document")
		}
	}

	profile, _ := s.profiles.FindByUserID(userID)

	systemPrompt := "You are an assistant that drafts personalized, professional outreach emails. " +
		"Respond with a subject line on the first line prefixed with 'Subject: ', " +
		"followed by a blank line and the email body in HTML."
	userPrompt := buildPrompt(user, profile, recipient, docs, req.Tone, req.Instructions)

	maxTokens := s.settings.GetInt("ai_max_tokens", defaultMaxTokens)
	raw, err := s.aiClient.Complete(ctx, systemPrompt, userPrompt, maxTokens)
	if err != nil {
		return nil, apperrors.ExternalError("AI provider", err)
	}

	subject, bodyHTML := splitDraft(raw)

	draft := &models.GeneratedEmail{
		UserID:      userID,
		RecipientID: recipient.ID,
		Subject:     truncate(subject, 500),
		BodyHTML:    bodyHTML,
		BodyText:    stripTags(bodyHTML),
		Status:      models.EmailStatusDraft,
	}

	if err := s.emails.Create(draft); err != nil {
		return nil, apperrors.InternalError(err)
	}

	draft.Recipient = recipient
	resp := dto.NewEmailResponse(draft)
	return &resp, nil
}

func (s *emailService) Get(id, userID string) (*dto.EmailResponse, error) {
	mail, err := s.emails.FindByIDForUser(id, userID)
	if err != nil {
		return nil, apperrors.NotFound("Email")
	}
	resp := dto.NewEmailResponse(mail)
	return &resp, nil
}

func (s *emailService) List(userID string, status models.EmailStatus, page, size int) ([]dto.EmailResponse, int64, error) {
	page, size = normalizePage(page, size)

	emails, total, err := s.emails.ListByUser(userID, status, page, size)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	resp := make([]dto.EmailResponse, 0, len(emails))
	for i := range emails {
		resp = append(resp, dto.NewEmailResponse(&emails[i]))
	}
	return resp, total, nil
}

func (s *emailService) ListByRecipient(recipientID, userID string) ([]dto.EmailResponse, error) {
	if _, err := s.recipients.FindByIDForUser(recipientID, userID); err != nil {
		return nil, apperrors.NotFound("Recipient")
	}

	emails, err := s.emails.ListByRecipientForUser(recipientID, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.EmailResponse, 0, len(emails))
	for i := range emails {
		resp = append(resp, dto.NewEmailResponse(&emails[i]))
	}
	return resp, nil
}

func (s *emailService) Update(id, userID string, req *dto.UpdateEmailRequest) (*dto.EmailResponse, error) {
	mail, err := s.emails.FindByIDForUser(id, userID)
	if err != nil {
		return nil, apperrors.NotFound("Email")
	}

	if mail.IsSent() {
		return nil, apperrors.ErrEmailAlreadySent
	}

	if req.Subject != nil {
		mail.Subject = truncate(*req.Subject, 500)
	}
	if req.BodyHTML != nil {
		mail.BodyHTML = *req.BodyHTML
	}
	if req.BodyText != nil {
		mail.BodyText = *req.BodyText
	}

	if err := s.emails.Update(mail); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewEmailResponse(mail)
	return &resp, nil
}

func (s *emailService) Delete(id, userID string) error {
	mail, err := s.emails.FindByIDForUser(id, userID)
	if err != nil {
		return apperrors.NotFound("Email")
	}

	if mail.IsSent() {
		return apperrors.ErrEmailAlreadySent
	}

	if err := s.emails.Delete(id, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *emailService) AddAttachment(ctx context.Context, emailID, userID, filename, contentType string, reader io.Reader) (*dto.EmailResponse, error) {
	mail, err := s.emails.FindByIDForUser(emailID, userID)
	if err != nil {
		return nil, apperrors.NotFound("Email")
	}

	if mail.IsSent() {
		return nil, apperrors.ErrEmailAlreadySent
	}

	storedName := fmt.Sprintf("attachments/%s/%s%s", userID, uuid.NewString(), safeExtension(filename))

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.store.Save(ctx, storedName, bytes.NewReader(data), contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	att := &models.EmailAttachment{
		EmailID:     mail.ID,
		DisplayName: truncate(filename, 255),
		StoredName:  storedName,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
	}
	if err := s.emails.CreateAttachment(att); err != nil {
		return nil, apperrors.InternalError(err)
	}

	mail.Attachments = append(mail.Attachments, *att)
	resp := dto.NewEmailResponse(mail)
	return &resp, nil
}

// Send assigns the tracking identifier, rewrites the HTML body for
// open and click tracking, ships the message through Gmail or SMTP,
// and flips the draft to sent. Sent is terminal.
func (s *emailService) Send(ctx context.Context, id, userID string) (*dto.EmailResponse, error) {
	mail, err := s.emails.FindByIDForUser(id, userID)
	if err != nil {
		return nil, apperrors.NotFound("Email")
	}

	if mail.IsSent() {
		return nil, apperrors.ErrEmailAlreadySent
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	recipient := mail.Recipient
	if recipient == nil {
		recipient, err = s.recipients.FindByIDForUser(mail.RecipientID, userID)
		if err != nil {
			return nil, apperrors.NotFound("Recipient")
		}
	}

	trackingID, err := tracking.NewTrackingID()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	baseURL, _ := tracking.RuntimeBaseURL(s.settings.GetString("app_base_url", ""), s.cfg)
	trackedHTML := tracking.RewriteHTML(mail.BodyHTML, trackingID, baseURL)

	attachments, err := s.loadAttachments(ctx, mail)
	if err != nil {
		return nil, err
	}

	switch {
	case user.HasGmailConnection():
		result, err := s.sendViaGmail(ctx, user, recipient, mail.Subject, trackedHTML, mail.BodyText, attachments, "", "")
		if err != nil {
			return nil, apperrors.ExternalError("Gmail", err)
		}
		mail.Provider = models.EmailProviderGmail
		mail.GmailMessageID = result.MessageID
		mail.GmailThreadID = result.ThreadID
	case user.SMTPHost != "":
		if err := s.sendViaSMTP(user, recipient, mail.Subject, trackedHTML, mail.BodyText, attachments); err != nil {
			return nil, apperrors.ExternalError("SMTP", err)
		}
		mail.Provider = models.EmailProviderSMTP
	default:
		return nil, apperrors.ErrGmailNotConnected
	}

	now := time.Now()
	mail.TrackingID = trackingID
	mail.Status = models.EmailStatusSent
	mail.SentAt = &now

	if err := s.emails.Update(mail); err != nil {
		// The message is already out; surface the persistence failure.
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewEmailResponse(mail)
	return &resp, nil
}

func (s *emailService) Reply(ctx context.Context, id, userID string, req *dto.ReplyEmailRequest) (*dto.EmailResponse, error) {
	mail, err := s.emails.FindByIDForUser(id, userID)
	if err != nil {
		return nil, apperrors.NotFound("Email")
	}

	if !mail.IsSent() || mail.GmailThreadID == "" {
		return nil, apperrors.NewBadRequestError("Replies require a sent email with a Gmail thread")
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !user.HasGmailConnection() {
		return nil, apperrors.ErrGmailNotConnected
	}

	recipient := mail.Recipient
	if recipient == nil {
		recipient, err = s.recipients.FindByIDForUser(mail.RecipientID, userID)
		if err != nil {
			return nil, apperrors.NotFound("Recipient")
		}
	}

	// Thread the reply under the most recent message Gmail knows about.
	inReplyTo := ""
	client := gmail.NewClient(s.oauth.HTTPClient(ctx, user.GmailRefreshToken))
	if messages, err := client.GetThread(ctx, mail.GmailThreadID); err == nil && len(messages) > 0 {
		inReplyTo = messages[len(messages)-1].MessageID
	}

	bodyText := req.BodyText
	if bodyText == "" {
		bodyText = stripTags(req.BodyHTML)
	}

	result, err := s.sendViaGmail(ctx, user, recipient,
		gmail.SubjectWithReplyPrefix(mail.Subject), req.BodyHTML, bodyText, nil,
		mail.GmailThreadID, inReplyTo)
	if err != nil {
		return nil, apperrors.ExternalError("Gmail", err)
	}

	now := time.Now()
	reply := &models.GeneratedEmail{
		UserID:         userID,
		RecipientID:    mail.RecipientID,
		Subject:        gmail.SubjectWithReplyPrefix(mail.Subject),
		BodyHTML:       req.BodyHTML,
		BodyText:       bodyText,
		Status:         models.EmailStatusSent,
		Provider:       models.EmailProviderGmail,
		GmailThreadID:  mail.GmailThreadID,
		GmailMessageID: result.MessageID,
		SentAt:         &now,
	}
	if err := s.emails.Create(reply); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewEmailResponse(reply)
	return &resp, nil
}

func (s *emailService) Thread(ctx context.Context, id, userID string) ([]dto.ThreadMessageResponse, error) {
	mail, err := s.emails.FindByIDForUser(id, userID)
	if err != nil {
		return nil, apperrors.NotFound("Email")
	}

	if mail.GmailThreadID == "" {
		return nil, apperrors.NewBadRequestError("Email has no Gmail thread")
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !user.HasGmailConnection() {
		return nil, apperrors.ErrGmailNotConnected
	}

	client := gmail.NewClient(s.oauth.HTTPClient(ctx, user.GmailRefreshToken))
	messages, err := client.GetThread(ctx, mail.GmailThreadID)
	if err != nil {
		return nil, apperrors.ExternalError("Gmail", err)
	}

	resp := make([]dto.ThreadMessageResponse, 0, len(messages))
	for _, msg := range messages {
		resp = append(resp, dto.ThreadMessageResponse{
			ID:      msg.ID,
			From:    msg.From,
			Subject: msg.Subject,
			Snippet: msg.Snippet,
			Date:    msg.Date,
			IsReply: msg.ID != mail.GmailMessageID,
		})
	}
	return resp, nil
}

// BulkSend walks the requested drafts synchronously with a fixed
// inter-message delay. Per-email failures are collected and returned;
// one bad draft never aborts the rest.
func (s *emailService) BulkSend(ctx context.Context, userID string, req *dto.BulkSendRequest) (*dto.BulkSendResult, error) {
	delay := time.Duration(s.settings.GetInt("bulk_send_delay_ms", defaultBulkDelayMS)) * time.Millisecond

	result := &dto.BulkSendResult{
		Sent:   []string{},
		Failed: map[string]string{},
	}

	for i, emailID := range req.EmailIDs {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				result.Failed[emailID] = "cancelled"
				continue
			case <-time.After(delay):
			}
		}

		if _, err := s.Send(ctx, emailID, userID); err != nil {
			logger.Warn("bulk send item failed", "email_id", emailID, "error", err)
			result.Failed[emailID] = err.Error()
			continue
		}
		result.Sent = append(result.Sent, emailID)
	}

	return result, nil
}

func (s *emailService) loadAttachments(ctx context.Context, mail *models.GeneratedEmail) ([]gmail.Attachment, error) {
	var attachments []gmail.Attachment
	for _, att := range mail.Attachments {
		reader, err := s.store.Get(ctx, att.StoredName)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		content, err := io.ReadAll(reader)
		reader.Close()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		attachments = append(attachments, gmail.Attachment{
			Filename:    att.DisplayName,
			ContentType: att.ContentType,
			Content:     content,
		})
	}
	return attachments, nil
}

func (s *emailService) sendViaGmail(ctx context.Context, user *models.User, recipient *models.Recipient, subject, htmlBody, textBody string, attachments []gmail.Attachment, threadID, inReplyTo string) (*gmail.SendResult, error) {
	client := gmail.NewClient(s.oauth.HTTPClient(ctx, user.GmailRefreshToken))
	return client.Send(ctx, &gmail.OutgoingMessage{
		From:        user.GmailEmail,
		To:          recipient.Email,
		Subject:     subject,
		HTMLBody:    htmlBody,
		TextBody:    textBody,
		Attachments: attachments,
		ThreadID:    threadID,
		InReplyTo:   inReplyTo,
	})
}

func (s *emailService) sendViaSMTP(user *models.User, recipient *models.Recipient, subject, htmlBody, textBody string, attachments []gmail.Attachment) error {
	sender, err := email.NewSMTPSender(email.Config{
		Host:      user.SMTPHost,
		Port:      user.SMTPPort,
		Username:  user.SMTPUsername,
		Password:  user.SMTPPassword,
		FromEmail: user.Email,
		FromName:  user.Name,
	})
	if err != nil {
		return err
	}

	msg := &email.Message{
		From:     user.Email,
		To:       []string{recipient.Email},
		Subject:  subject,
		Body:     textBody,
		HTMLBody: htmlBody,
	}
	for _, att := range attachments {
		msg.Attachments = append(msg.Attachments, email.Attachment{
			Name:        att.Filename,
			Content:     att.Content,
			ContentType: att.ContentType,
		})
	}
	return sender.Send(msg)
}

func buildPrompt(user *models.User, profile *models.Profile, recipient *models.Recipient, docs []models.Document, tone, instructions string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Sender: %s\n", user.Name)
	if profile != nil {
		if profile.Headline != "" {
			fmt.Fprintf(&b, "Headline: %s\n", profile.Headline)
		}
		if profile.Bio != "" {
			fmt.Fprintf(&b, "About: %s\n", profile.Bio)
		}
		if skills := profile.GetSkills(); len(skills) > 0 {
			fmt.Fprintf(&b, "Skills: %s\n", strings.Join(skills, ", "))
		}
		for _, exp := range profile.GetExperience() {
			fmt.Fprintf(&b, "Experience: %s at %s — %s\n", exp.Title, exp.Company, exp.Description)
		}
	}

	fmt.Fprintf(&b, "\nRecipient: %s <%s>\n", recipient.Name, recipient.Email)
	if recipient.Organization != "" {
		fmt.Fprintf(&b, "Organization: %s\n", recipient.Organization)
	}
	if recipient.Role != "" {
		fmt.Fprintf(&b, "Role: %s\n", recipient.Role)
	}
	if recipient.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", recipient.Notes)
	}

	for _, doc := range docs {
		if doc.ExtractedText == "" {
			continue
		}
		fmt.Fprintf(&b, "\nDocument (%s, %s):\n%s\n", doc.Type, doc.DisplayName, truncate(doc.ExtractedText, promptDocumentLimit))
	}

	if tone != "" {
		fmt.Fprintf(&b, "\nTone: %s\n", tone)
	}
	if instructions != "" {
		fmt.Fprintf(&b, "\nAdditional instructions: %s\n", instructions)
	}

	b.WriteString("\nWrite the outreach email now.")
	return b.String()
}

// splitDraft separates the model's "Subject: ..." first line from the
// body. Drafts without the expected prefix keep the whole output as
// body under a fallback subject.
func splitDraft(raw string) (subject, body string) {
	raw = strings.TrimSpace(raw)
	lines := strings.SplitN(raw, "\n", 2)

	if strings.HasPrefix(strings.ToLower(lines[0]), "subject:") {
		subject = strings.TrimSpace(lines[0][len("subject:"):])
		if len(lines) > 1 {
			body = strings.TrimSpace(lines[1])
		}
		// A bare "Subject:" line is still consumed; only the
		// subject text falls back.
		if subject == "" {
			subject = draftSubjectFallback
		}
		return subject, body
	}
	return draftSubjectFallback, raw
}

// stripTags produces a crude text/plain alternative from HTML.
func stripTags(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
