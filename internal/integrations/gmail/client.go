package gmail

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

const apiBase = "https://gmail.googleapis.com/gmail/v1/users/me"

// Client sends and reads mail through the Gmail REST API on behalf of
// a connected user. It is constructed per request from the user's
// stored refresh token.
type Client struct {
	httpClient *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// OutgoingMessage is the application-side shape of a message to send.
type OutgoingMessage struct {
	From        string
	To          string
	Subject     string
	HTMLBody    string
	TextBody    string
	Attachments []Attachment

	// Reply threading; both empty for a fresh message.
	ThreadID  string
	InReplyTo string // Message-ID header of the message being replied to
}

type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// SendResult carries the ids Gmail assigned to a sent message.
type SendResult struct {
	MessageID string
	ThreadID  string
}

// ThreadMessage is one message in a fetched thread.
type ThreadMessage struct {
	ID        string
	From      string
	Subject   string
	Snippet   string
	MessageID string // RFC822 Message-ID header
	Date      time.Time
}

// Send builds the RFC822 payload, base64url-encodes it, and posts it
// to users.messages.send.
func (c *Client) Send(ctx context.Context, msg *OutgoingMessage) (*SendResult, error) {
	raw, err := buildRFC822(msg)
	if err != nil {
		return nil, err
	}

	body := map[string]string{
		"raw": base64.URLEncoding.EncodeToString(raw),
	}
	if msg.ThreadID != "" {
		body["threadId"] = msg.ThreadID
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiBase+"/messages/send", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gmail send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gmail send failed (%d): %s", resp.StatusCode, string(detail))
	}

	var sent struct {
		ID       string `json:"id"`
		ThreadID string `json:"threadId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sent); err != nil {
		return nil, err
	}
	return &SendResult{MessageID: sent.ID, ThreadID: sent.ThreadID}, nil
}

// GetThread fetches a thread with metadata headers for reply
// reconciliation.
func (c *Client) GetThread(ctx context.Context, threadID string) ([]ThreadMessage, error) {
	url := fmt.Sprintf("%s/threads/%s?format=metadata&metadataHeaders=From&metadataHeaders=Subject&metadataHeaders=Message-ID&metadataHeaders=Date", apiBase, threadID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gmail thread fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gmail thread fetch failed (%d): %s", resp.StatusCode, string(detail))
	}

	var thread struct {
		Messages []struct {
			ID      string `json:"id"`
			Snippet string `json:"snippet"`
			Payload struct {
				Headers []struct {
					Name  string `json:"name"`
					Value string `json:"value"`
				} `json:"headers"`
			} `json:"payload"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&thread); err != nil {
		return nil, err
	}

	messages := make([]ThreadMessage, 0, len(thread.Messages))
	for _, m := range thread.Messages {
		tm := ThreadMessage{ID: m.ID, Snippet: m.Snippet}
		for _, h := range m.Payload.Headers {
			switch h.Name {
			case "From":
				tm.From = h.Value
			case "Subject":
				tm.Subject = h.Value
			case "Message-ID":
				tm.MessageID = h.Value
			case "Date":
				if ts, err := parseMailDate(h.Value); err == nil {
					tm.Date = ts
				}
			}
		}
		messages = append(messages, tm)
	}
	return messages, nil
}

func parseMailDate(v string) (time.Time, error) {
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, "Mon, 2 Jan 2006 15:04:05 -0700"} {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %s", v)
}

// buildRFC822 assembles a multipart MIME message. Replies carry
// In-Reply-To/References so mail clients keep the conversation
// together.
func buildRFC822(msg *OutgoingMessage) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", msg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	if msg.InReplyTo != "" {
		fmt.Fprintf(&buf, "In-Reply-To: %s\r\n", msg.InReplyTo)
		fmt.Fprintf(&buf, "References: %s\r\n", msg.InReplyTo)
	}
	buf.WriteString("MIME-Version: 1.0\r\n")

	writer := multipart.NewWriter(&buf)
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", writer.Boundary())

	// Alternative part: text + html
	altWriter := multipart.NewWriter(nil)
	altHeader := textproto.MIMEHeader{}
	altHeader.Set("Content-Type", fmt.Sprintf("multipart/alternative; boundary=%s", altWriter.Boundary()))
	altPart, err := writer.CreatePart(altHeader)
	if err != nil {
		return nil, err
	}

	altBody := multipart.NewWriter(altPart)
	if err := altBody.SetBoundary(altWriter.Boundary()); err != nil {
		return nil, err
	}
	if msg.TextBody != "" {
		textHeader := textproto.MIMEHeader{}
		textHeader.Set("Content-Type", "text/plain; charset=UTF-8")
		part, err := altBody.CreatePart(textHeader)
		if err != nil {
			return nil, err
		}
		if _, err := io.WriteString(part, msg.TextBody); err != nil {
			return nil, err
		}
	}
	htmlHeader := textproto.MIMEHeader{}
	htmlHeader.Set("Content-Type", "text/html; charset=UTF-8")
	part, err := altBody.CreatePart(htmlHeader)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(part, msg.HTMLBody); err != nil {
		return nil, err
	}
	if err := altBody.Close(); err != nil {
		return nil, err
	}

	for _, att := range msg.Attachments {
		header := textproto.MIMEHeader{}
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		header.Set("Content-Transfer-Encoding", "base64")
		header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, att.Filename))

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, err
		}
		encoded := base64.StdEncoding.EncodeToString(att.Content)
		for len(encoded) > 0 {
			n := 76
			if n > len(encoded) {
				n = len(encoded)
			}
			if _, err := io.WriteString(part, encoded[:n]+"\r\n"); err != nil {
				return nil, err
			}
			encoded = encoded[n:]
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// SubjectWithReplyPrefix normalises a reply subject.
func SubjectWithReplyPrefix(subject string) string {
	if strings.HasPrefix(strings.ToLower(subject), "re:") {
		return subject
	}
	return "Re: " + subject
}
