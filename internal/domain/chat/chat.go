package chat

import (
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type MessageType string

const (
	TypeText  MessageType = "text"
	TypeVoice MessageType = "voice"
	TypeImage MessageType = "image"
)

type MessageStatus string

const (
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
)

const (
	VoiceDuration    = "0:03"
	VoicePreviewText = "Tin nhắn thoại (0:03)"
	ImagePreviewText = "Hình ảnh"
)

type Message struct {
	Text          string        `json:"text"`
	Time          string        `json:"time"`
	IsSentByUser  bool          `json:"isSentByUser"`
	Type          MessageType   `json:"type"`
	VoiceDuration string        `json:"voiceDuration,omitempty"`
	ImageURL      string        `json:"imageUrl,omitempty"`
	Status        MessageStatus `json:"status"`
}

type Group struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Avatar          string    `json:"avatar"`
	Online          bool      `json:"online"`
	UnreadCount     int       `json:"unreadCount"`
	LastMessage     string    `json:"lastMessage,omitempty"`
	LastMessageTime string    `json:"lastMessageTime,omitempty"`
	Messages        []Message `json:"messages"`
}

// Summary drops the message history for list views.
func (g Group) Summary() Group {
	g.Messages = nil
	return g
}

// Append adds m and refreshes the preview fields.
func (g *Group) Append(m Message) {
	g.Messages = append(g.Messages, m)
	g.LastMessageTime = m.Time

	switch m.Type {
	case TypeVoice:
		g.LastMessage = VoicePreviewText
	case TypeImage:
		if m.Text != "" {
			g.LastMessage = m.Text
		} else {
			g.LastMessage = ImagePreviewText
		}
	default:
		g.LastMessage = m.Text
	}
}

// Outgoing builds a user message. Voice notes are fixed-length clips.
func Outgoing(kind MessageType, text, imageURL, clock string) (Message, error) {
	m := Message{
		Time:         clock,
		IsSentByUser: true,
		Type:         kind,
		Status:       StatusSent,
	}

	switch kind {
	case TypeText, "":
		m.Type = TypeText
		m.Text = strings.TrimSpace(text)
		if m.Text == "" {
			return Message{}, httperr.ErrBusiness("empty_message")
		}
	case TypeVoice:
		m.VoiceDuration = VoiceDuration
	case TypeImage:
		if strings.TrimSpace(imageURL) == "" {
			return Message{}, httperr.ErrBusiness("missing_image")
		}
		m.ImageURL = imageURL
		m.Text = strings.TrimSpace(text)
	default:
		return Message{}, httperr.ErrBusiness("invalid_message_type")
	}
	return m, nil
}

// Matches is a case-insensitive match on name or last message.
func (g Group) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(g.Name), q) ||
		strings.Contains(strings.ToLower(g.LastMessage), q)
}

var AutoReplies = []string{
	"Vâng, tôi hiểu rồi!",
	"Cảm ơn bạn đã liên hệ!",
	"Chúng tôi sẽ xem xét yêu cầu của bạn.",
	"Bạn có thể đến cửa hàng vào giờ đã hẹn nhé!",
	"Chúng tôi rất vui được phục vụ bạn!",
}

func Reply(text, clock string) Message {
	return Message{
		Text:   text,
		Time:   clock,
		Type:   TypeText,
		Status: StatusRead,
	}
}
