package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"envelope/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/note-sub"

// noteMessage is a note event ready for any transport.
type noteMessage struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func encodeNoteEvent(event *service.NoteEvent) (noteMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return noteMessage{}, errors.Wrap(err, "encode note event")
	}

	attributes := map[string]string{
		"note_id":  event.NoteID,
		"owner_id": event.OwnerID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	// Events of one owner are delivered in publish order
	return noteMessage{data: data, attributes: attributes, orderingKey: event.OwnerID}, nil
}

// PushMessage mirrors the body Google Pub/Sub sends to push subscribers
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
		OrderingKey string            `json:"orderingKey,omitempty"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func (m noteMessage) push(publishedAt time.Time) PushMessage {
	var push PushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(m.data)
	push.Message.Attributes = m.attributes
	push.Message.MessageID = uuid.NewString()
	push.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)
	push.Message.OrderingKey = m.orderingKey

	return push
}
