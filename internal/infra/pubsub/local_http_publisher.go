package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "envelope/internal/delivery/context"
	"envelope/internal/domain/constants"
	domainerrors "envelope/internal/domain/errors"
	"envelope/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const localPublishTimeout = 30 * time.Second

// localHTTPPublisher posts note events to an HTTP endpoint in the shape of
// a Pub/Sub push delivery, for development without Google Cloud.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

// NewLocalHTTPPublisher creates a publisher pushing to endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPublishTimeout},
		logger:   logger,
		now:      time.Now,
	}
}

// PublishNoteEvent reports transport failures as THIRD_PARTY_ERROR and
// non-2xx answers as EXTERNAL_API_ERROR.
func (p *localHTTPPublisher) PublishNoteEvent(ctx context.Context, event *service.NoteEvent) error {
	msg, err := encodeNoteEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(msg.push(p.now()))
	if err != nil {
		return errors.Wrap(err, "encode push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return domainerrors.NewThirdPartyError(err, constants.ServiceLocalPubSub)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domainerrors.NewExternalAPIError(constants.ServiceLocalPubSub, resp.StatusCode)
	}

	deliverycontext.LoggerFrom(ctx, p.logger).Debug("Note event pushed",
		slog.String("publisher", constants.ServiceLocalPubSub),
		slog.String("note_id", event.NoteID),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
