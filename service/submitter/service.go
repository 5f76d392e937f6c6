// Package submitter posts corrections payloads to the remote endpoint and
// normalises every result, including transport errors, into a model.Outcome.
package submitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/viant/corrections/model"
	"github.com/viant/corrections/progress"
	"github.com/viant/corrections/tracing"
)

const contentTypeJSON = "application/json"

// Service submits payloads to a fixed endpoint.
type Service struct {
	endpoint string
	client   *http.Client
}

// Submit posts payload exactly once. It never returns nil and never panics.
func (s *Service) Submit(ctx context.Context, payload *model.Payload) (outcome *model.Outcome) {
	ctx, span := tracing.StartSpan(ctx, "submitter.submit", tracing.KindClient)
	span.WithAttributes(map[string]string{"endpoint": s.endpoint})
	defer func() {
		if r := recover(); r != nil {
			outcome = s.failure(span, fmt.Errorf("%v", r))
		}
		span.End()
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return s.failure(span, err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return s.failure(span, err)
	}
	request.Header.Set("Content-Type", contentTypeJSON)

	progress.UpdateCtx(ctx, progress.Delta{Requests: 1})
	response, err := s.client.Do(request)
	if err != nil {
		return s.failure(span, err)
	}
	defer response.Body.Close()
	span.SetStatusFromHTTPCode(response.StatusCode)

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return s.failure(span, err)
	}
	result, err := model.DecodeResponse(data)
	if err != nil {
		return s.failure(span, fmt.Errorf("invalid response (status %d): %w", response.StatusCode, err))
	}
	result.StatusCode = response.StatusCode

	if response.StatusCode < 200 || response.StatusCode > 299 {
		message := result.Error
		if message == "" {
			message = model.DefaultFailureMessage
		}
		log.Printf("submit rejected endpoint=%s status=%d: %s", s.endpoint, response.StatusCode, message)
		return model.NewFailure(message)
	}
	return model.NewSuccess(result)
}

func (s *Service) failure(span *tracing.Span, err error) *model.Outcome {
	span.SetStatus(err)
	log.Printf("submit error endpoint=%s: %v", s.endpoint, err)
	return model.NewFailure(err.Error())
}

// New creates a submitter for endpoint. A nil client has no timeout.
func New(endpoint string, client *http.Client) *Service {
	if client == nil {
		client = &http.Client{}
	}
	return &Service{endpoint: endpoint, client: client}
}
