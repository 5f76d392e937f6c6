// Package orchestrator sequences a submission: it marks the control busy,
// submits the payload and, when that fails, offers a local export.
package orchestrator

import (
	"context"
	"fmt"
	"log"

	"github.com/viant/corrections/internal/idgen"
	"github.com/viant/corrections/model"
	"github.com/viant/corrections/policy"
	"github.com/viant/corrections/progress"
	"github.com/viant/corrections/service/control"
	"github.com/viant/corrections/service/interaction"
	"github.com/viant/corrections/tracing"
)

// Submitter performs the remote submission.
type Submitter interface {
	Submit(ctx context.Context, payload *model.Payload) *model.Outcome
}

// Exporter saves a payload locally and returns the file name.
type Exporter interface {
	Export(ctx context.Context, payload *model.Payload, language string) (string, error)
}

// Service handles submissions.
type Service struct {
	submitter Submitter
	exporter  Exporter
	provider  interaction.Provider
	opener    interaction.Opener
	control   control.Control
	policy    *policy.Policy
	busyLabel string
	listener  func(progress.State)
}

type summary struct {
	id       string
	language string
	items    int
	chapters int
}

// Handle runs one submission. It always returns, whatever happens inside,
// and restores the control on every path.
func (s *Service) Handle(ctx context.Context, payload *model.Payload) {
	aSummary := summary{
		id:       idgen.New(),
		language: payload.Language(),
		items:    payload.ItemCount(),
		chapters: payload.ChapterCount(),
	}
	ctx, tracker := progress.WithNewTracker(ctx, aSummary.id, s.listener)
	ctx, span := tracing.StartSpan(ctx, "orchestrator.handle", tracing.KindInternal)
	span.WithAttributes(map[string]string{"submission.id": aSummary.id, "language": aSummary.language})
	span.SetInt("items", aSummary.items)
	span.SetInt("chapters", aSummary.chapters)

	release := control.Acquire(s.control, s.busyLabel)
	tracker.SetPhase(progress.PhaseSubmitting)
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected error: %v", r)
			log.Printf("submission id=%s %v", aSummary.id, err)
			tracker.SetPhase(progress.PhaseErrored)
			s.recoverFallback(ctx, payload, aSummary)
		}
		release()
		state := tracker.Snapshot()
		log.Printf("submission id=%s outcome=%s requests=%d exports=%d", aSummary.id, state.Outcome, state.Requests, state.Exports)
		tracker.SetPhase(progress.PhaseIdle)
		tracing.EndSpan(span, err)
	}()

	if payload == nil {
		tracker.SetPhase(progress.PhaseErrored)
		s.notify(ctx, emptyMessage)
		return
	}

	outcome := s.submitter.Submit(ctx, payload)
	switch {
	case outcome.IsSuccess():
		tracker.SetPhase(progress.PhaseSucceeded)
		s.handleSuccess(ctx, payload, aSummary, outcome.Details())
	case outcome != nil && outcome.Failure != nil:
		tracker.SetPhase(progress.PhaseFailed)
		err = fmt.Errorf("submission failed: %s", outcome.Message())
		log.Printf("submission id=%s failed: %s", aSummary.id, outcome.Message())
		s.offerFallback(ctx, payload, aSummary, fallbackMessage(outcome.Message()))
	default:
		panic("submitter returned no outcome")
	}
}

func (s *Service) handleSuccess(ctx context.Context, payload *model.Payload, aSummary summary, details *model.Response) {
	if details == nil {
		details = &model.Response{}
	}
	s.notify(ctx, successMessage(aSummary, details.File))
	if _, err := s.exporter.Export(ctx, payload, aSummary.language); err != nil {
		log.Printf("submission id=%s backup export error: %v", aSummary.id, err)
	}
	if !details.HasCommitURL() {
		return
	}
	if !s.confirm(ctx, policy.PromptOpenLink, openLinkMessage) {
		return
	}
	if s.opener == nil {
		s.notify(ctx, linkMessage(details.CommitURL))
		return
	}
	if err := s.opener.Open(ctx, details.CommitURL); err != nil {
		log.Printf("submission id=%s open link error: %v", aSummary.id, err)
		s.notify(ctx, linkMessage(details.CommitURL))
	}
}

// offerFallback asks whether to save the payload locally and does so when accepted.
func (s *Service) offerFallback(ctx context.Context, payload *model.Payload, aSummary summary, message string) {
	if !s.confirm(ctx, policy.PromptFallback, message) {
		return
	}
	if _, err := s.exporter.Export(ctx, payload, aSummary.language); err != nil {
		log.Printf("submission id=%s fallback export error: %v", aSummary.id, err)
		s.notify(ctx, exportFailedMessage(err))
		return
	}
	s.notify(ctx, downloadedMessage(aSummary))
}

// recoverFallback offers the export after a panic; a second panic is only logged.
func (s *Service) recoverFallback(ctx context.Context, payload *model.Payload, aSummary summary) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("submission id=%s fallback aborted: %v", aSummary.id, r)
		}
	}()
	s.offerFallback(ctx, payload, aSummary, unexpectedMessage)
}

func (s *Service) confirm(ctx context.Context, prompt, message string) bool {
	progress.UpdateCtx(ctx, progress.Delta{Prompts: 1})
	aPolicy := policy.FromContext(ctx)
	if aPolicy == nil {
		aPolicy = s.policy
	}
	var confirmer policy.Confirmer
	if s.provider != nil {
		confirmer = s.provider
	}
	return aPolicy.Confirm(ctx, confirmer, prompt, message)
}

func (s *Service) notify(ctx context.Context, message string) {
	progress.UpdateCtx(ctx, progress.Delta{Prompts: 1})
	if s.provider == nil {
		log.Print(message)
		return
	}
	s.provider.Notify(ctx, message)
}

// New creates an orchestrator for submitter and exporter.
func New(submitter Submitter, exporter Exporter, options ...Option) *Service {
	ret := &Service{submitter: submitter, exporter: exporter, busyLabel: control.DefaultBusyLabel}
	for _, option := range options {
		option(ret)
	}
	return ret
}
