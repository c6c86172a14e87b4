package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"retoque/internal/core/domain"
	"retoque/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Controller owns the upload -> encode -> request -> render lifecycle of an
// edit session. All user-visible outcomes, success or failure, are emitted
// through the View port; returned errors only feed transport-level logging.
type Controller struct {
	editor   port.Editor
	timeout  time.Duration
	examples []string
}

func NewController(editor port.Editor, timeout time.Duration) *Controller {
	return &Controller{editor: editor, timeout: timeout, examples: ExamplePrompts}
}

func (c *Controller) Examples() []string {
	return c.examples
}

// SelectImage loads a user-chosen file submitted as a data URL. On success
// both image fields are set together and the submit control is enabled; on
// failure prior state is left unchanged.
func (c *Controller) SelectImage(sess *domain.Session, view port.View, rawDataURL string) error {
	l := log.With().Str("sessionId", sess.ID).Logger()

	img, err := domain.ParseDataURL(rawDataURL)
	if err != nil {
		l.Error().Err(err).Msg("could not decompose uploaded data URL")
		view.ShowAdvisory(domain.AdvisoryRead, "could not read the selected image")
		return err
	}

	sess.Lock()
	sess.Source = img
	sess.Phase = domain.PhaseImageLoaded
	sess.Touch()
	sess.Unlock()

	l.Info().Str("mimeType", img.MIMEType).Int("bytes", len(img.Data)).Msg("image loaded")

	view.ShowSourceImage(rawDataURL)
	view.EnableSubmit(true)

	return nil
}

// SubmitEdit issues the one outbound request of the system. The prompt
// argument is the current textbox content and replaces the session prompt.
// The busy indicator is hidden and the submit control re-enabled on every
// exit path.
func (c *Controller) SubmitEdit(ctx context.Context, sess *domain.Session, view port.View, prompt string) error {
	l := log.With().Str("sessionId", sess.ID).Logger()

	sess.Lock()
	sess.Prompt = prompt
	sess.Touch()

	if sess.Phase == domain.PhaseRequesting {
		sess.Unlock()
		l.Debug().Msg("submit rejected, request outstanding")
		view.ShowAdvisory(domain.AdvisoryValidation, "an edit is already in progress")
		return domain.ErrRequestInFlight
	}

	if sess.Source == nil {
		sess.Unlock()
		view.ShowAdvisory(domain.AdvisoryValidation, "please select an image first")
		return domain.ErrMissingImage
	}

	if strings.TrimSpace(prompt) == "" {
		sess.Unlock()
		view.ShowAdvisory(domain.AdvisoryValidation, "please enter an edit instruction")
		return domain.ErrEmptyPrompt
	}

	sess.Result = nil
	sess.Phase = domain.PhaseRequesting
	request := domain.EditRequest{Prompt: prompt, Image: *sess.Source}
	sess.Unlock()

	l.Info().Msg("handling edit request")

	view.RevealDownload(false)
	view.EnableSubmit(false)
	view.SetBusy(true)

	defer func() {
		view.SetBusy(false)
		view.EnableSubmit(true)
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	parts, err := c.editor.EditImage(ctx, request)
	if err != nil {
		c.finish(sess, domain.PhaseError)

		if errors.Is(err, domain.ErrNoResponse) {
			l.Warn().Msg("model returned no candidates")
			view.ShowAdvisory(domain.AdvisoryAPI, "the model returned no response")
			return err
		}

		l.Error().Err(err).Msg("edit request failed")
		view.ShowAdvisory(domain.AdvisoryAPI, "an error occurred while editing the image")
		return fmt.Errorf("error creating edited image: %w", err)
	}

	var result *domain.Image
	rendered := false

	for _, part := range parts {
		switch {
		case part.Image != nil:
			// Last image part wins; every one is still rendered.
			result = part.Image
			rendered = true
			view.ShowResultImage(domain.FormatDataURL(*part.Image))
		case part.Text != "":
			rendered = true
			view.ShowText(part.Text)
		}
	}

	if !rendered {
		c.finish(sess, domain.PhaseError)
		l.Warn().Int("parts", len(parts)).Msg("response contained no usable parts")
		view.ShowAdvisory(domain.AdvisoryAPI, "the response contained no editable content")
		return domain.ErrNoEditableContent
	}

	if result == nil {
		// Text-only response: rendered, but nothing new to download.
		c.finish(sess, domain.PhaseImageLoaded)
		return nil
	}

	sess.Lock()
	sess.Result = result
	sess.Phase = domain.PhaseResultReady
	sess.Touch()
	sess.Unlock()

	l.Info().Str("mimeType", result.MIMEType).Int("bytes", len(result.Data)).Msg("edit complete")

	view.RevealDownload(true)

	return nil
}

// Download hands the stored result to the transport for a client-side file
// save under the fixed filename.
func (c *Controller) Download(sess *domain.Session, view port.View) (*domain.Image, error) {
	sess.Lock()
	defer sess.Unlock()

	if sess.Result == nil {
		view.ShowAdvisory(domain.AdvisoryValidation, "no edited image to download yet")
		return nil, domain.ErrNoResult
	}

	sess.Touch()

	return sess.Result, nil
}

// ApplyExample overwrites the editable prompt verbatim with a canned
// instruction and returns the new prompt text.
func (c *Controller) ApplyExample(sess *domain.Session, view port.View, index int) (string, error) {
	if index < 0 || index >= len(c.examples) {
		view.ShowAdvisory(domain.AdvisoryValidation, "unknown example prompt")
		return "", domain.ErrUnknownExample
	}

	sess.Lock()
	sess.Prompt = c.examples[index]
	sess.Touch()
	prompt := sess.Prompt
	sess.Unlock()

	return prompt, nil
}

// Render replays the current session state into a view, used to rehydrate
// the page on load.
func (c *Controller) Render(sess *domain.Session, view port.View) {
	sess.Lock()
	defer sess.Unlock()

	if sess.Source != nil {
		view.ShowSourceImage(domain.FormatDataURL(*sess.Source))
		view.EnableSubmit(sess.Phase != domain.PhaseRequesting)
	}

	if sess.Result != nil {
		view.ShowResultImage(domain.FormatDataURL(*sess.Result))
		view.RevealDownload(true)
	}

	view.SetBusy(sess.Phase == domain.PhaseRequesting)
}

func (c *Controller) finish(sess *domain.Session, phase domain.Phase) {
	sess.Lock()
	sess.Phase = phase
	sess.Touch()
	sess.Unlock()
}
