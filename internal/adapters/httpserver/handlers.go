package httpserver

import (
	"bytes"
	"fmt"
	"net/http"

	"retoque/internal/core/domain"
	"retoque/internal/core/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type selectImageRequest struct {
	DataURL string `json:"dataUrl"`
}

type submitEditRequest struct {
	Prompt string `json:"prompt"`
}

type applyPromptRequest struct {
	Index int `json:"index"`
}

func (s *Server) handleIndex(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	sess.Lock()
	prompt := sess.Prompt
	sess.Unlock()

	data := map[string]any{
		"Prompt":   prompt,
		"Examples": s.controller.Examples(),
	}

	buf := new(bytes.Buffer)
	if err := s.indexTemplate.Execute(buf, data); err != nil {
		return fmt.Errorf("error rendering index template: %w", err)
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (s *Server) handleSessionState(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	view := newViewState()
	s.controller.Render(sess, view)

	sess.Lock()
	view.Prompt = sess.Prompt
	sess.Unlock()

	return c.JSON(http.StatusOK, view)
}

func (s *Server) handleSelectImage(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	var req selectImageRequest
	if err := c.Bind(&req); err != nil {
		view := newViewState()
		view.ShowAdvisory(domain.AdvisoryRead, "could not read the selected image")
		return c.JSON(http.StatusBadRequest, view)
	}

	view := newViewState()
	if err := s.controller.SelectImage(sess, view, req.DataURL); err != nil {
		log.Debug().Err(err).Str("sessionId", sess.ID).Msg("image selection failed")
	}

	return c.JSON(http.StatusOK, view)
}

func (s *Server) handleSubmitEdit(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	var req submitEditRequest
	if err := c.Bind(&req); err != nil {
		view := newViewState()
		view.ShowAdvisory(domain.AdvisoryValidation, "please enter an edit instruction")
		return c.JSON(http.StatusBadRequest, view)
	}

	view := newViewState()
	if err := s.controller.SubmitEdit(c.Request().Context(), sess, view, req.Prompt); err != nil {
		log.Debug().Err(err).Str("sessionId", sess.ID).Msg("edit submission did not produce a result")
	}

	return c.JSON(http.StatusOK, view)
}

func (s *Server) handleDownload(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	view := newViewState()
	img, err := s.controller.Download(sess, view)
	if err != nil {
		return c.JSON(http.StatusNotFound, view)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", resultFileName))

	return c.Blob(http.StatusOK, img.MIMEType, img.Data)
}

func (s *Server) handleListPrompts(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"default":  service.DefaultPrompt,
		"examples": s.controller.Examples(),
	})
}

func (s *Server) handleApplyPrompt(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	var req applyPromptRequest
	if err := c.Bind(&req); err != nil {
		view := newViewState()
		view.ShowAdvisory(domain.AdvisoryValidation, "unknown example prompt")
		return c.JSON(http.StatusBadRequest, view)
	}

	view := newViewState()
	prompt, err := s.controller.ApplyExample(sess, view, req.Index)
	if err == nil {
		view.Prompt = prompt
	}

	return c.JSON(http.StatusOK, view)
}
