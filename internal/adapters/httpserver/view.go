package httpserver

import "retoque/internal/core/domain"

// viewState implements port.View by accumulating the render directives a
// controller run emits. Mutating endpoints return it as their JSON body and
// the page applies it to the DOM. Toggle fields are pointers so the page
// only touches controls the controller actually addressed.
type viewState struct {
	SourceImage     string    `json:"sourceImage,omitempty"`
	ResultImages    []string  `json:"resultImages,omitempty"`
	Texts           []string  `json:"texts,omitempty"`
	Busy            *bool     `json:"busy,omitempty"`
	SubmitEnabled   *bool     `json:"submitEnabled,omitempty"`
	DownloadVisible *bool     `json:"downloadVisible,omitempty"`
	Advisory        *advisory `json:"advisory,omitempty"`
	Prompt          string    `json:"prompt,omitempty"`
}

type advisory struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func newViewState() *viewState {
	return &viewState{}
}

func (v *viewState) ShowSourceImage(dataURL string) {
	v.SourceImage = dataURL
}

func (v *viewState) ShowResultImage(dataURL string) {
	v.ResultImages = append(v.ResultImages, dataURL)
}

func (v *viewState) ShowText(text string) {
	v.Texts = append(v.Texts, text)
}

func (v *viewState) SetBusy(busy bool) {
	v.Busy = &busy
}

func (v *viewState) EnableSubmit(enabled bool) {
	v.SubmitEnabled = &enabled
}

func (v *viewState) RevealDownload(visible bool) {
	v.DownloadVisible = &visible
}

func (v *viewState) ShowAdvisory(kind domain.AdvisoryKind, message string) {
	v.Advisory = &advisory{Kind: string(kind), Message: message}
}
