package port

import "retoque/internal/core/domain"

// View is the render surface the controller talks to instead of a DOM.
// Implementations decide how directives reach the user; the controller
// stays testable without a real rendering surface.
type View interface {
	// ShowSourceImage reveals the loaded source image.
	ShowSourceImage(dataURL string)
	// ShowResultImage renders an edited image returned by the API.
	ShowResultImage(dataURL string)
	// ShowText renders a text block accompanying an edit result.
	ShowText(text string)
	// SetBusy toggles the busy indicator shown during an outstanding request.
	SetBusy(busy bool)
	// EnableSubmit toggles the submit control.
	EnableSubmit(enabled bool)
	// RevealDownload toggles visibility of the download control.
	RevealDownload(visible bool)
	// ShowAdvisory surfaces a transient, user-visible error notice.
	ShowAdvisory(kind domain.AdvisoryKind, message string)
}
