package tui

import "github.com/MKhiriev/go-intern-verify/internal/form"

// verificationSettledMsg carries the result of a dispatched verification
// back to the UI goroutine.
type verificationSettledMsg struct {
	settlement form.Settlement
}

type clearStatusMsg struct{}
