package form

import "github.com/MKhiriev/go-intern-verify/models"

// BusyController toggles the submit control between its idle and busy look.
// Busy means disabled with a loading marker. Calls are idempotent.
type BusyController interface {
	SetBusy(busy bool)
}

// Presenter renders verification outcomes.
type Presenter interface {
	// Show renders outcome, replacing whatever was shown before.
	Show(outcome models.Outcome) error
	// Clear removes the shown outcome.
	Clear()
}
