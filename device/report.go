// Package device holds what every emulated gamepad shares.
package device

// ReportBuilder is an interface for device input states that can build HID
// input reports.
type ReportBuilder interface {
	// BuildReport encodes the input state into one input report.
	BuildReport() []byte
}
