// Package datafiles holds files embedded into the binaries.
package datafiles

import _ "embed"

//go:embed upload.html
var uploadHTML []byte

// UploadHTML returns the page offering an .ssbp upload form.
func UploadHTML() []byte {
	return uploadHTML
}
