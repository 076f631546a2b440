package render

import (
	"encoding/base64"
)

/*
Artifact is one rendered image: a name for logging and attachments,
its pixel size and the PNG bytes.
*/
type Artifact struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	PNG    []byte `json:"-"`
}

// Base64 returns the PNG bytes in standard base64 encoding.
func (a Artifact) Base64() string {
	return base64.StdEncoding.EncodeToString(a.PNG)
}

// DataURI returns the image as a "data:image/png;base64," URI for inline HTML.
func (a Artifact) DataURI() string {
	return "data:image/png;base64," + a.Base64()
}
