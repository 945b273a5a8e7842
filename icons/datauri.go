package icons

import "encoding/base64"

// MIMEType is the media type of every payload.
const MIMEType = "image/svg+xml"

// DataURI encodes payload as a base64 data URI suitable for an img src.
func DataURI(payload string) string {
	return "data:" + MIMEType + ";base64," + base64.StdEncoding.EncodeToString([]byte(payload))
}
