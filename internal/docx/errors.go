package docx

import "errors"

// Render failures. A render either yields a complete package or one of
// these errors; no partial package is ever returned.
var (
	// ErrNoTitle rejects a model without the required document title.
	ErrNoTitle = errors.New("document title is required")

	// ErrTableGeometry rejects a table whose row lengths do not match its
	// header count. A partially valid table cannot be emitted safely, so
	// the whole render fails.
	ErrTableGeometry = errors.New("table row length does not match header count")

	// ErrImageMissing rejects a figure or chart with no image bytes.
	ErrImageMissing = errors.New("image data missing")

	// ErrImageDecode rejects image bytes that are not a decodable PNG,
	// JPEG or GIF stream.
	ErrImageDecode = errors.New("image data does not decode")

	// ErrUnknownContent rejects a well-formed-but-foreign content item,
	// which indicates model/renderer contract drift.
	ErrUnknownContent = errors.New("unknown content item")
)
