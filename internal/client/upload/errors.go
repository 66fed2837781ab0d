package upload

import "errors"

var (
	// ErrMissingAsset: no file was selected. Blocking for sign-up, since
	// the account requires a profile image reference.
	ErrMissingAsset = errors.New("no image selected")

	// ErrUnsupportedMediaType: the selected file is not an allowed image
	// type. Raised before any network traffic.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrUploadFailed: the hosting service could not be reached, rejected
	// the upload, or answered with an unusable body. The caller may retry
	// with a fresh selection.
	ErrUploadFailed = errors.New("image upload failed")
)
