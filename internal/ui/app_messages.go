package ui

import (
	"photoshare/internal/gallery"
	"photoshare/internal/media"
	"photoshare/internal/upload"
)

// ShowUploadMsg opens the upload dialog (u, SPC u, or the header button).
type ShowUploadMsg struct{}

// DismissModalMsg is sent when the user cancels the upload dialog (Esc).
type DismissModalMsg struct{}

// UploadPhotoMsg is emitted once by the upload dialog when the user commits a draft.
type UploadPhotoMsg struct {
	File    media.File
	Preview *media.Preview
}

// SelectPhotoMsg opens a photo in the comment panel.
type SelectPhotoMsg struct {
	ID string
}

// ClearSelectionMsg closes the comment panel's photo.
type ClearSelectionMsg struct{}

// DeletePhotoMsg removes a photo from the collection.
type DeletePhotoMsg struct {
	ID string
}

// DeleteSelectedMsg removes the photo open in the comment panel (SPC x).
type DeleteSelectedMsg struct{}

// AddCommentMsg appends a validated comment to a photo.
type AddCommentMsg struct {
	PhotoID string
	Input   gallery.CommentInput
}

// FocusCommentsMsg moves keyboard focus to the comment form (SPC c).
type FocusCommentsMsg struct{}

// PreviewDerivedMsg carries the result of decoding a staged file.
// Seq identifies the draft the result belongs to.
type PreviewDerivedMsg struct {
	Seq     uint64
	Preview *media.Preview
	Err     error
}

// DragMsg is a drag gesture over the upload dialog. Path is set on Drop.
// Terminals deliver drops as a bracketed paste of the path, which the dialog
// turns into a Drop.
type DragMsg struct {
	Kind upload.DragKind
	Path string
}
