// Package ui is the Bubble Tea front end of photoshare.
//
// Composition:
//   - AppModel: the shell. Owns the gallery.Store and is the only code that mutates it.
//   - GalleryView: tile grid; emits SelectPhotoMsg / DeletePhotoMsg.
//   - CommentPanel: comments of the selected photo plus the comment form; emits AddCommentMsg.
//   - UploadDialog: overlay with the draft state machine; emits UploadPhotoMsg once.
//
// Views receive store snapshots from the shell and report intents as messages;
// they never hold a reference to the store.
package ui
