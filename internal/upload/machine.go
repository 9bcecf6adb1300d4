// Package upload implements the draft lifecycle of the upload dialog:
// Empty -> Previewing -> Closed, with drag tracking for the drop zone.
package upload

import (
	"errors"
	"fmt"
	"sync/atomic"

	"photoshare/internal/media"
)

var (
	// ErrNotImage rejects files whose media type is not image/*.
	ErrNotImage = errors.New("not an image")
	// ErrDraftStaged is returned by Stage when a draft already exists.
	ErrDraftStaged = errors.New("a file is already staged")
	// ErrNoDraft is returned by Commit when nothing is staged.
	ErrNoDraft = errors.New("no file staged")
	// ErrPreviewPending is returned by Commit before the preview is ready.
	ErrPreviewPending = errors.New("preview not ready")
	// ErrClosed is returned by every transition after Close or Commit.
	ErrClosed = errors.New("upload dialog closed")
)

// draftSeq numbers drafts across every machine in the process, so a preview
// result from a closed dialog never matches a draft in a newer one.
var draftSeq atomic.Uint64

// State of the dialog.
type State int

const (
	StateEmpty State = iota
	StatePreviewing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StatePreviewing:
		return "Previewing"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Draft is a staged file and, once derived, its preview.
type Draft struct {
	File    media.File
	Preview *media.Preview
	Seq     uint64 // identifies this draft in preview results
}

// Ready reports whether the preview has been derived.
func (d Draft) Ready() bool {
	return d.Preview != nil
}

// Machine holds the dialog state. The zero value is an empty, open dialog.
type Machine struct {
	state State
	draft *Draft

	// Active is the drop zone highlight; set while something is dragged over it.
	Active bool
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Draft returns the staged draft, if any.
func (m *Machine) Draft() (Draft, bool) {
	if m.draft == nil {
		return Draft{}, false
	}
	return *m.draft, true
}

// Stage accepts f as the new draft and moves to Previewing. Non-image files
// are rejected with ErrNotImage and the machine stays Empty. The returned
// draft carries the sequence number its preview result must quote.
func (m *Machine) Stage(f media.File) (Draft, error) {
	switch m.state {
	case StateClosed:
		return Draft{}, ErrClosed
	case StatePreviewing:
		return Draft{}, ErrDraftStaged
	}
	if !f.IsImage() {
		return Draft{}, fmt.Errorf("%s (%s): %w", f.Name, f.MediaType, ErrNotImage)
	}
	m.draft = &Draft{File: f, Seq: draftSeq.Add(1)}
	m.state = StatePreviewing
	return *m.draft, nil
}

// AttachPreview stores the derived preview for the draft with seq. Results
// for a draft that was discarded in the meantime are dropped (false).
func (m *Machine) AttachPreview(seq uint64, p *media.Preview) bool {
	if m.state != StatePreviewing || m.draft == nil || m.draft.Seq != seq {
		return false
	}
	m.draft.Preview = p
	return true
}

// FailPreview discards the draft with seq after its preview could not be
// derived. It reports whether the current draft was affected.
func (m *Machine) FailPreview(seq uint64) bool {
	if m.state != StatePreviewing || m.draft == nil || m.draft.Seq != seq {
		return false
	}
	m.Discard()
	return true
}

// Discard drops the draft and returns to Empty.
func (m *Machine) Discard() {
	if m.state == StateClosed {
		return
	}
	m.draft = nil
	m.state = StateEmpty
}

// Commit hands out the finished draft and closes the dialog. It needs a
// staged file with a derived preview.
func (m *Machine) Commit() (Draft, error) {
	switch {
	case m.state == StateClosed:
		return Draft{}, ErrClosed
	case m.draft == nil:
		return Draft{}, ErrNoDraft
	case !m.draft.Ready():
		return Draft{}, ErrPreviewPending
	}
	d := *m.draft
	m.draft = nil
	m.state = StateClosed
	m.Active = false
	return d, nil
}

// Close discards any draft and closes the dialog.
func (m *Machine) Close() {
	m.draft = nil
	m.state = StateClosed
	m.Active = false
}
