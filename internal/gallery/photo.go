// Package gallery holds the authoritative photo collection for a session:
// photos, their comments, and which photo is currently selected.
package gallery

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrPhotoNotFound is returned when an operation names a photo that is
	// not (or no longer) in the collection.
	ErrPhotoNotFound = errors.New("photo not found")
	// ErrBlankAuthor rejects a comment without an author.
	ErrBlankAuthor = errors.New("author is required")
	// ErrBlankText rejects a comment without text.
	ErrBlankText = errors.New("comment text is required")
)

// TimestampLayout is the display format for comment timestamps.
const TimestampLayout = "2006-01-02 15:04"

// Photo is an uploaded image with its comments.
type Photo struct {
	ID        string
	URL       string // display handle, see media.Registry
	Name      string
	Size      int64
	MediaType string
	AddedAt   time.Time
	Comments  []Comment
}

// CommentCount returns len(p.Comments).
func (p Photo) CommentCount() int {
	return len(p.Comments)
}

// Comment is an attributed note on a photo. Comments are never edited.
type Comment struct {
	ID        string
	Text      string
	Author    string
	Timestamp time.Time
}

// FormatTimestamp renders the comment time in local time.
func (c Comment) FormatTimestamp() string {
	return c.Timestamp.Local().Format(TimestampLayout)
}

// CommentInput is the user-supplied part of a comment.
type CommentInput struct {
	Author string
	Text   string
}

// ValidateComment trims author and text and rejects blank values. Both
// problems are reported when both fields are blank.
func ValidateComment(author, text string) (CommentInput, error) {
	in := CommentInput{
		Author: strings.TrimSpace(author),
		Text:   strings.TrimSpace(text),
	}
	var errs []error
	if in.Author == "" {
		errs = append(errs, ErrBlankAuthor)
	}
	if in.Text == "" {
		errs = append(errs, ErrBlankText)
	}
	if len(errs) > 0 {
		return CommentInput{}, errors.Join(errs...)
	}
	return in, nil
}
