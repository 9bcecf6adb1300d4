package gallery

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"photoshare/internal/media"
)

// Resources hands out display handles for photos and takes them back when a
// photo leaves the collection. *media.Registry implements it.
type Resources interface {
	Allocate(f media.File, preview *media.Preview) string
	Release(url string)
}

// Clock returns the current time.
type Clock func() time.Time

// Store is the single owner of the photo collection and the selection.
// It is not safe for concurrent use; the UI mutates it from its update loop only.
type Store struct {
	photos    []Photo // most recent first
	selected  string
	resources Resources
	newID     func() string
	now       Clock
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc overrides id generation (default: UUIDv7, time ordered).
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// WithClock overrides the clock used for comment timestamps.
func WithClock(c Clock) Option {
	return func(s *Store) { s.now = c }
}

// NewStore creates an empty collection backed by res.
func NewStore(res Resources, opts ...Option) *Store {
	s := &Store{
		resources: res,
		newID:     newUUIDv7,
		now:       time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func newUUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// AddPhoto builds a photo for f, allocates its display handle and puts it at
// the front of the collection. The photo is fully formed before insertion.
func (s *Store) AddPhoto(f media.File, preview *media.Preview) Photo {
	p := Photo{
		ID:        s.newID(),
		URL:       s.resources.Allocate(f, preview),
		Name:      f.Name,
		Size:      f.Size,
		MediaType: f.MediaType,
		AddedAt:   s.now(),
		Comments:  nil,
	}
	s.photos = slices.Insert(s.photos, 0, p)
	return p
}

// AddComment appends a comment to the photo with photoID.
// Unknown ids leave every photo unchanged and return ErrPhotoNotFound.
func (s *Store) AddComment(photoID string, in CommentInput) (Comment, error) {
	i := s.index(photoID)
	if i < 0 {
		return Comment{}, fmt.Errorf("add comment to %s: %w", photoID, ErrPhotoNotFound)
	}
	in, err := ValidateComment(in.Author, in.Text)
	if err != nil {
		return Comment{}, fmt.Errorf("add comment to %s: %w", photoID, err)
	}
	c := Comment{
		ID:        s.newID(),
		Text:      in.Text,
		Author:    in.Author,
		Timestamp: s.now(),
	}
	// Copy-on-append so snapshots handed out earlier keep their length.
	p := &s.photos[i]
	p.Comments = append(slices.Clip(p.Comments), c)
	return c, nil
}

// DeletePhoto removes the photo with id and releases its display handle.
// It reports whether a photo was removed; deleting twice is harmless.
// Removing the selected photo clears the selection.
func (s *Store) DeletePhoto(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	url := s.photos[i].URL
	s.photos = slices.Delete(s.photos, i, i+1)
	s.resources.Release(url)
	if s.selected == id {
		s.selected = ""
	}
	return true
}

// Select makes id the selected photo. It returns false, leaving the
// selection unchanged, when id is not in the collection.
func (s *Store) Select(id string) bool {
	if s.index(id) < 0 {
		return false
	}
	s.selected = id
	return true
}

// ClearSelection deselects any photo.
func (s *Store) ClearSelection() {
	s.selected = ""
}

// SelectedID returns the selected photo id or "".
func (s *Store) SelectedID() string {
	return s.selected
}

// Selected returns the selected photo.
func (s *Store) Selected() (Photo, bool) {
	if s.selected == "" {
		return Photo{}, false
	}
	return s.Get(s.selected)
}

// Get returns the photo with id.
func (s *Store) Get(id string) (Photo, bool) {
	i := s.index(id)
	if i < 0 {
		return Photo{}, false
	}
	return s.photos[i], true
}

// Photos returns a snapshot of the collection, most recent first.
func (s *Store) Photos() []Photo {
	return slices.Clone(s.photos)
}

// Len returns the number of photos.
func (s *Store) Len() int {
	return len(s.photos)
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.photos, func(p Photo) bool { return p.ID == id })
}
