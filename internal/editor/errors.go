package editor

import "errors"

// Warning-level sentinels: the operation was declined and the document
// is unchanged. None of these indicate corruption or data loss.
var (
	ErrNoSuchCaption     = errors.New("no caption at that index")
	ErrNoNextCaption     = errors.New("no next caption to merge with")
	ErrNoPreviousCaption = errors.New("no previous caption to merge with")
	ErrLastCaption       = errors.New("cannot remove the only remaining caption")
	ErrNoSelection       = errors.New("no caption selected")
	ErrNoSearchTerm      = errors.New("no search term entered")
	ErrNoMatchInCaption  = errors.New("selected caption does not contain the search term")
	ErrNothingToUndo     = errors.New("nothing to undo")
	ErrNothingToRedo     = errors.New("nothing to redo")
)
