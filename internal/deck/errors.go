// ABOUTME: Operation-tagged errors for deck and attachment persistence.
// ABOUTME: Each error carries its kind, the cause and the call site.

package deck

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
)

// Kind names the operation that failed, not the low-level cause.
type Kind int

const (
	// SavingDeck covers building and writing a deck archive.
	SavingDeck Kind = iota + 1
	// GettingDeckFromFile covers unpacking an archive and decoding its snapshot.
	GettingDeckFromFile
	// SavingAttachment is a failed write of attachment bytes to storage.
	SavingAttachment
	// CreatingAttachment is a failed read of the source file of a new attachment.
	CreatingAttachment
	// OpeningAttachment is a failed read of attachment bytes from storage.
	OpeningAttachment
)

func (k Kind) String() string {
	switch k {
	case SavingDeck:
		return "saving deck to " + FileExt + " file"
	case GettingDeckFromFile:
		return "getting deck from " + FileExt + " file"
	case SavingAttachment:
		return "saving attachment"
	case CreatingAttachment:
		return "creating attachment"
	case OpeningAttachment:
		return "opening attachment"
	default:
		return fmt.Sprintf("unknown operation %d", int(k))
	}
}

// ErrDuplicateAttachment is returned by Store.Add when the store already holds
// an attachment with the same identifier.
var ErrDuplicateAttachment = errors.New("attachment id already in store")

// Error wraps a failure with the operation it interrupted. File and Line
// point at the statement that produced it.
type Error struct {
	Kind Kind
	Err  error
	File string
	Line int
}

// Error includes the call site unless built with the release tag.
func (e *Error) Error() string {
	return e.format(showLocation)
}

func (e *Error) format(withLocation bool) string {
	if withLocation {
		return fmt.Sprintf("error while %s in %s:%d: %v", e.Kind, e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("error while %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err or anything it wraps is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	for errors.As(err, &e) {
		if e.Kind == k {
			return true
		}
		err = e.Err
	}
	return false
}

func wrap(kind Kind, err error) error {
	e := &Error{Kind: kind, Err: err}
	if _, file, line, ok := runtime.Caller(1); ok {
		e.File = filepath.Base(file)
		e.Line = line
	}
	return e
}
