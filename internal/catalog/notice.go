package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/dex/internal/domain"
)

// NoticeKind classifies a user-visible notice
type NoticeKind int

const (
	// NoticeError reports a failed operation
	NoticeError NoticeKind = iota
	// NoticeEmpty reports that the active filters match nothing
	NoticeEmpty
)

// String returns a short name for the kind
func (k NoticeKind) String() string {
	switch k {
	case NoticeError:
		return "error"
	case NoticeEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Notice is a human-readable message for the user
type Notice struct {
	Kind    NoticeKind
	Message string
	Err     error // Set for NoticeError
}

// EmptyResultMessage is shown when the active filters match nothing
const EmptyResultMessage = "No entries found with current filters."

// NoticeFromError converts a failed operation into a user message.
// summary names what failed, e.g. "Error fetching entry list".
func NoticeFromError(summary string, err error) Notice {
	var (
		nf *domain.NotFoundError
		fe *domain.FetchError
		pe *domain.ParseError
	)

	msg := summary
	switch {
	case errors.As(err, &nf):
		msg = fmt.Sprintf("No entry named %q", nf.ID)
		if len(nf.Suggestions) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(nf.Suggestions, ", "))
		}
	case errors.Is(err, domain.ErrServerOffline):
		msg += ": server unreachable"
	case errors.As(err, &fe) && fe.StatusCode != 0:
		msg += fmt.Sprintf(" (HTTP %d)", fe.StatusCode)
	case errors.As(err, &pe):
		msg += ": malformed response"
	case err != nil:
		msg += ": " + err.Error()
	}

	return Notice{Kind: NoticeError, Message: msg, Err: err}
}
