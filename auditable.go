// Package auditable implements an audit/soft-delete behavior that attaches to
// persisted records by composition. The behavior stamps audit attributes
// (created/updated/deleted timestamps and actor identifiers) on lifecycle
// events and rewrites physical deletes into soft-delete updates, honoring
// optimistic locking and transactional storage.
//
// The record side is abstracted behind the Owner interface; persistence
// behind the Store interface. Record and SQLStore are ready-made
// implementations of both.
package auditable

import (
	"time"

	"github.com/moisespsena-go/logging"
	path_helpers "github.com/moisespsena-go/path-helpers"
)

var log = logging.MustGetLogger(path_helpers.GetCalledDir())

// NowFunc returns current time, this function is exported in order to be able
// to give the flexibility to the developer to customize it according to their
// needs, e.g:
//    auditable.NowFunc = func() time.Time {
//      return time.Now().UTC()
//    }
var NowFunc = func() time.Time {
	return time.Now()
}
