// Package policy decides whether a caller may read or mutate a file record.
//
// Every check is a stateless predicate over an already-loaded record and the
// caller's identity; nothing here touches a store. Rules are fixed to
// owner-or-public semantics: a public record is readable by anyone, a
// private one only by its owner, and only the owner may ever write.
package policy

import "github.com/depotlabs/filedepot/pkg/store/record"

// Identity is a resolved user id, or Anonymous for unauthenticated callers.
type Identity string

// Anonymous is the identity of an unauthenticated caller.
const Anonymous Identity = ""

// IsAnonymous reports whether the identity carries no user.
func (i Identity) IsAnonymous() bool {
	return i == Anonymous
}

// CanRead reports whether identity may read the record's content: public
// records are readable by anyone, private ones only by their owner. The
// same rule applies to single-record retrieval and raw-content retrieval.
func CanRead(identity Identity, file *record.File) bool {
	if file.IsPublic {
		return true
	}
	return !identity.IsAnonymous() && string(identity) == file.OwnerID
}

// CanWrite reports whether identity may mutate the record. Only the owner
// may write; there is no public-write concept.
func CanWrite(identity Identity, file *record.File) bool {
	return !identity.IsAnonymous() && string(identity) == file.OwnerID
}

// CanCreateUnder reports whether a new record may be created beneath parent.
// A nil parent means the root, which is always a valid target; otherwise the
// parent must be a folder. Ownership of the parent is not checked: any
// authenticated user may create under any existing folder.
func CanCreateUnder(identity Identity, parent *record.File) bool {
	if identity.IsAnonymous() {
		return false
	}
	if parent == nil {
		return true
	}
	return parent.Kind == record.KindFolder
}
