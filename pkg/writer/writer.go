// Package writer defines the dictionary writer interface. A writer
// renders a fully populated settings aggregate into whatever dictionary
// syntax the downstream meshing tool expects; the derivation engines have
// no wire format of their own and never import this package.
package writer

import "github.com/chazu/foamgen/pkg/settings"

// DictionaryWriter consumes the populated aggregate. Implementations own
// all formatting and field-ordering concerns; they must iterate the
// geometry entries in the aggregate's insertion order so regenerated
// files diff cleanly.
type DictionaryWriter interface {
	Write(s *settings.MeshSettings) error
}
