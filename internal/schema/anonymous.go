package schema

import (
	"strconv"

	"github.com/untillpro/goutils/logger"
)

const anonymousSuffix = "_element"

// AnonymousTypeName returns a unique registry name for a type defined inline
// under the element (or attribute) owner. The first call for "Foo" yields
// "Foo_element", later ones "Foo_element_2", "Foo_element_3" and so on.
//
// The counters live on the table and are not synchronized; AnonymousTypeName
// is only called while the table is being read.
func (s *Schema) AnonymousTypeName(owner string) string {
	name := owner + anonymousSuffix
	count, ok := s.anonymousTypes[name]
	if !ok {
		s.anonymousTypes[name] = 1
	} else {
		next := count + 1
		s.anonymousTypes[name] = next
		name += "_" + strconv.Itoa(next)
	}
	if logger.IsVerbose() {
		logger.Verbose("anonymous type under", owner, "named", name)
	}
	return name
}
