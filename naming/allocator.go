package naming

import "strconv"

// Allocator hands out unique identifiers per namespace. It is an explicit,
// per-generation-run object: callers construct one, thread it through name
// assignment, and drop it when the run ends. Nothing here is process-wide.
//
// Assignment is deterministic given insertion order: the same sequence of
// Assign calls yields the same names.
type Allocator struct {
	taken map[string]map[string]struct{}
}

// NewAllocator returns an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{taken: make(map[string]map[string]struct{})}
}

// Assign proposes style(source) as the identifier for source within the given
// namespace, disambiguating collisions with a numeric suffix (Name, Name2,
// Name3, ...). The returned name is recorded as taken.
func (a *Allocator) Assign(namespace, source string, style func(string) string) string {
	ns, ok := a.taken[namespace]
	if !ok {
		ns = make(map[string]struct{})
		a.taken[namespace] = ns
	}
	base := style(source)
	name := base
	for i := 2; ; i++ {
		if _, dup := ns[name]; !dup {
			break
		}
		name = base + strconv.Itoa(i)
	}
	ns[name] = struct{}{}
	return name
}
