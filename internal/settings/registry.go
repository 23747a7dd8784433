package settings

// MenuMode distinguishes option menus, whose settings are persisted, from
// action menus (generate, load, exit) which carry no settings.
type MenuMode uint8

const (
	// MenuOptions is a menu containing persistable settings.
	MenuOptions MenuMode = iota

	// MenuAction is a menu entry that triggers behavior instead of
	// holding settings.
	MenuAction
)

// Menu is a named, ordered group of setting definitions.
type Menu struct {
	Name     string
	Mode     MenuMode
	Settings []*Definition
}

// Registry is the explicitly constructed collection of all menus and their
// settings. Menu order and in-menu order together define the canonical
// traversal order used by serialization and reconciliation. Construct one
// at startup and pass it by reference; it is not safe for concurrent
// mutation during a save or load pass.
type Registry struct {
	menus []*Menu
}

// NewRegistry creates a registry over the given menus. Menu order is
// significant and preserved.
func NewRegistry(menus ...*Menu) *Registry {
	return &Registry{menus: menus}
}

// Menus returns the menus in canonical order.
func (r *Registry) Menus() []*Menu {
	return r.menus
}

// Definitions returns every definition in option menus matching the
// category, in canonical order.
func (r *Registry) Definitions(c Category) []*Definition {
	var out []*Definition
	for _, m := range r.menus {
		if m.Mode != MenuOptions {
			continue
		}
		for _, d := range m.Settings {
			if d.In(c) {
				out = append(out, d)
			}
		}
	}
	return out
}

// Lookup finds a definition by its stable name across all option menus.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	for _, m := range r.menus {
		if m.Mode != MenuOptions {
			continue
		}
		for _, d := range m.Settings {
			if d.name == name {
				return d, true
			}
		}
	}
	return nil, false
}
