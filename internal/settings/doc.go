// Package settings models the in-memory settings registry: definitions,
// menus, and categories.
//
// A [Definition] is a stable display name, an ordered list of option labels,
// and a selected index. Definitions belong to one or more categories
// ([CategorySetting], [CategoryCosmetic]); membership is checked with
// [Definition.In], never by type.
//
// A [Registry] is the explicitly constructed, passed-by-reference collection
// of menus. The order of menus and of settings within each menu is the
// canonical order: presets are written in it and reconciled against it.
// Build one with [NewRegistry] (or [DefaultRegistry] for the built-in
// catalog) at startup and hand it to the preset package.
//
// The package performs no value validation beyond index-range checks in
// [Definition.SetSelected]; mapping persisted text back to an index is an
// exact label match via [Definition.SetSelectedByLabel].
package settings
