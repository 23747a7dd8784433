// Package preset serializes settings to persisted preset documents and
// reconciles settings back from them.
//
// A preset document is an XML file with a <settings> root holding one
// ordered <setting name="...">value</setting> record per persisted setting.
// [Serialize] emits records in the registry's canonical order; [Reconcile]
// walks the same canonical order with an optimistic cursor over the record
// list, falling back to a full resync scan when the names stop lining up.
// That makes loading tolerant of schema drift: presets written by older or
// newer versions of the catalog still restore every setting that can be
// found by name, and silently leave the rest alone.
//
// Only two conditions fail a load: the file cannot be read/parsed, or its
// root element is not the settings marker ([RootMarker]), which signals a
// foreign or legacy file and aborts before any setting is touched. An
// unmatched setting name or an option label that no longer exists is
// expected drift, not an error.
//
// [Store] puts documents on disk: named presets per category, plus a hidden
// cache preset per category used to carry selections across sessions.
package preset
