// Package paths centralizes filesystem locations for presetctl.
//
// All locations derive from the XDG base directories: preset documents and
// session data live under the data home, the tool's own config and user
// premade bundles under the config home.
//
//	<XDG data>/presetctl/presets/settings/    gameplay presets
//	<XDG data>/presetctl/presets/cosmetics/   cosmetic presets
//	<XDG data>/presetctl/session.json         session data
//	<XDG config>/presetctl/config.yaml        tool config
//	<XDG config>/presetctl/premade/           user premade bundles (TOML)
//
// Directory creation is idempotent via [EnsureDir].
package paths
