// Package settings reads and writes Dolphin's ini settings files through
// the ini codec.
//
// The service addresses files by logical name relative to Dolphin's config
// root ("Dolphin.ini", "GFX.ini") or, for per-game overrides, by game ID
// ("GALE01" resolves to GameSettings/GALE01.ini). Names are joined to their
// root with filepath-securejoin so a hostile name cannot escape it.
//
// Every mutation is a full load → mutate → save cycle against the file, so
// external edits between launcher operations are picked up rather than
// clobbered. A missing file reads as an empty document; saving creates it.
//
// Gecko code management is layered on the codec's raw passthrough lines:
// the [Gecko] section's "$"-prefixed lines define codes and the
// [Gecko_Enabled] section lists the enabled ones.
package settings
