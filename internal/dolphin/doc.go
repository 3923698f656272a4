// Package dolphin manages the emulator build: downloading and extracting a
// release archive, tracking the installed version, and launching the
// emulator binary.
//
// The installed build lives under the launcher's dolphin directory together
// with a "version" marker file. Installs are whole-archive replacements, not
// incremental updates.
package dolphin
