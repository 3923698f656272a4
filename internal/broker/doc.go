// Package broker exposes launcher features over a local request/response
// protocol so a frontend can drive the launcher out of process.
//
// The transport is newline-delimited JSON over a Unix socket. Each request
// names an operation plus its addressing fields (file, game, section, key)
// and gets exactly one response carrying ok plus payload, or ok=false and an
// error string. The contract is deliberately flat: callers get a
// success/failure signal, not structured error values.
//
//	→ {"op":"settings.get","file":"Dolphin.ini","section":"Core","key":"CPUThread"}
//	← {"ok":true,"value":"True"}
package broker
