// Package testutil provides test fixtures for the launcher.
//
// Realistic Dolphin settings files are embedded with go:embed and can be
// loaded individually or unpacked into a throwaway launcher home:
//
//	data := testutil.MustFixture(t, "Dolphin.ini")
//	paths := testutil.InstallHome(t)
package testutil
