// Package errors defines the error types and exit codes for slippi-launcher.
//
// Every user-visible failure is a *LauncherError carrying an exit code so
// that main can translate command failures into meaningful process exits:
//
//	if err := cmd.Execute(); err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
//
// Constructors exist for each failure domain (config, settings, install,
// launch, credentials, broker); commands wrap underlying causes rather than
// inventing codes inline.
package errors
