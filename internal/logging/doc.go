// Package logger provides leveled logging for bwx CLI commands.
//
// Verbosity is controlled by two persistent flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details
//
// Without flags, only critical warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfAlways()     // Always shown (critical warnings)
//	Logger.WarnfUser()       // User-facing warnings (not debug info)
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Logs (under --debug) and returns the error
//	Logger.Fatalf()          // Always shown, then exits
//
// Commands create a logger in their PersistentPreRun and pass it to
// internal functions. The logger never receives secret values: session
// tokens, passwords and field contents are redacted at the call site.
package logger
