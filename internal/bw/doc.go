// Package bw wraps a Bitwarden-CLI-compatible password manager binary.
//
// bwx deliberately owns no vault logic: encryption, storage and sync all
// stay inside the wrapped binary. This package is the only place that
// shells out to it, and everything above works with the parsed results.
//
// # Invocation Rules
//
// Two rules hold for every call:
//
//  1. The session token travels in the BW_SESSION environment variable,
//     never on argv, so it cannot leak through process listings.
//  2. The master password travels the same way (BW_PASSWORD with
//     --passwordenv) during unlock.
//
// # Error Mapping
//
// The binary's non-zero exits are propagated with its stderr attached
// (the wrapper adds no retry or recovery policy). Three cases get
// sentinel errors so commands can give targeted hints:
//
//   - the binary missing from PATH (ErrVaultBinaryNotFound)
//   - operations rejected because the vault is locked (ErrVaultLocked)
//   - TOTP requests against items without a seed (ErrNoTOTP)
package bw
