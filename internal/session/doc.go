// Package session caches the vault session token between bwx invocations.
//
// The wrapped vault CLI hands out a session token on unlock and expects it
// back on every subsequent call. Re-entering the master password for every
// lookup defeats the point of a helper, so the token is cached: either in
// a 0600 file under the XDG state home, or in the OS keyring.
//
// Expiry is wrapper-local: the upstream binary never invalidates its own
// tokens, so a configurable TTL bounds how long a cached token is trusted.
// Tokens older than the TTL are dropped and the user is asked to unlock
// again.
//
// The BWX_SESSION environment variable bypasses the cache entirely, for
// scripts and CI that manage their own unlock.
//
// The token is never logged, never written to the audit log, and never
// passed on a child process's argv (it travels via the BW_SESSION
// environment variable).
package session
