// Package audit keeps an append-only JSONL log of vault operations under
// the XDG state home. It records which items were read or copied and when,
// never their values. Logging is best-effort: a full disk or unwritable
// state dir never fails the operation being logged.
package audit
