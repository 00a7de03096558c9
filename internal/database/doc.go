// Package database persists the small amount of state the scaffolder keeps
// between runs.
//
// The only stored data is the result of the last registry version lookup,
// so create and update do not hit the network on every invocation. The
// [Store] interface hides the BoltDB backend; [Open] returns a [Bolt] store
// for a file path and [OpenDefault] uses the application directory.
//
// Callers treat every storage failure as non-fatal: a version check without
// a cache still works.
package database
