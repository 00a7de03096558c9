// Package core implements the create workflow.
//
// Functions in this package return errors instead of printing failures; the
// cmd package decides how an error is shown and which exit status it maps to
// (see [ExitCode]). Interactive input and the clone itself are reached through
// the [Prompter] and [Fetcher] interfaces so the workflow can run against
// stubs in tests.
//
// # Workflow
//
// A [Workflow] moves through these states:
//
//	start → name-resolved → template-selected → directory-checked
//	      → overwritten | clean → cloning → done | aborted | failed
//
// Nothing on disk is touched before an existing target has been confirmed
// for overwrite. A dismissed prompt ends the run with [ErrCancelled].
package core
