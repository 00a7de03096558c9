// Package updater checks the registry for newer releases of the tool and
// installs them.
//
// [Checker] answers "is there a newer release?" with an optional cache in
// front of the registry. [Updater] installs the latest release through an
// ordered list of package-manager mechanisms (npm first, then pnpm) and
// reports [OutcomeManual] with the commands to run by hand when all of them
// fail.
package updater
