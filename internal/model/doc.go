// Package model defines the data structures shared by the scaffolder.
//
// # TemplateInfo
//
// A [TemplateInfo] names a remote project skeleton:
//
//	type TemplateInfo struct {
//	    Name        string // Catalog key, e.g. "vue"
//	    Description string // Shown in the selection prompt
//	    URL         string // git URL or absolute path to a local repository
//	    Branch      string // Branch checked out after cloning
//	}
//
// # CloneRequest
//
// A [CloneRequest] is built once per create run from the selected template and
// the resolved target directory. [CloneRequest.Args] renders it as git clone
// arguments.
//
// # Config
//
// [Config] holds the settings loaded from the config file and the
// environment. [DefaultConfig] returns the values used when neither is set.
//
// # VersionRecord
//
// A [VersionRecord] is the cached result of a registry lookup.
package model
