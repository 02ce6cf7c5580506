package model

// QueryContext carries the environment facts interpolated into a
// command-generation prompt.
type QueryContext struct {
	OS         string   `json:"os" yaml:"os"`
	WorkingDir string   `json:"working_dir" yaml:"working_dir"`
	GitRepo    bool     `json:"git_repo" yaml:"git_repo"`
	History    []string `json:"history,omitempty" yaml:"history,omitempty"`
}

// ErrorContext is the fact bag assembled after a command fails. The
// prompt builder reads whichever fields the collector managed to fill;
// every probe is best effort, so any field may be empty.
type ErrorContext struct {
	Command     string   `json:"command" yaml:"command"`
	ErrorOutput string   `json:"error_output" yaml:"error_output"`
	Cwd         string   `json:"cwd" yaml:"cwd"`
	ExitCode    int      `json:"exit_code" yaml:"exit_code"`
	History     []string `json:"history,omitempty" yaml:"history,omitempty"`
	OS          string   `json:"os,omitempty" yaml:"os,omitempty"`

	// Derived from the session rather than probed.
	RelevantFiles   []string `json:"relevant_files,omitempty" yaml:"relevant_files,omitempty"`
	ReferencedFiles []string `json:"referenced_files,omitempty" yaml:"referenced_files,omitempty"`
	ManExcerpt      string   `json:"man_excerpt,omitempty" yaml:"man_excerpt,omitempty"`

	// Host snapshot.
	EnvVars      map[string]string `json:"env_vars,omitempty" yaml:"env_vars,omitempty"`
	ProcessTree  []string          `json:"process_tree,omitempty" yaml:"process_tree,omitempty"`
	NetworkState []string          `json:"network_state,omitempty" yaml:"network_state,omitempty"`

	// Working-directory snapshot.
	Files        []string          `json:"files,omitempty" yaml:"files,omitempty"`
	Dirs         []string          `json:"dirs,omitempty" yaml:"dirs,omitempty"`
	FileContents map[string]string `json:"file_contents,omitempty" yaml:"file_contents,omitempty"`

	// Specialized facts, filled only when the failed command warrants them.
	GitStatus        string   `json:"git_status,omitempty" yaml:"git_status,omitempty"`
	GitRemotes       string   `json:"git_remotes,omitempty" yaml:"git_remotes,omitempty"`
	DockerContainers []string `json:"docker_containers,omitempty" yaml:"docker_containers,omitempty"`
	ComposeFiles     []string `json:"compose_files,omitempty" yaml:"compose_files,omitempty"`
	AvailableUpdates []string `json:"available_updates,omitempty" yaml:"available_updates,omitempty"`
	FailedServices   []string `json:"failed_services,omitempty" yaml:"failed_services,omitempty"`
}
