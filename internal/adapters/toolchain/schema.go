package toolchain

// ProjectFile is the on-disk structure of a project.yaml definition file.
type ProjectFile struct {
	Name       string             `yaml:"name"`
	Language   string             `yaml:"language"`
	Frameworks []string           `yaml:"frameworks"`
	References []string           `yaml:"references"`
	Projects   []ProjectRefDTO    `yaml:"projects"`
	Sources    []string           `yaml:"sources"`
	Packages   map[string]string  `yaml:"packages"`
	Options    *BuildOptionsDTO   `yaml:"options"`
	Targets    map[string]*Target `yaml:"targets"`
}

// Target carries per-framework overrides layered over the shared facts.
type Target struct {
	References []string         `yaml:"references"`
	Sources    []string         `yaml:"sources"`
	Options    *BuildOptionsDTO `yaml:"options"`
}

// ProjectRefDTO is a project-to-project reference declaration.
type ProjectRefDTO struct {
	Path      string `yaml:"path"`
	Framework string `yaml:"framework"`
}

// BuildOptionsDTO mirrors the compiler switches a project may declare.
type BuildOptionsDTO struct {
	LanguageVersion  string   `yaml:"languageVersion"`
	Defines          []string `yaml:"defines"`
	Optimize         bool     `yaml:"optimize"`
	WarningsAsErrors bool     `yaml:"warningsAsErrors"`
	EmitEntryPoint   bool     `yaml:"emitEntryPoint"`
	AllowUnsafe      bool     `yaml:"allowUnsafe"`
	Platform         string   `yaml:"platform"`
	KeyFile          string   `yaml:"keyFile"`
	NoWarn           []string `yaml:"noWarn"`
	XMLDoc           bool     `yaml:"xmlDoc"`
}

// LockFile is the on-disk structure of the lock manifest restore writes next
// to the project definition file.
type LockFile struct {
	Version  int               `yaml:"version"`
	Packages map[string]string `yaml:"packages"`
}
