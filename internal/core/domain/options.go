package domain

import "strings"

// BuildOptions are the compiler switches a project declares in its definition
// file. They are the input side of the options mapping; the output side is
// CompilationConfig and ParseConfig.
type BuildOptions struct {
	LanguageVersion       string
	Defines               []string
	Optimize              bool
	WarningsAsErrors      bool
	EmitEntryPoint        bool
	AllowUnsafe           bool
	Platform              string
	KeyFile               string
	SuppressedDiagnostics []string
	GenerateXMLDoc        bool
}

// OutputKind is the kind of artifact a compilation produces.
type OutputKind uint8

const (
	// OutputLibrary indicates the compilation produces a library.
	OutputLibrary OutputKind = iota
	// OutputExecutable indicates the compilation produces an executable
	// with an entry point.
	OutputExecutable
)

// OptimizationLevel controls optimization in the compilation configuration.
type OptimizationLevel uint8

const (
	// OptimizationDebug is the unoptimized debug configuration.
	OptimizationDebug OptimizationLevel = iota
	// OptimizationRelease is the optimized release configuration.
	OptimizationRelease
)

// Platform is the target platform of a compilation.
type Platform string

const (
	// PlatformAnyCPU is the default platform-neutral target.
	PlatformAnyCPU Platform = "anycpu"
	// PlatformX86 targets 32-bit x86.
	PlatformX86 Platform = "x86"
	// PlatformX64 targets 64-bit x86.
	PlatformX64 Platform = "x64"
	// PlatformARM targets 32-bit ARM.
	PlatformARM Platform = "arm"
	// PlatformARM64 targets 64-bit ARM.
	PlatformARM64 Platform = "arm64"
)

// ParsePlatform maps a declared platform string onto a Platform. Unrecognized
// values fall back to PlatformAnyCPU rather than failing the project.
func ParsePlatform(s string) Platform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x86":
		return PlatformX86
	case "x64":
		return PlatformX64
	case "arm":
		return PlatformARM
	case "arm64":
		return PlatformARM64
	case "anycpu", "any cpu", "":
		return PlatformAnyCPU
	default:
		return PlatformAnyCPU
	}
}

// LanguageVersionDefault is the language version applied when a project does
// not declare one, or declares one that cannot be parsed.
const LanguageVersionDefault = "default"

// ParseLanguageVersion normalizes a declared language version string.
// Unparseable values fall back to LanguageVersionDefault.
func ParseLanguageVersion(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "":
		return LanguageVersionDefault
	case "default", "latest", "preview":
		return v
	}
	// Numeric versions like "7.3", "12".
	for _, r := range v {
		if (r < '0' || r > '9') && r != '.' {
			return LanguageVersionDefault
		}
	}
	return v
}

// DocumentationMode controls documentation-comment handling at parse level.
type DocumentationMode uint8

const (
	// DocumentationNone disables documentation-comment diagnostics.
	DocumentationNone DocumentationMode = iota
	// DocumentationParse enables documentation-comment diagnostics.
	DocumentationParse
)

// CompilationConfig is the compilation configuration applied to the
// workspace for one project context.
type CompilationConfig struct {
	OutputKind            OutputKind
	Optimization          OptimizationLevel
	WarningsAsErrors      bool
	SuppressedDiagnostics []string
	AllowUnsafe           bool
	Platform              Platform
	SignAssembly          bool
	SigningKey            []byte
	ResolveXMLReferences  bool
}

// ParseConfig is the parse-level configuration applied to the workspace for
// one project context.
type ParseConfig struct {
	LanguageVersion   string
	Defines           []string
	DocumentationMode DocumentationMode
}
