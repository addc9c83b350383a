package reconciler

import (
	"os"
	"path/filepath"

	"go.trai.ch/attune/internal/core/domain"
)

// baselineSuppressedDiagnostics are always suppressed regardless of project
// configuration. They are the assembly-reference version-mismatch warnings,
// which are noise in workspaces where restore rewrites library versions.
var baselineSuppressedDiagnostics = []string{"CS1701", "CS1702", "CS1705"}

// MapOptions maps a project's declared build options onto the compilation and
// parse configuration applied to the workspace. The mapping depends only on
// the options and the project directory (used to resolve the signing key
// path); it never reads workspace state.
func MapOptions(opts domain.BuildOptions, projectDir string) (domain.CompilationConfig, domain.ParseConfig) {
	cc := domain.CompilationConfig{
		OutputKind:            domain.OutputLibrary,
		Optimization:          domain.OptimizationDebug,
		WarningsAsErrors:      opts.WarningsAsErrors,
		SuppressedDiagnostics: suppressedDiagnostics(opts.SuppressedDiagnostics),
		AllowUnsafe:           opts.AllowUnsafe,
		Platform:              domain.ParsePlatform(opts.Platform),
		ResolveXMLReferences:  opts.GenerateXMLDoc,
	}
	if opts.EmitEntryPoint {
		cc.OutputKind = domain.OutputExecutable
	}
	if opts.Optimize {
		cc.Optimization = domain.OptimizationRelease
	}
	if key, ok := readSigningKey(opts.KeyFile, projectDir); ok {
		cc.SignAssembly = true
		cc.SigningKey = key
	}

	pc := domain.ParseConfig{
		LanguageVersion:   domain.ParseLanguageVersion(opts.LanguageVersion),
		Defines:           append([]string(nil), opts.Defines...),
		DocumentationMode: domain.DocumentationNone,
	}
	if opts.GenerateXMLDoc {
		pc.DocumentationMode = domain.DocumentationParse
	}
	return cc, pc
}

// suppressedDiagnostics unions the baseline codes with the project-declared
// ones, skipping duplicates and preserving declaration order.
func suppressedDiagnostics(declared []string) []string {
	out := make([]string, 0, len(baselineSuppressedDiagnostics)+len(declared))
	seen := make(map[string]struct{}, cap(out))
	for _, code := range baselineSuppressedDiagnostics {
		seen[code] = struct{}{}
		out = append(out, code)
	}
	for _, code := range declared {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// readSigningKey resolves the declared key file against the project directory
// and reads it. A missing or unreadable key file silently disables signing.
func readSigningKey(keyFile, projectDir string) ([]byte, bool) {
	if keyFile == "" {
		return nil, false
	}
	path := keyFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectDir, path)
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the project's own definition file
	if err != nil {
		return nil, false
	}
	return data, true
}
