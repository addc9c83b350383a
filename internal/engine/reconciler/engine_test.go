package reconciler_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
	"go.trai.ch/attune/internal/core/ports/mocks"
	"go.trai.ch/attune/internal/engine/reconciler"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	engine    *reconciler.Engine
	settings  *domain.Settings
	provider  *mocks.MockGraphProvider
	workspace *mocks.MockWorkspace
	watcher   *mocks.MockFileWatcher
	restorer  *mocks.MockRestorer
	events    *mocks.MockEventSink
	logger    *mocks.MockLogger
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	t.Helper()

	f := &fixture{
		provider:  mocks.NewMockGraphProvider(ctrl),
		workspace: mocks.NewMockWorkspace(ctrl),
		watcher:   mocks.NewMockFileWatcher(ctrl),
		restorer:  mocks.NewMockRestorer(ctrl),
		events:    mocks.NewMockEventSink(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		settings:  domain.DefaultSettings(t.TempDir()),
	}
	f.engine = reconciler.New(
		f.settings,
		f.provider,
		f.workspace,
		f.watcher,
		f.restorer,
		f.events,
		f.logger,
		nil,
	)
	return f
}

func makeContext(dir, framework string) domain.ProjectContext {
	return domain.ProjectContext{
		Dir:         dir,
		Framework:   framework,
		DisplayName: filepath.Base(dir),
		FilePath:    filepath.Join(dir, domain.ProjectFileName),
		Language:    "csharp",
	}
}

// expectRegistration covers the workspace registration of a fresh project.
func (f *fixture) expectRegistration(pctx domain.ProjectContext, handle ports.ProjectHandle) {
	f.workspace.EXPECT().AddProject(domain.ProjectInfo{
		Name:      pctx.QualifiedName(),
		Language:  pctx.Language,
		FilePath:  pctx.FilePath,
		Framework: pctx.Framework,
	}).Return(handle, nil)
}

// expectWatches covers the watch re-registration that runs every cycle.
func (f *fixture) expectWatches(pctx domain.ProjectContext, cycles int) {
	f.watcher.EXPECT().Watch(pctx.FilePath, gomock.Any()).Return(nil).Times(cycles)
	f.watcher.EXPECT().Watch(filepath.Join(pctx.Dir, domain.LockFileName), gomock.Any()).Return(nil).Times(cycles)
}

// expectConfigs covers the option application that runs every cycle.
func (f *fixture) expectConfigs(handle ports.ProjectHandle, cycles int) {
	f.workspace.EXPECT().SetCompilationConfig(handle, gomock.Any()).Return(nil).Times(cycles)
	f.workspace.EXPECT().SetParseConfig(handle, gomock.Any()).Return(nil).Times(cycles)
}

func refHandles(paths ...string) []ports.ReferenceHandle {
	out := make([]ports.ReferenceHandle, len(paths))
	for i, p := range paths {
		out[i] = ports.ReferenceHandle("ref:" + p)
	}
	return out
}

func docHandles(paths ...string) []ports.DocumentHandle {
	out := make([]ports.DocumentHandle, len(paths))
	for i, p := range paths {
		out[i] = ports.DocumentHandle("doc:" + p)
	}
	return out
}

func TestEngine_Refresh_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.settings.Enabled = false

	err := f.engine.Refresh(context.Background(), true)
	assert.ErrorIs(t, err, domain.ErrEngineDisabled)
}

func TestEngine_Refresh_DiscoveryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).
		Return(nil, errors.New("permission denied"))

	err := f.engine.Refresh(context.Background(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDiscoveryFailed)
}

func TestEngine_Refresh_RegistersNewProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	dir := filepath.Join(f.settings.Root, "alpha")
	pctx := makeContext(dir, "net8.0")
	pctx.MetadataReferences = []string{"/libs/a.dll", "/libs/b.dll"}
	pctx.SourceFiles = []string{filepath.Join(dir, "main.cs")}

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dir}, nil)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{pctx}, nil)
	f.expectRegistration(pctx, "p1")
	f.expectWatches(pctx, 1)
	f.workspace.EXPECT().AddMetadataReferences(ports.ProjectHandle("p1"), pctx.MetadataReferences).
		Return(refHandles(pctx.MetadataReferences...), nil)
	f.expectConfigs("p1", 1)
	f.workspace.EXPECT().AddDocuments(ports.ProjectHandle("p1"), pctx.SourceFiles).
		Return(docHandles(pctx.SourceFiles...), nil)

	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_Refresh_SecondCycleIsMinimal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	dir := filepath.Join(f.settings.Root, "alpha")
	pctx := makeContext(dir, "net8.0")
	pctx.MetadataReferences = []string{"/libs/a.dll"}
	pctx.SourceFiles = []string{filepath.Join(dir, "main.cs")}

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dir}, nil).Times(2)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{pctx}, nil).Times(2)
	f.expectWatches(pctx, 2)
	f.expectConfigs("p1", 2)

	// Registration and sub-graph additions happen on the first cycle only.
	f.expectRegistration(pctx, "p1")
	f.workspace.EXPECT().AddMetadataReferences(ports.ProjectHandle("p1"), pctx.MetadataReferences).
		Return(refHandles(pctx.MetadataReferences...), nil)
	f.workspace.EXPECT().AddDocuments(ports.ProjectHandle("p1"), pctx.SourceFiles).
		Return(docHandles(pctx.SourceFiles...), nil)

	require.NoError(t, f.engine.Refresh(context.Background(), true))
	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_Refresh_SubGraphDiff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	dir := filepath.Join(f.settings.Root, "alpha")

	first := makeContext(dir, "net8.0")
	first.MetadataReferences = []string{"/libs/a.dll", "/libs/b.dll"}
	first.SourceFiles = []string{filepath.Join(dir, "old.cs")}

	second := first
	second.MetadataReferences = []string{"/libs/b.dll", "/libs/c.dll"}
	second.SourceFiles = []string{filepath.Join(dir, "new.cs")}

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dir}, nil).Times(2)
	gomock.InOrder(
		f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{first}, nil),
		f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{second}, nil),
	)
	f.expectRegistration(first, "p1")
	f.expectWatches(first, 2)
	f.expectConfigs("p1", 2)

	f.workspace.EXPECT().AddMetadataReferences(ports.ProjectHandle("p1"), first.MetadataReferences).
		Return(refHandles(first.MetadataReferences...), nil)
	f.workspace.EXPECT().AddDocuments(ports.ProjectHandle("p1"), first.SourceFiles).
		Return(docHandles(first.SourceFiles...), nil)

	// Second cycle touches only the delta: c.dll in, a.dll out; new.cs
	// in, old.cs out. The surviving b.dll is never re-registered.
	f.workspace.EXPECT().AddMetadataReferences(ports.ProjectHandle("p1"), []string{"/libs/c.dll"}).
		Return(refHandles("/libs/c.dll"), nil)
	f.workspace.EXPECT().RemoveMetadataReference(ports.ProjectHandle("p1"), refHandles("/libs/a.dll")[0]).
		Return(nil)
	f.workspace.EXPECT().AddDocuments(ports.ProjectHandle("p1"), second.SourceFiles).
		Return(docHandles(second.SourceFiles...), nil)
	f.workspace.EXPECT().RemoveDocument(ports.ProjectHandle("p1"), docHandles(first.SourceFiles...)[0]).
		Return(nil)

	require.NoError(t, f.engine.Refresh(context.Background(), true))
	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_Refresh_RemovesVanishedProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	dirA := filepath.Join(f.settings.Root, "alpha")
	dirB := filepath.Join(f.settings.Root, "beta")
	ctxA := makeContext(dirA, "net8.0")
	ctxB := makeContext(dirB, "net8.0")

	gomock.InOrder(
		f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dirA, dirB}, nil),
		f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dirA}, nil),
	)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dirA).Return([]domain.ProjectContext{ctxA}, nil).Times(2)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dirB).Return([]domain.ProjectContext{ctxB}, nil)
	f.expectRegistration(ctxA, "pa")
	f.expectRegistration(ctxB, "pb")
	f.expectWatches(ctxA, 2)
	f.expectWatches(ctxB, 1)
	f.expectConfigs("pa", 2)
	f.expectConfigs("pb", 1)

	f.workspace.EXPECT().RemoveProject(ports.ProjectHandle("pb")).Return(nil)

	require.NoError(t, f.engine.Refresh(context.Background(), true))
	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_Refresh_FrameworkChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	dir := filepath.Join(f.settings.Root, "alpha")
	oldCtx := makeContext(dir, "net8.0")
	newCtx := makeContext(dir, "net9.0")

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dir}, nil).Times(2)
	gomock.InOrder(
		f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{oldCtx}, nil),
		f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{newCtx}, nil),
	)
	f.expectRegistration(oldCtx, "p-old")
	f.expectRegistration(newCtx, "p-new")
	f.expectWatches(oldCtx, 2)
	f.expectConfigs("p-old", 1)
	f.expectConfigs("p-new", 1)

	f.workspace.EXPECT().RemoveProject(ports.ProjectHandle("p-old")).Return(nil)

	require.NoError(t, f.engine.Refresh(context.Background(), true))
	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_Refresh_ProjectReferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	dirA := filepath.Join(f.settings.Root, "alpha")
	dirB := filepath.Join(f.settings.Root, "beta")
	ctxA := makeContext(dirA, "net8.0")

	withRef := makeContext(dirB, "net8.0")
	withRef.ProjectReferences = []domain.ProjectReference{{Dir: dirA, Framework: "net8.0"}}
	withoutRef := makeContext(dirB, "net8.0")

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dirA, dirB}, nil).Times(2)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dirA).Return([]domain.ProjectContext{ctxA}, nil).Times(2)
	gomock.InOrder(
		f.provider.EXPECT().ResolveContexts(gomock.Any(), dirB).Return([]domain.ProjectContext{withRef}, nil),
		f.provider.EXPECT().ResolveContexts(gomock.Any(), dirB).Return([]domain.ProjectContext{withoutRef}, nil),
	)
	f.expectRegistration(ctxA, "pa")
	f.expectRegistration(withRef, "pb")
	f.expectWatches(ctxA, 2)
	f.expectWatches(withRef, 2)
	f.expectConfigs("pa", 2)
	f.expectConfigs("pb", 2)

	gomock.InOrder(
		f.workspace.EXPECT().
			AddProjectReferences(ports.ProjectHandle("pb"), []ports.ProjectHandle{"pa"}).
			Return(nil),
		f.workspace.EXPECT().
			RemoveProjectReference(ports.ProjectHandle("pb"), ports.ProjectHandle("pa")).
			Return(nil),
	)

	require.NoError(t, f.engine.Refresh(context.Background(), true))
	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_Refresh_ReferenceSurvivesTargetRetarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	dirA := filepath.Join(f.settings.Root, "alpha")
	dirB := filepath.Join(f.settings.Root, "beta")
	ctxA8 := makeContext(dirA, "net8.0")
	ctxA9 := makeContext(dirA, "net9.0")
	ctxB := makeContext(dirB, "net8.0")
	ctxB.ProjectReferences = []domain.ProjectReference{{Dir: dirA}}

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dirA, dirB}, nil).Times(2)
	gomock.InOrder(
		f.provider.EXPECT().ResolveContexts(gomock.Any(), dirA).Return([]domain.ProjectContext{ctxA8}, nil),
		f.provider.EXPECT().ResolveContexts(gomock.Any(), dirA).Return([]domain.ProjectContext{ctxA9}, nil),
	)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dirB).Return([]domain.ProjectContext{ctxB}, nil).Times(2)
	f.expectRegistration(ctxA8, "pa-old")
	f.expectRegistration(ctxA9, "pa-new")
	f.expectWatches(ctxA8, 2)
	f.expectWatches(ctxB, 2)
	f.expectConfigs("pa-old", 1)
	f.expectConfigs("pa-new", 1)
	f.expectConfigs("pb", 2)
	f.workspace.EXPECT().RemoveProject(ports.ProjectHandle("pa-old")).Return(nil)
	f.expectRegistration(ctxB, "pb")

	// The target changed identity between cycles while the reference key
	// stayed the same, so beta's reference must be retargeted to the new
	// handle instead of silently keeping the dead one.
	gomock.InOrder(
		f.workspace.EXPECT().
			AddProjectReferences(ports.ProjectHandle("pb"), []ports.ProjectHandle{"pa-old"}).
			Return(nil),
		f.workspace.EXPECT().
			RemoveProjectReference(ports.ProjectHandle("pb"), ports.ProjectHandle("pa-old")).
			Return(nil),
		f.workspace.EXPECT().
			AddProjectReferences(ports.ProjectHandle("pb"), []ports.ProjectHandle{"pa-new"}).
			Return(nil),
	)

	require.NoError(t, f.engine.Refresh(context.Background(), true))
	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_Refresh_SkipsUnresolvedProjectReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	dir := filepath.Join(f.settings.Root, "alpha")
	pctx := makeContext(dir, "net8.0")
	pctx.ProjectReferences = []domain.ProjectReference{
		{Dir: filepath.Join(f.settings.Root, "missing"), Framework: "net8.0"},
	}

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dir}, nil)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{pctx}, nil)
	f.expectRegistration(pctx, "p1")
	f.expectWatches(pctx, 1)
	f.expectConfigs("p1", 1)
	f.logger.EXPECT().Debug(gomock.Any())

	// AddProjectReferences is never called: the dangling reference drops
	// out of the desired set until its target project appears.
	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_Refresh_ReferenceFrameworkFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	dirA := filepath.Join(f.settings.Root, "alpha")
	dirB := filepath.Join(f.settings.Root, "beta")
	ctxA := makeContext(dirA, "net8.0")
	ctxB := makeContext(dirB, "net8.0")
	// The referencing side could not determine the target framework; the
	// lookup falls back to the target's first tracked framework.
	ctxB.ProjectReferences = []domain.ProjectReference{{Dir: dirA}}

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dirA, dirB}, nil)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dirA).Return([]domain.ProjectContext{ctxA}, nil)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dirB).Return([]domain.ProjectContext{ctxB}, nil)
	f.expectRegistration(ctxA, "pa")
	f.expectRegistration(ctxB, "pb")
	f.expectWatches(ctxA, 1)
	f.expectWatches(ctxB, 1)
	f.expectConfigs("pa", 1)
	f.expectConfigs("pb", 1)

	f.workspace.EXPECT().
		AddProjectReferences(ports.ProjectHandle("pb"), []ports.ProjectHandle{"pa"}).
		Return(nil)

	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_Refresh_RestorePolicy(t *testing.T) {
	unresolved := domain.PackageDependency{Name: "Serilog", Version: "3.1.0"}

	tests := []struct {
		name          string
		allowRestore  bool
		enableRestore bool
		wantRestore   bool
	}{
		{"restore allowed and enabled", true, true, true},
		{"restore disabled by configuration", true, false, false},
		{"restore not permitted this cycle", false, true, false},
		{"restore neither permitted nor enabled", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(t, ctrl)
			f.settings.EnablePackageRestore = tt.enableRestore

			dir := filepath.Join(f.settings.Root, "alpha")
			pctx := makeContext(dir, "net8.0")
			pctx.Dependencies = []domain.PackageDependency{
				{Name: "Polly", Version: "8.0.0", Resolved: true},
				unresolved,
			}

			f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dir}, nil)
			f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{pctx}, nil)
			f.expectRegistration(pctx, "p1")
			f.expectWatches(pctx, 1)
			f.expectConfigs("p1", 1)

			wantEvent := domain.UnresolvedDependenciesEvent{
				ProjectFilePath: pctx.FilePath,
				Packages:        []domain.PackageDependency{unresolved},
			}
			if tt.wantRestore {
				// The notification is deferred to the failure
				// callback and fires only if restore fails.
				f.restorer.EXPECT().
					Restore(gomock.Any(), dir, gomock.Any()).
					Do(func(_ context.Context, _ string, onFailure func()) {
						f.events.EXPECT().UnresolvedDependencies(wantEvent)
						onFailure()
					})
			} else {
				f.events.EXPECT().UnresolvedDependencies(wantEvent)
			}

			require.NoError(t, f.engine.Refresh(context.Background(), tt.allowRestore))
		})
	}
}

func TestEngine_Refresh_ResolvedDependenciesTriggerNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.settings.EnablePackageRestore = true

	dir := filepath.Join(f.settings.Root, "alpha")
	pctx := makeContext(dir, "net8.0")
	pctx.Dependencies = []domain.PackageDependency{
		{Name: "Polly", Version: "8.0.0", Resolved: true},
	}

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dir}, nil)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{pctx}, nil)
	f.expectRegistration(pctx, "p1")
	f.expectWatches(pctx, 1)
	f.expectConfigs("p1", 1)

	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_Refresh_MissingPackageDiagnosticTriggersRestore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.settings.EnablePackageRestore = true

	dir := filepath.Join(f.settings.Root, "alpha")
	pctx := makeContext(dir, "net8.0")
	pctx.Diagnostics = []domain.Diagnostic{
		{Code: domain.CodeMissingPackage, Message: "package 'Serilog' not found"},
	}

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dir}, nil)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{pctx}, nil)
	f.expectRegistration(pctx, "p1")
	f.expectWatches(pctx, 1)
	f.expectConfigs("p1", 1)
	f.restorer.EXPECT().Restore(gomock.Any(), dir, gomock.Any())

	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_Refresh_UnresolvableProjectSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	broken := filepath.Join(f.settings.Root, "broken")
	empty := filepath.Join(f.settings.Root, "empty")

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{broken, empty}, nil)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), broken).Return(nil, errors.New("bad yaml"))
	f.provider.EXPECT().ResolveContexts(gomock.Any(), empty).Return(nil, nil)
	f.logger.EXPECT().Warn(gomock.Any())
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_Refresh_WorkspaceErrorLoggedNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	dir := filepath.Join(f.settings.Root, "alpha")
	pctx := makeContext(dir, "net8.0")
	pctx.MetadataReferences = []string{"/libs/a.dll"}

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dir}, nil)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{pctx}, nil)
	f.expectRegistration(pctx, "p1")
	f.expectWatches(pctx, 1)
	f.workspace.EXPECT().AddMetadataReferences(ports.ProjectHandle("p1"), pctx.MetadataReferences).
		Return(nil, errors.New("workspace is sealed"))
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrWorkspaceRejected)
	})

	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_Refresh_HandleBatchMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	dir := filepath.Join(f.settings.Root, "alpha")
	pctx := makeContext(dir, "net8.0")
	pctx.MetadataReferences = []string{"/libs/a.dll", "/libs/b.dll"}

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dir}, nil)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{pctx}, nil)
	f.expectRegistration(pctx, "p1")
	f.expectWatches(pctx, 1)
	f.workspace.EXPECT().AddMetadataReferences(ports.ProjectHandle("p1"), pctx.MetadataReferences).
		Return(refHandles("/libs/a.dll"), nil)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrHandleMismatch)
	})

	require.NoError(t, f.engine.Refresh(context.Background(), true))
}

func TestEngine_WatchCallbacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.settings.EnablePackageRestore = true

	dir := filepath.Join(f.settings.Root, "alpha")
	lockFile := filepath.Join(dir, domain.LockFileName)
	pctx := makeContext(dir, "net8.0")
	pctx.Dependencies = []domain.PackageDependency{{Name: "Serilog", Version: "3.1.0"}}

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dir}, nil).AnyTimes()
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{pctx}, nil).AnyTimes()
	f.workspace.EXPECT().SetCompilationConfig(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.workspace.EXPECT().SetParseConfig(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.expectRegistration(pctx, "p1")

	var onProjectChange, onLockChange func(string)
	f.watcher.EXPECT().Watch(pctx.FilePath, gomock.Any()).
		DoAndReturn(func(_ string, cb func(string)) error {
			onProjectChange = cb
			return nil
		}).AnyTimes()
	f.watcher.EXPECT().Watch(lockFile, gomock.Any()).
		DoAndReturn(func(_ string, cb func(string)) error {
			onLockChange = cb
			return nil
		}).AnyTimes()

	// The initial cycle and the definition-file change both permit
	// restore; the lock manifest change must not re-trigger restore and
	// notifies immediately instead.
	f.restorer.EXPECT().Restore(gomock.Any(), dir, gomock.Any()).Times(2)
	require.NoError(t, f.engine.Refresh(context.Background(), true))

	onProjectChange(pctx.FilePath)

	f.events.EXPECT().UnresolvedDependencies(gomock.Any())
	onLockChange(lockFile)
}

func TestEngine_WatchRegistrationFailureLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	dir := filepath.Join(f.settings.Root, "alpha")
	pctx := makeContext(dir, "net8.0")

	f.provider.EXPECT().DiscoverProjects(gomock.Any(), f.settings.Root).Return([]string{dir}, nil)
	f.provider.EXPECT().ResolveContexts(gomock.Any(), dir).Return([]domain.ProjectContext{pctx}, nil)
	f.expectRegistration(pctx, "p1")
	f.expectConfigs("p1", 1)
	f.watcher.EXPECT().Watch(gomock.Any(), gomock.Any()).Return(errors.New("watcher is closed")).Times(2)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrWatchRegistrationFailed)
	}).Times(2)

	require.NoError(t, f.engine.Refresh(context.Background(), true))
}
