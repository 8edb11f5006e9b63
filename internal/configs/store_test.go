package configs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	kerrors "github.com/PolarWolf314/gctx/internal/errors"
	"github.com/PolarWolf314/gctx/internal/properties"
)

func TestOpenMissingLocation(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := Open(missing)
	if !errors.Is(err, kerrors.ErrConfigurationStoreNotFound) {
		t.Fatalf("Expected ErrConfigurationStoreNotFound, got %v", err)
	}

	var pathErr *kerrors.PathError
	if !errors.As(err, &pathErr) || pathErr.Path != missing {
		t.Errorf("Expected error to carry path %q, got %v", missing, err)
	}
}

func TestOpenMissingConfigurationsDir(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(dir)
	if !errors.Is(err, kerrors.ErrConfigurationStoreNotFound) {
		t.Fatalf("Expected ErrConfigurationStoreNotFound, got %v", err)
	}

	var pathErr *kerrors.PathError
	if !errors.As(err, &pathErr) || pathErr.Path != filepath.Join(dir, configurationsDir) {
		t.Errorf("Expected error to carry the configurations path, got %v", err)
	}
}

func TestOpenLocationIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := Open(file); !errors.Is(err, kerrors.ErrConfigurationStoreNotFound) {
		t.Fatalf("Expected ErrConfigurationStoreNotFound, got %v", err)
	}
}

func TestOpenNoConfigurations(t *testing.T) {
	ts := newTempStore(t).withActive("foo")

	_, err := Open(ts.dir)
	if !errors.Is(err, kerrors.ErrNoConfigurationsFound) {
		t.Fatalf("Expected ErrNoConfigurationsFound, got %v", err)
	}
}

func TestOpenOnlyInvalidEntries(t *testing.T) {
	ts := newTempStore(t).
		withFile("config_Bad", "").
		withFile("config_foo_bar", "").
		withFile(".DS_Store", "").
		withActive("foo")

	if _, err := Open(ts.dir); !errors.Is(err, kerrors.ErrNoConfigurationsFound) {
		t.Fatalf("Expected ErrNoConfigurationsFound, got %v", err)
	}
}

func TestOpenMissingActivePointer(t *testing.T) {
	ts := newTempStore(t).withConfig("foo", "")

	_, err := Open(ts.dir)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestOpenSkipsUnusableEntries(t *testing.T) {
	ts := newTempStore(t).
		withConfig("foo", "").
		withFile("config_UPPER", "").
		withFile("config_1abc", "").
		withFile("notes.txt", "").
		withFile("bare-name", "").
		withActive("foo")

	if err := os.Mkdir(ts.configPath("subdir"), 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	store := ts.open()

	got := names(store.Configurations())
	want := []string{"bare-name", "foo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected configurations %v, got %v", want, got)
	}

	bare, ok := store.Find("bare-name")
	if !ok {
		t.Fatal("Expected bare-name to be found")
	}
	if bare.Path() != filepath.Join(ts.dir, configurationsDir, "bare-name") {
		t.Errorf("Expected bare-name to keep its own path, got %s", bare.Path())
	}
}

func TestOpenPrefersPrefixedFile(t *testing.T) {
	ts := newTempStore(t).
		withFile("foo", "bare").
		withConfig("foo", "prefixed").
		withActive("foo")

	store := ts.open()

	foo, _ := store.Find("foo")
	if foo.Path() != ts.configPath("foo") {
		t.Errorf("Expected config_foo to win, got %s", foo.Path())
	}
}

func TestOpenSkipsInvalidUTF8(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("invalid UTF-8 file names are only portable on Linux")
	}

	ts := newTempStore(t).withActiveConfig("foo")
	if err := os.WriteFile(filepath.Join(ts.dir, configurationsDir, "config_\xff\xfe"), nil, 0644); err != nil {
		t.Skipf("File system rejected invalid UTF-8 name: %v", err)
	}

	store := ts.open()
	if got := names(store.Configurations()); !reflect.DeepEqual(got, []string{"foo"}) {
		t.Errorf("Expected only foo, got %v", got)
	}
}

func TestActivePointerIsNotTrimmed(t *testing.T) {
	ts := newTempStore(t).withConfig("foo", "").withActive("foo\n")

	store := ts.open()

	if store.Active() != "foo\n" {
		t.Errorf("Expected active %q, got %q", "foo\n", store.Active())
	}
	foo, _ := store.Find("foo")
	if store.IsActive(foo) {
		t.Error("A pointer with a trailing newline should not match foo")
	}
}

func TestActivePointerMayBeStale(t *testing.T) {
	store := newTempStore(t).withConfig("foo", "").withActive("gone").open()

	if store.Active() != "gone" {
		t.Errorf("Expected active %q, got %q", "gone", store.Active())
	}
	for _, c := range store.Configurations() {
		if store.IsActive(c) {
			t.Errorf("No configuration should be active, %s is", c.Name())
		}
	}
}

func TestConfigurationsSortedWithActiveFlag(t *testing.T) {
	store := newTempStore(t).
		withConfig("foo", "").
		withActiveConfig("bar").
		open()

	list := store.Configurations()
	if got := names(list); !reflect.DeepEqual(got, []string{"bar", "foo"}) {
		t.Fatalf("Expected [bar foo], got %v", got)
	}

	if !store.IsActive(list[0]) {
		t.Error("Expected bar to be active")
	}
	if store.IsActive(list[1]) {
		t.Error("Expected foo to be inactive")
	}

	for i := 0; i < 3; i++ {
		if again := names(store.Configurations()); !reflect.DeepEqual(again, names(list)) {
			t.Fatalf("Listing changed between calls: %v vs %v", again, names(list))
		}
	}
}

func TestActivate(t *testing.T) {
	ts := newTempStore(t).withConfig("foo", "").withActiveConfig("bar")
	store := ts.open()

	if err := store.Activate("foo"); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	if store.Active() != "foo" {
		t.Errorf("Expected active foo, got %q", store.Active())
	}
	if got := ts.readActive(); got != "foo" {
		t.Errorf("Expected pointer file %q, got %q", "foo", got)
	}
}

func TestActivateUnknown(t *testing.T) {
	ts := newTempStore(t).withActiveConfig("foo")
	store := ts.open()

	err := store.Activate("unknown")
	if !errors.Is(err, kerrors.ErrUnknownConfiguration) {
		t.Fatalf("Expected ErrUnknownConfiguration, got %v", err)
	}
	if err.Error() != "unable to find configuration 'unknown'" {
		t.Errorf("Unexpected message: %q", err.Error())
	}
	if got := ts.readActive(); got != "foo" {
		t.Errorf("Pointer file should be untouched, got %q", got)
	}
}

func TestActivateWriteFailureKeepsState(t *testing.T) {
	ts := newTempStore(t).withConfig("foo", "").withActiveConfig("bar")
	store := ts.open()

	// A directory in place of the pointer file makes the write fail.
	pointer := filepath.Join(ts.dir, activeConfigFile)
	if err := os.Remove(pointer); err != nil {
		t.Fatalf("Failed to remove pointer: %v", err)
	}
	if err := os.Mkdir(pointer, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if err := store.Activate("foo"); err == nil {
		t.Fatal("Expected Activate to fail")
	}
	if store.Active() != "bar" {
		t.Errorf("Expected active to remain bar, got %q", store.Active())
	}
}

func TestCreateThenDescribe(t *testing.T) {
	ts := newTempStore(t).withActiveConfig("foo")
	store := ts.open()

	zone, _ := properties.ParseZone("europe-west1-d")
	region, _ := properties.ParseRegion("europe-west1")
	props := properties.NewBuilder().
		Project("my-project").
		Account("a.user@example.org").
		Zone(zone).
		Region(region).
		Build()

	if err := store.Create("new-config", props, Abort); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, ok := store.Find("new-config"); !ok {
		t.Fatal("Expected new-config in the store")
	}

	want := "[core]\nproject=my-project\naccount=a.user@example.org\n[compute]\nzone=europe-west1-d\nregion=europe-west1\n"
	if got := ts.readConfig("new-config"); got != want {
		t.Errorf("Unexpected file content:\n%q\nwant\n%q", got, want)
	}

	described, err := store.Describe("new-config")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if !described.Equal(props) {
		t.Error("Described properties differ from created properties")
	}

	reopened := ts.open()
	if _, ok := reopened.Find("new-config"); !ok {
		t.Error("Expected new-config after reopening the store")
	}
}

func TestCreateInvalidName(t *testing.T) {
	ts := newTempStore(t).withActiveConfig("foo")
	store := ts.open()

	err := store.Create("Invalid_Name", properties.Properties{}, Overwrite)
	if !errors.Is(err, kerrors.ErrInvalidName) {
		t.Fatalf("Expected ErrInvalidName, got %v", err)
	}
	if ts.configExists("Invalid_Name") {
		t.Error("No file should have been written")
	}
}

func TestCreateExisting(t *testing.T) {
	ts := newTempStore(t).withConfig("foo", "[core]\nproject=old\n").withActive("foo")
	store := ts.open()

	props := properties.NewBuilder().Project("new").Build()

	err := store.Create("foo", props, Abort)
	if !errors.Is(err, kerrors.ErrExistingConfiguration) {
		t.Fatalf("Expected ErrExistingConfiguration, got %v", err)
	}
	if got := ts.readConfig("foo"); got != "[core]\nproject=old\n" {
		t.Errorf("File should be untouched, got %q", got)
	}

	if err := store.Create("foo", props, Overwrite); err != nil {
		t.Fatalf("Create with Overwrite failed: %v", err)
	}
	if got := ts.readConfig("foo"); got != "[core]\nproject=new\n" {
		t.Errorf("File should be overwritten, got %q", got)
	}
}

func TestCreateEncodeFailureKeepsFile(t *testing.T) {
	ts := newTempStore(t).withConfig("foo", "[core]\nproject=old\n").withActive("foo")
	store := ts.open()

	err := store.Create("foo", properties.NewBuilder().Project("bad\nvalue").Build(), Overwrite)
	if !errors.Is(err, kerrors.ErrSavingProperties) {
		t.Fatalf("Expected ErrSavingProperties, got %v", err)
	}
	if got := ts.readConfig("foo"); got != "[core]\nproject=old\n" {
		t.Errorf("File should be untouched, got %q", got)
	}
}

func TestCopyPreservesUnrecognizedContent(t *testing.T) {
	content := "[core]\nproject=p\n[extra]\nfoo = bar\n; comment\n"
	ts := newTempStore(t).
		withConfig("foo", content).
		withConfig("bar", "[core]\nproject=other\n").
		withActive("foo")
	store := ts.open()

	if err := store.Copy("foo", "bar", Overwrite); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	if got := ts.readConfig("bar"); got != content {
		t.Errorf("Expected byte-identical copy, got %q", got)
	}
	if got := ts.readConfig("foo"); got != content {
		t.Errorf("Source should be untouched, got %q", got)
	}
}

func TestCopyNewConfiguration(t *testing.T) {
	ts := newTempStore(t).withConfig("foo", "[core]\nproject=p\n").withActive("foo")
	store := ts.open()

	if err := store.Copy("foo", "baz", Abort); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	baz, ok := store.Find("baz")
	if !ok {
		t.Fatal("Expected baz in the store")
	}
	if baz.Path() != ts.configPath("baz") {
		t.Errorf("Unexpected path %s", baz.Path())
	}
	if store.Active() != "foo" {
		t.Errorf("Copy must not change the active configuration, got %q", store.Active())
	}
}

func TestCopyErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		dest     string
		conflict ConflictAction
		want     error
	}{
		{"unknown source", "missing", "baz", Overwrite, kerrors.ErrUnknownConfiguration},
		{"invalid destination", "foo", "Baz", Overwrite, kerrors.ErrInvalidName},
		{"existing destination", "foo", "bar", Abort, kerrors.ErrExistingConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTempStore(t).
				withConfig("foo", "[core]\nproject=foo\n").
				withConfig("bar", "[core]\nproject=bar\n").
				withActive("foo")
			store := ts.open()

			err := store.Copy(tt.src, tt.dest, tt.conflict)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if got := ts.readConfig("bar"); got != "[core]\nproject=bar\n" {
				t.Errorf("bar should be untouched, got %q", got)
			}
		})
	}
}

func TestCopyOntoItself(t *testing.T) {
	ts := newTempStore(t).withConfig("foo", "[core]\nproject=p\n").withActive("foo")
	store := ts.open()

	if err := store.Copy("foo", "foo", Overwrite); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if got := ts.readConfig("foo"); got != "[core]\nproject=p\n" {
		t.Errorf("Copying onto itself must not lose content, got %q", got)
	}

	if err := store.Copy("foo", "foo", Abort); !errors.Is(err, kerrors.ErrExistingConfiguration) {
		t.Errorf("Expected ErrExistingConfiguration with Abort, got %v", err)
	}
}

func TestRenameExistingAborts(t *testing.T) {
	ts := newTempStore(t).
		withConfig("foo", "foo-content").
		withConfig("bar", "bar-content").
		withActive("bar")
	store := ts.open()

	err := store.Rename("bar", "foo", Abort)
	if !errors.Is(err, kerrors.ErrExistingConfiguration) {
		t.Fatalf("Expected ErrExistingConfiguration, got %v", err)
	}

	var nameErr *kerrors.NameError
	if !errors.As(err, &nameErr) || nameErr.Name != "foo" {
		t.Errorf("Expected error to carry name foo, got %v", err)
	}

	if got := ts.readConfig("foo"); got != "foo-content" {
		t.Errorf("foo should be untouched, got %q", got)
	}
	if got := ts.readConfig("bar"); got != "bar-content" {
		t.Errorf("bar should be untouched, got %q", got)
	}
	if got := ts.readActive(); got != "bar" {
		t.Errorf("Pointer should be untouched, got %q", got)
	}
}

func TestRenameActiveOverwrite(t *testing.T) {
	ts := newTempStore(t).
		withConfig("foo", "foo-content").
		withConfig("bar", "bar-content").
		withActive("bar")
	store := ts.open()

	if err := store.Rename("bar", "foo", Overwrite); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	if ts.configExists("bar") {
		t.Error("config_bar should no longer exist")
	}
	if got := ts.readConfig("foo"); got != "bar-content" {
		t.Errorf("foo should hold bar's content, got %q", got)
	}
	if store.Active() != "foo" {
		t.Errorf("Expected active foo, got %q", store.Active())
	}
	if got := ts.readActive(); got != "foo" {
		t.Errorf("Expected pointer foo, got %q", got)
	}
	if _, ok := store.Find("bar"); ok {
		t.Error("bar should be gone from the store")
	}
}

func TestRenameInactive(t *testing.T) {
	ts := newTempStore(t).withConfig("foo", "foo-content").withActiveConfig("bar")
	store := ts.open()

	if err := store.Rename("foo", "baz", Abort); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	if got := names(store.Configurations()); !reflect.DeepEqual(got, []string{"bar", "baz"}) {
		t.Errorf("Expected [bar baz], got %v", got)
	}
	if got := ts.readActive(); got != "bar" {
		t.Errorf("Pointer should still be bar, got %q", got)
	}
	if got := ts.readConfig("baz"); got != "foo-content" {
		t.Errorf("baz should hold foo's content, got %q", got)
	}
}

func TestRenameErrors(t *testing.T) {
	ts := newTempStore(t).withActiveConfig("foo")
	store := ts.open()

	if err := store.Rename("missing", "bar", Overwrite); !errors.Is(err, kerrors.ErrUnknownConfiguration) {
		t.Errorf("Expected ErrUnknownConfiguration, got %v", err)
	}
	if err := store.Rename("foo", "not valid", Overwrite); !errors.Is(err, kerrors.ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName, got %v", err)
	}
	if !ts.configExists("foo") {
		t.Error("foo should be untouched")
	}
}

func TestRenameActivateFailureLeavesPointerStale(t *testing.T) {
	ts := newTempStore(t).withActiveConfig("foo")
	store := ts.open()

	pointer := filepath.Join(ts.dir, activeConfigFile)
	if err := os.Remove(pointer); err != nil {
		t.Fatalf("Failed to remove pointer: %v", err)
	}
	if err := os.Mkdir(pointer, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if err := store.Rename("foo", "bar", Abort); err == nil {
		t.Fatal("Expected Rename to report the activation failure")
	}

	if !ts.configExists("bar") || ts.configExists("foo") {
		t.Error("The file rename should have happened")
	}
	if store.Active() != "foo" {
		t.Errorf("Expected in-memory pointer to remain foo, got %q", store.Active())
	}
}

func TestDeleteActive(t *testing.T) {
	ts := newTempStore(t).withActiveConfig("foo")
	store := ts.open()

	err := store.Delete("foo")
	if !errors.Is(err, kerrors.ErrDeleteActiveConfiguration) {
		t.Fatalf("Expected ErrDeleteActiveConfiguration, got %v", err)
	}
	if !ts.configExists("foo") {
		t.Error("The active configuration file must remain")
	}
}

func TestDelete(t *testing.T) {
	ts := newTempStore(t).withConfig("foo", "").withActiveConfig("bar")
	store := ts.open()

	if err := store.Delete("foo"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if ts.configExists("foo") {
		t.Error("config_foo should be removed")
	}
	if _, ok := store.Find("foo"); ok {
		t.Error("foo should be gone from the store")
	}

	if err := store.Delete("foo"); !errors.Is(err, kerrors.ErrUnknownConfiguration) {
		t.Errorf("Expected ErrUnknownConfiguration on second delete, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	ts := newTempStore(t).
		withConfig("foo", "[core]\nproject = described\nextra = ignored\n[extra]\nkey = value\n").
		withActive("foo")
	store := ts.open()

	props, err := store.Describe("foo")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if !props.Equal(properties.NewBuilder().Project("described").Build()) {
		t.Error("Expected only core/project to be described")
	}

	if _, err := store.Describe("missing"); !errors.Is(err, kerrors.ErrUnknownConfiguration) {
		t.Errorf("Expected ErrUnknownConfiguration, got %v", err)
	}
}

func TestDescribeMalformed(t *testing.T) {
	store := newTempStore(t).withConfig("foo", "[compute]\nzone=nowhere\n").withActive("foo").open()

	if _, err := store.Describe("foo"); !errors.Is(err, kerrors.ErrLoadingProperties) {
		t.Errorf("Expected ErrLoadingProperties, got %v", err)
	}
}

func TestStorePaths(t *testing.T) {
	ts := newTempStore(t).withActiveConfig("foo")
	store := ts.open()

	if store.Location() != ts.dir {
		t.Errorf("Expected location %s, got %s", ts.dir, store.Location())
	}
	if store.ConfigurationsPath() != filepath.Join(ts.dir, configurationsDir) {
		t.Errorf("Unexpected configurations path %s", store.ConfigurationsPath())
	}
}
