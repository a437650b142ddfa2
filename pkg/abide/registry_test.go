package abide_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-abideform/pkg/abide"
)

func TestRegistryRegisterReportsOverride(t *testing.T) {
	registry := abide.NewRegistry(nil)
	if registry.Register("a", "^(.){1,2}$") {
		t.Fatalf("first registration is not an override")
	}
	if registry.Register("a", "^(.){1,2}$") {
		t.Fatalf("identical registration is not an override")
	}
	if !registry.Register("a", "^(.){1,3}$") {
		t.Fatalf("expected divergent registration to report override")
	}
}

func TestRegistrySnapshotIsCopy(t *testing.T) {
	registry := abide.NewRegistry(nil)
	registry.Register("b", "x")
	registry.Register("a", "y")

	snapshot := registry.Patterns()
	snapshot["c"] = "z"

	if diff := cmp.Diff([]string{"a", "b"}, registry.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryScriptEscapes(t *testing.T) {
	registry := abide.NewRegistry(nil)
	registry.Register("it's", `a/b\/c</script>`)
	registry.Register("plain", "^(.){0,}$")

	want := "Foundation.Abide.defaults.patterns['it\\'s'] = /a\\/b\\/c\\x3c\\/script>/;\n" +
		"Foundation.Abide.defaults.patterns['plain'] = /^(.){0,}$/;\n"
	if got := registry.Script(); got != want {
		t.Fatalf("script mismatch\nwant %q\n got %q", want, got)
	}
	if abide.NewRegistry(nil).Script() != "" {
		t.Fatalf("empty registry should render no script")
	}
}

func TestRegistryConcurrentRegister(t *testing.T) {
	registry := abide.NewRegistry(nil)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			registry.Register("shared", abide.LengthPattern(1, n))
		}(i + 1)
	}
	wg.Wait()
	if registry.Len() != 1 {
		t.Fatalf("expected a single entry, got %d", registry.Len())
	}
}
