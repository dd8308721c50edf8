package principles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/augurtools/augur/pkg/metrics"
	"github.com/augurtools/augur/pkg/source"
)

// scanFixtures writes the given files and scans them in order.
func scanFixtures(t *testing.T, files map[string]string, order ...string) ([]metrics.FileMetrics, source.ContentSource) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var records []metrics.FileMetrics
	for _, name := range order {
		fm, err := metrics.Scan(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Scan(%s) failed: %v", name, err)
		}
		records = append(records, *fm)
	}
	return records, source.NewFilesystem()
}

func TestEvaluateSOLIDNoFiles(t *testing.T) {
	scores := EvaluateSOLID(nil, source.NewFilesystem())

	if scores.SingleResponsibility != 1.0 {
		t.Errorf("SingleResponsibility = %v, want neutral 1.0", scores.SingleResponsibility)
	}
	if scores.OpenClosed != 0.0 {
		t.Errorf("OpenClosed = %v, want 0.0", scores.OpenClosed)
	}
	if scores.InterfaceSegregation != 1.0 {
		t.Errorf("InterfaceSegregation = %v, want neutral 1.0", scores.InterfaceSegregation)
	}
	if scores.DependencyInversion != 0.0 {
		t.Errorf("DependencyInversion = %v, want 0.0", scores.DependencyInversion)
	}
	if scores.LiskovSubstitution != 0.5 {
		t.Errorf("LiskovSubstitution = %v, want fixed 0.5", scores.LiskovSubstitution)
	}
}

func TestSingleResponsibility(t *testing.T) {
	// One class with five functions averages exactly five: perfect score.
	records, src := scanFixtures(t, map[string]string{
		"five.java": strings.Join([]string{
			"class Service {",
			"def a():",
			"def b():",
			"def c():",
			"def d():",
			"def e():",
		}, "\n") + "\n",
	}, "five.java")

	if got := EvaluateSOLID(records, src).SingleResponsibility; got != 1.0 {
		t.Errorf("SRP with 5 funcs/class = %v, want 1.0", got)
	}

	// Fifteen functions in one class degrade the score to zero.
	var lines []string
	lines = append(lines, "class God {")
	for i := 0; i < 15; i++ {
		lines = append(lines, "def f"+string(rune('a'+i))+"():")
	}
	records, src = scanFixtures(t, map[string]string{
		"god.java": strings.Join(lines, "\n") + "\n",
	}, "god.java")

	if got := EvaluateSOLID(records, src).SingleResponsibility; got != 0.0 {
		t.Errorf("SRP with 15 funcs/class = %v, want 0.0", got)
	}
}

func TestOpenClosed(t *testing.T) {
	records, src := scanFixtures(t, map[string]string{
		"shapes.java": strings.Join([]string{
			"class Base {",
			"}",
			"class Child extends Base {",
			"}",
		}, "\n") + "\n",
	}, "shapes.java")

	if got := EvaluateSOLID(records, src).OpenClosed; got != 0.5 {
		t.Errorf("OCP with 1 of 2 classes inheriting = %v, want 0.5", got)
	}

	// No classes at all means nothing is open for extension.
	records, src = scanFixtures(t, map[string]string{
		"funcs.py": "def a():\ndef b():\n",
	}, "funcs.py")

	if got := EvaluateSOLID(records, src).OpenClosed; got != 0.0 {
		t.Errorf("OCP with no classes = %v, want 0.0", got)
	}
}

func TestInterfaceSegregation(t *testing.T) {
	// Seven methods in one interface: 1 - (7-5)/10 = 0.8.
	records, src := scanFixtures(t, map[string]string{
		"wide.java": strings.Join([]string{
			"interface Wide {",
			"  void a();",
			"  void b();",
			"  void c();",
			"  void d();",
			"  void e();",
			"  void f();",
			"  void g();",
			"}",
		}, "\n") + "\n",
	}, "wide.java")

	if got := EvaluateSOLID(records, src).InterfaceSegregation; got != 0.8 {
		t.Errorf("ISP with 7 methods/interface = %v, want 0.8", got)
	}
}

func TestDependencyInversion(t *testing.T) {
	records, src := scanFixtures(t, map[string]string{
		"deps.java": strings.Join([]string{
			"import com.app.db.Postgres",
			"import com.app.interfaces.Repository",
			"import com.app.util.Strings",
			"import com.app.net.Client",
		}, "\n") + "\n",
	}, "deps.java")

	if got := EvaluateSOLID(records, src).DependencyInversion; got != 0.25 {
		t.Errorf("DIP with 1 of 4 abstract imports = %v, want 0.25", got)
	}
}

func TestDependencyInversionRounding(t *testing.T) {
	records, src := scanFixtures(t, map[string]string{
		"deps.java": strings.Join([]string{
			"import com.app.interfaces.Repository",
			"import com.app.util.Strings",
			"import com.app.net.Client",
		}, "\n") + "\n",
	}, "deps.java")

	if got := EvaluateSOLID(records, src).DependencyInversion; got != 0.333 {
		t.Errorf("DIP 1/3 = %v, want 0.333", got)
	}
}

func TestEvaluateSOLIDUnreadableFile(t *testing.T) {
	// A record pointing at a missing file contributes counts but empty text.
	records := []metrics.FileMetrics{
		{Path: "missing.java", NumClasses: 2, NumFunctions: 4},
	}
	scores := EvaluateSOLID(records, source.NewFilesystem())

	if scores.OpenClosed != 0.0 {
		t.Errorf("OpenClosed = %v, want 0.0 for unreadable text", scores.OpenClosed)
	}
	if scores.SingleResponsibility != 1.0 {
		t.Errorf("SingleResponsibility = %v, want 1.0 (avg 2 funcs/class)", scores.SingleResponsibility)
	}
}
