package metric

import "testing"

func TestNew(t *testing.T) {
	m := New()
	if m == nil {
		t.Fatal("New() returned nil")
	}
	// Two instances must not collide on registration.
	if m2 := New(); m2 == nil {
		t.Fatal("second New() returned nil")
	}
}

func TestSnapshot(t *testing.T) {
	m := New()
	m.LinesRead.Inc()
	m.LinesRead.Inc()
	m.Dispatched.Inc()

	snap, err := m.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	tests := []struct {
		name string
		want float64
	}{
		{"catalogue_shell_lines_total", 2},
		{"catalogue_shell_commands_dispatched_total", 1},
		{"catalogue_shell_dispatch_faults_total", 0},
		{"catalogue_shell_parse_errors_total", 0},
		{"catalogue_shell_completions_total", 0},
	}
	for _, tt := range tests {
		if got, ok := snap[tt.name]; !ok || got != tt.want {
			t.Errorf("%s = %v (present=%v), want %v", tt.name, got, ok, tt.want)
		}
	}
}
