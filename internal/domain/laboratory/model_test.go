package laboratory

import "testing"

func TestStatusLabels(t *testing.T) {
	tests := []struct {
		in   TestStatus
		want string
	}{
		{StatusPending, "Pending"},
		{StatusInProgress, "In progress"},
		{StatusCompleted, "Completed"},
		{StatusCancelled, "Cancelled"},
		{"archived", "archived"},
	}
	for _, tt := range tests {
		if got := tt.in.Label(); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTestStatus(t *testing.T) {
	if got, err := ParseTestStatus(""); err != nil || got != StatusPending {
		t.Errorf("empty status = %q, %v; want pending", got, err)
	}
	if _, err := ParseTestStatus("Completed"); err == nil {
		t.Error("case-sensitive: expected error for capitalized status")
	}
	if _, err := ParseTestStatus("done"); err == nil {
		t.Error("expected error for unknown status")
	}
}
