package moderation

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"pending", Pending, false},
		{"approved", Approved, false},
		{"rejected", Rejected, false},
		{"", "", true},
		{"all", "", true}, // filter value, not a stored status
		{"PENDING", "", true},
		{"deleted", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"", "", false},
		{"all", "", false},
		{"pending", Pending, false},
		{"approved", Approved, false},
		{"rejected", Rejected, false},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFilter(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFilter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFilter(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name        string
		from, to    Status
		wantChanged bool
		wantErr     error
	}{
		{"pending to approved", Pending, Approved, true, nil},
		{"pending to rejected", Pending, Rejected, true, nil},
		{"pending to pending is a no-op", Pending, Pending, false, nil},
		{"approved to approved is a no-op", Approved, Approved, false, nil},
		{"rejected to rejected is a no-op", Rejected, Rejected, false, nil},
		{"approved cannot reopen", Approved, Pending, false, ErrIllegalTransition},
		{"approved cannot flip", Approved, Rejected, false, ErrIllegalTransition},
		{"rejected cannot reopen", Rejected, Pending, false, ErrIllegalTransition},
		{"rejected cannot flip", Rejected, Approved, false, ErrIllegalTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed, err := Transition(tt.from, tt.to)
			if err != tt.wantErr {
				t.Fatalf("Transition(%q, %q) error = %v, want %v", tt.from, tt.to, err, tt.wantErr)
			}
			if changed != tt.wantChanged {
				t.Errorf("Transition(%q, %q) changed = %v, want %v", tt.from, tt.to, changed, tt.wantChanged)
			}
		})
	}
}

func TestTransition_UnknownStatus(t *testing.T) {
	if _, err := Transition("", Approved); err != ErrUnknownStatus {
		t.Errorf("empty from: error = %v, want ErrUnknownStatus", err)
	}
	if _, err := Transition(Pending, "archived"); err != ErrUnknownStatus {
		t.Errorf("unknown to: error = %v, want ErrUnknownStatus", err)
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(Pending) {
		t.Error("pending must not be terminal")
	}
	if !IsTerminal(Approved) || !IsTerminal(Rejected) {
		t.Error("approved and rejected must be terminal")
	}
}
