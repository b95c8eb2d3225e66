package inputval

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		// Valid emails
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.com", true},
		{"user@subdomain.example.com", true},
		{"user123@example.co.uk", true},
		{"a@b.co", true},

		// Invalid emails - empty/whitespace
		{"", false},
		{"   ", false},

		// Invalid emails - missing parts
		{"user", false},
		{"user@", false},
		{"@example.com", false},

		// Invalid emails - malformed
		{".user@example.com", false},
		{"user.@example.com", false},
		{"user..name@example.com", false},
		{"user@.example.com", false},
		{"user@example..com", false},
		{"User Name <user@example.com>", false},
		{"user @example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := IsValidEmail(tt.email)
			if got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidPRLink(t *testing.T) {
	tests := []struct {
		link string
		want bool
	}{
		// Valid PR links
		{"https://github.com/acme/widgets/pull/42", true},
		{"http://github.com/acme/widgets/pull/42", true},
		{"https://www.github.com/acme/widgets/pull/42", true},
		{"https://github.com/acme/widgets/pull/42/", true},
		{"https://github.com/acme/widgets/pull/42?diff=split", true},
		{"https://github.com/some-org/repo.name/pull/1", true},
		{"  https://github.com/acme/widgets/pull/42  ", true}, // trimmed

		// Invalid - missing /pull/<number>
		{"https://github.com/acme/widgets", false},
		{"https://github.com/acme/widgets/pull", false},
		{"https://github.com/acme/widgets/pull/", false},
		{"https://github.com/acme/widgets/pulls/42", false},
		{"https://github.com/acme/widgets/issues/42", false},

		// Invalid - wrong host
		{"https://gitlab.com/acme/widgets/pull/42", false},
		{"https://github.example.com/acme/widgets/pull/42", false},
		{"https://notgithub.com/acme/widgets/pull/42", false},

		// Invalid - not a URL at all
		{"", false},
		{"acme/widgets#42", false},
		{"github.com/acme/widgets/pull/42", false}, // missing scheme
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			got := IsValidPRLink(tt.link)
			if got != tt.want {
				t.Errorf("IsValidPRLink(%q) = %v, want %v", tt.link, got, tt.want)
			}
		})
	}
}

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"http://example.com", true},
		{"https://example.com", true},
		{"https://example.com/path?query=1", true},
		{"http://localhost:8080", true},
		{"  https://example.com  ", true},

		{"", false},
		{"ftp://example.com", false},
		{"mailto:user@example.com", false},
		{"example.com", false},
		{"//example.com", false},
		{"not a url", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got := IsValidHTTPURL(tt.url)
			if got != tt.want {
				t.Errorf("IsValidHTTPURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsValidObjectID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"507f1f77bcf86cd799439011", true},
		{"000000000000000000000000", true},
		{"FFFFFFFFFFFFFFFFFFFFFFFF", true},
		{"  507f1f77bcf86cd799439011  ", true},

		{"", false},
		{"507f1f77bcf86cd79943901", false},
		{"507f1f77bcf86cd7994390111", false},
		{"507f1f77bcf86cd79943901g", false},
		{"not-a-valid-id", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := IsValidObjectID(tt.id)
			if got != tt.want {
				t.Errorf("IsValidObjectID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestRequired(t *testing.T) {
	if Required("") || Required("   ") || Required("\t\n") {
		t.Error("blank values must not satisfy Required")
	}
	if !Required("x") || !Required("  x  ") {
		t.Error("non-blank values must satisfy Required")
	}
}
