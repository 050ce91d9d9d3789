package redact

import "testing"

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		message string
		want    string
	}{
		{
			name:    "redacts watched fields",
			fields:  []string{"name", "email"},
			message: "name=Bob;email=bob@bob.com;",
			want:    "name=***;email=***;",
		},
		{
			name:    "leaves unwatched fields alone",
			fields:  []string{"password"},
			message: "name=Bob;email=bob@bob.com;",
			want:    "name=Bob;email=bob@bob.com;",
		},
		{
			name:    "message without any segments",
			fields:  []string{"name", "email"},
			message: "nothing to see here",
			want:    "nothing to see here",
		},
		{
			name:    "redacts every occurrence",
			fields:  []string{"ssn"},
			message: "ssn=111-11-1111;x=1;ssn=222-22-2222;",
			want:    "ssn=***;x=1;ssn=***;",
		},
		{
			name:    "value ends at first separator",
			fields:  []string{"email"},
			message: "email=bob@bob.com;phone=555;",
			want:    "email=***;phone=555;",
		},
		{
			name:    "empty value",
			fields:  []string{"password"},
			message: "password=;ip=1.2.3.4;",
			want:    "password=***;ip=1.2.3.4;",
		},
		{
			name:    "unterminated segment is not matched",
			fields:  []string{"email"},
			message: "email=bob@bob.com",
			want:    "email=bob@bob.com",
		},
		{
			name:    "no fields",
			fields:  nil,
			message: "name=Bob;",
			want:    "name=Bob;",
		},
		{
			name:    "metacharacters in field name match literally",
			fields:  []string{"user.name"},
			message: "userXname=Bob;user.name=Ann;",
			want:    "userXname=Bob;user.name=***;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.fields, Redaction, tt.message, Separator)
			if got != tt.want {
				t.Errorf("Filter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilter_OrderIndependent(t *testing.T) {
	message := "name=Bob;email=bob@bob.com;"

	forward := Filter([]string{"name", "email"}, Redaction, message, Separator)
	reverse := Filter([]string{"email", "name"}, Redaction, message, Separator)

	if forward != reverse {
		t.Errorf("field order changed result: %q vs %q", forward, reverse)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	message := "name=Bob;email=bob@bob.com;ip=1.2.3.4;"

	once := Filter(PIIFields, Redaction, message, Separator)
	twice := Filter(PIIFields, Redaction, once, Separator)

	if once != twice {
		t.Errorf("second pass changed result: %q vs %q", once, twice)
	}
}

func TestFilter_CustomSeparator(t *testing.T) {
	got := Filter([]string{"phone"}, "xxx", "phone=555-1234|name=Bob|", "|")
	want := "phone=xxx|name=Bob|"
	if got != want {
		t.Errorf("Filter() = %q, want %q", got, want)
	}
}

func TestPIIFields(t *testing.T) {
	want := []string{"name", "email", "phone", "ssn", "password"}
	if len(PIIFields) != len(want) {
		t.Fatalf("PIIFields has %d entries, want %d", len(PIIFields), len(want))
	}
	for i, field := range want {
		if PIIFields[i] != field {
			t.Errorf("PIIFields[%d] = %q, want %q", i, PIIFields[i], field)
		}
	}
}
