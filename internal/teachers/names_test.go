package teachers

import "testing"

func TestNameFormatter(t *testing.T) {
	ana := User{
		FirstName:         "Ana",
		LastName:          "Silva",
		MiddleName:        "Maria",
		FirstNamePhonetic: "Ahna",
		AlternateName:     "Aninha",
	}

	tests := []struct {
		name   string
		format string
		user   User
		want   string
	}{
		{"default", "", ana, "Ana Silva"},
		{"last first", "lastname, firstname", ana, "Silva, Ana"},
		{"middle", "firstname middlename lastname", ana, "Ana Maria Silva"},
		{"phonetic is not confused with firstname", "firstnamephonetic lastname", ana, "Ahna Silva"},
		{"alternate", "alternatename (firstname)", ana, "Aninha (Ana)"},
		{"missing middle collapses", "firstname middlename lastname", User{FirstName: "Bruno", LastName: "Souza"}, "Bruno Souza"},
		{"empty template result falls back", "alternatename", User{FirstName: "Bruno", LastName: "Souza"}, "Bruno Souza"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewNameFormatter(tt.format).Format(tt.user); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}
