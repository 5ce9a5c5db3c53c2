package locale

import (
	"slices"
	"testing"

	"github.com/rbott/blog-siteconfig/app/config"
)

func TestSiteCollatorIgnoresCaseAndAccents(t *testing.T) {
	site := config.New("3.0.0", "")

	c, err := NewCollator(site.LocaleSort)
	if err != nil {
		t.Fatal(err)
	}

	if c.Language().String() != "en" {
		t.Errorf("Expected language 'en', got '%s'", c.Language())
	}
	if !c.Equal("resume", "Résumé") {
		t.Error("Expected 'resume' and 'Résumé' to compare equal at base sensitivity")
	}
	if c.Equal("a", "b") {
		t.Error("Expected 'a' and 'b' to differ")
	}
}

func TestSensitivityLevels(t *testing.T) {
	tests := []struct {
		sensitivity config.Sensitivity
		a, b        string
		equal       bool
	}{
		{config.SensitivityBase, "a", "A", true},
		{config.SensitivityBase, "a", "á", true},
		{config.SensitivityAccent, "a", "A", true},
		{config.SensitivityAccent, "a", "á", false},
		{config.SensitivityCase, "a", "á", true},
		{config.SensitivityCase, "a", "A", false},
		{config.SensitivityVariant, "a", "A", false},
		{config.SensitivityVariant, "a", "á", false},
	}

	for _, tt := range tests {
		c, err := NewCollator(config.LocaleSort{
			Language: "en",
			Options:  config.LocaleSortOptions{Sensitivity: tt.sensitivity},
		})
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Equal(tt.a, tt.b); got != tt.equal {
			t.Errorf("%s: Expected Equal(%q, %q) = %v, got %v", tt.sensitivity, tt.a, tt.b, tt.equal, got)
		}
	}
}

func TestSortStrings(t *testing.T) {
	c, err := NewCollator(config.LocaleSort{
		Language: "en",
		Options:  config.LocaleSortOptions{Sensitivity: config.SensitivityBase},
	})
	if err != nil {
		t.Fatal(err)
	}

	tags := []string{"zsh", "Go", "ansible", "Éclair", "docker"}
	c.SortStrings(tags)

	expected := []string{"ansible", "docker", "Éclair", "Go", "zsh"}
	if !slices.Equal(tags, expected) {
		t.Errorf("Expected %v, got %v", expected, tags)
	}
}

func TestNumericOption(t *testing.T) {
	c, err := NewCollator(config.LocaleSort{
		Language: "en",
		Options:  config.LocaleSortOptions{Sensitivity: config.SensitivityBase, Numeric: true},
	})
	if err != nil {
		t.Fatal(err)
	}

	if c.Compare("part 2", "part 10") >= 0 {
		t.Error("Expected 'part 2' to sort before 'part 10' with numeric collation")
	}
}

func TestNewCollatorErrors(t *testing.T) {
	if _, err := NewCollator(config.LocaleSort{Language: "not a tag!"}); err == nil {
		t.Error("Expected error for invalid language tag")
	}

	_, err := NewCollator(config.LocaleSort{
		Language: "en",
		Options:  config.LocaleSortOptions{Sensitivity: "loose"},
	})
	if err == nil {
		t.Error("Expected error for unsupported sensitivity")
	}
}

func TestCaseSensitivityIgnoresAccents(t *testing.T) {
	c, err := NewCollator(config.LocaleSort{
		Language: "en",
		Options:  config.LocaleSortOptions{Sensitivity: config.SensitivityCase},
	})
	if err != nil {
		t.Fatal(err)
	}

	if !c.Equal("Résumé", "Resume") {
		t.Error("Expected 'Résumé' and 'Resume' to compare equal at case sensitivity")
	}
	if c.Equal("résumé", "Resume") {
		t.Error("Expected 'résumé' and 'Resume' to differ at case sensitivity")
	}

	tags := []string{"zsh", "élan", "docker", "Ansible"}
	c.SortStrings(tags)

	expected := []string{"Ansible", "docker", "élan", "zsh"}
	if !slices.Equal(tags, expected) {
		t.Errorf("Expected %v, got %v", expected, tags)
	}
}
