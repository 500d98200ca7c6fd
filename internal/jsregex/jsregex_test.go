package jsregex

import "testing"

func TestCompileAndExec(t *testing.T) {
	re, err := Compile(`(\d+)-(\d+)`, "")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	match, found := re.Exec("range 10-20 end")
	if !found {
		t.Fatal("expected a match")
	}
	if match.Groups[0].Value != "10-20" {
		t.Errorf("whole match = %q, want %q", match.Groups[0].Value, "10-20")
	}
	if match.Groups[1].Value != "10" || match.Groups[2].Value != "20" {
		t.Errorf("groups = %q, %q, want 10, 20", match.Groups[1].Value, match.Groups[2].Value)
	}
}

func TestCompileNamedGroups(t *testing.T) {
	re, err := Compile(`(?<year>\d{4})-(?<month>\d{2})`, "")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	indices := re.NamedGroupIndices()
	if _, ok := indices["year"]; !ok {
		t.Error("expected a named group \"year\"")
	}
	if _, ok := indices["month"]; !ok {
		t.Error("expected a named group \"month\"")
	}

	match, found := re.Exec("2024-03")
	if !found {
		t.Fatal("expected a match")
	}
	year, ok := match.NamedGroup(re, "year")
	if !ok || year.Value != "2024" {
		t.Errorf("named group year = %+v, want 2024", year)
	}
}

func TestCompileUnknownFlagIsFatal(t *testing.T) {
	_, err := Compile(`a`, "z")
	if err == nil {
		t.Fatal("expected an error for an unrecognized flag")
	}
	if _, ok := err.(*UnknownFlagError); !ok {
		t.Errorf("expected *UnknownFlagError, got %T", err)
	}
}

func TestCompileRecognizedButUnsupportedFlags(t *testing.T) {
	for _, flag := range UnsupportedButRecognizedFlags {
		re, err := Compile(`a`, string(flag))
		if err != nil {
			t.Fatalf("Compile with flag %q: %v", flag, err)
		}
		if !re.FlagsUnsupported() {
			t.Errorf("flag %q should mark the regex flags-unsupported", flag)
		}
	}
}

func TestSourceSerialization(t *testing.T) {
	re, err := Compile(`a/b`, "gi")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got, want := re.Source(), "/a/b/gi"; got != want {
		t.Errorf("Source() = %q, want %q", got, want)
	}

	pattern, flags, err := DeserializeSource(re.Source())
	if err != nil {
		t.Fatalf("DeserializeSource: %v", err)
	}
	if pattern != "a/b" || flags != "gi" {
		t.Errorf("DeserializeSource = (%q, %q), want (\"a/b\", \"gi\")", pattern, flags)
	}
}

func TestSourceSerializationEmptyFlags(t *testing.T) {
	re, err := Compile(`abc`, "")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got, want := re.Source(), "/abc/"; got != want {
		t.Errorf("Source() = %q, want %q", got, want)
	}
}

func TestNoMatch(t *testing.T) {
	re, err := Compile(`xyz`, "")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, found := re.Exec("abc"); found {
		t.Error("expected no match")
	}
}
