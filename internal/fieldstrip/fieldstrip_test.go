package fieldstrip

import "testing"

// TestStripMiddleField verifies that a field between others is removed with its line.
func TestStripMiddleField(t *testing.T) {
	in := "[\n  {\n    \"name\": \"Squat\",\n    \"gifUrl\": \"https://example.com/1.gif\",\n    \"id\": \"squat\"\n  }\n]\n"
	want := "[\n  {\n    \"name\": \"Squat\",\n    \"id\": \"squat\"\n  }\n]\n"

	got, n := Strip(in, "gifUrl")
	if got != want {
		t.Errorf("Strip() =\n%q\nwant\n%q", got, want)
	}
	if n != 1 {
		t.Errorf("removed = %d, want 1", n)
	}
}

// TestStripLastField verifies that removing the last field leaves no trailing comma.
func TestStripLastField(t *testing.T) {
	in := "{\n  \"id\": \"squat\",\n  \"gifUrl\": \"x.gif\"\n}\n"
	want := "{\n  \"id\": \"squat\"\n}\n"

	got, n := Strip(in, "gifUrl")
	if got != want {
		t.Errorf("Strip() =\n%q\nwant\n%q", got, want)
	}
	if n != 1 {
		t.Errorf("removed = %d, want 1", n)
	}
}

// TestStripOtherFieldsUntouched verifies that similarly named fields and
// non-string values are left alone.
func TestStripOtherFieldsUntouched(t *testing.T) {
	in := "{\n  \"gifUrlAlt\": \"a\",\n  \"gifUrl\": null,\n  \"id\": \"x\"\n}\n"
	got, n := Strip(in, "gifUrl")
	if got != in {
		t.Errorf("Strip() changed input:\n%q", got)
	}
	if n != 0 {
		t.Errorf("removed = %d, want 0", n)
	}
}
