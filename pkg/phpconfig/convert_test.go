package phpconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.php")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestParseSimpleArray(t *testing.T) {
	path := writeConfig(t, "<?php\nreturn [\n  'a' => 1,\n  'b' => 'x',\n  'c' => true,\n];")
	c := NewConverter(zerolog.Nop())

	value, ok := c.Parse(path)
	if !ok {
		t.Fatal("Parse reported failure")
	}
	want := map[string]any{"a": float64(1), "b": "x", "c": true}
	if !reflect.DeepEqual(value, want) {
		t.Fatalf("Parse = %#v, want %#v", value, want)
	}
}

func TestParseStripsCommentsAndUseDeclarations(t *testing.T) {
	body := `<?php
/* block comment
   spanning lines */
use App\Support\Env;
return [
  // line comment
  'name' => 'prod', // trailing comment
  'retries' => 3,
];`
	path := writeConfig(t, body)
	c := NewConverter(zerolog.Nop())

	value, ok := c.Parse(path)
	if !ok {
		t.Fatal("Parse reported failure")
	}
	want := map[string]any{"name": "prod", "retries": float64(3)}
	if !reflect.DeepEqual(value, want) {
		t.Fatalf("Parse = %#v, want %#v", value, want)
	}
}

func TestParseQuotesBareValues(t *testing.T) {
	body := "<?php\nreturn [\n  'mode' => production,\n  'flag' => false,\n  'empty' => null,\n];"
	path := writeConfig(t, body)
	c := NewConverter(zerolog.Nop())

	value, ok := c.Parse(path)
	if !ok {
		t.Fatal("Parse reported failure")
	}
	want := map[string]any{"mode": "production", "flag": false, "empty": nil}
	if !reflect.DeepEqual(value, want) {
		t.Fatalf("Parse = %#v, want %#v", value, want)
	}
}

func TestParseMissingFileReturnsSentinel(t *testing.T) {
	c := NewConverter(zerolog.Nop())
	value, ok := c.Parse(filepath.Join(t.TempDir(), "missing.php"))
	if ok {
		t.Fatal("Parse reported success for a missing file")
	}
	if value != nil {
		t.Fatalf("Parse value = %#v, want nil", value)
	}
}

func TestParseMalformedSourceReturnsSentinel(t *testing.T) {
	path := writeConfig(t, "<?php\nreturn [\n  'broken' =>\n];")
	c := NewConverter(zerolog.Nop())
	if _, ok := c.Parse(path); ok {
		t.Fatal("Parse reported success for malformed source")
	}
}

func TestConvertProducesJSONText(t *testing.T) {
	src := []byte("<?php\nreturn [\n  'a' => 1,\n  'b' => 'x',\n];")
	got := string(Convert(src))
	want := "\n{\n  \"a\" : 1,\n  \"b\" : \"x\"\n}"
	if got != want {
		t.Fatalf("Convert = %q, want %q", got, want)
	}
}
