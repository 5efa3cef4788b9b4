// internal/writers/match_writer_test.go
package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/maxgmarin/polyscan/core/window"
	"github.com/maxgmarin/polyscan/pkg/api"
)

func runWriter(t *testing.T, format string, ms []window.Match) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	in, errCh := StartMatchWriter(&buf, format, 4)
	for _, m := range ms {
		in <- m
	}
	close(in)
	err := <-errCh
	return buf.String(), err
}

var sample = []window.Match{
	{SequenceID: "chr1", Start: 0, End: 10, Base: 'A', Percent: 100.0, Strand: "+"},
	{SequenceID: "chr1", Start: 1, End: 11, Base: 'A', Percent: 90.0, Strand: "+"},
}

func TestBEDStreaming(t *testing.T) {
	got, err := runWriter(t, "bed", sample)
	if err != nil {
		t.Fatal(err)
	}
	want := "chr1\t0\t10\tA\t100\t+\nchr1\t1\t11\tA\t90\t+\n"
	if got != want {
		t.Fatalf("bed output = %q, want %q", got, want)
	}
}

func TestGFF3Streaming(t *testing.T) {
	got, err := runWriter(t, "gff3", sample)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "##gff-version 3\n") {
		t.Fatalf("missing gff version pragma:\n%s", got)
	}
	if strings.Count(got, "\n") != 3 {
		t.Fatalf("want header + 2 features, got:\n%s", got)
	}
}

func TestJSONBuffersWholeRun(t *testing.T) {
	got, err := runWriter(t, "json", sample)
	if err != nil {
		t.Fatal(err)
	}
	var rows []api.MatchV1
	if err := json.Unmarshal([]byte(got), &rows); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(rows) != 2 || rows[1].Score != 90 {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestJSONLOneObjectPerLine(t *testing.T) {
	got, err := runWriter(t, "jsonl", sample)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d:\n%s", len(lines), got)
	}
	for _, ln := range lines {
		var row api.MatchV1
		if err := json.Unmarshal([]byte(ln), &row); err != nil {
			t.Fatalf("line %q: %v", ln, err)
		}
		if row.Base != "A" {
			t.Fatalf("line %q: base %q", ln, row.Base)
		}
	}
}

func TestUnknownFormatErrorsWithoutBlocking(t *testing.T) {
	_, err := runWriter(t, "tsv", sample)
	if err == nil || !strings.Contains(err.Error(), "unsupported output") {
		t.Fatalf("expected unsupported-output error, got %v", err)
	}
}
