// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

const mod = "github.com/maxgmarin/polyscan"

// TestImportBoundaries keeps the layering honest: serialization and
// orchestration packages must not reach up into the app/cli layer, and
// the stable wire types must not depend on anything internal.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.." // module root; relative to this package's directory
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		mod + "/internal/pipeline": {
			mod + "/internal/app", mod + "/internal/cli",
			mod + "/internal/writers", mod + "/internal/output", mod + "/cmd/",
		},
		mod + "/internal/writers": {
			mod + "/internal/app", mod + "/internal/cli",
			mod + "/internal/pipeline", mod + "/cmd/",
		},
		mod + "/internal/output": {
			mod + "/internal/app", mod + "/internal/cli",
			mod + "/internal/pipeline", mod + "/internal/writers", mod + "/cmd/",
		},
		mod + "/internal/summary": {
			mod + "/internal/app", mod + "/internal/cli", mod + "/cmd/",
		},
		mod + "/pkg/api": {
			mod + "/internal/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, mod+"/") {
			continue
		}
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(p.ImportPath, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, p.ImportPath+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
