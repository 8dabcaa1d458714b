package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestLoad_Properties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 50
	properties := gopter.NewProperties(params)

	dir := t.TempDir()
	n := 0
	write := func(rows []string) string {
		n++
		path := filepath.Join(dir, fmt.Sprintf("stars_%d.csv", n))
		content := testHeader + "\n" + strings.Join(rows, "\n") + "\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		return path
	}

	properties.Property("numeric codes load identically to their labels", prop.ForAll(
		func(codes []int) bool {
			coded := make([]string, len(codes))
			labeled := make([]string, len(codes))
			for i, c := range codes {
				coded[i] = fmt.Sprintf("%d,%d,1,%d,%d,Red,M", 3000+c, i+1, c, c)
				labeled[i] = fmt.Sprintf("%d,%d,1,%d,%s,Red,M", 3000+c, i+1, c, StarTypeNames[c])
			}
			a, err := Load(write(coded))
			if err != nil {
				return false
			}
			b, err := Load(write(labeled))
			if err != nil {
				return false
			}
			return reflect.DeepEqual(a.Stars, b.Stars)
		},
		gen.SliceOf(gen.IntRange(0, 5)),
	))

	properties.Property("codes outside the lookup always fail as LoadError", prop.ForAll(
		func(code int) bool {
			path := write([]string{fmt.Sprintf("5000,1,1,5,%d,Red,M", code)})
			_, err := Load(path)
			var le *LoadError
			return err != nil && errors.As(err, &le)
		},
		gen.OneGenOf(gen.IntRange(-1000, -1), gen.IntRange(6, 1000)),
	))

	properties.TestingRun(t)
}
