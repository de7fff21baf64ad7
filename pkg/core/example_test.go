package core_test

import (
	"context"
	"fmt"

	"github.com/powerscan/powerscan/pkg/core"
)

func Example() {
	files := []core.SourceFile{
		{Name: "a.js", Content: []byte("x=1;\neval(foo);\n")},
	}
	res, err := core.Scan(context.Background(), core.Config{}, core.DefaultCatalog(), files)
	if err != nil {
		panic(err)
	}
	for _, f := range res.Findings {
		fmt.Printf("%s %s:%d:%d %s\n", f.Severity, f.File, f.Line, f.Column, f.RuleID)
	}
	// Output:
	// high a.js:2:1 eval-usage
}
