// hlo2tf is a small demonstration program: it builds a sample HLO module,
// runs a registered pass over it (by default tf-legalize-hlo) and prints
// the module before and after.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gomlx/hlo2tf/dtypes"
	"github.com/gomlx/hlo2tf/ir"
	"github.com/gomlx/hlo2tf/ir/optypes"
	"github.com/gomlx/hlo2tf/passes"
	"github.com/gomlx/hlo2tf/shapes"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	// Pass registrations.
	_ "github.com/gomlx/hlo2tf/legalize"
)

var flagPass = flag.String("pass", "tf-legalize-hlo", "Name of the pass to run")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `hlo2tf builds a sample HLO module, runs a pass over it and prints the
module before and after.

Registered passes:
`)
		for _, name := range passes.Names() {
			reg, _ := passes.Get(name)
			fmt.Fprintf(os.Stderr, "  %s: %s\n", reg.Name, reg.Description)
		}
		fmt.Fprintln(os.Stderr, "\nUsage:")
		flag.PrintDefaults()
	}
	klog.InitFlags(flag.CommandLine)
	flag.Parse()

	reg, found := passes.Get(*flagPass)
	if !found {
		fmt.Fprintf(os.Stderr, "Unknown pass %q. Registered passes: %v\n", *flagPass, passes.Names())
		os.Exit(1)
	}

	m := sampleModule()
	fmt.Printf("// Before %s:\n%s\n\n", reg.Name, m)
	must.M(reg.New().Run(m))
	fmt.Printf("// After %s:\n%s\n", reg.Name, m)
}

// sampleModule builds a module exercising the slice, dot and elementwise
// converters.
func sampleModule() *ir.Module {
	m := ir.NewModule("sample")
	fn := m.NewFunction("main", true)
	lhs := fn.NewInput(shapes.Make(dtypes.F32, 4), "")
	rhs := fn.NewInput(shapes.Make(dtypes.F32, 4), "")
	dot := fn.NewOp(optypes.HLODot, []*ir.Value{lhs, rhs}, nil, shapes.Make(dtypes.F32))

	matrix := fn.NewInput(shapes.Make(dtypes.F32, 2, 4), "")
	slice := fn.NewOp(optypes.HLOSlice, []*ir.Value{matrix},
		map[string]ir.Attribute{
			"start_indices": ir.NewDenseIntAttr(0, 1),
			"limit_indices": ir.NewDenseIntAttr(2, 4),
			"strides":       ir.NewDenseIntAttr(1, 1),
		},
		shapes.Make(dtypes.F32, 2, 3))

	fn.Return(dot.Result(), slice.Result())
	return m
}
