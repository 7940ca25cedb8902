// Command recordergen writes the method set of guitest.Recorder from the
// gui.ImGui interface.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/types"
	"log"
	"os"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"
)

const guiPkg = "github.com/plus3/imdi/gui"

func main() {
	out := flag.String("out", "recorder_gen.go", "output file")
	iface := flag.String("iface", "ImGui", "interface to implement")
	flag.Parse()

	cfg := &packages.Config{Mode: packages.NeedTypes | packages.NeedName}
	pkgs, err := packages.Load(cfg, guiPkg)
	if err != nil {
		log.Fatalf("load %s: %v", guiPkg, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		os.Exit(1)
	}

	obj := pkgs[0].Types.Scope().Lookup(*iface)
	if obj == nil {
		log.Fatalf("%s.%s not found", guiPkg, *iface)
	}
	it, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		log.Fatalf("%s.%s is not an interface", guiPkg, *iface)
	}

	src, err := generate(it)
	if err != nil {
		log.Fatal(err)
	}
	formatted, err := imports.Process(*out, src, nil)
	if err != nil {
		log.Fatalf("format: %v\n%s", err, src)
	}
	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatal(err)
	}
}

func qualifier(p *types.Package) string { return p.Name() }

func generate(it *types.Interface) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by recordergen. DO NOT EDIT.\n\n")
	b.WriteString("package guitest\n\n")
	b.WriteString("import \"github.com/AllenDang/cimgui-go/imgui\"\n\n")

	for i := 0; i < it.NumMethods(); i++ {
		m := it.Method(i)
		sig := m.Type().(*types.Signature)

		params := make([]string, 0, sig.Params().Len())
		names := make([]string, 0, sig.Params().Len())
		for j := 0; j < sig.Params().Len(); j++ {
			p := sig.Params().At(j)
			params = append(params, p.Name()+" "+types.TypeString(p.Type(), qualifier))
			names = append(names, p.Name())
		}

		args := ""
		if len(names) > 0 {
			args = ", " + strings.Join(names, ", ")
		}

		switch sig.Results().Len() {
		case 0:
			fmt.Fprintf(&b, "func (r *Recorder) %s(%s) {\n", m.Name(), strings.Join(params, ", "))
			fmt.Fprintf(&b, "\tr.record(%q%s)\n}\n\n", m.Name(), args)
		case 1:
			res := types.TypeString(sig.Results().At(0).Type(), qualifier)
			fmt.Fprintf(&b, "func (r *Recorder) %s(%s) %s {\n", m.Name(), strings.Join(params, ", "), res)
			fmt.Fprintf(&b, "\tr.record(%q%s)\n", m.Name(), args)
			fmt.Fprintf(&b, "\treturn result[%s](r, %q)\n}\n\n", res, m.Name())
		default:
			return nil, fmt.Errorf("%s: multiple results are not supported", m.Name())
		}
	}
	return b.Bytes(), nil
}
