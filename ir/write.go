package ir

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// elementWriter is anything that can render itself in the MLIR-like text
// format.
type elementWriter interface {
	Write(w io.Writer) error
}

// String renders the module in MLIR-like text format.
func (m *Module) String() string {
	var sb strings.Builder
	_ = m.Write(&sb)
	return sb.String()
}

// Write writes the module in MLIR-like text format to the given writer.
func (m *Module) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "module @%s {\n", m.Name); err != nil {
		return err
	}
	for _, fn := range m.Functions {
		if err := fn.Write(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}")
	return err
}

// String renders the function in MLIR-like text format.
func (f *Function) String() string {
	var sb strings.Builder
	_ = f.Write(&sb)
	return sb.String()
}

// Write writes the function in MLIR-like text format to the given writer.
func (f *Function) Write(writer io.Writer) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}
	we := func(e elementWriter) {
		if err != nil {
			return
		}
		err = e.Write(writer)
	}

	w("  func.func ")
	if f.IsPublic {
		w("public ")
	}
	w("@%s(", f.Name)
	for i, input := range f.inputs {
		if i > 0 {
			w(", ")
		}
		we(input)
		w(": %s", input.shape.ToMLIR())
	}
	w(") -> (")
	for i, output := range f.Outputs() {
		if i > 0 {
			w(", ")
		}
		w("%s", output.ToMLIR())
	}
	w(") {\n")

	for _, op := range f.ops {
		if err != nil {
			return err
		}
		err = op.Write(writer)
		w("\n")
	}

	w("  }")
	return err
}

// String renders the operation in MLIR-like text format.
func (op *Operation) String() string {
	var sb strings.Builder
	_ = op.Write(&sb)
	return sb.String()
}

// Write writes a single operation line in MLIR-like text format.
func (op *Operation) Write(writer io.Writer) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}
	we := func(e elementWriter) {
		if err != nil {
			return
		}
		err = e.Write(writer)
	}

	// Output values are written first:
	w("    ")
	if len(op.Outputs) > 0 {
		for i, output := range op.Outputs {
			if i > 0 {
				w(", ")
			}
			we(output)
		}
		w(" = ")
	}

	// Op name and arguments:
	w("%q(", op.Kind.ToMLIR())
	for i, input := range op.Inputs {
		if i > 0 {
			w(", ")
		}
		we(input)
	}
	w(")")

	// Attributes, in sorted order for deterministic output:
	if len(op.Attrs) > 0 {
		w(" {")
		keys := make([]string, 0, len(op.Attrs))
		for key := range op.Attrs {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for i, key := range keys {
			if i > 0 {
				w(", ")
			}
			w("%s = %s", key, op.Attrs[key].String())
		}
		w("}")
	}

	// Signature:
	w(" : (")
	for i, input := range op.Inputs {
		if i > 0 {
			w(", ")
		}
		w("%s", input.shape.ToMLIR())
	}
	w(") -> (")
	for i, output := range op.Outputs {
		if i > 0 {
			w(", ")
		}
		w("%s", output.shape.ToMLIR())
	}
	w(")")
	return err
}
