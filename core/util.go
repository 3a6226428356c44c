package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// LevelTrace is below Debug so per-instruction records stay out of
// ordinary debug logs.
const LevelTrace slog.Level = slog.LevelDebug - 4

// Trace logs a record at LevelTrace on the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// printState dumps the machine state to w.
func printState(w io.Writer, state *machineState) {
	if w == nil {
		return
	}

	order := 0
	if state.PC >= 0 && state.PC < len(state.Code) {
		order = state.Code[state.PC].Order
	}

	if !state.BreakTables {
		fmt.Fprintf(w, "BREAK at order %d (pc %d): executed=%d locals=%d calls=%v stack=%s\n",
			order, state.PC, state.Executed, state.Frames.LocalDepth(),
			state.CallStack, formatValues(state.DataStack))
		return
	}

	fmt.Fprintf(w, "==============BREAK@order %d==============\n", order)

	machTable := table.NewWriter()
	machTable.SetTitle("Machine")
	machTable.AppendHeader(table.Row{"PC", "Order", "Executed", "Local Frames", "Call Stack", "Data Stack"})
	machTable.AppendRow(table.Row{
		state.PC,
		order,
		state.Executed,
		state.Frames.LocalDepth(),
		fmt.Sprint(state.CallStack),
		formatValues(state.DataStack),
	})
	fmt.Fprintln(w, machTable.Render())

	frameTable := table.NewWriter()
	frameTable.SetTitle("Frames")
	frameTable.AppendHeader(table.Row{"Frame", "Variable", "Type", "Value"})
	appendFrameRows(frameTable, GlobalScope, state.Frames.Global())
	appendFrameRows(frameTable, LocalScope, state.Frames.Local())
	appendFrameRows(frameTable, TempScope, state.Frames.Temp())
	fmt.Fprintln(w, frameTable.Render())

	fmt.Fprintln(w, "================================================")
}

func appendFrameRows(t table.Writer, scope Scope, f *Frame) {
	if f == nil {
		t.AppendRow(table.Row{scope.String(), "-", "-", "(no frame)"})
		return
	}

	for _, name := range f.Names() {
		v, _ := f.Get(name)
		t.AppendRow(table.Row{scope.String(), name, v.TypeName(), v.GoString()})
	}
}

func formatValues(vals []Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.GoString()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// logState records the machine state at Debug level.
func logState(logger *slog.Logger, state *machineState) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("StateCheckpoint",
		"PC", state.PC,
		"Executed", state.Executed,
		"GF", state.Frames.Global().Names(),
		"LocalDepth", state.Frames.LocalDepth(),
		"HasTF", state.Frames.Temp() != nil,
		"CallStack", state.CallStack,
		"DataStack", formatValues(state.DataStack),
	)
}
