// Program autosheet-repl is an interactive driver over the spreadsheet
// engine: it lets you set cells, evaluate them, and dump ranges without
// any grid UI, storage, or network layer — exercising the engine's
// external API end to end.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	// This library is rather simplistic but it's going to serve us fine.
	"github.com/peterh/liner"

	"github.com/groq/groq-autosheet"
)

const defaultSheet = "Sheet1"

func main() {
	e := autosheet.New()
	e.AddSheet(defaultSheet)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		text, err := line.Prompt(defaultSheet + "> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				break
			}
			log.Fatalf("prompt failed: %v", err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		line.AppendHistory(text)
		run(e, text)
	}
	os.Stdout.WriteString("\n")
}

func run(e *autosheet.Engine, text string) {
	fields := strings.SplitN(text, " ", 3)
	if len(fields) == 0 {
		return
	}

	switch strings.ToLower(fields[0]) {
	case "set":
		if len(fields) != 3 {
			fmt.Println("usage: set <address> <value or =formula>")
			return
		}
		if err := e.SetCell(defaultSheet, fields[1], parseLiteral(fields[2])); err != nil {
			fmt.Printf("\x1b[31merror: %v\x1b[0m\n", err)
		}
	case "get":
		if len(fields) != 2 {
			fmt.Println("usage: get <address>")
			return
		}
		v, err := e.GetCell(defaultSheet, fields[1])
		if err != nil {
			fmt.Printf("\x1b[31merror: %v\x1b[0m\n", err)
			return
		}
		fmt.Printf("%v\n", v)
	case "eval":
		if len(fields) != 2 {
			fmt.Println("usage: eval <address>")
			return
		}
		fmt.Printf("%v\n", e.EvaluateCell(defaultSheet, fields[1]))
	case "range":
		if len(fields) != 2 {
			fmt.Println("usage: range <A1:B2>")
			return
		}
		result, err := e.GetRange(defaultSheet, fields[1], autosheet.ModeComputed)
		if err != nil {
			fmt.Printf("\x1b[31merror: %v\x1b[0m\n", err)
			return
		}
		for _, row := range result.Rows {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = fmt.Sprintf("%s=%v", c.Address, c.Computed)
			}
			fmt.Println(strings.Join(cells, "  "))
		}
	default:
		fmt.Println("commands: set <addr> <value>, get <addr>, eval <addr>, range <A1:B2>")
	}
}

// parseLiteral interprets typed REPL input as a formula (if it starts
// with '='), a number, a boolean, or else a bare string.
func parseLiteral(s string) any {
	if strings.HasPrefix(s, "=") {
		return s
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch strings.ToUpper(s) {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	return s
}
