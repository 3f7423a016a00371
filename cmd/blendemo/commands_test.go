package main

import "bytes"
import "strings"
import "testing"
import "path/filepath"

func TestCommands(t *testing.T) {
	var buffer bytes.Buffer
	app := newApp()
	app.Writer = &buffer

	err := app.Run([]string{"blendemo", "layout"})
	if err != nil { t.Fatal(err) }
	output := buffer.String()
	for _, line := range []string{"512x384", "(200,6)-(489,90)", "(200,294)-(489,378)"} {
		if !strings.Contains(output, line) {
			t.Fatalf("expected '%s' in layout output:\n%s", line, output)
		}
	}

	buffer.Reset()
	err = app.Run([]string{"blendemo", "modes"})
	if err != nil { t.Fatal(err) }
	for _, name := range []string{"none", "blend", "add", "mod"} {
		if !strings.Contains(buffer.String(), name + " ") {
			t.Fatalf("expected mode '%s' in output:\n%s", name, buffer.String())
		}
	}
}

func TestCommandErrors(t *testing.T) {
	var output, errOutput bytes.Buffer
	app := newApp()
	app.Writer = &output
	app.ErrWriter = &errOutput

	// errors are returned to main as they are, without exiting or
	// being printed by the cli package
	missing := filepath.Join(t.TempDir(), "missing.toml")
	for _, args := range [][]string{
		{"blendemo", "--config", missing},
		{"blendemo", "--config", missing, "layout"},
		{"blendemo", "--scale", "0", "layout"},
	} {
		err := app.Run(args)
		if err == nil { t.Fatalf("%v: expected an error", args) }
		if _, isExitCoder := err.(interface{ ExitCode() int }); isExitCoder {
			t.Fatalf("%v: unexpected exit coder error %v", args, err)
		}
	}
	if errOutput.Len() != 0 {
		t.Fatalf("unexpected error output:\n%s", errOutput.String())
	}
}
