package main

import (
	"bytes"
	"os"
	"strings"

	"melato.org/command"
	"melato.org/script"
)

// Build stamps the version and builds a static genpass binary.
// Run it from the main directory.
type Build struct {
	Version string `name:"version" usage:"version to embed, default: git describe"`
	Output  string `name:"o" usage:"output file"`
}

func (t *Build) Init() error {
	t.Output = "genpass"
	return nil
}

func (t *Build) Run() error {
	script := script.Script{Trace: true}
	version := t.Version
	if version == "" {
		var buf bytes.Buffer
		script.Cmd("git", "describe", "--tags", "--always", "--dirty").ToWriter(&buf)
		if script.Error != nil {
			return script.Error
		}
		version = strings.TrimSpace(buf.String())
	}
	err := os.WriteFile("version", []byte(version+"\n"), os.FileMode(0664))
	if err != nil {
		return err
	}
	cmd := script.Cmd("go", "build", "-o", t.Output,
		"-ldflags", `-extldflags "-static"`, ".")
	cmd.Cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	cmd.Run()
	return script.Error
}

func main() {
	var build Build
	var cmd command.SimpleCommand
	cmd.Flags(&build).RunMethodE(build.Run).Short("build genpass with the current version")
	command.Main(&cmd)
}
