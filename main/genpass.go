package main

import (
	_ "embed"
	"os"
	"strings"

	"melato.org/genpass"
	"melato.org/genpass/usage"
)

//go:embed version
var version string

//go:embed usage.yaml
var usageData []byte

// UsageEnv names a yaml file that overrides the embedded usage text.
const UsageEnv = "GENPASS_USAGE"

func banner() *usage.Banner {
	b := &usage.Banner{Name: "genpass", Version: strings.TrimSpace(version)}
	if err := b.ApplyYaml(usageData); err != nil {
		panic(err)
	}
	b.ApplyEnv(UsageEnv)
	return b
}

func main() {
	app := genpass.NewApp(banner())
	os.Exit(app.Main(os.Args))
}
