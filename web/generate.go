//go:build generate
// +build generate

package web

import (
	"log"
	"net/http"

	"github.com/shurcooL/vfsgen"
)

// Regenerates the static asset bundle for release builds.
func main() {
	fs := http.Dir("./")
	err := vfsgen.Generate(fs, vfsgen.Options{
		PackageName:  "web",
		BuildTags:    "!dev",
		VariableName: "SiteAssets",
	})
	if err != nil {
		log.Fatalln("Failed to generate site assets:", err)
	}
}
