package screens

import (
	"embed"
	"io/fs"
)

//go:embed assets
var embedded embed.FS

// Assets is the built-in asset tree: how-to-play text and animation frames.
func Assets() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
