package meteors

import (
	"embed"
	"io/fs"
)

//go:embed data/waves/*.txt data/levels/*.txt
var scriptData embed.FS

// Scripts returns the built-in wave and level catalogue.
func Scripts() fs.FS {
	sub, err := fs.Sub(scriptData, "data")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory
	}
	return sub
}
