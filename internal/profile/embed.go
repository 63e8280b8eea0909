package profile

import (
	"embed"
	"io/fs"
)

//go:embed builtin/*.json
var builtinFiles embed.FS

// BuiltinFS returns the embedded built-in profile documents, rooted so that
// file names are bare "<stack>.json" entries.
func BuiltinFS() fs.FS {
	sub, err := fs.Sub(builtinFiles, "builtin")
	if err != nil {
		// The embed layout is fixed at build time
		panic(err)
	}
	return sub
}
