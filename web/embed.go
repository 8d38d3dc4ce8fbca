package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

// FS holds the page templates and the weather icons.
//
//go:embed views images
var FS embed.FS

func NewViews() *html.Engine {
	views, err := fs.Sub(FS, "views")
	if err != nil {
		panic(err)
	}

	return html.NewFileSystem(http.FS(views), ".html")
}

func Assets() http.FileSystem {
	return http.FS(FS)
}
