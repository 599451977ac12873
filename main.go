package main

import (
	"os"

	_ "github.com/bakurvik/mylib/libadmin/docs"
)

// @title Library Administration API
// @version 1.0
// @description API for registering books and members, issuing and reserving books, booking study rooms and setting fines.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5002
// @BasePath /

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
