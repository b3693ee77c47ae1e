package main

import (
	"os"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/service"
)

func main() {
	if err := service.RunServer(); err != nil {
		os.Exit(1)
	}
}
