package main

import "github.com/deppfellow/course-apis/internal/cli"

func main() {
	cli.Execute()
}
