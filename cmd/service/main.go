// File: cmd/service/main.go
// @title        Pangkat Auth API
// @version      1.0
// @description  會員認證與稽核子系統的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"log"
	"os"
)

var exitFunc = os.Exit

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
