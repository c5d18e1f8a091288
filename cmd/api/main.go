package main

import (
	"fmt"
	"log"
	"os"

	"vantagelite/cmd"
)

func main() {
	fmt.Println(os.Getenv("commit_hash"))
	apiHandler, cfg, err := cmd.InitializeDependencies(os.Getenv("VANTAGE_CONFIG_FILE"))
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(cfg.Port)
	if err != nil {
		log.Fatal(err)
	}
}
