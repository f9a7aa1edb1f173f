// Basic example: search an image file and print every page of results
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	snapfind "snapfind-api/snapfind-lib"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: basic <image-file>")
	}
	image, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	client, err := snapfind.NewClient(
		snapfind.WithLogger(snapfind.DefaultLogger()),
		snapfind.WithResultsPerPage(5),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	result, err := client.Search(ctx, "", image)
	if err != nil {
		log.Fatal(err)
	}
	if result.View == nil {
		fmt.Println(result.Message)
		return
	}

	view := result.View
	for {
		for _, e := range view.Entries {
			fmt.Printf("%d. %s (%s)\n", e.Position, e.URL, e.Label)
		}
		if !view.HasNext {
			break
		}
		if view, err = client.Act(ctx, result.SessionID, snapfind.Next); err != nil {
			log.Fatal(err)
		}
	}
}
