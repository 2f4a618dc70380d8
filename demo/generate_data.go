//go:build ignore

package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// Generates a demo media tree under ./demo-fotos so the server and TUI
// have something to browse. Run with: go run demo/generate_data.go

func main() {
	root := "demo-fotos"
	rng := rand.New(rand.NewSource(42))

	extensions := []string{"jpg", "jpg", "jpg", "jpeg", "png", "mp4"}

	start := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 90; i++ {
		day := start.AddDate(0, 0, i)

		// Roughly a third of the days stay empty.
		if rng.Intn(3) == 0 {
			continue
		}

		dir := filepath.Join(root, day.Format("2006"), day.Format("01"), day.Format("02"))
		if err := os.MkdirAll(dir, 0o775); err != nil {
			fmt.Fprintf(os.Stderr, "mkdir %s: %v\n", dir, err)
			os.Exit(1)
		}

		files := 1 + rng.Intn(8)
		for f := 0; f < files; f++ {
			h := 8 + rng.Intn(14)
			m := rng.Intn(60)
			s := rng.Intn(60)
			ext := extensions[rng.Intn(len(extensions))]

			name := fmt.Sprintf("%02d-%02d-%02d.%s", h, m, s, ext)
			size := 50_000 + rng.Intn(4_000_000)

			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, make([]byte, size), 0o664); err != nil {
				fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
				os.Exit(1)
			}
		}
	}

	fmt.Printf("Demo library written to %s\n", root)
	fmt.Println("Point the server at it with PHOTOS_PATH=" + root)
}
