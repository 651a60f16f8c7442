// Generates synthetic CREATE TABLE files for exercising colmask on
// larger inputs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
)

var nouns = []string{
	"customer", "order", "account", "user", "vendor", "shipment",
	"invoice", "payment", "contact", "employee", "patient", "student",
}

var sensitiveSuffixes = []string{"name", "address", "phone", "email", "id"}

var plainColumns = []string{
	"created_at TIMESTAMP",
	"updated_at TIMESTAMP",
	"status VARCHAR(32)",
	"notes TEXT",
	"amount DECIMAL(10, 2)",
}

func main() {
	var (
		tables = flag.Int("tables", 100, "Number of tables to generate")
		cols   = flag.Int("cols", 8, "Number of columns per table")
		output = flag.String("output", "table_defs.sql", "Output file path")
		seed   = flag.Int64("seed", 42, "Random seed")
	)
	flag.Parse()

	if *cols > len(sensitiveSuffixes)+len(plainColumns) {
		fmt.Fprintf(os.Stderr, "Error: at most %d distinct columns per table\n", len(sensitiveSuffixes)+len(plainColumns))
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	file, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	defer w.Flush()

	for i := 0; i < *tables; i++ {
		noun := nouns[rng.Intn(len(nouns))]
		seen := make(map[string]bool)
		fmt.Fprintf(w, "CREATE TABLE %s_%d (\n", noun, i)
		for c := 0; c < *cols; c++ {
			var def string
			for def == "" || seen[def] {
				if rng.Intn(2) == 0 {
					suffix := sensitiveSuffixes[rng.Intn(len(sensitiveSuffixes))]
					def = fmt.Sprintf("%s_%s VARCHAR(255)", noun, suffix)
				} else {
					def = plainColumns[rng.Intn(len(plainColumns))]
				}
			}
			seen[def] = true
			if c > 0 {
				fmt.Fprintln(w, ",")
			}
			fmt.Fprintf(w, "    %s", def)
		}
		fmt.Fprintf(w, "\n);\n\n")
	}

	fmt.Printf("Generated %d table definitions in %s\n", *tables, *output)
}
