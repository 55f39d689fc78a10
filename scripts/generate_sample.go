package main

import (
	"encoding/json"
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
)

// Card mirrors the input format accepted by flipdeck.
type Card struct {
	SideA string `json:"sideA"`
	SideB string `json:"sideB"`
}

func main() {
	total := flag.Int("n", 50, "number of cards")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(*seed))

	ops := []string{"+", "-", "×"}
	out := make([]Card, 0, *total)
	for i := 0; i < *total; i++ {
		a, b := 2+mr.Intn(18), 2+mr.Intn(18)
		op := ops[mr.Intn(len(ops))]
		var res int
		switch op {
		case "+":
			res = a + b
		case "-":
			res = a - b
		default:
			res = a * b
		}
		// Every fifth card exercises block Markdown.
		if i%5 == 0 {
			out = append(out, Card{
				SideA: fmt.Sprintf("## Card %d\n\nWhat is **%d %s %d**?", i+1, a, op, b),
				SideB: fmt.Sprintf("- result: `%d`\n- operands: %d, %d", res, a, b),
			})
			continue
		}
		out = append(out, Card{
			SideA: fmt.Sprintf("**%d %s %d**", a, op, b),
			SideB: fmt.Sprintf("%d", res),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}
