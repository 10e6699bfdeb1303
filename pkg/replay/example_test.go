package replay_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/sketchboard/pkg/replay"
)

func ExampleRunner_Run() {
	s, err := replay.Parse(strings.NewReader(`
name: nudge
items:
  - {key: a, x: 0, y: 0, w: 40, h: 40}
steps:
  - down: {x: 10, y: 10, target: "item:a"}
  - move: {x: 34, y: 10}
  - up:
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := replay.NewRunner(nil).Run(context.Background(), s, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Mode, res.Selection, res.Items[0].X)
	// Output: idle [a] 20
}
